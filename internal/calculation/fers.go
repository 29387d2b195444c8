package calculation

import (
	"github.com/goldira/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// FERS constants
var (
	fersStandardMultiplier = decimal.NewFromFloat(0.010)
	fersEnhancedMultiplier = decimal.NewFromFloat(0.011)
	fersEnhancedServiceMin = decimal.NewFromInt(20)

	fersEarlyReductionPerYear = decimal.NewFromInt(5) // percent per full year under 62

	// DefaultFERSInflationRatePct is used for the COLA projection when neither the
	// input nor the configuration supplies one
	DefaultFERSInflationRatePct = decimal.NewFromFloat(2.5)
)

const fersUnreducedAge = 62

// COLAHorizons are the projection horizons, in years, reported for every benefit
var COLAHorizons = []int{5, 10, 20}

// DetermineMultiplier returns the FERS basic annuity multiplier: 1.1% at age 62
// or later with at least 20 years of service, 1.0% otherwise.
func DetermineMultiplier(age int, serviceYears decimal.Decimal) decimal.Decimal {
	if age >= fersUnreducedAge && serviceYears.GreaterThanOrEqual(fersEnhancedServiceMin) {
		return fersEnhancedMultiplier
	}
	return fersStandardMultiplier
}

// CalculateFERSAnnuity computes the FERS basic annuity, the MRA+10 age
// reduction, the survivor election cost, the special retirement supplement and
// COLA-adjusted projections.
//
// Zero or negative service produces a zero annuity rather than an error.
func CalculateFERSAnnuity(input domain.FERSInput) (*domain.FERSResult, error) {
	if !input.SurvivorOption.Valid() {
		return nil, &ValidationError{Field: "survivor_option", Message: "unknown survivor option " + string(input.SurvivorOption), Cause: ErrInvalidInput}
	}
	if !input.RetirementPath.Valid() {
		return nil, &ValidationError{Field: "retirement_path", Message: "unknown retirement path " + string(input.RetirementPath), Cause: ErrInvalidInput}
	}

	service := maxDecimal(decimalZero, input.YearsOfService)
	multiplier := DetermineMultiplier(input.CurrentAge, service)
	basic := multiplier.Mul(input.HighThreeSalary).Mul(service)

	result := &domain.FERSResult{
		Multiplier:         multiplier,
		EnhancedMultiplier: multiplier.Equal(fersEnhancedMultiplier),
		BasicAnnuity:       basic,
	}

	// MRA+10 age reduction
	result.EarlyReductionPct = fersEarlyReductionPct(input.RetirementPath, input.CurrentAge)
	result.AgeReducedAnnuity = reduceByPct(basic, result.EarlyReductionPct)

	// Survivor election comes off the age-reduced annuity
	reductionPct, survivorPct := fersSurvivorTerms(input.SurvivorOption)
	result.SurvivorReductionPct = reductionPct
	result.SurvivorBenefit = basic.Mul(pctToRate(survivorPct))
	result.AnnualAnnuity = reduceByPct(result.AgeReducedAnnuity, reductionPct)
	result.MonthlyAnnuity = result.AnnualAnnuity.Div(decimalTwelve)

	if input.RetirementPath != domain.PathMRAPlus10 && input.SSBenefitAt62Monthly != nil {
		result.AnnualSupplement = CalculateFERSSupplement(input.CurrentAge, service, *input.SSBenefitAt62Monthly)
		result.MonthlySupplement = result.AnnualSupplement.Div(decimalTwelve)
	}

	inflationPct := DefaultFERSInflationRatePct
	if input.InflationRatePct != nil {
		inflationPct = *input.InflationRatePct
	}
	inflation := pctToRate(inflationPct)
	for _, years := range COLAHorizons {
		annual := result.AnnualAnnuity
		for y := 1; y <= years; y++ {
			annual = ApplyFERSCOLA(annual, inflation, input.CurrentAge+y)
		}
		result.COLAProjections = append(result.COLAProjections, domain.COLAProjection{
			Years:   years,
			Annual:  annual,
			Monthly: annual.Div(decimalTwelve),
		})
	}

	return result, nil
}

// FERSCOLARate returns the diet COLA for an inflation rate (fractions, not
// percent): full inflation up to 2%, a flat 2% between 2% and 3%, and
// inflation minus 1% above 3%. Deflation yields no adjustment.
func FERSCOLARate(inflation decimal.Decimal) decimal.Decimal {
	two := decimal.NewFromFloat(0.02)
	three := decimal.NewFromFloat(0.03)
	switch {
	case inflation.LessThanOrEqual(decimalZero):
		return decimalZero
	case inflation.LessThanOrEqual(two):
		return inflation
	case inflation.LessThanOrEqual(three):
		return two
	default:
		return inflation.Sub(decimal.NewFromFloat(0.01))
	}
}

// ApplyFERSCOLA applies one year of COLA to an annuity. Annuitants under 62
// receive no COLA.
func ApplyFERSCOLA(annuity, inflation decimal.Decimal, annuitantAge int) decimal.Decimal {
	if annuitantAge < fersUnreducedAge {
		return annuity
	}
	return annuity.Mul(onePlus(FERSCOLARate(inflation)))
}

// CalculateFERSSupplement returns the annual special retirement supplement:
// the age-62 Social Security estimate scaled by years of service over 40.
// It is only paid before 62.
func CalculateFERSSupplement(age int, serviceYears, ssBenefitAt62Monthly decimal.Decimal) decimal.Decimal {
	if age >= fersUnreducedAge || serviceYears.LessThanOrEqual(decimalZero) || ssBenefitAt62Monthly.LessThanOrEqual(decimalZero) {
		return decimalZero
	}
	return ssBenefitAt62Monthly.Mul(decimalTwelve).Mul(serviceYears).Div(decimal.NewFromInt(40))
}

func fersEarlyReductionPct(path domain.RetirementPath, age int) decimal.Decimal {
	if path != domain.PathMRAPlus10 || age >= fersUnreducedAge {
		return decimalZero
	}
	pct := fersEarlyReductionPerYear.Mul(decimal.NewFromInt(int64(fersUnreducedAge - age)))
	return minDecimal(decimalHundred, pct)
}

// fersSurvivorTerms returns (reduction %, survivor benefit %) for an election
func fersSurvivorTerms(option domain.SurvivorOption) (decimal.Decimal, decimal.Decimal) {
	switch option {
	case domain.SurvivorFull:
		return decimal.NewFromInt(10), decimal.NewFromInt(50)
	case domain.SurvivorPartial:
		return decimal.NewFromInt(5), decimal.NewFromInt(25)
	default:
		return decimalZero, decimalZero
	}
}

func reduceByPct(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(decimalOne.Sub(pctToRate(pct)))
}
