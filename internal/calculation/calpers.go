package calculation

import (
	"fmt"

	"github.com/goldira/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CalPERSFormulaDefinition describes one CalPERS benefit formula
type CalPERSFormulaDefinition struct {
	ID          domain.CalPERSFormula `json:"id"`
	Name        string                `json:"name"`
	MinimumAge  int                   `json:"minimumAge"`
	Table       domain.AgeFactorTable `json:"table"`
	MaxFactor   decimal.Decimal       `json:"maxFactor"` // factor above the last table age
	Description string                `json:"description"`
}

var calPERSCOLARate = decimal.NewFromFloat(0.02)

func ageFactorRow(age int, value string) domain.AgeFactor {
	return domain.AgeFactor{Age: age, Factor: decimal.RequireFromString(value)}
}

var calPERSFormulas = []CalPERSFormulaDefinition{
	{
		ID:         domain.FormulaClassic2At55,
		Name:       "Classic 2% at 55",
		MinimumAge: 50,
		Table: domain.AgeFactorTable{
			ageFactorRow(50, "1.426"),
			ageFactorRow(52, "1.628"),
			ageFactorRow(55, "2.000"),
			ageFactorRow(57, "2.104"),
			ageFactorRow(60, "2.262"),
			ageFactorRow(62, "2.366"),
		},
		MaxFactor:   decimal.RequireFromString("2.418"),
		Description: "Classic members hired before 2013, miscellaneous 2% at 55",
	},
	{
		ID:         domain.FormulaClassic2At60,
		Name:       "Classic 2% at 60",
		MinimumAge: 50,
		Table: domain.AgeFactorTable{
			ageFactorRow(50, "1.092"),
			ageFactorRow(55, "1.460"),
			ageFactorRow(60, "2.000"),
			ageFactorRow(62, "2.272"),
		},
		MaxFactor:   decimal.RequireFromString("2.418"),
		Description: "Classic members hired before 2013, miscellaneous 2% at 60",
	},
	{
		ID:         domain.FormulaPEPRA2At62,
		Name:       "PEPRA 2% at 62",
		MinimumAge: 52,
		Table: domain.AgeFactorTable{
			ageFactorRow(52, "1.000"),
			ageFactorRow(55, "1.300"),
			ageFactorRow(60, "1.800"),
			ageFactorRow(62, "2.000"),
			ageFactorRow(65, "2.300"),
			ageFactorRow(66, "2.400"),
		},
		MaxFactor:   decimal.RequireFromString("2.500"),
		Description: "New members hired on or after January 1, 2013",
	},
}

// CalPERSFormulas returns the formula catalogue in display order
func CalPERSFormulas() []CalPERSFormulaDefinition {
	out := make([]CalPERSFormulaDefinition, len(calPERSFormulas))
	copy(out, calPERSFormulas)
	return out
}

// LookupCalPERSFormula finds a formula by identifier
func LookupCalPERSFormula(id domain.CalPERSFormula) (CalPERSFormulaDefinition, bool) {
	for _, f := range calPERSFormulas {
		if f.ID == id {
			return f, true
		}
	}
	return CalPERSFormulaDefinition{}, false
}

// calPERSSurvivorOptions maps survivor share to the flat reduction applied to
// the unreduced monthly benefit
var calPERSSurvivorOptions = []struct {
	survivorPct  int
	reductionPct decimal.Decimal
}{
	{100, decimal.NewFromInt(10)},
	{75, decimal.NewFromFloat(7.5)},
	{50, decimal.NewFromInt(5)},
}

// CalculateCalPERS computes a CalPERS service retirement benefit. A retirement
// age below the formula's minimum is rejected, never clamped.
func CalculateCalPERS(input domain.CalPERSInput) (*domain.CalPERSResult, error) {
	formula, ok := LookupCalPERSFormula(input.Formula)
	if !ok {
		return nil, &ValidationError{
			Field:   "formula",
			Message: fmt.Sprintf("%q is not a CalPERS formula", input.Formula),
			Cause:   ErrUnknownFormula,
		}
	}
	if input.RetirementAge < formula.MinimumAge {
		return nil, &ValidationError{
			Field:   "retirement_age",
			Message: fmt.Sprintf("%s requires retirement age %d or later, got %d", formula.Name, formula.MinimumAge, input.RetirementAge),
			Cause:   ErrBelowMinimumAge,
		}
	}

	ageFactor := Interpolate(formula.Table, input.RetirementAge, formula.MaxFactor)
	service := maxDecimal(decimalZero, input.ServiceYears)
	annual := pctToRate(ageFactor).Mul(service).Mul(input.FinalCompensation)
	monthly := annual.Div(decimalTwelve)

	result := &domain.CalPERSResult{
		Formula:        formula.ID,
		AgeFactor:      ageFactor,
		AnnualBenefit:  annual,
		MonthlyBenefit: monthly,
	}
	if input.FinalCompensation.GreaterThan(decimalZero) {
		result.ReplacementPct = annual.Div(input.FinalCompensation).Mul(decimalHundred)
	}

	for _, opt := range calPERSSurvivorOptions {
		result.SurvivorVariants = append(result.SurvivorVariants, domain.SurvivorVariant{
			SurvivorPct:  opt.survivorPct,
			ReductionPct: opt.reductionPct,
			Monthly:      reduceByPct(monthly, opt.reductionPct),
		})
	}

	for _, years := range COLAHorizons {
		projected := compound(annual, calPERSCOLARate, years)
		result.COLAProjections = append(result.COLAProjections, domain.COLAProjection{
			Years:   years,
			Annual:  projected,
			Monthly: projected.Div(decimalTwelve),
		})
	}

	return result, nil
}
