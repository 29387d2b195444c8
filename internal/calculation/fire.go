package calculation

import (
	"fmt"

	"github.com/goldira/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxSimulationYears caps every forward savings simulation. A target not met
// within this many years is reported as not reachable.
const MaxSimulationYears = 50

// MaxProjectionYears bounds the Fat FIRE horizon from current to target age.
// Longer horizons are rejected rather than projected.
const MaxProjectionYears = 100

// projection is the outcome of a bounded forward simulation
type projection struct {
	Outcome   domain.ProjectionOutcome
	Years     int // years until the target was met; 0 unless Outcome is reached
	Simulated int // steps actually run
	Balance   decimal.Decimal
}

// projectUntil applies step once per year to start until the balance reaches
// target or MaxSimulationYears steps have run.
func projectUntil(start, target decimal.Decimal, step func(decimal.Decimal) decimal.Decimal) projection {
	if start.GreaterThanOrEqual(target) {
		return projection{Outcome: domain.OutcomeAlreadyThere, Balance: start}
	}

	balance := start
	for year := 1; year <= MaxSimulationYears; year++ {
		balance = step(balance)
		if balance.GreaterThanOrEqual(target) {
			return projection{Outcome: domain.OutcomeReached, Years: year, Simulated: year, Balance: balance}
		}
	}
	return projection{Outcome: domain.OutcomeNotReachable, Simulated: MaxSimulationYears, Balance: balance}
}

// targetForIncome returns the portfolio that supports annual income at the
// given withdrawal rate (percent)
func targetForIncome(annual, withdrawalRatePct decimal.Decimal) decimal.Decimal {
	return annual.Mul(decimalHundred).Div(withdrawalRatePct)
}

func validateWithdrawalRate(pct decimal.Decimal) error {
	if pct.LessThanOrEqual(decimalZero) {
		return &ValidationError{Field: "withdrawal_rate_pct", Message: "must be greater than zero, got " + pct.String(), Cause: ErrInvalidInput}
	}
	return nil
}

// CalculateBaristaFIRE computes the reduced target that part-time income makes
// possible and simulates years to reach it.
func CalculateBaristaFIRE(input domain.BaristaFIREInput) (*domain.BaristaFIREResult, error) {
	if err := validateWithdrawalRate(input.WithdrawalRatePct); err != nil {
		return nil, err
	}

	monthlyGap := maxDecimal(decimalZero, input.MonthlyExpenses.Sub(input.PartTimeIncome))
	annualGap := monthlyGap.Mul(decimalTwelve)
	annualExpenses := input.MonthlyExpenses.Mul(decimalTwelve)

	result := &domain.BaristaFIREResult{
		MonthlyGap:        monthlyGap,
		AnnualGap:         annualGap,
		AnnualExpenses:    annualExpenses,
		FullFIRETarget:    targetForIncome(annualExpenses, input.WithdrawalRatePct),
		BaristaFIRETarget: targetForIncome(annualGap, input.WithdrawalRatePct),
	}
	result.Shortfall = maxDecimal(decimalZero, result.BaristaFIRETarget.Sub(input.CurrentSavings))
	result.ProgressPct = progressPct(input.CurrentSavings, result.BaristaFIRETarget)
	result.AlreadyThere = input.CurrentSavings.GreaterThanOrEqual(result.BaristaFIRETarget)

	growth := onePlus(pctToRate(input.ExpectedReturnPct))
	sim := projectUntil(input.CurrentSavings, result.BaristaFIRETarget, func(balance decimal.Decimal) decimal.Decimal {
		return balance.Mul(growth).Sub(annualGap)
	})
	result.Outcome = sim.Outcome
	result.YearsToTarget = sim.Years
	result.SimulatedYears = sim.Simulated
	result.FinalBalance = sim.Balance

	return result, nil
}

// CalculateFatFIRE computes the Fat FIRE target, projects savings to the
// target age and, on a shortfall, the level contribution that closes it.
func CalculateFatFIRE(input domain.FatFIREInput) (*domain.FatFIREResult, error) {
	if err := validateWithdrawalRate(input.WithdrawalRatePct); err != nil {
		return nil, err
	}

	rate := pctToRate(input.ExpectedReturnPct)
	growth := onePlus(rate)
	annualSavings := input.CurrentIncome.Mul(input.SavingsRatePct).Div(decimalHundred)
	years := input.TargetAge - input.CurrentAge
	if years < 0 {
		years = 0
	}
	if input.CurrentAge < 0 {
		return nil, &ValidationError{Field: "current_age", Message: fmt.Sprintf("cannot be negative, got %d", input.CurrentAge), Cause: ErrInvalidInput}
	}
	if years > MaxProjectionYears {
		return nil, &ValidationError{
			Field:   "target_age",
			Message: fmt.Sprintf("%d years after current age exceeds the %d year projection limit", years, MaxProjectionYears),
			Cause:   ErrInvalidInput,
		}
	}

	result := &domain.FatFIREResult{
		Target:        targetForIncome(input.AnnualSpending, input.WithdrawalRatePct),
		AnnualSavings: annualSavings,
		YearsToTarget: years,
		Projection:    make([]domain.ProjectionYear, 0, years),
	}

	// Contribution lands before the year's growth
	balance := input.CurrentSavings
	for i := 0; i < years; i++ {
		funded := balance.Add(annualSavings)
		next := funded.Mul(growth)
		result.Projection = append(result.Projection, domain.ProjectionYear{
			Age:          input.CurrentAge + i + 1,
			Contribution: annualSavings,
			Growth:       next.Sub(funded),
			Balance:      next,
		})
		balance = next
	}
	result.ProjectedBalance = balance
	result.OnTrack = balance.GreaterThanOrEqual(result.Target)
	result.Shortfall = maxDecimal(decimalZero, result.Target.Sub(balance))
	result.ProgressPct = progressPct(input.CurrentSavings, result.Target)

	if !result.OnTrack {
		result.RequiredAnnualSavings = RequiredAnnualContribution(result.Target, input.CurrentSavings, rate, years)
		result.RequiredMonthlySavings = result.RequiredAnnualSavings.Div(decimalTwelve)
	}

	sim := projectUntil(input.CurrentSavings, result.Target, func(b decimal.Decimal) decimal.Decimal {
		return b.Add(annualSavings).Mul(growth)
	})
	result.FIOutcome = sim.Outcome
	if sim.Outcome.Reachable() {
		result.FIAge = input.CurrentAge + sim.Years
	}

	return result, nil
}

// RequiredAnnualContribution solves the future value of an ordinary annuity
// for the level year-end payment that grows present to target over years at
// rate. Zero rate degrades to straight division; zero years asks for the whole
// gap now. The result is never negative.
func RequiredAnnualContribution(target, present, rate decimal.Decimal, years int) decimal.Decimal {
	gap := target.Sub(present)
	if years <= 0 {
		return maxDecimal(decimalZero, gap)
	}
	n := decimal.NewFromInt(int64(years))
	if rate.IsZero() {
		return maxDecimal(decimalZero, gap.Div(n))
	}

	growth := onePlus(rate).Pow(n)
	annuityFactor := growth.Sub(decimalOne).Div(rate)
	if annuityFactor.IsZero() {
		return maxDecimal(decimalZero, gap.Div(n))
	}
	return maxDecimal(decimalZero, target.Sub(present.Mul(growth)).Div(annuityFactor))
}
