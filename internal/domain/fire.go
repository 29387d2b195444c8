package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionOutcome classifies how a bounded forward simulation ended
type ProjectionOutcome string

const (
	OutcomeAlreadyThere ProjectionOutcome = "already_there"
	OutcomeReached      ProjectionOutcome = "reached"
	OutcomeNotReachable ProjectionOutcome = "not_reachable"
)

// Reachable reports whether the target was met, now or within the horizon.
func (o ProjectionOutcome) Reachable() bool {
	return o == OutcomeAlreadyThere || o == OutcomeReached
}

// BaristaFIREInput holds the form fields of the Barista FIRE calculator.
// Rates are percentages (7 means 7%).
type BaristaFIREInput struct {
	CurrentSavings    decimal.Decimal `yaml:"current_savings" json:"currentSavings"`
	MonthlyExpenses   decimal.Decimal `yaml:"monthly_expenses" json:"monthlyExpenses"`
	PartTimeIncome    decimal.Decimal `yaml:"part_time_income" json:"partTimeIncome"` // monthly
	ExpectedReturnPct decimal.Decimal `yaml:"expected_return_pct" json:"expectedReturnPct"`
	WithdrawalRatePct decimal.Decimal `yaml:"withdrawal_rate_pct" json:"withdrawalRatePct"`
}

// BaristaFIREResult is the output of the Barista FIRE calculator
type BaristaFIREResult struct {
	MonthlyGap     decimal.Decimal `json:"monthlyGap"`
	AnnualGap      decimal.Decimal `json:"annualGap"`
	AnnualExpenses decimal.Decimal `json:"annualExpenses"`

	FullFIRETarget    decimal.Decimal `json:"fullFireTarget"`
	BaristaFIRETarget decimal.Decimal `json:"baristaFireTarget"`
	Shortfall         decimal.Decimal `json:"shortfall"`

	ProgressPct  decimal.Decimal `json:"progressPct"`
	AlreadyThere bool            `json:"alreadyThere"`

	Outcome        ProjectionOutcome `json:"outcome"`
	YearsToTarget  int               `json:"yearsToTarget"`  // meaningful unless Outcome is not_reachable
	SimulatedYears int               `json:"simulatedYears"` // steps actually run
	FinalBalance   decimal.Decimal   `json:"finalBalance"`   // balance when the simulation stopped
}

// FatFIREInput holds the form fields of the Fat FIRE calculator.
// Rates are percentages.
type FatFIREInput struct {
	AnnualSpending    decimal.Decimal `yaml:"annual_spending" json:"annualSpending"`
	CurrentSavings    decimal.Decimal `yaml:"current_savings" json:"currentSavings"`
	CurrentAge        int             `yaml:"current_age" json:"currentAge"`
	TargetAge         int             `yaml:"target_age" json:"targetAge"`
	CurrentIncome     decimal.Decimal `yaml:"current_income" json:"currentIncome"`
	SavingsRatePct    decimal.Decimal `yaml:"savings_rate_pct" json:"savingsRatePct"`
	ExpectedReturnPct decimal.Decimal `yaml:"expected_return_pct" json:"expectedReturnPct"`
	WithdrawalRatePct decimal.Decimal `yaml:"withdrawal_rate_pct" json:"withdrawalRatePct"`
}

// ProjectionYear is one row of a year-by-year savings projection
type ProjectionYear struct {
	Age          int             `json:"age"`
	Contribution decimal.Decimal `json:"contribution"`
	Growth       decimal.Decimal `json:"growth"`
	Balance      decimal.Decimal `json:"balance"` // end of year
}

// FatFIREResult is the output of the Fat FIRE calculator
type FatFIREResult struct {
	Target        decimal.Decimal `json:"target"`
	AnnualSavings decimal.Decimal `json:"annualSavings"`
	YearsToTarget int             `json:"yearsToTargetAge"`

	ProjectedBalance decimal.Decimal  `json:"projectedBalance"` // at target age
	Projection       []ProjectionYear `json:"projection"`
	OnTrack          bool             `json:"onTrack"`
	Shortfall        decimal.Decimal  `json:"shortfall"`

	RequiredAnnualSavings  decimal.Decimal `json:"requiredAnnualSavings"`
	RequiredMonthlySavings decimal.Decimal `json:"requiredMonthlySavings"`

	ProgressPct decimal.Decimal   `json:"progressPct"`
	FIOutcome   ProjectionOutcome `json:"fiOutcome"`
	FIAge       int               `json:"fiAge"` // meaningful unless FIOutcome is not_reachable
}
