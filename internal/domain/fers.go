package domain

import (
	"github.com/shopspring/decimal"
)

// SurvivorOption is the FERS survivor annuity election
type SurvivorOption string

const (
	SurvivorNone    SurvivorOption = "none"
	SurvivorPartial SurvivorOption = "partial" // 25% survivor annuity
	SurvivorFull    SurvivorOption = "full"    // 50% survivor annuity
)

// Valid reports whether the option is one of the modelled elections.
func (s SurvivorOption) Valid() bool {
	switch s {
	case SurvivorNone, SurvivorPartial, SurvivorFull, "":
		return true
	}
	return false
}

// RetirementPath selects which FERS eligibility rule the annuity is computed under
type RetirementPath string

const (
	PathStandard  RetirementPath = "standard"
	PathMRAPlus10 RetirementPath = "mra_plus_10" // minimum retirement age with 10-19 years
)

// Valid reports whether the path is known.
func (p RetirementPath) Valid() bool {
	switch p {
	case PathStandard, PathMRAPlus10, "":
		return true
	}
	return false
}

// FERSInput holds the form fields of the FERS annuity calculator
type FERSInput struct {
	HighThreeSalary decimal.Decimal `yaml:"high_three_salary" json:"highThreeSalary"`
	YearsOfService  decimal.Decimal `yaml:"years_of_service" json:"yearsOfService"`
	CurrentAge      int             `yaml:"current_age" json:"currentAge"` // age at separation
	SurvivorOption  SurvivorOption  `yaml:"survivor_option" json:"survivorOption"`
	RetirementPath  RetirementPath  `yaml:"retirement_path" json:"retirementPath"`

	// Optional: estimated Social Security benefit at 62, used for the supplement
	SSBenefitAt62Monthly *decimal.Decimal `yaml:"ss_benefit_at_62_monthly,omitempty" json:"ssBenefitAt62Monthly,omitempty"`
	// Optional: inflation assumption (percent) for the COLA projection
	InflationRatePct *decimal.Decimal `yaml:"inflation_rate_pct,omitempty" json:"inflationRatePct,omitempty"`
}

// COLAProjection is a benefit compounded forward a number of years
type COLAProjection struct {
	Years   int             `json:"years"`
	Annual  decimal.Decimal `json:"annual"`
	Monthly decimal.Decimal `json:"monthly"`
}

// FERSResult is the output of the FERS annuity calculator
type FERSResult struct {
	Multiplier         decimal.Decimal `json:"multiplier"`
	EnhancedMultiplier bool            `json:"enhancedMultiplier"`

	BasicAnnuity      decimal.Decimal `json:"basicAnnuity"` // before any reduction
	EarlyReductionPct decimal.Decimal `json:"earlyReductionPct"`
	AgeReducedAnnuity decimal.Decimal `json:"ageReducedAnnuity"`

	SurvivorReductionPct decimal.Decimal `json:"survivorReductionPct"`
	SurvivorBenefit      decimal.Decimal `json:"survivorBenefit"` // annual, paid to the survivor

	AnnualAnnuity  decimal.Decimal `json:"annualAnnuity"`
	MonthlyAnnuity decimal.Decimal `json:"monthlyAnnuity"`

	AnnualSupplement  decimal.Decimal `json:"annualSupplement"`
	MonthlySupplement decimal.Decimal `json:"monthlySupplement"`

	COLAProjections []COLAProjection `json:"colaProjections"`
}
