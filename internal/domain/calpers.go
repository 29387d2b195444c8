package domain

import (
	"github.com/shopspring/decimal"
)

// CalPERSFormula identifies a CalPERS benefit formula
type CalPERSFormula string

const (
	FormulaClassic2At55 CalPERSFormula = "classic_2_at_55"
	FormulaClassic2At60 CalPERSFormula = "classic_2_at_60"
	FormulaPEPRA2At62   CalPERSFormula = "pepra_2_at_62"
)

// CalPERSInput holds the form fields of the CalPERS pension calculator
type CalPERSInput struct {
	Formula           CalPERSFormula  `yaml:"formula" json:"formula"`
	FinalCompensation decimal.Decimal `yaml:"final_compensation" json:"finalCompensation"` // annual
	ServiceYears      decimal.Decimal `yaml:"service_years" json:"serviceYears"`
	RetirementAge     int             `yaml:"retirement_age" json:"retirementAge"`
}

// SurvivorVariant is the member's monthly benefit under a survivor option
type SurvivorVariant struct {
	SurvivorPct  int             `json:"survivorPct"` // share continued to the beneficiary
	ReductionPct decimal.Decimal `json:"reductionPct"`
	Monthly      decimal.Decimal `json:"monthly"`
}

// CalPERSResult is the output of the CalPERS pension calculator
type CalPERSResult struct {
	Formula          CalPERSFormula    `json:"formula"`
	AgeFactor        decimal.Decimal   `json:"ageFactor"` // percent per year of service
	AnnualBenefit    decimal.Decimal   `json:"annualBenefit"`
	MonthlyBenefit   decimal.Decimal   `json:"monthlyBenefit"`
	ReplacementPct   decimal.Decimal   `json:"replacementPct"`
	SurvivorVariants []SurvivorVariant `json:"survivorVariants"`
	COLAProjections  []COLAProjection  `json:"colaProjections"`
}
