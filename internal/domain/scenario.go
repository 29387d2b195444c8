package domain

import (
	"github.com/shopspring/decimal"
)

// CalculatorKind names one of the calculators
type CalculatorKind string

const (
	CalculatorFERS        CalculatorKind = "fers"
	CalculatorCalPERS     CalculatorKind = "calpers"
	CalculatorBaristaFIRE CalculatorKind = "barista_fire"
	CalculatorFatFIRE     CalculatorKind = "fat_fire"
)

// Scenario is one named calculator run. Exactly one input matching
// Calculator must be set.
type Scenario struct {
	Name       string         `yaml:"name" json:"name"`
	Calculator CalculatorKind `yaml:"calculator" json:"calculator"`

	FERS        *FERSInput        `yaml:"fers,omitempty" json:"fers,omitempty"`
	CalPERS     *CalPERSInput     `yaml:"calpers,omitempty" json:"calpers,omitempty"`
	BaristaFIRE *BaristaFIREInput `yaml:"barista_fire,omitempty" json:"baristaFire,omitempty"`
	FatFIRE     *FatFIREInput     `yaml:"fat_fire,omitempty" json:"fatFire,omitempty"`
}

// Assumptions are defaults applied to scenarios that leave a field unset
type Assumptions struct {
	FERSInflationRatePct *decimal.Decimal `yaml:"fers_inflation_rate_pct,omitempty" json:"fersInflationRatePct,omitempty"`
}

// Configuration is the contents of a scenario file
type Configuration struct {
	Assumptions Assumptions `yaml:"assumptions" json:"assumptions"`
	Scenarios   []Scenario  `yaml:"scenarios" json:"scenarios"`
}

// ScenarioResult holds the output of one scenario. Validation failures
// are recorded in Error rather than aborting a batch.
type ScenarioResult struct {
	Name       string         `json:"name"`
	Calculator CalculatorKind `json:"calculator"`

	FERS        *FERSResult        `json:"fers,omitempty"`
	CalPERS     *CalPERSResult     `json:"calpers,omitempty"`
	BaristaFIRE *BaristaFIREResult `json:"baristaFire,omitempty"`
	FatFIRE     *FatFIREResult     `json:"fatFire,omitempty"`

	Error string `json:"error,omitempty"`
}

// Failed reports whether the scenario produced no result
func (r ScenarioResult) Failed() bool {
	return r.Error != ""
}

// RunResults is the output of a whole configuration
type RunResults struct {
	Results []ScenarioResult `json:"results"`
}
