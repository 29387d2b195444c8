package domain

import (
	"github.com/shopspring/decimal"
)

// SensitivityParameter represents a parameter to sweep in sensitivity analysis
type SensitivityParameter struct {
	Name     string          `yaml:"name" json:"name"`
	MinValue decimal.Decimal `yaml:"min_value" json:"minValue"`
	MaxValue decimal.Decimal `yaml:"max_value" json:"maxValue"`
	Steps    int             `yaml:"steps" json:"steps"`
}

// SensitivityPoint is the headline metric for one swept value
type SensitivityPoint struct {
	Value   decimal.Decimal   `json:"value"`
	Metric  decimal.Decimal   `json:"metric"`
	Outcome ProjectionOutcome `json:"outcome,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// SensitivityAnalysis is the result of sweeping one parameter
type SensitivityAnalysis struct {
	ScenarioName string               `json:"scenarioName"`
	Calculator   CalculatorKind       `json:"calculator"`
	Parameter    SensitivityParameter `json:"parameter"`
	MetricName   string               `json:"metricName"`
	Points       []SensitivityPoint   `json:"points"`

	MinMetric decimal.Decimal `json:"minMetric"`
	MaxMetric decimal.Decimal `json:"maxMetric"`
	Spread    decimal.Decimal `json:"spread"`
}
