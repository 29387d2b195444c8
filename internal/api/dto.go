package api

import (
	"github.com/goldira/retirecalc/internal/calculation"
	"github.com/goldira/retirecalc/internal/domain"
	"github.com/goldira/retirecalc/internal/output"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Field   string `json:"field,omitempty"`
}

// CalculationResponse pairs a raw calculator result with its display report.
type CalculationResponse struct {
	Result interface{}   `json:"result"`
	Report output.Report `json:"report"`
}

// SweepRequest asks for one scenario to be recalculated across a parameter range.
type SweepRequest struct {
	Scenario    domain.Scenario             `json:"scenario"`
	Parameter   domain.SensitivityParameter `json:"parameter"`
	Assumptions domain.Assumptions          `json:"assumptions"`
}

// SweepResponse is the result of a sweep.
type SweepResponse struct {
	Analysis *domain.SensitivityAnalysis `json:"analysis"`
	Report   output.Report               `json:"report"`
}

// FormulasResponse lists the CalPERS formula catalogue.
type FormulasResponse struct {
	Formulas []calculation.CalPERSFormulaDefinition `json:"formulas"`
}

// HealthResponse is returned by the liveness probe.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
