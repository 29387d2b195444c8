package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/goldira/retirecalc/internal/calculation"
	"github.com/goldira/retirecalc/internal/config"
	"github.com/goldira/retirecalc/internal/domain"
	"github.com/goldira/retirecalc/internal/output"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Handler serves the calculator endpoints.
type Handler struct {
	engine      *calculation.CalculationEngine
	analyzer    *calculation.SensitivityAnalyzer
	parser      *config.InputParser
	logger      *zap.Logger
	assumptions domain.Assumptions
	version     string
}

// NewHandler creates a handler. A nil logger discards output.
func NewHandler(engine *calculation.CalculationEngine, logger *zap.Logger) *Handler {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		engine:   engine,
		analyzer: calculation.NewSensitivityAnalyzer(engine),
		parser:   config.NewInputParser(),
		logger:   logger,
	}
}

// WithAssumptions sets defaults applied to every request.
func (h *Handler) WithAssumptions(a domain.Assumptions) *Handler {
	h.assumptions = a
	return h
}

// WithVersion sets the version reported by the health check.
func (h *Handler) WithVersion(v string) *Handler {
	h.version = v
	return h
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: h.version})
}

// ListCalPERSFormulas returns the formula catalogue.
func (h *Handler) ListCalPERSFormulas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, FormulasResponse{Formulas: calculation.CalPERSFormulas()})
}

// CalculateFERS computes a FERS annuity.
func (h *Handler) CalculateFERS(w http.ResponseWriter, r *http.Request) {
	var in domain.FERSInput
	if !decodeBody(w, r, &in) {
		return
	}
	h.run(w, r, domain.Scenario{Name: "FERS annuity", Calculator: domain.CalculatorFERS, FERS: &in})
}

// CalculateCalPERS computes a CalPERS pension.
func (h *Handler) CalculateCalPERS(w http.ResponseWriter, r *http.Request) {
	var in domain.CalPERSInput
	if !decodeBody(w, r, &in) {
		return
	}
	h.run(w, r, domain.Scenario{Name: "CalPERS pension", Calculator: domain.CalculatorCalPERS, CalPERS: &in})
}

// CalculateBaristaFIRE computes the Barista FIRE number and timeline.
func (h *Handler) CalculateBaristaFIRE(w http.ResponseWriter, r *http.Request) {
	var in domain.BaristaFIREInput
	if !decodeBody(w, r, &in) {
		return
	}
	h.run(w, r, domain.Scenario{Name: "Barista FIRE", Calculator: domain.CalculatorBaristaFIRE, BaristaFIRE: &in})
}

// CalculateFatFIRE computes the Fat FIRE number and projection.
func (h *Handler) CalculateFatFIRE(w http.ResponseWriter, r *http.Request) {
	var in domain.FatFIREInput
	if !decodeBody(w, r, &in) {
		return
	}
	h.run(w, r, domain.Scenario{Name: "Fat FIRE", Calculator: domain.CalculatorFatFIRE, FatFIRE: &in})
}

// Sweep runs a one-parameter sensitivity sweep.
func (h *Handler) Sweep(w http.ResponseWriter, r *http.Request) {
	var req SweepRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Scenario.Name == "" {
		req.Scenario.Name = string(req.Scenario.Calculator)
	}
	if err := h.parser.ValidateScenario(&req.Scenario); err != nil {
		writeValidationError(w, err)
		return
	}
	assumptions := req.Assumptions
	if assumptions.FERSInflationRatePct == nil {
		assumptions.FERSInflationRatePct = h.assumptions.FERSInflationRatePct
	}

	analysis, err := h.analyzer.Sweep(r.Context(), assumptions, req.Scenario, req.Parameter)
	if err != nil {
		h.writeCalculationError(w, err)
		return
	}

	report := output.BuildSensitivityReport(analysis)
	report.Data = nil
	writeJSON(w, http.StatusOK, SweepResponse{Analysis: analysis, Report: report})
}

// run validates the request input the same way scenario files are validated,
// then calculates it. Money in the raw result is rounded to cents.
func (h *Handler) run(w http.ResponseWriter, r *http.Request, scenario domain.Scenario) {
	if err := h.parser.ValidateScenario(&scenario); err != nil {
		writeValidationError(w, err)
		return
	}

	result, err := h.engine.RunScenario(r.Context(), h.assumptions, scenario)
	if err != nil {
		h.writeCalculationError(w, err)
		return
	}

	report := output.BuildReport(roundResult(*result))
	resp := CalculationResponse{Result: report.Data, Report: report}
	resp.Report.Data = nil
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeCalculationError(w http.ResponseWriter, err error) {
	if calculation.IsValidationError(err) {
		writeValidationError(w, err)
		return
	}
	h.logger.Error("calculation failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "calculation failed", err)
}

func writeValidationError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Error: "validation failed", Details: err.Error()}
	var ve *calculation.ValidationError
	if errors.As(err, &ve) {
		resp.Field = ve.Field
	}
	writeJSON(w, http.StatusUnprocessableEntity, resp)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return false
	}
	if dec.More() {
		writeError(w, http.StatusBadRequest, "invalid request body", fmt.Errorf("unexpected data after JSON object"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
