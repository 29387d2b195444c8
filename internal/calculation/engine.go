package calculation

import (
	"context"
	"fmt"

	"github.com/goldira/retirecalc/internal/domain"
)

// CalculationEngine dispatches scenarios to the benefit calculators
type CalculationEngine struct {
	logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{logger: NopLogger{}}
}

// SetLogger replaces the engine's logger. A nil logger discards output.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.logger = NopLogger{}
		return
	}
	ce.logger = l
}

// RunScenario evaluates a single scenario. Assumptions fill in fields the
// scenario leaves unset.
func (ce *CalculationEngine) RunScenario(ctx context.Context, assumptions domain.Assumptions, scenario domain.Scenario) (*domain.ScenarioResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ce.logger.Debugf("running scenario %q (%s)", scenario.Name, scenario.Calculator)
	result := &domain.ScenarioResult{Name: scenario.Name, Calculator: scenario.Calculator}

	var err error
	switch scenario.Calculator {
	case domain.CalculatorFERS:
		if scenario.FERS == nil {
			return nil, missingInput(scenario)
		}
		input := *scenario.FERS
		if input.InflationRatePct == nil && assumptions.FERSInflationRatePct != nil {
			rate := *assumptions.FERSInflationRatePct
			input.InflationRatePct = &rate
		}
		result.FERS, err = CalculateFERSAnnuity(input)
	case domain.CalculatorCalPERS:
		if scenario.CalPERS == nil {
			return nil, missingInput(scenario)
		}
		result.CalPERS, err = CalculateCalPERS(*scenario.CalPERS)
	case domain.CalculatorBaristaFIRE:
		if scenario.BaristaFIRE == nil {
			return nil, missingInput(scenario)
		}
		result.BaristaFIRE, err = CalculateBaristaFIRE(*scenario.BaristaFIRE)
		if err == nil && result.BaristaFIRE.Outcome == domain.OutcomeNotReachable {
			ce.logger.Warnf("scenario %q: Barista FIRE target not reachable within %d years", scenario.Name, MaxSimulationYears)
		}
	case domain.CalculatorFatFIRE:
		if scenario.FatFIRE == nil {
			return nil, missingInput(scenario)
		}
		result.FatFIRE, err = CalculateFatFIRE(*scenario.FatFIRE)
	default:
		return nil, &ValidationError{
			Field:   "calculator",
			Message: fmt.Sprintf("scenario %q: unknown calculator %q", scenario.Name, scenario.Calculator),
			Cause:   ErrInvalidInput,
		}
	}
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	return result, nil
}

// RunScenarios evaluates every scenario in a configuration. A scenario that
// fails validation is recorded on its result and the batch continues;
// cancellation stops the batch between scenarios.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, cfg *domain.Configuration) (*domain.RunResults, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is nil")
	}

	ce.logger.Infof("running %d scenarios", len(cfg.Scenarios))
	results := &domain.RunResults{Results: make([]domain.ScenarioResult, 0, len(cfg.Scenarios))}

	for _, scenario := range cfg.Scenarios {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := ce.RunScenario(ctx, cfg.Assumptions, scenario)
		if err != nil {
			if !IsValidationError(err) {
				return results, err
			}
			ce.logger.Warnf("scenario %q rejected: %v", scenario.Name, err)
			results.Results = append(results.Results, domain.ScenarioResult{
				Name:       scenario.Name,
				Calculator: scenario.Calculator,
				Error:      err.Error(),
			})
			continue
		}
		results.Results = append(results.Results, *result)
	}

	return results, nil
}

func missingInput(scenario domain.Scenario) error {
	return &ValidationError{
		Field:   string(scenario.Calculator),
		Message: fmt.Sprintf("scenario %q has no %s input", scenario.Name, scenario.Calculator),
		Cause:   ErrInvalidInput,
	}
}
