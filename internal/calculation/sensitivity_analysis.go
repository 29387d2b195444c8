package calculation

import (
	"context"
	"fmt"
	"sort"

	"github.com/goldira/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxSweepSteps bounds the number of points in a single sweep
const MaxSweepSteps = 200

// sweepTarget mutates one field of a scenario input to a swept value
type sweepTarget func(s *domain.Scenario, value decimal.Decimal)

// sweepParameters lists, per parameter name, the calculators that accept it
var sweepParameters = map[string]map[domain.CalculatorKind]sweepTarget{
	"expected_return_pct": {
		domain.CalculatorBaristaFIRE: func(s *domain.Scenario, v decimal.Decimal) { s.BaristaFIRE.ExpectedReturnPct = v },
		domain.CalculatorFatFIRE:     func(s *domain.Scenario, v decimal.Decimal) { s.FatFIRE.ExpectedReturnPct = v },
	},
	"withdrawal_rate_pct": {
		domain.CalculatorBaristaFIRE: func(s *domain.Scenario, v decimal.Decimal) { s.BaristaFIRE.WithdrawalRatePct = v },
		domain.CalculatorFatFIRE:     func(s *domain.Scenario, v decimal.Decimal) { s.FatFIRE.WithdrawalRatePct = v },
	},
	"savings_rate_pct": {
		domain.CalculatorFatFIRE: func(s *domain.Scenario, v decimal.Decimal) { s.FatFIRE.SavingsRatePct = v },
	},
	"retirement_age": {
		domain.CalculatorFERS:    func(s *domain.Scenario, v decimal.Decimal) { s.FERS.CurrentAge = int(v.IntPart()) },
		domain.CalculatorCalPERS: func(s *domain.Scenario, v decimal.Decimal) { s.CalPERS.RetirementAge = int(v.IntPart()) },
	},
	"service_years": {
		domain.CalculatorFERS:    func(s *domain.Scenario, v decimal.Decimal) { s.FERS.YearsOfService = v },
		domain.CalculatorCalPERS: func(s *domain.Scenario, v decimal.Decimal) { s.CalPERS.ServiceYears = v },
	},
	"high_three_salary": {
		domain.CalculatorFERS: func(s *domain.Scenario, v decimal.Decimal) { s.FERS.HighThreeSalary = v },
	},
	"final_compensation": {
		domain.CalculatorCalPERS: func(s *domain.Scenario, v decimal.Decimal) { s.CalPERS.FinalCompensation = v },
	},
	"part_time_income": {
		domain.CalculatorBaristaFIRE: func(s *domain.Scenario, v decimal.Decimal) { s.BaristaFIRE.PartTimeIncome = v },
	},
	"target_age": {
		domain.CalculatorFatFIRE: func(s *domain.Scenario, v decimal.Decimal) { s.FatFIRE.TargetAge = int(v.IntPart()) },
	},
}

// SweepParameterNames returns the parameters a sweep accepts, sorted
func SweepParameterNames() []string {
	names := make([]string, 0, len(sweepParameters))
	for name := range sweepParameters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SensitivityAnalyzer performs parameter sweep analysis
type SensitivityAnalyzer struct {
	calculationEngine *CalculationEngine
}

// NewSensitivityAnalyzer creates a new sensitivity analyzer backed by engine.
// A nil engine gets a fresh one.
func NewSensitivityAnalyzer(engine *CalculationEngine) *SensitivityAnalyzer {
	if engine == nil {
		engine = NewCalculationEngine()
	}
	return &SensitivityAnalyzer{calculationEngine: engine}
}

// Sweep recalculates scenario once per value of parameter between its min and
// max and reports the calculator's headline metric at each point. Points the
// calculator rejects carry the error instead of a metric.
func (sa *SensitivityAnalyzer) Sweep(ctx context.Context, assumptions domain.Assumptions, scenario domain.Scenario, parameter domain.SensitivityParameter) (*domain.SensitivityAnalysis, error) {
	targets, ok := sweepParameters[parameter.Name]
	if !ok {
		return nil, &ValidationError{Field: "parameter", Message: fmt.Sprintf("unknown sweep parameter %q", parameter.Name), Cause: ErrInvalidInput}
	}
	apply, ok := targets[scenario.Calculator]
	if !ok {
		return nil, &ValidationError{
			Field:   "parameter",
			Message: fmt.Sprintf("%s calculator has no %q parameter", scenario.Calculator, parameter.Name),
			Cause:   ErrInvalidInput,
		}
	}
	if parameter.Steps > MaxSweepSteps {
		return nil, &ValidationError{Field: "steps", Message: fmt.Sprintf("at most %d steps, got %d", MaxSweepSteps, parameter.Steps), Cause: ErrInvalidInput}
	}
	if parameter.MaxValue.LessThan(parameter.MinValue) {
		return nil, &ValidationError{Field: "max_value", Message: "must not be below min_value", Cause: ErrInvalidInput}
	}

	analysis := &domain.SensitivityAnalysis{
		ScenarioName: scenario.Name,
		Calculator:   scenario.Calculator,
		Parameter:    parameter,
		MetricName:   headlineMetricName(scenario.Calculator),
	}

	first := true
	for _, value := range sa.generateParameterValues(parameter) {
		modified, err := cloneScenario(scenario)
		if err != nil {
			return nil, err
		}
		apply(&modified, value)

		point := domain.SensitivityPoint{Value: value}
		result, err := sa.calculationEngine.RunScenario(ctx, assumptions, modified)
		if err != nil {
			if !IsValidationError(err) {
				return nil, fmt.Errorf("sweep %s=%s: %w", parameter.Name, value, err)
			}
			point.Error = err.Error()
			analysis.Points = append(analysis.Points, point)
			continue
		}

		point.Metric, point.Outcome = headlineMetric(result)
		analysis.Points = append(analysis.Points, point)
		if result.BaristaFIRE != nil && point.Outcome == domain.OutcomeNotReachable {
			// no year count to rank
			continue
		}

		if first || point.Metric.LessThan(analysis.MinMetric) {
			analysis.MinMetric = point.Metric
		}
		if first || point.Metric.GreaterThan(analysis.MaxMetric) {
			analysis.MaxMetric = point.Metric
		}
		first = false
	}
	analysis.Spread = analysis.MaxMetric.Sub(analysis.MinMetric)

	return analysis, nil
}

// generateParameterValues creates evenly spaced values from min to max
func (sa *SensitivityAnalyzer) generateParameterValues(param domain.SensitivityParameter) []decimal.Decimal {
	if param.Steps <= 1 {
		return []decimal.Decimal{param.MinValue}
	}

	values := make([]decimal.Decimal, 0, param.Steps)
	stepSize := param.MaxValue.Sub(param.MinValue).Div(decimal.NewFromInt(int64(param.Steps - 1)))
	for i := 0; i < param.Steps; i++ {
		values = append(values, param.MinValue.Add(stepSize.Mul(decimal.NewFromInt(int64(i)))))
	}
	// Pin the last point so rounding in stepSize never overshoots
	values[len(values)-1] = param.MaxValue

	return values
}

// cloneScenario copies the input record so each sweep point starts clean
func cloneScenario(s domain.Scenario) (domain.Scenario, error) {
	out := s
	switch s.Calculator {
	case domain.CalculatorFERS:
		if s.FERS == nil {
			return out, missingInput(s)
		}
		in := *s.FERS
		out.FERS = &in
	case domain.CalculatorCalPERS:
		if s.CalPERS == nil {
			return out, missingInput(s)
		}
		in := *s.CalPERS
		out.CalPERS = &in
	case domain.CalculatorBaristaFIRE:
		if s.BaristaFIRE == nil {
			return out, missingInput(s)
		}
		in := *s.BaristaFIRE
		out.BaristaFIRE = &in
	case domain.CalculatorFatFIRE:
		if s.FatFIRE == nil {
			return out, missingInput(s)
		}
		in := *s.FatFIRE
		out.FatFIRE = &in
	}
	return out, nil
}

func headlineMetricName(kind domain.CalculatorKind) string {
	switch kind {
	case domain.CalculatorFERS:
		return "annual_annuity"
	case domain.CalculatorCalPERS:
		return "monthly_benefit"
	case domain.CalculatorBaristaFIRE:
		return "years_to_target"
	case domain.CalculatorFatFIRE:
		return "projected_balance"
	}
	return ""
}

func headlineMetric(result *domain.ScenarioResult) (decimal.Decimal, domain.ProjectionOutcome) {
	switch {
	case result.FERS != nil:
		return result.FERS.AnnualAnnuity, ""
	case result.CalPERS != nil:
		return result.CalPERS.MonthlyBenefit, ""
	case result.BaristaFIRE != nil:
		return decimal.NewFromInt(int64(result.BaristaFIRE.YearsToTarget)), result.BaristaFIRE.Outcome
	case result.FatFIRE != nil:
		return result.FatFIRE.ProjectedBalance, result.FatFIRE.FIOutcome
	}
	return decimalZero, ""
}
