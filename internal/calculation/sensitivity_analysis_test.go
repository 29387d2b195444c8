package calculation

import (
	"context"
	"testing"

	"github.com/goldira/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calpersScenario() domain.Scenario {
	return domain.Scenario{
		Name:       "calpers",
		Calculator: domain.CalculatorCalPERS,
		CalPERS: &domain.CalPERSInput{
			Formula:           domain.FormulaClassic2At55,
			FinalCompensation: decimal.NewFromInt(100000),
			ServiceYears:      decimal.NewFromInt(25),
			RetirementAge:     55,
		},
	}
}

func TestSensitivityAnalyzer_SweepRetirementAge(t *testing.T) {
	sa := NewSensitivityAnalyzer(nil)
	scenario := calpersScenario()

	analysis, err := sa.Sweep(context.Background(), domain.Assumptions{}, scenario, domain.SensitivityParameter{
		Name:     "retirement_age",
		MinValue: decimal.NewFromInt(48),
		MaxValue: decimal.NewFromInt(56),
		Steps:    9,
	})
	require.NoError(t, err)
	require.Len(t, analysis.Points, 9)
	assert.Equal(t, "monthly_benefit", analysis.MetricName)

	// ages below the formula minimum are recorded, not computed
	assert.NotEmpty(t, analysis.Points[0].Error)
	assert.NotEmpty(t, analysis.Points[1].Error)
	assert.Empty(t, analysis.Points[2].Error)

	for i := 3; i < len(analysis.Points); i++ {
		assert.True(t, analysis.Points[i].Metric.GreaterThan(analysis.Points[i-1].Metric), "benefit should grow with age at point %d", i)
	}

	// 2.052% at 56 vs 1.426% at 50
	assert.InDelta(t, 4275.00, analysis.MaxMetric.InexactFloat64(), 0.01)
	assert.InDelta(t, 2970.83, analysis.MinMetric.InexactFloat64(), 0.01)
	assert.InDelta(t, 1304.17, analysis.Spread.InexactFloat64(), 0.02)

	assert.Equal(t, 55, scenario.CalPERS.RetirementAge, "base scenario must not be mutated")
}

func TestSensitivityAnalyzer_SweepBaristaSkipsUnreachable(t *testing.T) {
	sa := NewSensitivityAnalyzer(NewCalculationEngine())
	scenario := domain.Scenario{
		Name:        "barista",
		Calculator:  domain.CalculatorBaristaFIRE,
		BaristaFIRE: &domain.BaristaFIREInput{CurrentSavings: decimal.NewFromInt(400000), MonthlyExpenses: decimal.NewFromInt(4000), PartTimeIncome: decimal.NewFromInt(2000), ExpectedReturnPct: decimal.NewFromInt(7), WithdrawalRatePct: decimal.NewFromInt(4)},
	}

	analysis, err := sa.Sweep(context.Background(), domain.Assumptions{}, scenario, domain.SensitivityParameter{
		Name:     "expected_return_pct",
		MinValue: decimal.NewFromInt(1),
		MaxValue: decimal.NewFromInt(7),
		Steps:    2,
	})
	require.NoError(t, err)
	require.Len(t, analysis.Points, 2)
	assert.Equal(t, domain.OutcomeNotReachable, analysis.Points[0].Outcome)
	assert.Equal(t, domain.OutcomeReached, analysis.Points[1].Outcome)
	assert.True(t, analysis.MinMetric.Equal(decimal.NewFromInt(23)), "min %s", analysis.MinMetric)
	assert.True(t, analysis.Spread.IsZero())
}

func TestSensitivityAnalyzer_RejectsBadParameters(t *testing.T) {
	sa := NewSensitivityAnalyzer(nil)

	tests := []struct {
		name  string
		param domain.SensitivityParameter
	}{
		{"unknown parameter", domain.SensitivityParameter{Name: "lottery_odds", Steps: 3}},
		{"parameter from another calculator", domain.SensitivityParameter{Name: "part_time_income", Steps: 3}},
		{"too many steps", domain.SensitivityParameter{Name: "service_years", Steps: MaxSweepSteps + 1}},
		{"inverted range", domain.SensitivityParameter{Name: "service_years", MinValue: decimal.NewFromInt(30), MaxValue: decimal.NewFromInt(10), Steps: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sa.Sweep(context.Background(), domain.Assumptions{}, calpersScenario(), tt.param)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestSensitivityAnalyzer_GenerateParameterValues(t *testing.T) {
	sa := NewSensitivityAnalyzer(nil)

	values := sa.generateParameterValues(domain.SensitivityParameter{
		MinValue: decimal.NewFromInt(3),
		MaxValue: decimal.NewFromInt(5),
		Steps:    3,
	})
	require.Len(t, values, 3)
	assert.True(t, values[0].Equal(decimal.NewFromInt(3)))
	assert.True(t, values[1].Equal(decimal.NewFromInt(4)))
	assert.True(t, values[2].Equal(decimal.NewFromInt(5)))

	single := sa.generateParameterValues(domain.SensitivityParameter{MinValue: decimal.NewFromInt(7), Steps: 1})
	require.Len(t, single, 1)
	assert.True(t, single[0].Equal(decimal.NewFromInt(7)))
}

func TestSweepParameterNames(t *testing.T) {
	names := SweepParameterNames()
	assert.Contains(t, names, "expected_return_pct")
	assert.Contains(t, names, "target_age")
	assert.IsIncreasing(t, names)
}
