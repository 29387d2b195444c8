package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goldira/retirecalc/internal/calculation"
	"github.com/goldira/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile_Valid(t *testing.T) {
	parser := NewInputParser()

	config, err := parser.LoadFromFile(filepath.Join("testdata", "valid.yaml"))
	require.NoError(t, err)
	require.Len(t, config.Scenarios, 7)

	require.NotNil(t, config.Assumptions.FERSInflationRatePct)
	assert.True(t, config.Assumptions.FERSInflationRatePct.Equal(decimal.NewFromFloat(2.5)))

	fers := config.Scenarios[0]
	assert.Equal(t, domain.CalculatorFERS, fers.Calculator)
	require.NotNil(t, fers.FERS)
	assert.True(t, fers.FERS.HighThreeSalary.Equal(decimal.NewFromInt(98000)))
	assert.Equal(t, domain.SurvivorFull, fers.FERS.SurvivorOption)

	supplement := config.Scenarios[2].FERS
	require.NotNil(t, supplement.SSBenefitAt62Monthly)
	assert.True(t, supplement.SSBenefitAt62Monthly.Equal(decimal.NewFromInt(1900)))

	pepra := config.Scenarios[4].CalPERS
	require.NotNil(t, pepra)
	assert.Equal(t, domain.FormulaPEPRA2At62, pepra.Formula)
	assert.True(t, pepra.ServiceYears.Equal(decimal.NewFromFloat(22.5)))

	fat := config.Scenarios[6].FatFIRE
	require.NotNil(t, fat)
	assert.Equal(t, 40, fat.CurrentAge)
	assert.Equal(t, 50, fat.TargetAge)
}

func TestLoadFromFile_AgeGuardLeftToEngine(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "calpers_too_young.yaml"))
	require.NoError(t, err, "the minimum age guard belongs to the calculator")
	assert.Len(t, config.Scenarios, 2)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		contains string
	}{
		{
			name:     "empty document",
			yaml:     "",
			contains: "configuration is empty",
		},
		{
			name:     "no scenarios",
			yaml:     "scenarios: []\n",
			contains: "at least one scenario",
		},
		{
			name:     "unknown field",
			yaml:     "scenarios:\n  - name: a\n    calculator: fers\n    salary: 1\n",
			contains: "failed to parse YAML",
		},
		{
			name:     "bad decimal",
			yaml:     "scenarios:\n  - name: a\n    calculator: fers\n    fers:\n      high_three_salary: lots\n",
			contains: "failed to parse YAML",
		},
		{
			name:     "duplicate names",
			yaml:     "scenarios:\n  - name: a\n    calculator: calpers\n    calpers: {formula: classic_2_at_55, final_compensation: 1, service_years: 1, retirement_age: 55}\n  - name: a\n    calculator: calpers\n    calpers: {formula: classic_2_at_55, final_compensation: 1, service_years: 1, retirement_age: 55}\n",
			contains: "duplicate name",
		},
		{
			name:     "missing input",
			yaml:     "scenarios:\n  - name: a\n    calculator: fat_fire\n",
			contains: "fat_fire input is required",
		},
		{
			name:     "unknown calculator",
			yaml:     "scenarios:\n  - name: a\n    calculator: lottery\n",
			contains: "unknown calculator",
		},
		{
			name:     "two inputs",
			yaml:     "scenarios:\n  - name: a\n    calculator: calpers\n    calpers: {formula: classic_2_at_55, retirement_age: 55}\n    fers: {current_age: 60}\n",
			contains: "only the calpers input",
		},
		{
			name:     "zero withdrawal rate",
			yaml:     "scenarios:\n  - name: a\n    calculator: barista_fire\n    barista_fire: {current_savings: 1, monthly_expenses: 1, part_time_income: 0, expected_return_pct: 5, withdrawal_rate_pct: 0}\n",
			contains: "withdrawal_rate_pct: must be positive",
		},
		{
			name:     "target age before current age",
			yaml:     "scenarios:\n  - name: a\n    calculator: fat_fire\n    fat_fire: {annual_spending: 1, current_age: 50, target_age: 40, withdrawal_rate_pct: 4}\n",
			contains: "target_age: (40) cannot be before current_age (50)",
		},
		{
			name:     "negative salary",
			yaml:     "scenarios:\n  - name: a\n    calculator: fers\n    fers: {high_three_salary: -1, years_of_service: 20, current_age: 62}\n",
			contains: "high_three_salary: cannot be negative",
		},
		{
			name:     "implausible age",
			yaml:     "scenarios:\n  - name: a\n    calculator: fers\n    fers: {high_three_salary: 1, years_of_service: 20, current_age: 140}\n",
			contains: "current_age: must be between",
		},
		{
			name:     "inflation out of range",
			yaml:     "assumptions:\n  fers_inflation_rate_pct: 35\nscenarios:\n  - name: a\n    calculator: fers\n    fers: {high_three_salary: 1, years_of_service: 20, current_age: 62}\n",
			contains: "fers_inflation_rate_pct: must be between",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestParse_UnknownFormulaWrapsSentinel(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("scenarios:\n  - name: a\n    calculator: calpers\n    calpers: {formula: 3_at_50, final_compensation: 1, service_years: 1, retirement_age: 55}\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, calculation.ErrUnknownFormula))
	assert.Contains(t, err.Error(), "scenario 0 (a) validation failed")
}

func TestParse_JSON(t *testing.T) {
	// JSON is a YAML subset, but keys follow the YAML names
	config, err := NewInputParser().Parse([]byte(`{"scenarios":[{"name":"j","calculator":"calpers","calpers":{"formula":"classic_2_at_60","final_compensation":80000,"service_years":30,"retirement_age":60}}]}`))
	require.NoError(t, err)
	assert.Equal(t, domain.FormulaClassic2At60, config.Scenarios[0].CalPERS.Formula)
}

func TestValidateScenario_FirstNegativeFieldIsStable(t *testing.T) {
	scenario := domain.Scenario{
		Name:       "all negative",
		Calculator: domain.CalculatorFatFIRE,
		FatFIRE: &domain.FatFIREInput{
			AnnualSpending:    decimal.NewFromInt(-1),
			CurrentSavings:    decimal.NewFromInt(-2),
			CurrentIncome:     decimal.NewFromInt(-3),
			SavingsRatePct:    decimal.NewFromInt(-4),
			CurrentAge:        40,
			TargetAge:         50,
			WithdrawalRatePct: decimal.NewFromInt(4),
		},
	}

	parser := NewInputParser()
	for i := 0; i < 50; i++ {
		err := parser.ValidateScenario(&scenario)
		require.Error(t, err)

		var ve *calculation.ValidationError
		require.True(t, errors.As(err, &ve))
		require.Equal(t, "annual_spending", ve.Field, "run %d", i)
	}
}

func TestValidateScenario_ErrorsCarryField(t *testing.T) {
	tests := []struct {
		name     string
		scenario domain.Scenario
		field    string
	}{
		{
			name:     "survivor option",
			scenario: domain.Scenario{Calculator: domain.CalculatorFERS, FERS: &domain.FERSInput{CurrentAge: 62, SurvivorOption: "most"}},
			field:    "survivor_option",
		},
		{
			name:     "target age out of range",
			scenario: domain.Scenario{Calculator: domain.CalculatorFatFIRE, FatFIRE: &domain.FatFIREInput{CurrentAge: 40, TargetAge: 200000, WithdrawalRatePct: decimal.NewFromInt(4)}},
			field:    "target_age",
		},
		{
			name:     "barista part-time income",
			scenario: domain.Scenario{Calculator: domain.CalculatorBaristaFIRE, BaristaFIRE: &domain.BaristaFIREInput{PartTimeIncome: decimal.NewFromInt(-1), WithdrawalRatePct: decimal.NewFromInt(4)}},
			field:    "part_time_income",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidateScenario(&tt.scenario)
			require.Error(t, err)
			assert.True(t, calculation.IsValidationError(err))

			var ve *calculation.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}
