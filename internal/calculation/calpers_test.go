package calculation

import (
	"errors"
	"testing"

	"github.com/goldira/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCalPERS_WorkedExample(t *testing.T) {
	res, err := CalculateCalPERS(domain.CalPERSInput{
		Formula:           domain.FormulaClassic2At55,
		FinalCompensation: decimal.NewFromInt(100000),
		ServiceYears:      decimal.NewFromInt(25),
		RetirementAge:     55,
	})
	require.NoError(t, err)

	assert.True(t, res.AgeFactor.Equal(d("2.0")), "factor %s", res.AgeFactor)
	assert.True(t, res.AnnualBenefit.Equal(decimal.NewFromInt(50000)), "annual %s", res.AnnualBenefit)
	assert.InDelta(t, 4166.67, res.MonthlyBenefit.InexactFloat64(), 0.01)
	assert.True(t, res.ReplacementPct.Equal(decimal.NewFromInt(50)), "replacement %s", res.ReplacementPct)

	require.Len(t, res.SurvivorVariants, 3)
	assert.Equal(t, 100, res.SurvivorVariants[0].SurvivorPct)
	assert.InDelta(t, 3750.00, res.SurvivorVariants[0].Monthly.InexactFloat64(), 0.01)
	assert.Equal(t, 75, res.SurvivorVariants[1].SurvivorPct)
	assert.InDelta(t, 3854.17, res.SurvivorVariants[1].Monthly.InexactFloat64(), 0.01)
	assert.Equal(t, 50, res.SurvivorVariants[2].SurvivorPct)
	assert.InDelta(t, 3958.33, res.SurvivorVariants[2].Monthly.InexactFloat64(), 0.01)
}

func TestCalculateCalPERS_COLACompounding(t *testing.T) {
	res, err := CalculateCalPERS(domain.CalPERSInput{
		Formula:           domain.FormulaClassic2At55,
		FinalCompensation: decimal.NewFromInt(100000),
		ServiceYears:      decimal.NewFromInt(25),
		RetirementAge:     55,
	})
	require.NoError(t, err)
	require.Len(t, res.COLAProjections, 3)

	byYears := map[int]float64{}
	for _, p := range res.COLAProjections {
		byYears[p.Years] = p.Annual.InexactFloat64()
	}
	assert.InDelta(t, 55204.04, byYears[5], 0.01)
	assert.InDelta(t, 60949.72, byYears[10], 0.01)
	assert.InDelta(t, 74297.37, byYears[20], 0.01)
}

func TestCalculateCalPERS_MinimumAgeGuard(t *testing.T) {
	tests := []struct {
		name    string
		formula domain.CalPERSFormula
		age     int
		wantErr bool
	}{
		{"classic 2 at 55 rejects 49", domain.FormulaClassic2At55, 49, true},
		{"classic 2 at 55 accepts 50", domain.FormulaClassic2At55, 50, false},
		{"classic 2 at 60 rejects 49", domain.FormulaClassic2At60, 49, true},
		{"PEPRA rejects 51", domain.FormulaPEPRA2At62, 51, true},
		{"PEPRA accepts 52", domain.FormulaPEPRA2At62, 52, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := CalculateCalPERS(domain.CalPERSInput{
				Formula:           tt.formula,
				FinalCompensation: decimal.NewFromInt(90000),
				ServiceYears:      decimal.NewFromInt(20),
				RetirementAge:     tt.age,
			})
			if !tt.wantErr {
				require.NoError(t, err)
				assert.NotNil(t, res)
				return
			}
			require.Error(t, err)
			assert.Nil(t, res, "a rejected age must not produce numbers")
			assert.True(t, errors.Is(err, ErrBelowMinimumAge))

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, "retirement_age", ve.Field)
		})
	}
}

func TestCalculateCalPERS_UnknownFormula(t *testing.T) {
	_, err := CalculateCalPERS(domain.CalPERSInput{Formula: "3_at_50", RetirementAge: 55})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormula))
}

func TestCalculateCalPERS_AgeFactors(t *testing.T) {
	tests := []struct {
		formula  domain.CalPERSFormula
		age      int
		expected string
	}{
		{domain.FormulaClassic2At55, 51, "1.527"},
		{domain.FormulaClassic2At55, 63, "2.418"},
		{domain.FormulaClassic2At60, 60, "2.000"},
		{domain.FormulaClassic2At60, 61, "2.136"},
		{domain.FormulaPEPRA2At62, 62, "2.000"},
		{domain.FormulaPEPRA2At62, 67, "2.500"},
	}

	for _, tt := range tests {
		res, err := CalculateCalPERS(domain.CalPERSInput{
			Formula:           tt.formula,
			FinalCompensation: decimal.NewFromInt(100000),
			ServiceYears:      decimal.NewFromInt(10),
			RetirementAge:     tt.age,
		})
		require.NoError(t, err)
		assert.True(t, res.AgeFactor.Equal(d(tt.expected)), "%s at %d: expected %s, got %s", tt.formula, tt.age, tt.expected, res.AgeFactor)
	}
}

func TestCalculateCalPERS_ZeroCompensation(t *testing.T) {
	res, err := CalculateCalPERS(domain.CalPERSInput{
		Formula:       domain.FormulaPEPRA2At62,
		ServiceYears:  decimal.NewFromInt(10),
		RetirementAge: 62,
	})
	require.NoError(t, err)
	assert.True(t, res.AnnualBenefit.IsZero())
	assert.True(t, res.ReplacementPct.IsZero())
}

func TestCalPERSFormulas_Catalogue(t *testing.T) {
	formulas := CalPERSFormulas()
	require.Len(t, formulas, 3)
	for _, f := range formulas {
		assert.NoError(t, f.Table.Validate(), string(f.ID))
		assert.Equal(t, f.MinimumAge, f.Table.MinAge(), string(f.ID))
	}

	// callers get a copy
	formulas[0].Name = "changed"
	again, ok := LookupCalPERSFormula(domain.FormulaClassic2At55)
	require.True(t, ok)
	assert.Equal(t, "Classic 2% at 55", again.Name)
}
