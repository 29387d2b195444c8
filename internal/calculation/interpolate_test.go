package calculation

import (
	"testing"

	"github.com/goldira/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestInterpolate(t *testing.T) {
	table := domain.AgeFactorTable{
		{Age: 50, Factor: d("1.426")},
		{Age: 52, Factor: d("1.628")},
		{Age: 55, Factor: d("2.000")},
	}
	aboveMax := d("2.418")

	tests := []struct {
		name     string
		age      int
		expected decimal.Decimal
	}{
		{"exact first key", 50, d("1.426")},
		{"exact middle key", 52, d("1.628")},
		{"exact last key", 55, d("2.000")},
		{"below minimum clamps to first", 45, d("1.426")},
		{"above maximum uses fallback", 56, d("2.418")},
		{"midpoint of two-year gap", 51, d("1.527")},
		{"one third into three-year gap", 53, d("1.752")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpolate(table, tt.age, aboveMax)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestInterpolate_EmptyTable(t *testing.T) {
	got := Interpolate(nil, 60, d("2.5"))
	assert.True(t, got.Equal(d("2.5")))
}

func TestInterpolate_ExactKeysNeverDrift(t *testing.T) {
	for _, formula := range CalPERSFormulas() {
		for _, row := range formula.Table {
			got := Interpolate(formula.Table, row.Age, formula.MaxFactor)
			assert.True(t, row.Factor.Equal(got), "%s age %d: expected %s, got %s", formula.ID, row.Age, row.Factor, got)
		}
	}
}

func TestInterpolate_MonotonicAcrossDomain(t *testing.T) {
	for _, formula := range CalPERSFormulas() {
		t.Run(string(formula.ID), func(t *testing.T) {
			require.NoError(t, formula.Table.Validate())
			// every catalogue table has an above-max factor at least as high as its last row
			require.True(t, formula.MaxFactor.GreaterThanOrEqual(formula.Table[len(formula.Table)-1].Factor))

			prev := Interpolate(formula.Table, 30, formula.MaxFactor)
			for age := 31; age <= 80; age++ {
				cur := Interpolate(formula.Table, age, formula.MaxFactor)
				assert.True(t, cur.GreaterThanOrEqual(prev), "factor dropped at age %d: %s < %s", age, cur, prev)
				prev = cur
			}
		})
	}
}

func TestInterpolate_LowFallbackBreaksMonotonicity(t *testing.T) {
	table := domain.AgeFactorTable{
		{Age: 60, Factor: d("2.0")},
		{Age: 62, Factor: d("2.4")},
	}
	atMax := Interpolate(table, 62, d("1.0"))
	above := Interpolate(table, 63, d("1.0"))
	assert.True(t, above.LessThan(atMax), "a fallback below the last factor is returned as-is")
}
