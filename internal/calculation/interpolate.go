package calculation

import (
	"github.com/goldira/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Interpolate looks up queryAge in a sparse age-factor table.
//
// Exact keys return their own factor. Ages below the first key clamp to the
// first factor. Ages above the last key return aboveMax, which is usually
// higher than the last in-table factor. Anything in between is linearly
// interpolated between the bracketing keys.
func Interpolate(table domain.AgeFactorTable, queryAge int, aboveMax decimal.Decimal) decimal.Decimal {
	if len(table) == 0 {
		return aboveMax
	}
	if queryAge < table[0].Age {
		return table[0].Factor
	}
	if queryAge > table[len(table)-1].Age {
		return aboveMax
	}

	for i, row := range table {
		if row.Age == queryAge {
			return row.Factor
		}
		if row.Age > queryAge {
			// i > 0 here: queryAge >= table[0].Age
			lower := table[i-1]
			span := decimal.NewFromInt(int64(row.Age - lower.Age))
			offset := decimal.NewFromInt(int64(queryAge - lower.Age))
			return lower.Factor.Add(offset.Mul(row.Factor.Sub(lower.Factor)).Div(span))
		}
	}

	return aboveMax
}
