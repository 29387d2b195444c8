package calculation

import (
	"github.com/shopspring/decimal"
)

var (
	decimalZero    = decimal.Zero
	decimalOne     = decimal.NewFromInt(1)
	decimalTwelve  = decimal.NewFromInt(12)
	decimalHundred = decimal.NewFromInt(100)
)

func onePlus(value decimal.Decimal) decimal.Decimal {
	return decimalOne.Add(value)
}

// pctToRate converts a percentage (7) to a rate (0.07)
func pctToRate(pct decimal.Decimal) decimal.Decimal {
	return pct.Div(decimalHundred)
}

func maxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

func minDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// progressPct is current/target as a percentage capped at 100. A target
// of zero or less counts as complete.
func progressPct(current, target decimal.Decimal) decimal.Decimal {
	if target.LessThanOrEqual(decimalZero) {
		return decimalHundred
	}
	pct := current.Div(target).Mul(decimalHundred)
	return maxDecimal(decimalZero, minDecimal(decimalHundred, pct))
}

// compound returns amount * (1 + rate)^years
func compound(amount, rate decimal.Decimal, years int) decimal.Decimal {
	return amount.Mul(onePlus(rate).Pow(decimal.NewFromInt(int64(years))))
}
