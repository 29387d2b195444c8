package output

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// FormatCurrency formats an amount to the nearest whole dollar with US
// grouping, e.g. $1,234,568
func FormatCurrency(amount decimal.Decimal) string {
	whole := amount.Round(0)
	sign := ""
	if whole.IsNegative() {
		sign = "-"
		whole = whole.Abs()
	}
	if whole.GreaterThan(maxInt64) {
		return sign + "$" + groupThousands(whole.BigInt().String())
	}
	return sign + printer.Sprintf("$%d", whole.IntPart())
}

// groupThousands inserts commas into a string of decimal digits. Used for
// amounts past int64, which the printer cannot take as an integer.
func groupThousands(digits string) string {
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	var b strings.Builder
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatPercentage formats a percentage value (42.46 → 42.5%)
func FormatPercentage(pct decimal.Decimal) string {
	return pct.StringFixed(1) + "%"
}

// FormatYears formats a whole number of years
func FormatYears(years int) string {
	if years == 1 {
		return "1 year"
	}
	return printer.Sprintf("%d years", years)
}
