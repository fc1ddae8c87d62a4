package offering

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatCurrency USD with thousands separators and two decimals, e.g. "$1,234.50".
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	fixed := amount.StringFixed(2) // rounds half away from zero
	whole, cents, _ := strings.Cut(fixed, ".")
	wholeD, _ := decimal.NewFromString(whole)

	return sign + "$" + humanize.Comma(wholeD.IntPart()) + "." + cents
}

// FormatNumber share counts with thousands separators, e.g. "149,999".
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}
