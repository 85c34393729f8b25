// Package format renders calculator values for display and for the clipboard.
// The engine keeps full float precision; rounding to pennies happens only here.
package format

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// CurrencySymbol is the single display currency (GBP).
const CurrencySymbol = "£"

// Fixed2 renders v with exactly two decimal places, rounding half away from zero.
// This is the text placed on the clipboard.
func Fixed2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Currency renders v as en-GB pounds, e.g. "£1,234.50" or "-£0.99".
func Currency(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	fixed := d.StringFixed(2)
	whole, pennies, _ := strings.Cut(fixed, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		// beyond int64 the grouping is skipped
		return sign + CurrencySymbol + fixed
	}

	return sign + CurrencySymbol + humanize.Comma(units) + "." + pennies
}

// Percent renders a rate without trailing zeros, e.g. "20%" or "17.5%".
func Percent(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64) + "%"
}
