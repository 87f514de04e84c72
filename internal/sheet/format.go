package sheet

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var valuePrinter = message.NewPrinter(language.English)

// FormatValue renders a read value for a column by dispatching on its formatter.
// Badge and actions cells return their raw text; styling is up to the renderer.
func FormatValue(c Column, r Record) string {
	switch c.Format {
	case FormatRowID:
		return strconv.Itoa(r.ID)
	case FormatCurrency:
		return Currency(r.Get(c.Key))
	case FormatActions:
		return ""
	default:
		return r.Get(c.Key)
	}
}

// Currency prefixes a numeric value with "$" and groups thousands.
// Empty, zero and non-numeric values render as "".
func Currency(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
	if err != nil || f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	return "$" + valuePrinter.Sprintf("%v", number.Decimal(f, number.MaxFractionDigits(3)))
}
