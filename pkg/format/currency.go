// Package format provides string formatting helpers for report output.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	if amount < 0 {
		return printer.Sprintf("-$%.2f", math.Abs(amount))
	}
	return printer.Sprintf("$%.2f", amount)
}

// Percent renders a ratio (e.g. 0.0725) as a percentage string ("7.25%").
func Percent(ratio float64) string {
	return printer.Sprintf("%.2f%%", ratio*100)
}

// Multiple renders a unitless multiple (e.g. rent-to-PITI) as "5.71x".
func Multiple(value float64) string {
	return printer.Sprintf("%.2fx", value)
}
