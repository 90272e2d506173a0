// Package numfmt holds small numeric display helpers shared by the
// terminal surfaces.
package numfmt

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatNumber renders n as a grouped decimal, e.g. 1000 -> "1,000".
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// SumOfDigits returns the base-10 digit sum of |n|.
func SumOfDigits(n int) int {
	if n < 0 {
		n = -n
	}
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}
