package format

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer applies the id-ID grouping convention (dots every three digits).
var printer = message.NewPrinter(language.Indonesian)

// ParseAmount extracts the integer amount from a possibly formatted price
// string by stripping every non-digit rune. A string with no digits at all
// (including the empty string) reports ok=false.
func ParseAmount(s string) (int64, bool) {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		// Digit runs longer than an int64 are not amounts we deal in.
		return 0, false
	}
	return n, true
}

// Rupiah formats an integer amount as a rupiah string, e.g. 1003000 ->
// "Rp1.003.000".
func Rupiah(n int64) string {
	return "Rp" + printer.Sprintf("%d", n)
}

// NormalizeHarga reformats a raw price value (typically a price-card data
// attribute) into the canonical rupiah string. Unparseable input is returned
// as-is so the form still shows whatever the card declared.
func NormalizeHarga(raw string) string {
	n, ok := ParseAmount(raw)
	if !ok {
		return raw
	}
	return Rupiah(n)
}
