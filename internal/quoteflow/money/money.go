// Package money holds the display-value numeric helpers shared by the flow
// controller, summary composer, and field renderer. Values in the form store
// are display strings ("$200,000", "10"), so arithmetic starts by stripping
// the formatting back off.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseNumeric extracts the numeric value from a display string, keeping
// digits and the decimal point. Unparsable input is 0.
func ParseNumeric(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if r == '.' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatWhole renders a dollar amount with thousands separators and no
// cents: FormatWhole(20000) is "$20,000".
func FormatWhole(v float64) string {
	return "$" + group(int64(math.Round(v)))
}

// FormatCents renders a dollar amount with two decimal places.
func FormatCents(v float64) string {
	cents := int64(math.Round(v * 100))
	return fmt.Sprintf("$%s.%02d", group(cents/100), cents%100)
}

func group(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}
