package report

import (
	"math"
	"strconv"
)

// commaFloat renders a value rounded to whole units with thousands
// separators, e.g. 40000 → "40,000".
func commaFloat(v float64) string {
	n := int64(math.Round(v))
	s := strconv.FormatInt(n, 10)

	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digit)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// formatNum renders a float the way a handwritten figure reads: no
// exponent, no trailing zeros, so 29 → "29" and 7.2 → "7.2".
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
