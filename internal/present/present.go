// Package present formats money and audience numbers for display.
package present

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Currency formats an amount of cents as dollars with thousands
// separators, e.g. 123456 -> "$1,234.56".
func Currency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + "$" + humanize.Comma(cents/100) + "." + pad2(cents%100)
}

// Count formats n with thousands separators.
func Count(n int64) string {
	return humanize.Comma(n)
}

// compactUnits are the abbreviation suffixes in increasing size.
var compactUnits = []struct {
	size   float64
	suffix string
}{
	{1e3, "K"},
	{1e6, "M"},
	{1e9, "B"},
}

// Compact abbreviates large numbers: 950 -> "950", 12345 -> "12.3K",
// 1200000 -> "1.2M", 999960 -> "1M". The unit is chosen after rounding.
func Compact(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if n >= 1000 {
		f := float64(n)
		i := 0
		for i+1 < len(compactUnits) && f >= compactUnits[i+1].size {
			i++
		}
		v := roundTenth(f / compactUnits[i].size)
		if v >= 1000 && i+1 < len(compactUnits) {
			i++
			v = roundTenth(f / compactUnits[i].size)
		}
		s = oneDecimal(v) + compactUnits[i].suffix
	}
	if neg {
		return "-" + s
	}
	return s
}

func roundTenth(f float64) float64 {
	return math.Round(f*10) / 10
}

func oneDecimal(f float64) string {
	s := strconv.FormatFloat(f, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
