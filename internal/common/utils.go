package common

import (
	"math"
	"strconv"
	"strings"
)

// RoundInt rounds half away from zero.
func RoundInt(v float64) int {
	return int(math.Round(v))
}

// RoundTo rounds v to the given number of decimal places, half away from
// zero. Ties are decided on the shortest decimal form of v, so 1.005 rounds
// to 1.01 even though its binary value sits just below the tie.
func RoundTo(v float64, places int) float64 {
	if places < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) <= places {
		return v
	}

	n, err := strconv.ParseInt(whole+frac[:places], 10, 64)
	if err != nil {
		p := math.Pow10(places)
		return math.Round(v*p) / p
	}
	if frac[places] >= '5' {
		n++
	}
	if n == 0 {
		return 0
	}

	r, err := strconv.ParseFloat(strconv.FormatInt(n, 10)+"e-"+strconv.Itoa(places), 64)
	if err != nil {
		return v
	}
	return math.Copysign(r, v)
}

// PadTwo formats n with at least two digits, e.g. 7 -> "07", -3 -> "-03".
func PadTwo(n int) string {
	if n < 0 {
		return "-" + PadTwo(-n)
	}
	s := strconv.Itoa(n)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

// FormatFloat prints v without trailing zeros ("25.6", "3", "0.25").
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
