package dataset

// coerce.go provides the lenient cell coercion rules shared by metrics,
// sorting, and chart projection.
//
// Cells are untyped text. Aggregations read them with a forgiving
// leading-prefix parse ("12.5%" yields 12.5, "abc" yields 0), while the
// sort comparator uses a strict full-string parse so that mixed columns
// fall back to string ordering instead of half-numeric surprises.

import (
	"math"
	"strconv"
	"strings"
)

// parseFloat parses the longest leading numeric prefix of s, mirroring the
// coercion the dashboard applies to metric cells. Returns 0, false when no
// prefix parses.
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := numericPrefixLen(s, true)
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// parseInt parses the longest leading integer prefix of s. "12.9" yields
// 12; "abc" yields 0, false.
func parseInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	end := numericPrefixLen(s, false)
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// numericValue is the strict coercion used by the sort comparator: the
// entire trimmed cell must parse as a finite number.
func numericValue(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// numericPrefixLen returns the length of the longest prefix of s that forms
// a valid number. When float is false only an integer prefix is accepted.
func numericPrefixLen(s string, float bool) int {
	i := 0
	n := len(s)

	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}

	if !float {
		if digits == 0 {
			return 0
		}
		return i
	}

	if i < n && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < n && s[j] >= '0' && s[j] <= '9' {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}

	if digits == 0 {
		return 0
	}

	// Optional exponent; only consumed when complete.
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < n && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < n && s[j] >= '0' && s[j] <= '9' {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}

	return i
}
