package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatINR renders a rupee amount with Indian digit grouping and no
// fraction digits, e.g. 560000 -> "₹5,60,000".
func FormatINR(value float64) string {
	n := int64(math.Round(value))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return sign + "₹" + s
	}

	// Last group of three, then groups of two.
	head := s[:len(s)-3]
	groups := []string{s[len(s)-3:]}
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return sign + "₹" + strings.Join(groups, ",")
}

// DigitsOnly strips everything but ASCII digits from a phone number.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
