package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR renders an amount as Indian rupees with two decimal places and
// Indian digit grouping, e.g. 1234567.5 -> "₹ 12,34,567.50".
func FormatINR(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	parts := strings.SplitN(fixed, ".", 2)
	grouped := groupIndian(parts[0])

	var b strings.Builder
	b.WriteString("₹ ")
	if negative {
		b.WriteString("-")
	}
	b.WriteString(grouped)
	b.WriteString(".")
	b.WriteString(parts[1])
	return b.String()
}

// groupIndian inserts commas in the Indian numbering style: the last three
// digits form one group, the rest are grouped in pairs.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}
