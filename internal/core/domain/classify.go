package domain

import "strings"

// EntryClass is the presentation-only credit/debit bucketing of a
// transactional entry. It is derived from the amount type's name on every
// read and never persisted.
type EntryClass string

const (
	ClassCredit EntryClass = "credit"
	ClassDebit  EntryClass = "debit"
)

// IsCreditType classifies an amount-type name. A case-insensitive substring
// match on "credit" or "income" means credit; everything else is debit.
func IsCreditType(amountTypeName string) bool {
	name := strings.ToLower(amountTypeName)
	return strings.Contains(name, "credit") || strings.Contains(name, "income")
}

// ClassifyAmountType returns the EntryClass for an amount-type name.
func ClassifyAmountType(amountTypeName string) EntryClass {
	if IsCreditType(amountTypeName) {
		return ClassCredit
	}
	return ClassDebit
}
