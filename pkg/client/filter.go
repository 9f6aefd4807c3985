package client

import (
	"time"

	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	"github.com/ramidarshan07/wealthtrack/internal/dto"
)

// Filter narrows a transaction list. Zero-valued fields do not constrain, so
// the zero Filter returns the input unchanged. All set fields must match
// (AND composition). Date bounds are day-granularity and inclusive on both
// ends.
type Filter struct {
	CategoryID      string
	PaymentMethodID string
	AmountTypeID    string            // savings only
	Class           domain.EntryClass // expenses only; "" matches both
	From            *time.Time
	To              *time.Time
}

// IsZero reports whether no predicate is set.
func (f Filter) IsZero() bool {
	return f.CategoryID == "" && f.PaymentMethodID == "" && f.AmountTypeID == "" &&
		f.Class == "" && f.From == nil && f.To == nil
}

// matchesDate checks the inclusive day-granularity range.
func (f Filter) matchesDate(date time.Time) bool {
	if f.From != nil {
		start := startOfDay(*f.From)
		if date.Before(start) {
			return false
		}
	}
	if f.To != nil {
		end := startOfDay(*f.To).AddDate(0, 0, 1)
		if !date.Before(end) {
			return false
		}
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FilterExpenses returns the expenses matching every set predicate. The
// input is never mutated.
func FilterExpenses(expenses []dto.ExpenseResponse, f Filter) []dto.ExpenseResponse {
	if f.IsZero() {
		return expenses
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		if f.CategoryID != "" && e.Category.ID != f.CategoryID {
			continue
		}
		if f.PaymentMethodID != "" && e.PaymentMethod.ID != f.PaymentMethodID {
			continue
		}
		if f.Class != "" && domain.ClassifyAmountType(e.AmountType.Name) != f.Class {
			continue
		}
		if !f.matchesDate(e.Date) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterSavings returns the savings matching every set predicate.
func FilterSavings(savings []dto.SavingResponse, f Filter) []dto.SavingResponse {
	if f.IsZero() {
		return savings
	}
	out := make([]dto.SavingResponse, 0, len(savings))
	for _, s := range savings {
		if f.CategoryID != "" && s.Category.ID != f.CategoryID {
			continue
		}
		if f.PaymentMethodID != "" && s.PaymentMethod.ID != f.PaymentMethodID {
			continue
		}
		if f.AmountTypeID != "" && s.AmountType.ID != f.AmountTypeID {
			continue
		}
		if !f.matchesDate(s.Date) {
			continue
		}
		out = append(out, s)
	}
	return out
}
