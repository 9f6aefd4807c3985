package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spending (or credit) record. The reference fields are
// returned embedded with their names so callers never need a second lookup.
type Expense struct {
	ID            string          `json:"id"`
	UserID        string          `json:"-"`
	Amount        decimal.Decimal `json:"amount"`
	Category      Ref             `json:"category"`
	AmountType    Ref             `json:"amountType"`
	PaymentMethod Ref             `json:"paymentMethod"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description,omitempty"`
	AuditFields
}

// Class derives the credit/debit bucket from the amount type's name.
func (e Expense) Class() EntryClass {
	return ClassifyAmountType(e.AmountType.Name)
}

// PaymentMethodStat is the per-payment-method credit/debit aggregate exposed
// by the expense stats endpoint.
type PaymentMethodStat struct {
	PaymentMethodID string          `json:"paymentMethodId"`
	Credit          decimal.Decimal `json:"credit"`
	Debit           decimal.Decimal `json:"debit"`
}

// AggregateByPaymentMethod folds expenses into per-payment-method credit and
// debit sums, classifying each row by its amount-type name. The result is
// ordered by payment method id for deterministic output.
func AggregateByPaymentMethod(expenses []Expense) []PaymentMethodStat {
	byID := make(map[string]*PaymentMethodStat)
	order := make([]string, 0)
	for _, e := range expenses {
		pmID := e.PaymentMethod.ID
		stat, ok := byID[pmID]
		if !ok {
			stat = &PaymentMethodStat{
				PaymentMethodID: pmID,
				Credit:          decimal.Zero,
				Debit:           decimal.Zero,
			}
			byID[pmID] = stat
			order = append(order, pmID)
		}
		if e.Class() == ClassCredit {
			stat.Credit = stat.Credit.Add(e.Amount)
		} else {
			stat.Debit = stat.Debit.Add(e.Amount)
		}
	}
	stats := make([]PaymentMethodStat, 0, len(order))
	for _, id := range order {
		stats = append(stats, *byID[id])
	}
	return stats
}
