package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Saving mirrors Expense but tracks money put aside rather than spent.
type Saving struct {
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
func (s Saving) Class() EntryClass {
	return ClassifyAmountType(s.AmountType.Name)
}

// TotalSavings sums the amounts of all savings records.
func TotalSavings(savings []Saving) decimal.Decimal {
	total := decimal.Zero
	for _, s := range savings {
		total = total.Add(s.Amount)
	}
	return total
}
