package domain

import "github.com/shopspring/decimal"

// PaymentMethodBalance is the authoritative balance the user pinned to a
// payment method. Credit/debit figures come from the expense stats endpoint
// and are merged in by the client after the fact.
type PaymentMethodBalance struct {
	PaymentMethodID string          `json:"paymentMethodId"`
	Name            string          `json:"name"`
	Balance         decimal.Decimal `json:"balance"`
	AuditFields
}
