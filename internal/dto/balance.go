package dto

import (
	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateBalanceRequest pins a new balance on a payment method. Negative
// balances are allowed (overdrawn cards).
type UpdateBalanceRequest struct {
	Balance decimal.Decimal `json:"balance"`
}

// BalanceResponse is the wire shape of a payment-method balance.
type BalanceResponse struct {
	PaymentMethodID string          `json:"paymentMethodId"`
	Name            string          `json:"name"`
	Balance         decimal.Decimal `json:"balance"`
}

// ToBalanceResponse converts a domain.PaymentMethodBalance.
func ToBalanceResponse(b *domain.PaymentMethodBalance) BalanceResponse {
	return BalanceResponse{
		PaymentMethodID: b.PaymentMethodID,
		Name:            b.Name,
		Balance:         b.Balance,
	}
}

// ToBalanceResponseList converts a slice of balances.
func ToBalanceResponseList(balances []domain.PaymentMethodBalance) []BalanceResponse {
	res := make([]BalanceResponse, len(balances))
	for i := range balances {
		res[i] = ToBalanceResponse(&balances[i])
	}
	return res
}
