package dto

import (
	"time"

	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveExpenseRequest is shared by create (POST) and update (PUT).
// Reference fields carry ids; names are resolved server-side.
type SaveExpenseRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category" binding:"required,uuid"`
	AmountType    string          `json:"amountType" binding:"required,uuid"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,uuid"`
	Date          string          `json:"date" binding:"required"`
	Description   string          `json:"description" binding:"omitempty,max=200"`
}

// RefResponse is an embedded reference inside a transactional entity.
type RefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ExpenseResponse is the wire shape of an expense.
type ExpenseResponse struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Category      RefResponse     `json:"category"`
	AmountType    RefResponse     `json:"amountType"`
	PaymentMethod RefResponse     `json:"paymentMethod"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// PaymentMethodStatResponse is one row of the expense stats payload.
type PaymentMethodStatResponse struct {
	PaymentMethodID string          `json:"paymentMethodId"`
	Credit          decimal.Decimal `json:"credit"`
	Debit           decimal.Decimal `json:"debit"`
}

// ExpenseStatsResponse aggregates expenses per payment method.
type ExpenseStatsResponse struct {
	PaymentMethodStats []PaymentMethodStatResponse `json:"paymentMethodStats"`
}

// ToExpenseResponse converts a domain.Expense to its wire shape.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		Amount:        e.Amount,
		Category:      RefResponse(e.Category),
		AmountType:    RefResponse(e.AmountType),
		PaymentMethod: RefResponse(e.PaymentMethod),
		Date:          e.Date,
		Description:   e.Description,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// ToExpenseResponseList converts a slice of expenses.
func ToExpenseResponseList(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}

// ToExpenseStatsResponse converts per-payment-method aggregates.
func ToExpenseStatsResponse(stats []domain.PaymentMethodStat) ExpenseStatsResponse {
	rows := make([]PaymentMethodStatResponse, len(stats))
	for i, s := range stats {
		rows[i] = PaymentMethodStatResponse{
			PaymentMethodID: s.PaymentMethodID,
			Credit:          s.Credit,
			Debit:           s.Debit,
		}
	}
	return ExpenseStatsResponse{PaymentMethodStats: rows}
}
