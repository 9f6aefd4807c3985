package dto

import (
	"time"

	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveSavingRequest is shared by create (POST) and update (PUT).
type SaveSavingRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category" binding:"required,uuid"`
	AmountType    string          `json:"amountType" binding:"required,uuid"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,uuid"`
	Date          string          `json:"date" binding:"required"`
	Description   string          `json:"description" binding:"omitempty,max=200"`
}

// SavingResponse is the wire shape of a saving record.
type SavingResponse struct {
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

// SavingsTotalResponse is the payload of GET /savings/total.
type SavingsTotalResponse struct {
	Total decimal.Decimal `json:"total"`
}

// ToSavingResponse converts a domain.Saving to its wire shape.
func ToSavingResponse(s *domain.Saving) SavingResponse {
	return SavingResponse{
		ID:            s.ID,
		Amount:        s.Amount,
		Category:      RefResponse(s.Category),
		AmountType:    RefResponse(s.AmountType),
		PaymentMethod: RefResponse(s.PaymentMethod),
		Date:          s.Date,
		Description:   s.Description,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ToSavingResponseList converts a slice of savings.
func ToSavingResponseList(savings []domain.Saving) []SavingResponse {
	res := make([]SavingResponse, len(savings))
	for i := range savings {
		res[i] = ToSavingResponse(&savings[i])
	}
	return res
}
