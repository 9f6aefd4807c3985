package dto

import (
	"time"

	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest opens a lending/borrowing account with its opening
// principal entry.
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required,max=80"`
	AccountType    string          `json:"accountType" binding:"required,oneof=borrowed lent"`
	InitialAmount  decimal.Decimal `json:"initialAmount"`
	Date           string          `json:"date" binding:"required"`
	PaymentChannel string          `json:"paymentChannel" binding:"omitempty,max=40"`
	Note           string          `json:"note" binding:"omitempty,max=120"`
	Description    string          `json:"description" binding:"omitempty,max=250"`
}

// CreateTransactionRequest adds one entry to an account's history.
type CreateTransactionRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	Type           string          `json:"type" binding:"required,oneof=borrow repay lent received"`
	PaymentChannel string          `json:"paymentChannel" binding:"omitempty,max=40"`
	Date           string          `json:"date" binding:"required"`
	Note           string          `json:"note" binding:"omitempty,max=200"`
}

// AccountSummaryResponse carries the server-computed aggregates.
type AccountSummaryResponse struct {
	TotalBorrowed     decimal.Decimal `json:"totalBorrowed"`
	TotalRepaid       decimal.Decimal `json:"totalRepaid"`
	Outstanding       decimal.Decimal `json:"outstanding"`
	LastRepaymentDate *time.Time      `json:"lastRepaymentDate,omitempty"`
}

// TransactionResponse is one history entry on the wire.
type TransactionResponse struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentChannel string          `json:"paymentChannel,omitempty"`
	Date           time.Time       `json:"date"`
	Note           string          `json:"note,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// AccountResponse is an account with its summary; Transactions is populated
// only on the detail endpoint.
type AccountResponse struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	AccountType  string                 `json:"accountType"`
	Description  string                 `json:"description,omitempty"`
	Summary      AccountSummaryResponse `json:"summary"`
	Transactions []TransactionResponse  `json:"transactions,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

// ToAccountResponse converts a domain.Account, including its transactions
// when present.
func ToAccountResponse(account *domain.Account) AccountResponse {
	res := AccountResponse{
		ID:          account.ID,
		Name:        account.Name,
		AccountType: string(account.AccountType),
		Description: account.Description,
		Summary: AccountSummaryResponse{
			TotalBorrowed:     account.Summary.TotalBorrowed,
			TotalRepaid:       account.Summary.TotalRepaid,
			Outstanding:       account.Summary.Outstanding,
			LastRepaymentDate: account.Summary.LastRepaymentDate,
		},
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
	if len(account.Transactions) > 0 {
		res.Transactions = make([]TransactionResponse, len(account.Transactions))
		for i, txn := range account.Transactions {
			res.Transactions[i] = TransactionResponse{
				ID:             txn.ID,
				Type:           string(txn.Type),
				Amount:         txn.Amount,
				PaymentChannel: txn.PaymentChannel,
				Date:           txn.Date,
				Note:           txn.Note,
				CreatedAt:      txn.CreatedAt,
			}
		}
	}
	return res
}

// ToAccountResponseList converts a slice of accounts (summaries only).
func ToAccountResponseList(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
