package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType says which side of a personal lending relationship the
// account tracks.
type AccountType string

const (
	AccountBorrowed AccountType = "borrowed" // money I borrowed from this person
	AccountLent     AccountType = "lent"     // money I lent to this person
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	return t == AccountBorrowed || t == AccountLent
}

// EntryType is the kind of a single ledger entry. The allowed set is a
// function of the parent account's type.
type EntryType string

const (
	EntryBorrow   EntryType = "borrow"
	EntryRepay    EntryType = "repay"
	EntryLent     EntryType = "lent"
	EntryReceived EntryType = "received"
)

// AllowedEntryTypes returns the entry types valid for an account type:
// borrowed accounts take borrow/repay, lent accounts take lent/received.
func AllowedEntryTypes(accountType AccountType) []EntryType {
	if accountType == AccountLent {
		return []EntryType{EntryLent, EntryReceived}
	}
	return []EntryType{EntryBorrow, EntryRepay}
}

// DefaultEntryType is the pre-filled type for a new entry. A new entry is
// usually a repayment rather than new debt, so lent accounts default to
// received and borrowed accounts to repay.
func DefaultEntryType(accountType AccountType) EntryType {
	if accountType == AccountLent {
		return EntryReceived
	}
	return EntryRepay
}

// IsPrincipal reports whether the entry adds to the outstanding principal.
func (t EntryType) IsPrincipal() bool {
	return t == EntryBorrow || t == EntryLent
}

// IsRepayment reports whether the entry settles part of the principal.
func (t EntryType) IsRepayment() bool {
	return t == EntryRepay || t == EntryReceived
}

// AccountTransaction is one dated entry in a lending account's history.
type AccountTransaction struct {
	ID             string          `json:"id"`
	AccountID      string          `json:"-"`
	Type           EntryType       `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentChannel string          `json:"paymentChannel"`
	Date           time.Time       `json:"date"`
	Note           string          `json:"note,omitempty"`
	AuditFields
}

// AccountSummary is the server-computed aggregate over an account's entries.
// Outstanding is the raw difference and may be negative; clamping to zero is
// a display concern only.
type AccountSummary struct {
	TotalBorrowed     decimal.Decimal `json:"totalBorrowed"`
	TotalRepaid       decimal.Decimal `json:"totalRepaid"`
	Outstanding       decimal.Decimal `json:"outstanding"`
	LastRepaymentDate *time.Time      `json:"lastRepaymentDate,omitempty"`
}

// Account is a lending/borrowing ledger against one counterparty.
type Account struct {
	ID           string               `json:"id"`
	UserID       string               `json:"-"`
	Name         string               `json:"name"`
	AccountType  AccountType          `json:"accountType"`
	Description  string               `json:"description,omitempty"`
	Summary      AccountSummary       `json:"summary"`
	Transactions []AccountTransaction `json:"transactions,omitempty"`
	AuditFields
}

// ComputeSummary folds an account's entries into its summary: principal
// entries accumulate TotalBorrowed, repayment entries accumulate TotalRepaid
// and advance LastRepaymentDate, and Outstanding is the raw difference.
func ComputeSummary(transactions []AccountTransaction) AccountSummary {
	summary := AccountSummary{
		TotalBorrowed: decimal.Zero,
		TotalRepaid:   decimal.Zero,
	}
	for _, txn := range transactions {
		switch {
		case txn.Type.IsPrincipal():
			summary.TotalBorrowed = summary.TotalBorrowed.Add(txn.Amount)
		case txn.Type.IsRepayment():
			summary.TotalRepaid = summary.TotalRepaid.Add(txn.Amount)
			if summary.LastRepaymentDate == nil || txn.Date.After(*summary.LastRepaymentDate) {
				date := txn.Date
				summary.LastRepaymentDate = &date
			}
		}
	}
	summary.Outstanding = summary.TotalBorrowed.Sub(summary.TotalRepaid)
	return summary
}

// SortTransactions orders entries for display: date descending, then
// createdAt descending, then id descending. The secondary keys make the
// order deterministic when dates collide.
func SortTransactions(transactions []AccountTransaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		a, b := transactions[i], transactions[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
}
