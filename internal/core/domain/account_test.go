package domain_test

import (
	"testing"
	"time"

	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeSummary(t *testing.T) {
	txns := []domain.AccountTransaction{
		{Type: domain.EntryBorrow, Amount: decimal.NewFromInt(500), Date: date("2025-01-01")},
		{Type: domain.EntryRepay, Amount: decimal.NewFromInt(200), Date: date("2025-02-01")},
		{Type: domain.EntryRepay, Amount: decimal.NewFromInt(100), Date: date("2025-01-15")},
	}

	summary := domain.ComputeSummary(txns)

	assert.True(t, summary.TotalBorrowed.Equal(decimal.NewFromInt(500)), "totalBorrowed: %s", summary.TotalBorrowed)
	assert.True(t, summary.TotalRepaid.Equal(decimal.NewFromInt(300)), "totalRepaid: %s", summary.TotalRepaid)
	assert.True(t, summary.Outstanding.Equal(decimal.NewFromInt(200)), "outstanding: %s", summary.Outstanding)
	require.NotNil(t, summary.LastRepaymentDate)
	assert.Equal(t, date("2025-02-01"), *summary.LastRepaymentDate)
}

func TestComputeSummary_OverpaidStaysNegative(t *testing.T) {
	txns := []domain.AccountTransaction{
		{Type: domain.EntryLent, Amount: decimal.NewFromInt(100), Date: date("2025-01-01")},
		{Type: domain.EntryReceived, Amount: decimal.NewFromInt(150), Date: date("2025-03-01")},
	}

	summary := domain.ComputeSummary(txns)

	assert.True(t, summary.Outstanding.Equal(decimal.NewFromInt(-50)), "raw outstanding must not be clamped")
}

func TestComputeSummary_Empty(t *testing.T) {
	summary := domain.ComputeSummary(nil)

	assert.True(t, summary.TotalBorrowed.IsZero())
	assert.True(t, summary.TotalRepaid.IsZero())
	assert.True(t, summary.Outstanding.IsZero())
	assert.Nil(t, summary.LastRepaymentDate)
}

func TestSortTransactions_DateDescendingWithDeterministicTieBreak(t *testing.T) {
	created := date("2025-01-01")
	txns := []domain.AccountTransaction{
		{ID: "a", Date: date("2025-01-10"), AuditFields: domain.AuditFields{CreatedAt: created}},
		{ID: "c", Date: date("2025-01-20"), AuditFields: domain.AuditFields{CreatedAt: created}},
		{ID: "b", Date: date("2025-01-20"), AuditFields: domain.AuditFields{CreatedAt: created}},
		{ID: "d", Date: date("2025-01-20"), AuditFields: domain.AuditFields{CreatedAt: created.Add(time.Hour)}},
	}

	domain.SortTransactions(txns)

	got := []string{txns[0].ID, txns[1].ID, txns[2].ID, txns[3].ID}
	assert.Equal(t, []string{"d", "c", "b", "a"}, got)

	// Re-sorting an already sorted slice must not reorder equal dates.
	domain.SortTransactions(txns)
	again := []string{txns[0].ID, txns[1].ID, txns[2].ID, txns[3].ID}
	assert.Equal(t, got, again)
}

func TestEntryTypeSets(t *testing.T) {
	assert.Equal(t, []domain.EntryType{domain.EntryLent, domain.EntryReceived}, domain.AllowedEntryTypes(domain.AccountLent))
	assert.Equal(t, []domain.EntryType{domain.EntryBorrow, domain.EntryRepay}, domain.AllowedEntryTypes(domain.AccountBorrowed))
	assert.Equal(t, domain.EntryReceived, domain.DefaultEntryType(domain.AccountLent))
	assert.Equal(t, domain.EntryRepay, domain.DefaultEntryType(domain.AccountBorrowed))
}

func TestAggregateByPaymentMethod(t *testing.T) {
	expenses := []domain.Expense{
		{PaymentMethod: domain.Ref{ID: "pm1"}, AmountType: domain.Ref{Name: "Income"}, Amount: decimal.NewFromInt(100)},
		{PaymentMethod: domain.Ref{ID: "pm1"}, AmountType: domain.Ref{Name: "Cash Debit"}, Amount: decimal.NewFromInt(40)},
		{PaymentMethod: domain.Ref{ID: "pm2"}, AmountType: domain.Ref{Name: "Cash"}, Amount: decimal.NewFromInt(25)},
	}

	stats := domain.AggregateByPaymentMethod(expenses)

	require.Len(t, stats, 2)
	assert.Equal(t, "pm1", stats[0].PaymentMethodID)
	assert.True(t, stats[0].Credit.Equal(decimal.NewFromInt(100)))
	assert.True(t, stats[0].Debit.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, "pm2", stats[1].PaymentMethodID)
	assert.True(t, stats[1].Credit.IsZero())
	assert.True(t, stats[1].Debit.Equal(decimal.NewFromInt(25)))
}
