package client

import (
	"testing"
	"time"

	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	"github.com/ramidarshan07/wealthtrack/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleExpenses() []dto.ExpenseResponse {
	return []dto.ExpenseResponse{
		{
			ID:            "e1",
			Amount:        decimal.NewFromInt(100),
			Category:      dto.RefResponse{ID: "cat-food", Name: "Food"},
			AmountType:    dto.RefResponse{ID: "at-debit", Name: "Cash Debit"},
			PaymentMethod: dto.RefResponse{ID: "pm-upi", Name: "UPI"},
			Date:          day("2026-01-10"),
		},
		{
			ID:            "e2",
			Amount:        decimal.NewFromInt(5000),
			Category:      dto.RefResponse{ID: "cat-salary", Name: "Salary"},
			AmountType:    dto.RefResponse{ID: "at-income", Name: "Monthly Income"},
			PaymentMethod: dto.RefResponse{ID: "pm-bank", Name: "Bank"},
			Date:          day("2026-01-31"),
		},
		{
			ID:            "e3",
			Amount:        decimal.NewFromInt(250),
			Category:      dto.RefResponse{ID: "cat-food", Name: "Food"},
			AmountType:    dto.RefResponse{ID: "at-debit", Name: "Cash Debit"},
			PaymentMethod: dto.RefResponse{ID: "pm-bank", Name: "Bank"},
			Date:          day("2026-02-05"),
		},
	}
}

func TestFilterExpenses_ZeroFilterReturnsAll(t *testing.T) {
	expenses := sampleExpenses()
	got := FilterExpenses(expenses, Filter{})
	assert.Equal(t, expenses, got)
}

func TestFilterExpenses_SingleField(t *testing.T) {
	got := FilterExpenses(sampleExpenses(), Filter{CategoryID: "cat-food"})
	assert.Len(t, got, 2)
	assert.Equal(t, "e1", got[0].ID)
	assert.Equal(t, "e3", got[1].ID)
}

func TestFilterExpenses_AndComposition(t *testing.T) {
	got := FilterExpenses(sampleExpenses(), Filter{
		CategoryID:      "cat-food",
		PaymentMethodID: "pm-bank",
	})
	assert.Len(t, got, 1)
	assert.Equal(t, "e3", got[0].ID)
}

func TestFilterExpenses_ByClass(t *testing.T) {
	credit := FilterExpenses(sampleExpenses(), Filter{Class: domain.ClassCredit})
	assert.Len(t, credit, 1)
	assert.Equal(t, "e2", credit[0].ID)

	debit := FilterExpenses(sampleExpenses(), Filter{Class: domain.ClassDebit})
	assert.Len(t, debit, 2)
}

func TestFilterExpenses_DateRangeInclusive(t *testing.T) {
	from := day("2026-01-10")
	to := day("2026-01-31")
	got := FilterExpenses(sampleExpenses(), Filter{From: &from, To: &to})
	assert.Len(t, got, 2)
	assert.Equal(t, "e1", got[0].ID) // on the start bound
	assert.Equal(t, "e2", got[1].ID) // on the end bound
}

func TestFilterExpenses_ClearRestoresFullList(t *testing.T) {
	expenses := sampleExpenses()

	narrowed := FilterExpenses(expenses, Filter{CategoryID: "cat-salary"})
	assert.Len(t, narrowed, 1)

	restored := FilterExpenses(expenses, Filter{})
	assert.Equal(t, expenses, restored)
}

func TestFilterSavings_ByAmountType(t *testing.T) {
	savings := []dto.SavingResponse{
		{ID: "s1", AmountType: dto.RefResponse{ID: "at-fd"}, Date: day("2026-01-01")},
		{ID: "s2", AmountType: dto.RefResponse{ID: "at-rd"}, Date: day("2026-01-02")},
	}
	got := FilterSavings(savings, Filter{AmountTypeID: "at-rd"})
	assert.Len(t, got, 1)
	assert.Equal(t, "s2", got[0].ID)
}
