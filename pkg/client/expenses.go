package client

import (
	"context"

	"github.com/ramidarshan07/wealthtrack/internal/dto"
	"github.com/shopspring/decimal"
)

// Expenses wraps the expense endpoints.
type Expenses struct {
	client *Client
}

// NewExpenses creates the expenses API surface.
func NewExpenses(c *Client) *Expenses {
	return &Expenses{client: c}
}

// List returns the user's expenses, newest first.
func (e *Expenses) List(ctx context.Context) ([]dto.ExpenseResponse, error) {
	var expenses []dto.ExpenseResponse
	if _, err := e.client.get(ctx, "/expenses", &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// Create submits a new expense.
func (e *Expenses) Create(ctx context.Context, req dto.SaveExpenseRequest) (*dto.ExpenseResponse, error) {
	var expense dto.ExpenseResponse
	skipped, err := e.client.post(ctx, "/expenses", req, &expense)
	if err != nil || skipped {
		return nil, err
	}
	return &expense, nil
}

// Update replaces an expense.
func (e *Expenses) Update(ctx context.Context, id string, req dto.SaveExpenseRequest) (*dto.ExpenseResponse, error) {
	var expense dto.ExpenseResponse
	skipped, err := e.client.put(ctx, "/expenses/"+id, req, &expense)
	if err != nil || skipped {
		return nil, err
	}
	return &expense, nil
}

// Delete removes an expense.
func (e *Expenses) Delete(ctx context.Context, id string) error {
	_, err := e.client.delete(ctx, "/expenses/"+id)
	return err
}

// Stats returns per-payment-method credit/debit sums.
func (e *Expenses) Stats(ctx context.Context) (*dto.ExpenseStatsResponse, error) {
	var stats dto.ExpenseStatsResponse
	skipped, err := e.client.get(ctx, "/expenses/stats", &stats)
	if err != nil || skipped {
		return nil, err
	}
	return &stats, nil
}

// Savings wraps the savings endpoints.
type Savings struct {
	client *Client
}

// NewSavings creates the savings API surface.
func NewSavings(c *Client) *Savings {
	return &Savings{client: c}
}

// List returns the user's savings, newest first.
func (s *Savings) List(ctx context.Context) ([]dto.SavingResponse, error) {
	var savings []dto.SavingResponse
	if _, err := s.client.get(ctx, "/savings", &savings); err != nil {
		return nil, err
	}
	return savings, nil
}

// Create submits a new saving.
func (s *Savings) Create(ctx context.Context, req dto.SaveSavingRequest) (*dto.SavingResponse, error) {
	var saving dto.SavingResponse
	skipped, err := s.client.post(ctx, "/savings", req, &saving)
	if err != nil || skipped {
		return nil, err
	}
	return &saving, nil
}

// Update replaces a saving.
func (s *Savings) Update(ctx context.Context, id string, req dto.SaveSavingRequest) (*dto.SavingResponse, error) {
	var saving dto.SavingResponse
	skipped, err := s.client.put(ctx, "/savings/"+id, req, &saving)
	if err != nil || skipped {
		return nil, err
	}
	return &saving, nil
}

// Delete removes a saving.
func (s *Savings) Delete(ctx context.Context, id string) error {
	_, err := s.client.delete(ctx, "/savings/"+id)
	return err
}

// Total returns the sum of all saving amounts.
func (s *Savings) Total(ctx context.Context) (decimal.Decimal, error) {
	var res dto.SavingsTotalResponse
	if _, err := s.client.get(ctx, "/savings/total", &res); err != nil {
		return decimal.Zero, err
	}
	return res.Total, nil
}
