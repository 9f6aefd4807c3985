package client

import (
	"context"

	"github.com/ramidarshan07/wealthtrack/internal/dto"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Balances wraps the payment-method balance endpoints.
type Balances struct {
	client *Client
}

// NewBalances creates the balances API surface.
func NewBalances(c *Client) *Balances {
	return &Balances{client: c}
}

// List returns a balance row for every active payment method.
func (b *Balances) List(ctx context.Context) ([]dto.BalanceResponse, error) {
	var balances []dto.BalanceResponse
	if _, err := b.client.get(ctx, "/payment-method-balances", &balances); err != nil {
		return nil, err
	}
	return balances, nil
}

// Update pins a balance on a payment method.
func (b *Balances) Update(ctx context.Context, paymentMethodID string, balance decimal.Decimal) (*dto.BalanceResponse, error) {
	var res dto.BalanceResponse
	req := dto.UpdateBalanceRequest{Balance: balance}
	skipped, err := b.client.put(ctx, "/payment-method-balances/"+paymentMethodID, req, &res)
	if err != nil || skipped {
		return nil, err
	}
	return &res, nil
}

// DashboardRow is one payment method's merged dashboard line: the pinned
// balance (server state) plus credit/debit sums derived from expenses.
type DashboardRow struct {
	PaymentMethodID string
	Name            string
	Balance         decimal.Decimal
	Credit          decimal.Decimal
	Debit           decimal.Decimal
}

// Dashboard loads and merges the balance overview.
type Dashboard struct {
	balances *Balances
	expenses *Expenses
	stores   *Stores
}

// NewDashboard creates the dashboard loader.
func NewDashboard(balances *Balances, expenses *Expenses, stores *Stores) *Dashboard {
	return &Dashboard{balances: balances, expenses: expenses, stores: stores}
}

// Load fetches balances, expense stats and active payment methods
// concurrently, then merges them by payment method id. Every active payment
// method gets a row even with no balance pinned and no expenses recorded.
// The second return value is the total of all balances.
func (d *Dashboard) Load(ctx context.Context) ([]DashboardRow, decimal.Decimal, error) {
	var (
		balances []dto.BalanceResponse
		stats    *dto.ExpenseStatsResponse
		methods  []dto.ReferenceResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		balances, err = d.balances.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = d.expenses.Stats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		methods, err = d.stores.PaymentMethods.ListActive(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, decimal.Zero, err
	}

	balanceByID := make(map[string]dto.BalanceResponse, len(balances))
	for _, b := range balances {
		balanceByID[b.PaymentMethodID] = b
	}
	statByID := map[string]dto.PaymentMethodStatResponse{}
	if stats != nil {
		for _, s := range stats.PaymentMethodStats {
			statByID[s.PaymentMethodID] = s
		}
	}

	rows := make([]DashboardRow, 0, len(methods))
	total := decimal.Zero
	for _, pm := range methods {
		row := DashboardRow{
			PaymentMethodID: pm.ID,
			Name:            pm.Name,
			Balance:         decimal.Zero,
			Credit:          decimal.Zero,
			Debit:           decimal.Zero,
		}
		if b, ok := balanceByID[pm.ID]; ok {
			row.Balance = b.Balance
		}
		if s, ok := statByID[pm.ID]; ok {
			row.Credit = s.Credit
			row.Debit = s.Debit
		}
		total = total.Add(row.Balance)
		rows = append(rows, row)
	}
	return rows, total, nil
}
