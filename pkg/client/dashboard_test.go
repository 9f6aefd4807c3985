package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/payment-method-balances":
			w.Write([]byte(`{"data": [
				{"paymentMethodId": "pm-upi", "name": "UPI", "balance": "1200.50"},
				{"paymentMethodId": "pm-card", "name": "Card", "balance": "-30"}
			]}`))
		case "/expenses/stats":
			w.Write([]byte(`{"data": {"paymentMethodStats": [
				{"paymentMethodId": "pm-upi", "credit": "5000", "debit": "700"}
			]}}`))
		case "/payment-methods":
			w.Write([]byte(`{"data": [
				{"id": "pm-upi", "name": "UPI", "status": "active"},
				{"id": "pm-card", "name": "Card", "status": "active"},
				{"id": "pm-cash", "name": "Cash", "status": "active"},
				{"id": "pm-old", "name": "Old Wallet", "status": "inactive"}
			]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestDashboard_LoadMergesByPaymentMethod(t *testing.T) {
	server := newDashboardServer()
	defer server.Close()

	c := New(server.URL, staticToken("tok"))
	dashboard := NewDashboard(NewBalances(c), NewExpenses(c), NewStores(c))

	rows, total, err := dashboard.Load(context.Background())
	require.NoError(t, err)

	// Every active payment method gets a row; inactive ones do not.
	require.Len(t, rows, 3)
	assert.Equal(t, "pm-upi", rows[0].PaymentMethodID)
	assert.True(t, rows[0].Balance.Equal(decimal.RequireFromString("1200.50")))
	assert.True(t, rows[0].Credit.Equal(decimal.NewFromInt(5000)))
	assert.True(t, rows[0].Debit.Equal(decimal.NewFromInt(700)))

	// Pinned balance but no expense stats.
	assert.Equal(t, "pm-card", rows[1].PaymentMethodID)
	assert.True(t, rows[1].Balance.Equal(decimal.NewFromInt(-30)))
	assert.True(t, rows[1].Credit.IsZero())

	// Never pinned, no stats: zero row.
	assert.Equal(t, "pm-cash", rows[2].PaymentMethodID)
	assert.True(t, rows[2].Balance.IsZero())

	assert.True(t, total.Equal(decimal.RequireFromString("1170.50")))
}

func TestDashboard_PropagatesFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "boom"}`))
	}))
	defer server.Close()

	c := New(server.URL, staticToken("tok"))
	dashboard := NewDashboard(NewBalances(c), NewExpenses(c), NewStores(c))

	_, _, err := dashboard.Load(context.Background())
	require.Error(t, err)
}
