package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModalForm_Lifecycle(t *testing.T) {
	var createHits, reloadHits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		createHits.Add(1)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data": {"id": "e1"}}`))
	}))
	defer server.Close()

	api := NewExpenses(New(server.URL, staticToken("tok")))
	form := NewExpenseForm(api, func(ctx context.Context) error {
		reloadHits.Add(1)
		return nil
	})

	assert.Equal(t, FormClosed, form.State())

	form.OpenCreate()
	assert.Equal(t, FormOpen, form.State())
	assert.Equal(t, FormCreate, form.Mode())

	form.Input = TransactionInput{
		Amount:          "250.50",
		CategoryID:      "c1",
		AmountTypeID:    "a1",
		PaymentMethodID: "p1",
		Date:            "2026-02-10",
	}
	require.NoError(t, form.Submit(context.Background()))

	assert.Equal(t, FormClosed, form.State())
	assert.Equal(t, int32(1), createHits.Load())
	assert.Equal(t, int32(1), reloadHits.Load(), "successful submit should re-fetch the list")
}

func TestModalForm_InvalidAmountNeverReachesNetwork(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	api := NewExpenses(New(server.URL, staticToken("tok")))
	form := NewExpenseForm(api, nil)
	form.OpenCreate()

	for _, amount := range []string{"", "abc", "0", "-5"} {
		form.Input = TransactionInput{
			Amount:          amount,
			CategoryID:      "c1",
			AmountTypeID:    "a1",
			PaymentMethodID: "p1",
			Date:            "2026-02-10",
		}
		err := form.Submit(context.Background())
		require.Error(t, err, "amount %q should be rejected", amount)
		assert.Equal(t, FormOpen, form.State(), "form stays open on validation failure")
		assert.NotEmpty(t, form.Err)
	}
	assert.Equal(t, int32(0), hits.Load())
}

func TestModalForm_ServerErrorKeepsFormOpen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "category not found"}`))
	}))
	defer server.Close()

	api := NewExpenses(New(server.URL, staticToken("tok")))
	form := NewExpenseForm(api, nil)
	form.OpenCreate()
	form.Input = TransactionInput{
		Amount:          "100",
		CategoryID:      "ghost",
		AmountTypeID:    "a1",
		PaymentMethodID: "p1",
		Date:            "2026-02-10",
	}

	err := form.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, FormOpen, form.State())
	assert.Contains(t, form.Err, "category not found")
}

func TestModalForm_EditSubmitsUpdate(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.Write([]byte(`{"data": {"id": "e7"}}`))
	}))
	defer server.Close()

	api := NewExpenses(New(server.URL, staticToken("tok")))
	form := NewExpenseForm(api, nil)
	form.OpenEdit("e7", TransactionInput{
		Amount:          "75",
		CategoryID:      "c1",
		AmountTypeID:    "a1",
		PaymentMethodID: "p1",
		Date:            "2026-02-11",
	})

	require.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/expenses/e7", path)
}

func TestCategoryPicker_QueryDivergenceClearsSelection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [
			{"id": "c1", "name": "Food", "status": "active"},
			{"id": "c2", "name": "Fuel", "status": "active"},
			{"id": "c3", "name": "Closed", "status": "inactive"}
		]}`))
	}))
	defer server.Close()

	stores := NewStores(New(server.URL, staticToken("tok")))
	picker := NewCategoryPicker(stores.Categories)
	ctx := context.Background()

	picker.SetQuery("f")
	suggestions, err := picker.Suggestions(ctx)
	require.NoError(t, err)
	assert.Len(t, suggestions, 2, "matching is case-insensitive and excludes inactive")

	picker.Select(suggestions[0])
	assert.True(t, picker.Valid())
	assert.Equal(t, "Food", picker.Query)

	// Typing over the selected name drops the selection.
	picker.SetQuery("Foo")
	assert.False(t, picker.Valid())

	// Re-selecting restores it.
	picker.Select(suggestions[0])
	assert.True(t, picker.Valid())
}
