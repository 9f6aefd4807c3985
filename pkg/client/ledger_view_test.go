package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	"github.com/ramidarshan07/wealthtrack/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ledgerServer is a stub accounts backend whose list payload can be swapped
// between refreshes.
type ledgerServer struct {
	listBody   atomic.Value // string
	detailHits atomic.Int32
	entryHits  atomic.Int32
}

func newLedgerServer(listBody string) (*ledgerServer, *httptest.Server) {
	ls := &ledgerServer{}
	ls.listBody.Store(listBody)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/accounts":
			fmt.Fprint(w, ls.listBody.Load().(string))
		case r.Method == http.MethodGet && len(r.URL.Path) > len("/accounts/"):
			ls.detailHits.Add(1)
			id := r.URL.Path[len("/accounts/"):]
			fmt.Fprintf(w, `{"data": {"id": %q, "name": "Detail", "accountType": "lent",
				"summary": {"totalBorrowed": "500", "totalRepaid": "200", "outstanding": "300"},
				"transactions": [{"id": "t1", "type": "lent", "amount": "500", "date": "2026-01-01T00:00:00Z", "createdAt": "2026-01-01T00:00:00Z"}]}}`, id)
		case r.Method == http.MethodPost:
			ls.entryHits.Add(1)
			fmt.Fprint(w, `{"data": {"id": "acc-a", "name": "Detail", "accountType": "lent",
				"summary": {"totalBorrowed": "500", "totalRepaid": "300", "outstanding": "200"}}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	return ls, server
}

const twoAccountsList = `{"data": [
	{"id": "acc-a", "name": "Ravi", "accountType": "lent", "summary": {"totalBorrowed": "500", "totalRepaid": "200", "outstanding": "300"}},
	{"id": "acc-b", "name": "Meena", "accountType": "borrowed", "summary": {"totalBorrowed": "100", "totalRepaid": "0", "outstanding": "100"}}
]}`

func newTestLedgerView(serverURL string) *LedgerView {
	return NewLedgerView(NewAccounts(New(serverURL, staticToken("tok"))))
}

func TestLedgerView_RefreshSelectsFirstAccount(t *testing.T) {
	_, server := newLedgerServer(twoAccountsList)
	defer server.Close()

	view := newTestLedgerView(server.URL)
	require.NoError(t, view.Refresh(context.Background()))

	assert.Len(t, view.Accounts, 2)
	require.NotNil(t, view.Selected)
	assert.Equal(t, "acc-a", view.Selected.ID)
	assert.False(t, view.LoadingList)
	assert.False(t, view.LoadingDetail)
}

func TestLedgerView_EmptyListClearsSelection(t *testing.T) {
	ls, server := newLedgerServer(twoAccountsList)
	defer server.Close()

	view := newTestLedgerView(server.URL)
	require.NoError(t, view.Refresh(context.Background()))
	require.NotNil(t, view.Selected)

	ls.listBody.Store(`{"data": []}`)
	require.NoError(t, view.Refresh(context.Background()))

	assert.Nil(t, view.Selected)
	assert.Empty(t, view.Accounts)
}

func TestLedgerView_VanishedSelectionFallsBackToFirst(t *testing.T) {
	ls, server := newLedgerServer(twoAccountsList)
	defer server.Close()

	view := newTestLedgerView(server.URL)
	require.NoError(t, view.Refresh(context.Background()))
	require.NoError(t, view.Select(context.Background(), "acc-b"))

	ls.listBody.Store(`{"data": [
		{"id": "acc-a", "name": "Ravi", "accountType": "lent", "summary": {"totalBorrowed": "500", "totalRepaid": "200", "outstanding": "300"}}
	]}`)
	require.NoError(t, view.Refresh(context.Background()))

	require.NotNil(t, view.Selected)
	assert.Equal(t, "acc-a", view.Selected.ID)
}

func TestLedgerView_SurvivingSelectionRefetchesDetail(t *testing.T) {
	ls, server := newLedgerServer(twoAccountsList)
	defer server.Close()

	view := newTestLedgerView(server.URL)
	require.NoError(t, view.Refresh(context.Background()))
	before := ls.detailHits.Load()

	require.NoError(t, view.Refresh(context.Background()))

	assert.Equal(t, "acc-a", view.Selected.ID)
	assert.Equal(t, before+1, ls.detailHits.Load(), "refresh should re-fetch the surviving selection's detail")
}

func TestLedgerView_EntryTypeHelpers(t *testing.T) {
	_, server := newLedgerServer(twoAccountsList)
	defer server.Close()

	view := newTestLedgerView(server.URL)
	require.NoError(t, view.Refresh(context.Background()))

	// acc-a is a lent account
	assert.Equal(t, domain.EntryReceived, view.DefaultEntryType())
	assert.Equal(t, []domain.EntryType{domain.EntryLent, domain.EntryReceived}, view.AllowedEntryTypes())

	require.NoError(t, view.Select(context.Background(), "acc-b"))
	// the detail stub always answers accountType lent, so re-select acc-a
	// semantics stay with the stubbed type
	assert.Equal(t, domain.EntryReceived, view.DefaultEntryType())
}

func TestLedgerView_AddEntryValidatesBeforeNetwork(t *testing.T) {
	ls, server := newLedgerServer(twoAccountsList)
	defer server.Close()

	view := newTestLedgerView(server.URL)
	require.NoError(t, view.Refresh(context.Background()))

	err := view.AddEntry(context.Background(), dto.CreateTransactionRequest{
		Amount: decimal.Zero,
		Type:   "received",
		Date:   "2026-03-01",
	})
	require.Error(t, err)
	assert.Equal(t, int32(0), ls.entryHits.Load(), "invalid amount must not reach the network")

	err = view.AddEntry(context.Background(), dto.CreateTransactionRequest{
		Amount: decimal.NewFromInt(100),
		Type:   "repay", // wrong side for a lent account
		Date:   "2026-03-01",
	})
	require.Error(t, err)
	assert.Equal(t, int32(0), ls.entryHits.Load(), "invalid entry type must not reach the network")

	err = view.AddEntry(context.Background(), dto.CreateTransactionRequest{
		Amount: decimal.NewFromInt(100),
		Type:   "received",
		Date:   "2026-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), ls.entryHits.Load())
	assert.True(t, view.Selected.Summary.TotalRepaid.Equal(decimal.NewFromInt(300)),
		"selection should be replaced by the refreshed account")
}

func TestFormatOutstanding_ClampsNegativeToZero(t *testing.T) {
	assert.Equal(t, "₹ 0.00", FormatOutstanding(decimal.NewFromInt(-50)))
	assert.Equal(t, "₹ 50.00", FormatOutstanding(decimal.NewFromInt(50)))
	assert.Equal(t, "₹ 0.00", FormatOutstanding(decimal.Zero))
}
