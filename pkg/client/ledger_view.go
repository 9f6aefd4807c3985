package client

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	"github.com/ramidarshan07/wealthtrack/internal/dto"
	"github.com/ramidarshan07/wealthtrack/internal/utils"
	"github.com/shopspring/decimal"
)

// Accounts wraps the lending-accounts endpoints.
type Accounts struct {
	client *Client
}

// NewAccounts creates the accounts API surface.
func NewAccounts(c *Client) *Accounts {
	return &Accounts{client: c}
}

// List returns account summaries (no transaction histories).
func (a *Accounts) List(ctx context.Context) ([]dto.AccountResponse, error) {
	var accounts []dto.AccountResponse
	if _, err := a.client.get(ctx, "/accounts", &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Get returns one account with its full entry history.
func (a *Accounts) Get(ctx context.Context, id string) (*dto.AccountResponse, error) {
	var account dto.AccountResponse
	skipped, err := a.client.get(ctx, "/accounts/"+id, &account)
	if err != nil || skipped {
		return nil, err
	}
	return &account, nil
}

// Create opens an account with its opening entry.
func (a *Accounts) Create(ctx context.Context, req dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	var account dto.AccountResponse
	skipped, err := a.client.post(ctx, "/accounts", req, &account)
	if err != nil || skipped {
		return nil, err
	}
	return &account, nil
}

// AddEntry records a new entry and returns the refreshed account.
func (a *Accounts) AddEntry(ctx context.Context, accountID string, req dto.CreateTransactionRequest) (*dto.AccountResponse, error) {
	var account dto.AccountResponse
	skipped, err := a.client.post(ctx, "/accounts/"+accountID+"/transactions", req, &account)
	if err != nil || skipped {
		return nil, err
	}
	return &account, nil
}

// DeleteEntry removes one entry and returns the account with its recomputed
// summary.
func (a *Accounts) DeleteEntry(ctx context.Context, accountID, entryID string) (*dto.AccountResponse, error) {
	var account dto.AccountResponse
	skipped, err := a.client.do(ctx, http.MethodDelete, "/accounts/"+accountID+"/transactions/"+entryID, nil, &account, true)
	if err != nil || skipped {
		return nil, err
	}
	return &account, nil
}

// LedgerView is the view model behind the lending-accounts screen: the
// account list on one side, the selected account's detail on the other, each
// with its own loading flag.
type LedgerView struct {
	api *Accounts

	Accounts []dto.AccountResponse
	Selected *dto.AccountResponse

	LoadingList   bool
	LoadingDetail bool
}

// NewLedgerView creates a ledger view over the accounts API.
func NewLedgerView(api *Accounts) *LedgerView {
	return &LedgerView{api: api}
}

// selectedID returns the id of the current selection, or "".
func (v *LedgerView) selectedID() string {
	if v.Selected == nil {
		return ""
	}
	return v.Selected.ID
}

// Refresh reloads the account list and reconciles the selection: an empty
// list clears it, a vanished selection falls back to the first account, and
// a surviving selection gets its detail re-fetched.
func (v *LedgerView) Refresh(ctx context.Context) error {
	v.LoadingList = true
	accounts, err := v.api.List(ctx)
	v.LoadingList = false
	if err != nil {
		return err
	}
	v.Accounts = accounts

	if len(accounts) == 0 {
		v.Selected = nil
		return nil
	}

	selected := v.selectedID()
	stillThere := slices.ContainsFunc(accounts, func(a dto.AccountResponse) bool {
		return a.ID == selected
	})
	if !stillThere {
		selected = accounts[0].ID
	}
	return v.Select(ctx, selected)
}

// Select loads the detail of one account and makes it the selection.
func (v *LedgerView) Select(ctx context.Context, id string) error {
	v.LoadingDetail = true
	account, err := v.api.Get(ctx, id)
	v.LoadingDetail = false
	if err != nil {
		return err
	}
	v.Selected = account
	return nil
}

// AllowedEntryTypes returns the entry types the selected account accepts.
func (v *LedgerView) AllowedEntryTypes() []domain.EntryType {
	if v.Selected == nil {
		return nil
	}
	return domain.AllowedEntryTypes(domain.AccountType(v.Selected.AccountType))
}

// DefaultEntryType returns the pre-filled type for a new entry form.
func (v *LedgerView) DefaultEntryType() domain.EntryType {
	if v.Selected == nil {
		return ""
	}
	return domain.DefaultEntryType(domain.AccountType(v.Selected.AccountType))
}

// AddEntry validates the entry locally, submits it and replaces the
// selection with the refreshed account. Validation failures never reach the
// network.
func (v *LedgerView) AddEntry(ctx context.Context, req dto.CreateTransactionRequest) error {
	if v.Selected == nil {
		return fmt.Errorf("no account selected")
	}
	if !req.Amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero")
	}
	if !slices.Contains(v.AllowedEntryTypes(), domain.EntryType(req.Type)) {
		return fmt.Errorf("entry type %q is not valid for a %s account", req.Type, v.Selected.AccountType)
	}

	account, err := v.api.AddEntry(ctx, v.Selected.ID, req)
	if err != nil {
		return err
	}
	if account != nil {
		v.Selected = account
	}
	return nil
}

// DeleteEntry removes one entry; the server's refreshed account (with its
// recomputed summary) replaces the selection.
func (v *LedgerView) DeleteEntry(ctx context.Context, entryID string) error {
	if v.Selected == nil {
		return fmt.Errorf("no account selected")
	}
	account, err := v.api.DeleteEntry(ctx, v.Selected.ID, entryID)
	if err != nil {
		return err
	}
	if account != nil {
		v.Selected = account
	}
	return nil
}

// FormatOutstanding renders an outstanding amount for display, clamping
// negatives (overpaid accounts) to zero. The raw value in the data is left
// alone.
func FormatOutstanding(outstanding decimal.Decimal) string {
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}
	return utils.FormatINR(outstanding)
}
