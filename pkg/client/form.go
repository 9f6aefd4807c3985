package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/ramidarshan07/wealthtrack/internal/dto"
	"github.com/shopspring/decimal"
)

// FormState is the modal form's lifecycle state.
type FormState int

const (
	FormClosed FormState = iota
	FormOpen
	FormSubmitting
)

// FormMode distinguishes create from edit.
type FormMode int

const (
	FormCreate FormMode = iota
	FormEdit
)

// TransactionInput holds the raw field values of the expense/saving form,
// as the user typed them.
type TransactionInput struct {
	Amount          string
	CategoryID      string
	AmountTypeID    string
	PaymentMethodID string
	Date            string // YYYY-MM-DD
	Description     string
}

// validate checks the input locally and returns the parsed amount. A form
// that fails here never touches the network.
func (in TransactionInput) validate() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(in.Amount))
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount must be a number")
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than zero")
	}
	if in.CategoryID == "" || in.AmountTypeID == "" || in.PaymentMethodID == "" {
		return decimal.Zero, fmt.Errorf("category, amount type and payment method are required")
	}
	if _, err := dto.ParseDate(in.Date); err != nil {
		return decimal.Zero, fmt.Errorf("date must be YYYY-MM-DD")
	}
	return amount, nil
}

// ModalForm is the create/edit modal's state machine:
// closed -> open (create or edit) -> submitting -> closed on success,
// or back to open with an inline error on failure. A successful submit
// triggers the reload callback so the list re-fetches.
type ModalForm[R any] struct {
	state     FormState
	mode      FormMode
	editingID string

	Input TransactionInput
	Err   string

	buildReq func(TransactionInput, decimal.Decimal) R
	create   func(context.Context, R) error
	update   func(context.Context, string, R) error
	reload   func(context.Context) error
}

// NewExpenseForm creates the modal form for expenses.
func NewExpenseForm(api *Expenses, reload func(context.Context) error) *ModalForm[dto.SaveExpenseRequest] {
	return &ModalForm[dto.SaveExpenseRequest]{
		buildReq: buildSaveExpenseRequest,
		create: func(ctx context.Context, req dto.SaveExpenseRequest) error {
			_, err := api.Create(ctx, req)
			return err
		},
		update: func(ctx context.Context, id string, req dto.SaveExpenseRequest) error {
			_, err := api.Update(ctx, id, req)
			return err
		},
		reload: reload,
	}
}

// NewSavingForm creates the modal form for savings.
func NewSavingForm(api *Savings, reload func(context.Context) error) *ModalForm[dto.SaveSavingRequest] {
	return &ModalForm[dto.SaveSavingRequest]{
		buildReq: buildSaveSavingRequest,
		create: func(ctx context.Context, req dto.SaveSavingRequest) error {
			_, err := api.Create(ctx, req)
			return err
		},
		update: func(ctx context.Context, id string, req dto.SaveSavingRequest) error {
			_, err := api.Update(ctx, id, req)
			return err
		},
		reload: reload,
	}
}

func buildSaveExpenseRequest(in TransactionInput, amount decimal.Decimal) dto.SaveExpenseRequest {
	return dto.SaveExpenseRequest{
		Amount:        amount,
		Category:      in.CategoryID,
		AmountType:    in.AmountTypeID,
		PaymentMethod: in.PaymentMethodID,
		Date:          in.Date,
		Description:   in.Description,
	}
}

func buildSaveSavingRequest(in TransactionInput, amount decimal.Decimal) dto.SaveSavingRequest {
	return dto.SaveSavingRequest{
		Amount:        amount,
		Category:      in.CategoryID,
		AmountType:    in.AmountTypeID,
		PaymentMethod: in.PaymentMethodID,
		Date:          in.Date,
		Description:   in.Description,
	}
}

// State returns the current lifecycle state.
func (f *ModalForm[R]) State() FormState { return f.state }

// Mode returns create/edit; meaningful only while open.
func (f *ModalForm[R]) Mode() FormMode { return f.mode }

// OpenCreate opens an empty create form.
func (f *ModalForm[R]) OpenCreate() {
	f.state = FormOpen
	f.mode = FormCreate
	f.editingID = ""
	f.Input = TransactionInput{}
	f.Err = ""
}

// OpenEdit opens the form pre-filled with an existing record.
func (f *ModalForm[R]) OpenEdit(id string, input TransactionInput) {
	f.state = FormOpen
	f.mode = FormEdit
	f.editingID = id
	f.Input = input
	f.Err = ""
}

// Close dismisses the form without submitting.
func (f *ModalForm[R]) Close() {
	f.state = FormClosed
	f.Err = ""
}

// Submit validates the input, issues the create or update, and on success
// reloads the list and closes. On failure the form stays open with the
// error inline.
func (f *ModalForm[R]) Submit(ctx context.Context) error {
	if f.state != FormOpen {
		return fmt.Errorf("form is not open")
	}

	amount, err := f.Input.validate()
	if err != nil {
		f.Err = err.Error()
		return err
	}

	f.state = FormSubmitting
	req := f.buildReq(f.Input, amount)
	if f.mode == FormEdit {
		err = f.update(ctx, f.editingID, req)
	} else {
		err = f.create(ctx, req)
	}
	if err != nil {
		f.state = FormOpen
		f.Err = err.Error()
		return err
	}

	if f.reload != nil {
		if err := f.reload(ctx); err != nil {
			// The write succeeded; a reload failure leaves the stale list to
			// the caller but must not reopen the form.
			f.state = FormClosed
			return err
		}
	}
	f.state = FormClosed
	f.Err = ""
	return nil
}

// CategoryPicker is the search-as-you-type category selector. Typing a query
// that no longer matches the selected category's name clears the selection,
// so a submit always reflects an explicit pick.
type CategoryPicker struct {
	store *ReferenceStore

	Query        string
	SelectedID   string
	selectedName string
}

// NewCategoryPicker creates a picker over the categories store.
func NewCategoryPicker(store *ReferenceStore) *CategoryPicker {
	return &CategoryPicker{store: store}
}

// SetQuery updates the search text. Diverging from the selected name drops
// the selection.
func (p *CategoryPicker) SetQuery(query string) {
	p.Query = query
	if p.SelectedID != "" && query != p.selectedName {
		p.SelectedID = ""
		p.selectedName = ""
	}
}

// Suggestions returns the active categories whose name contains the query,
// case-insensitively. An empty query matches everything.
func (p *CategoryPicker) Suggestions(ctx context.Context) ([]dto.ReferenceResponse, error) {
	active, err := p.store.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if p.Query == "" {
		return active, nil
	}
	needle := strings.ToLower(p.Query)
	matches := make([]dto.ReferenceResponse, 0, len(active))
	for _, ref := range active {
		if strings.Contains(strings.ToLower(ref.Name), needle) {
			matches = append(matches, ref)
		}
	}
	return matches, nil
}

// Select picks one category and mirrors its name into the query text.
func (p *CategoryPicker) Select(ref dto.ReferenceResponse) {
	p.SelectedID = ref.ID
	p.selectedName = ref.Name
	p.Query = ref.Name
}

// Valid reports whether an explicit selection is present.
func (p *CategoryPicker) Valid() bool {
	return p.SelectedID != ""
}
