package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ramidarshan07/wealthtrack/internal/apperrors"
	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	portsrepo "github.com/ramidarshan07/wealthtrack/internal/core/ports/repositories"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

// selectExpense joins the reference tables so every row comes back with the
// names the clients render.
const selectExpense = `
	SELECT e.id, e.user_id, e.amount,
	       e.category_id, c.name,
	       e.amount_type_id, at.name,
	       e.payment_method_id, pm.name,
	       e.date, e.description, e.created_at, e.updated_at
	FROM expenses e
	JOIN categories c ON c.id = e.category_id
	JOIN amount_types at ON at.id = e.amount_type_id
	JOIN payment_methods pm ON pm.id = e.payment_method_id
`

func (r *PgxExpenseRepository) Save(ctx context.Context, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (id, user_id, amount, category_id, amount_type_id, payment_method_id, date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		expense.ID, expense.UserID, expense.Amount,
		expense.Category.ID, expense.AmountType.ID, expense.PaymentMethod.ID,
		expense.Date, expense.Description, expense.CreatedAt, expense.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) Update(ctx context.Context, expense domain.Expense) error {
	query := `
		UPDATE expenses
		SET amount = $1, category_id = $2, amount_type_id = $3, payment_method_id = $4,
		    date = $5, description = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		expense.Amount, expense.Category.ID, expense.AmountType.ID, expense.PaymentMethod.ID,
		expense.Date, expense.Description, expense.UpdatedAt, expense.ID, expense.UserID)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) Delete(ctx context.Context, userID, expenseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1 AND user_id = $2;`, expenseID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) FindByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	query := selectExpense + ` WHERE e.id = $1 AND e.user_id = $2;`

	expense, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	return expense, nil
}

func (r *PgxExpenseRepository) List(ctx context.Context, userID string) ([]domain.Expense, error) {
	query := selectExpense + ` WHERE e.user_id = $1 ORDER BY e.date DESC, e.created_at DESC, e.id DESC;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense rows: %w", err)
	}
	return expenses, nil
}

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var e domain.Expense
	err := row.Scan(
		&e.ID, &e.UserID, &e.Amount,
		&e.Category.ID, &e.Category.Name,
		&e.AmountType.ID, &e.AmountType.Name,
		&e.PaymentMethod.ID, &e.PaymentMethod.Name,
		&e.Date, &e.Description, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
