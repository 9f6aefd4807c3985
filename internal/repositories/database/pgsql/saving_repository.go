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

type PgxSavingRepository struct {
	BaseRepository
}

func newPgxSavingRepository(pool *pgxpool.Pool) portsrepo.SavingRepository {
	return &PgxSavingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SavingRepository = (*PgxSavingRepository)(nil)

const selectSaving = `
	SELECT s.id, s.user_id, s.amount,
	       s.category_id, c.name,
	       s.amount_type_id, at.name,
	       s.payment_method_id, pm.name,
	       s.date, s.description, s.created_at, s.updated_at
	FROM savings s
	JOIN categories c ON c.id = s.category_id
	JOIN amount_types at ON at.id = s.amount_type_id
	JOIN payment_methods pm ON pm.id = s.payment_method_id
`

func (r *PgxSavingRepository) Save(ctx context.Context, saving domain.Saving) error {
	query := `
		INSERT INTO savings (id, user_id, amount, category_id, amount_type_id, payment_method_id, date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		saving.ID, saving.UserID, saving.Amount,
		saving.Category.ID, saving.AmountType.ID, saving.PaymentMethod.ID,
		saving.Date, saving.Description, saving.CreatedAt, saving.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert saving: %w", err)
	}
	return nil
}

func (r *PgxSavingRepository) Update(ctx context.Context, saving domain.Saving) error {
	query := `
		UPDATE savings
		SET amount = $1, category_id = $2, amount_type_id = $3, payment_method_id = $4,
		    date = $5, description = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		saving.Amount, saving.Category.ID, saving.AmountType.ID, saving.PaymentMethod.ID,
		saving.Date, saving.Description, saving.UpdatedAt, saving.ID, saving.UserID)
	if err != nil {
		return fmt.Errorf("failed to update saving: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSavingRepository) Delete(ctx context.Context, userID, savingID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM savings WHERE id = $1 AND user_id = $2;`, savingID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete saving: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSavingRepository) FindByID(ctx context.Context, userID, savingID string) (*domain.Saving, error) {
	query := selectSaving + ` WHERE s.id = $1 AND s.user_id = $2;`

	saving, err := scanSaving(r.Pool.QueryRow(ctx, query, savingID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find saving %s: %w", savingID, err)
	}
	return saving, nil
}

func (r *PgxSavingRepository) List(ctx context.Context, userID string) ([]domain.Saving, error) {
	query := selectSaving + ` WHERE s.user_id = $1 ORDER BY s.date DESC, s.created_at DESC, s.id DESC;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query savings: %w", err)
	}
	defer rows.Close()

	savings := []domain.Saving{}
	for rows.Next() {
		saving, err := scanSaving(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saving row: %w", err)
		}
		savings = append(savings, *saving)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saving rows: %w", err)
	}
	return savings, nil
}

func scanSaving(row pgx.Row) (*domain.Saving, error) {
	var s domain.Saving
	err := row.Scan(
		&s.ID, &s.UserID, &s.Amount,
		&s.Category.ID, &s.Category.Name,
		&s.AmountType.ID, &s.AmountType.Name,
		&s.PaymentMethod.ID, &s.PaymentMethod.Name,
		&s.Date, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
