package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ramidarshan07/wealthtrack/internal/apperrors"
	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	portsrepo "github.com/ramidarshan07/wealthtrack/internal/core/ports/repositories"
)

// uniqueViolation is the postgres error code for duplicate keys.
const uniqueViolation = "23505"

// PgxReferenceRepository persists one reference-data collection. The three
// collections share a schema, so one implementation is parameterized by
// table name.
type PgxReferenceRepository struct {
	BaseRepository
	table string
}

func newPgxReferenceRepository(pool *pgxpool.Pool, table string) portsrepo.ReferenceRepository {
	return &PgxReferenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
		table:          table,
	}
}

var _ portsrepo.ReferenceRepository = (*PgxReferenceRepository)(nil)

func (r *PgxReferenceRepository) Save(ctx context.Context, ref domain.Reference) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, r.table)

	_, err := r.Pool.Exec(ctx, query,
		ref.ID, ref.UserID, ref.Name, ref.Status, ref.CreatedAt, ref.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s %q already exists", apperrors.ErrDuplicate, r.table, ref.Name)
		}
		return fmt.Errorf("failed to insert into %s: %w", r.table, err)
	}
	return nil
}

func (r *PgxReferenceRepository) Rename(ctx context.Context, userID, refID, name string) (*domain.Reference, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET name = $1, updated_at = now()
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, name, status, created_at, updated_at;
	`, r.table)

	ref, err := r.scanOne(r.Pool.QueryRow(ctx, query, name, refID, userID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: %s %q already exists", apperrors.ErrDuplicate, r.table, name)
		}
		return nil, err
	}
	return ref, nil
}

func (r *PgxReferenceRepository) SetStatus(ctx context.Context, userID, refID string, status domain.Status) (*domain.Reference, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET status = $1, updated_at = now()
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, name, status, created_at, updated_at;
	`, r.table)

	return r.scanOne(r.Pool.QueryRow(ctx, query, status, refID, userID))
}

func (r *PgxReferenceRepository) Delete(ctx context.Context, userID, refID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND user_id = $2;`, r.table)

	tag, err := r.Pool.Exec(ctx, query, refID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", r.table, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxReferenceRepository) FindByID(ctx context.Context, userID, refID string) (*domain.Reference, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, status, created_at, updated_at
		FROM %s
		WHERE id = $1 AND user_id = $2;
	`, r.table)

	return r.scanOne(r.Pool.QueryRow(ctx, query, refID, userID))
}

func (r *PgxReferenceRepository) List(ctx context.Context, userID string) ([]domain.Reference, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, status, created_at, updated_at
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC;
	`, r.table)

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.table, err)
	}
	defer rows.Close()

	refs := []domain.Reference{}
	for rows.Next() {
		var ref domain.Reference
		if err := rows.Scan(&ref.ID, &ref.UserID, &ref.Name, &ref.Status, &ref.CreatedAt, &ref.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.table, err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s rows: %w", r.table, err)
	}
	return refs, nil
}

func (r *PgxReferenceRepository) scanOne(row pgx.Row) (*domain.Reference, error) {
	var ref domain.Reference
	err := row.Scan(&ref.ID, &ref.UserID, &ref.Name, &ref.Status, &ref.CreatedAt, &ref.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan %s row: %w", r.table, err)
	}
	return &ref, nil
}
