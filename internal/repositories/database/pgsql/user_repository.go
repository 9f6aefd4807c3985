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

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

const selectUser = `
	SELECT id, name, email, password_hash, phone, upi_id,
	       bank_account_number, bank_ifsc, bank_name,
	       qr_code_path, auth_provider, provider_user_id,
	       created_at, updated_at
	FROM users
`

func (r *PgxUserRepository) Save(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, phone, upi_id,
		                   bank_account_number, bank_ifsc, bank_name,
		                   qr_code_path, auth_provider, provider_user_id,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Phone, user.UPIID,
		user.BankDetails.AccountNumber, user.BankDetails.IFSC, user.BankDetails.BankName,
		user.QRCodePath, user.AuthProvider, user.ProviderUserID,
		user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, user.Email)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) Update(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, password_hash = $3, phone = $4, upi_id = $5,
		    bank_account_number = $6, bank_ifsc = $7, bank_name = $8,
		    qr_code_path = $9, auth_provider = $10, provider_user_id = $11,
		    updated_at = $12
		WHERE id = $13;
	`
	tag, err := r.Pool.Exec(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Phone, user.UPIID,
		user.BankDetails.AccountNumber, user.BankDetails.IFSC, user.BankDetails.BankName,
		user.QRCodePath, user.AuthProvider, user.ProviderUserID,
		user.UpdatedAt, user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, user.Email)
		}
		return fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.scanOne(r.Pool.QueryRow(ctx, selectUser+` WHERE id = $1;`, userID))
}

func (r *PgxUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanOne(r.Pool.QueryRow(ctx, selectUser+` WHERE email = $1;`, email))
}

func (r *PgxUserRepository) scanOne(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.UPIID,
		&u.BankDetails.AccountNumber, &u.BankDetails.IFSC, &u.BankDetails.BankName,
		&u.QRCodePath, &u.AuthProvider, &u.ProviderUserID,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	return &u, nil
}
