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

type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// SaveAccount inserts the account and its opening entry in one transaction
// so a failed entry insert never leaves an empty account behind.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account, opening domain.AccountTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		INSERT INTO accounts (id, user_id, name, account_type, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`, account.ID, account.UserID, account.Name, account.AccountType, account.Description, account.CreatedAt, account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO account_transactions (id, account_id, type, amount, payment_channel, date, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, opening.ID, opening.AccountID, opening.Type, opening.Amount, opening.PaymentChannel, opening.Date, opening.Note, opening.CreatedAt, opening.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert opening transaction: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	query := `
		SELECT id, user_id, name, account_type, description, created_at, updated_at
		FROM accounts
		WHERE id = $1 AND user_id = $2;
	`
	var a domain.Account
	err := r.Pool.QueryRow(ctx, query, accountID, userID).Scan(
		&a.ID, &a.UserID, &a.Name, &a.AccountType, &a.Description, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return &a, nil
}

// ListAccountsWithSummary returns the user's accounts with their aggregates
// computed in SQL, so the list endpoint never loads full histories.
func (r *PgxAccountRepository) ListAccountsWithSummary(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `
		SELECT a.id, a.user_id, a.name, a.account_type, a.description, a.created_at, a.updated_at,
		       COALESCE(SUM(CASE WHEN t.type IN ('borrow', 'lent') THEN t.amount ELSE 0 END), 0) AS total_borrowed,
		       COALESCE(SUM(CASE WHEN t.type IN ('repay', 'received') THEN t.amount ELSE 0 END), 0) AS total_repaid,
		       MAX(CASE WHEN t.type IN ('repay', 'received') THEN t.date END) AS last_repayment_date
		FROM accounts a
		LEFT JOIN account_transactions t ON t.account_id = a.id
		WHERE a.user_id = $1
		GROUP BY a.id
		ORDER BY a.created_at DESC, a.id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var a domain.Account
		err := rows.Scan(
			&a.ID, &a.UserID, &a.Name, &a.AccountType, &a.Description, &a.CreatedAt, &a.UpdatedAt,
			&a.Summary.TotalBorrowed, &a.Summary.TotalRepaid, &a.Summary.LastRepaymentDate)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		a.Summary.Outstanding = a.Summary.TotalBorrowed.Sub(a.Summary.TotalRepaid)
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account rows: %w", err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) ListTransactions(ctx context.Context, accountID string) ([]domain.AccountTransaction, error) {
	query := `
		SELECT id, account_id, type, amount, payment_channel, date, note, created_at, updated_at
		FROM account_transactions
		WHERE account_id = $1
		ORDER BY date DESC, created_at DESC, id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.AccountTransaction{}
	for rows.Next() {
		var t domain.AccountTransaction
		err := rows.Scan(&t.ID, &t.AccountID, &t.Type, &t.Amount, &t.PaymentChannel, &t.Date, &t.Note, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction rows: %w", err)
	}
	return transactions, nil
}

func (r *PgxAccountRepository) SaveTransaction(ctx context.Context, txn domain.AccountTransaction) error {
	query := `
		INSERT INTO account_transactions (id, account_id, type, amount, payment_channel, date, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		txn.ID, txn.AccountID, txn.Type, txn.Amount, txn.PaymentChannel, txn.Date, txn.Note, txn.CreatedAt, txn.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (r *PgxAccountRepository) DeleteTransaction(ctx context.Context, accountID, transactionID string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM account_transactions WHERE id = $1 AND account_id = $2;`, transactionID, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
