package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	portsrepo "github.com/ramidarshan07/wealthtrack/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxBalanceRepository struct {
	BaseRepository
}

func newPgxBalanceRepository(pool *pgxpool.Pool) portsrepo.BalanceRepository {
	return &PgxBalanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BalanceRepository = (*PgxBalanceRepository)(nil)

// List returns a balance row for every active payment method of the user,
// defaulting to zero for methods that have never been pinned.
func (r *PgxBalanceRepository) List(ctx context.Context, userID string) ([]domain.PaymentMethodBalance, error) {
	query := `
		SELECT pm.id, pm.name,
		       COALESCE(b.balance, 0),
		       COALESCE(b.created_at, pm.created_at),
		       COALESCE(b.updated_at, pm.updated_at)
		FROM payment_methods pm
		LEFT JOIN payment_method_balances b
		       ON b.payment_method_id = pm.id AND b.user_id = pm.user_id
		WHERE pm.user_id = $1 AND pm.status = 'active'
		ORDER BY pm.created_at ASC, pm.id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query balances: %w", err)
	}
	defer rows.Close()

	balances := []domain.PaymentMethodBalance{}
	for rows.Next() {
		var b domain.PaymentMethodBalance
		if err := rows.Scan(&b.PaymentMethodID, &b.Name, &b.Balance, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan balance row: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate balance rows: %w", err)
	}
	return balances, nil
}

func (r *PgxBalanceRepository) Upsert(ctx context.Context, userID, paymentMethodID string, balance decimal.Decimal) (*domain.PaymentMethodBalance, error) {
	query := `
		INSERT INTO payment_method_balances (user_id, payment_method_id, balance, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (user_id, payment_method_id) DO UPDATE SET
			balance = EXCLUDED.balance,
			updated_at = now()
		RETURNING payment_method_id,
		          (SELECT name FROM payment_methods WHERE id = payment_method_balances.payment_method_id),
		          balance, created_at, updated_at;
	`
	var b domain.PaymentMethodBalance
	err := r.Pool.QueryRow(ctx, query, userID, paymentMethodID, balance).Scan(
		&b.PaymentMethodID, &b.Name, &b.Balance, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert balance for %s: %w", paymentMethodID, err)
	}
	return &b, nil
}
