package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/ramidarshan07/wealthtrack/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CategoryRepo:      newPgxReferenceRepository(dbPool, "categories"),
		PaymentMethodRepo: newPgxReferenceRepository(dbPool, "payment_methods"),
		AmountTypeRepo:    newPgxReferenceRepository(dbPool, "amount_types"),
		ExpenseRepo:       newPgxExpenseRepository(dbPool),
		SavingRepo:        newPgxSavingRepository(dbPool),
		AccountRepo:       newPgxAccountRepository(dbPool),
		BalanceRepo:       newPgxBalanceRepository(dbPool),
		UserRepo:          newPgxUserRepository(dbPool),
	}
}
