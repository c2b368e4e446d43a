package repository

import (
	"context"
)

// UnitOfWork defines the contract for transactional work and repository access.
//
// Repositories obtained from the UnitOfWork passed to Do share the same
// transaction, so base and extension writes commit or roll back together.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an error,
	// the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested type, bound to the
	// current session. repoType is a nil pointer to the interface, e.g.
	// (*AccountRepository)(nil).
	GetRepository(repoType any) (any, error)

	AccountRepository() (AccountRepository, error)
	CreditCardRepository() (CreditCardRepository, error)
	DebitCardRepository() (DebitCardRepository, error)
	LoanRepository() (LoanRepository, error)
	UserRepository() (UserRepository, error)
	AccountGroupRepository() (AccountGroupRepository, error)
	CurrencyRepository() (CurrencyRepository, error)
}
