package repository

import (
	"context"

	"github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/amirasaad/finsible/pkg/domain/reference"
	"github.com/amirasaad/finsible/pkg/domain/user"
	"github.com/google/uuid"
)

// AccountRepository defines data access for base account records. Loaded
// accounts always carry their group name.
type AccountRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*account.Account, error)
	// GetOwned returns the account only when it belongs to userID.
	GetOwned(ctx context.Context, id, userID uuid.UUID) (*account.Account, error)
	// ListByUser returns the user's accounts ordered by creation time.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*account.Account, error)
	Create(ctx context.Context, a *account.Account) error
	// Update persists a when its stored version equals a.Version and bumps
	// the version; otherwise it returns account.ErrVersionMismatch.
	Update(ctx context.Context, a *account.Account) error
	// Delete removes the account together with its extension row.
	Delete(ctx context.Context, id uuid.UUID) error
	// IsReferenced reports whether a card extension names id as its auto-pay
	// funding account or linked bank account.
	IsReferenced(ctx context.Context, id uuid.UUID) (bool, error)
}

// CreditCardRepository defines data access for credit card extensions.
type CreditCardRepository interface {
	Get(ctx context.Context, accountID uuid.UUID) (*account.CreditCard, error)
	// ListByAccountIDs fetches all extensions for ids in one query.
	ListByAccountIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*account.CreditCard, error)
	Create(ctx context.Context, cc *account.CreditCard) error
	Update(ctx context.Context, cc *account.CreditCard) error
}

// DebitCardRepository defines data access for debit card extensions.
type DebitCardRepository interface {
	Get(ctx context.Context, accountID uuid.UUID) (*account.DebitCard, error)
	ListByAccountIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*account.DebitCard, error)
	Create(ctx context.Context, dc *account.DebitCard) error
	Update(ctx context.Context, dc *account.DebitCard) error
}

// LoanRepository defines read access for loan extensions.
type LoanRepository interface {
	Get(ctx context.Context, accountID uuid.UUID) (*account.Loan, error)
	ListByAccountIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*account.Loan, error)
}

// UserRepository resolves account owners.
type UserRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// AccountGroupRepository reads account groups.
type AccountGroupRepository interface {
	Get(ctx context.Context, id uint) (*reference.AccountGroup, error)
	GetByName(ctx context.Context, name string) (*reference.AccountGroup, error)
	List(ctx context.Context) ([]*reference.AccountGroup, error)
}

// CurrencyRepository reads supported currencies.
type CurrencyRepository interface {
	GetByCode(ctx context.Context, code string) (*reference.Currency, error)
	List(ctx context.Context) ([]*reference.Currency, error)
}
