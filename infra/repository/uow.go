package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/amirasaad/finsible/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories built inside Do share the transaction; outside Do they use the
// base connection.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			typeOf[repository.AccountRepository]():      func(db *gorm.DB) any { return NewAccountRepository(db) },
			typeOf[repository.CreditCardRepository]():   func(db *gorm.DB) any { return NewCreditCardRepository(db) },
			typeOf[repository.DebitCardRepository]():    func(db *gorm.DB) any { return NewDebitCardRepository(db) },
			typeOf[repository.LoanRepository]():         func(db *gorm.DB) any { return NewLoanRepository(db) },
			typeOf[repository.UserRepository]():         func(db *gorm.DB) any { return NewUserRepository(db) },
			typeOf[repository.AccountGroupRepository](): func(db *gorm.DB) any { return NewAccountGroupRepository(db) },
			typeOf[repository.CurrencyRepository]():     func(db *gorm.DB) any { return NewCurrencyRepository(db) },
		},
	}
}

// Do runs the given function in a transaction boundary, providing a UoW with repository access.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
}

// GetRepository returns the repository registered for repoType, bound to the
// current session. repoType is either a nil pointer to the repository
// interface or its reflect.Type.
func (u *UoW) GetRepository(repoType any) (any, error) {
	var key reflect.Type
	switch rt := repoType.(type) {
	case reflect.Type:
		key = rt
	default:
		t := reflect.TypeOf(repoType)
		if t == nil || t.Kind() != reflect.Pointer {
			return nil, fmt.Errorf("unsupported repository type: %v", t)
		}
		key = t.Elem()
	}
	constructor, ok := u.repoRegistry[key]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", key)
	}
	return constructor(u.session()), nil
}

// AccountRepository returns the account repository for the current session.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return getTyped[repository.AccountRepository](u)
}

// CreditCardRepository returns the credit card repository for the current session.
func (u *UoW) CreditCardRepository() (repository.CreditCardRepository, error) {
	return getTyped[repository.CreditCardRepository](u)
}

// DebitCardRepository returns the debit card repository for the current session.
func (u *UoW) DebitCardRepository() (repository.DebitCardRepository, error) {
	return getTyped[repository.DebitCardRepository](u)
}

// LoanRepository returns the loan repository for the current session.
func (u *UoW) LoanRepository() (repository.LoanRepository, error) {
	return getTyped[repository.LoanRepository](u)
}

// UserRepository returns the user repository for the current session.
func (u *UoW) UserRepository() (repository.UserRepository, error) {
	return getTyped[repository.UserRepository](u)
}

// AccountGroupRepository returns the account group repository for the current session.
func (u *UoW) AccountGroupRepository() (repository.AccountGroupRepository, error) {
	return getTyped[repository.AccountGroupRepository](u)
}

// CurrencyRepository returns the currency repository for the current session.
func (u *UoW) CurrencyRepository() (repository.CurrencyRepository, error) {
	return getTyped[repository.CurrencyRepository](u)
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func getTyped[T any](u *UoW) (T, error) {
	var zero T
	repoAny, err := u.GetRepository(typeOf[T]())
	if err != nil {
		return zero, err
	}
	repo, ok := repoAny.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected repository type %T", repoAny)
	}
	return repo, nil
}
