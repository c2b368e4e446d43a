package account

import (
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/amirasaad/finsible/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Well-known account group names. The group an account belongs to selects
// which extension record (if any) carries its type-specific fields.
const (
	GroupBankAccount = "Bank Account"
	GroupCreditCard  = "Credit Card"
	GroupDebitCard   = "Debit Card"
	GroupLoan        = "Loan"
	GroupCash        = "Cash"
)

// MaxTextLength bounds name, description and icon.
const MaxTextLength = 255

var (
	// ErrAccountNotFound is returned when an account cannot be found or is not owned by the caller.
	ErrAccountNotFound = fmt.Errorf("%w: account not found", domain.ErrNotFound)
	// ErrGroupNotFound is returned when an account group id does not resolve.
	ErrGroupNotFound = fmt.Errorf("%w: account group not found", domain.ErrNotFound)
	// ErrDetailNotFound is returned when an account exists but its extension record does not.
	ErrDetailNotFound = fmt.Errorf("%w: account details not found", domain.ErrNotFound)
	// ErrSystemDefaultAccount is returned when deleting a system default account.
	ErrSystemDefaultAccount = fmt.Errorf("%w: cannot delete system default account", domain.ErrInvalidRequest)
	// ErrAccountInUse is returned when deleting an account that funds a credit
	// card's auto-pay or backs a debit card.
	ErrAccountInUse = fmt.Errorf("%w: account is referenced by a card", domain.ErrInvalidRequest)
	// ErrNameRequired is returned when an account is built without a name.
	ErrNameRequired = fmt.Errorf("%w: account name must not be blank", domain.ErrValidation)
	// ErrTextTooLong is returned when name, description or icon exceed MaxTextLength.
	ErrTextTooLong = fmt.Errorf("%w: text field exceeds %d characters", domain.ErrValidation, MaxTextLength)
	// ErrInvalidCurrencyCode is returned when a currency code is not a 3-letter ISO code.
	ErrInvalidCurrencyCode = fmt.Errorf("%w: currency code must be a 3-letter ISO code", domain.ErrValidation)
	// ErrGroupRequired is returned when an account is built without a group.
	ErrGroupRequired = errors.New("account group is required")

	// ErrVersionMismatch is returned when an update races another writer.
	ErrVersionMismatch = fmt.Errorf("%w: account was modified by another request", domain.ErrConflict)
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Account is the base record every account variant shares.
//
// Invariants:
//   - exactly one account group; GroupName is the discriminator for the extension.
//   - UserID is nil only for the seeded system account.
//   - Balance is expressed in CurrencyCode.
type Account struct {
	ID              uuid.UUID
	UserID          *uuid.UUID
	GroupID         uint
	GroupName       string
	Name            string
	Description     string
	Icon            string
	Balance         decimal.Decimal
	CurrencyCode    string
	IsActive        bool
	IsSystemDefault bool
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CreatedBy       string
	UpdatedBy       string
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	acct Account
}

// New creates a Builder with a fresh id, zero balance and the active flag set.
func New() *Builder {
	return &Builder{acct: Account{
		ID:       uuid.New(),
		Balance:  decimal.Zero,
		IsActive: true,
	}}
}

// WithID sets the id; used when hydrating from the store.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.acct.ID = id
	return b
}

// WithUserID sets the owning user.
func (b *Builder) WithUserID(userID uuid.UUID) *Builder {
	b.acct.UserID = &userID
	b.acct.CreatedBy = userID.String()
	b.acct.UpdatedBy = userID.String()
	return b
}

// WithGroup sets the account group id and name.
func (b *Builder) WithGroup(id uint, name string) *Builder {
	b.acct.GroupID = id
	b.acct.GroupName = name
	return b
}

// WithName sets name, description and icon.
func (b *Builder) WithName(name, description, icon string) *Builder {
	b.acct.Name = name
	b.acct.Description = description
	b.acct.Icon = icon
	return b
}

// WithBalance sets the opening balance.
func (b *Builder) WithBalance(balance decimal.Decimal) *Builder {
	b.acct.Balance = balance
	return b
}

// WithCurrency sets the currency code.
func (b *Builder) WithCurrency(code string) *Builder {
	b.acct.CurrencyCode = code
	return b
}

// WithActive overrides the default active flag.
func (b *Builder) WithActive(active bool) *Builder {
	b.acct.IsActive = active
	return b
}

// WithSystemDefault marks the account as non-deletable.
func (b *Builder) WithSystemDefault(systemDefault bool) *Builder {
	b.acct.IsSystemDefault = systemDefault
	return b
}

// Build validates invariants and returns the account.
func (b *Builder) Build() (*Account, error) {
	a := b.acct
	if a.GroupID == 0 {
		return nil, ErrGroupRequired
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	return &a, nil
}

// Validate checks the field-level rules of the base record.
func (a *Account) Validate() error {
	if a.Name == "" {
		return ErrNameRequired
	}
	for _, s := range []string{a.Name, a.Description, a.Icon} {
		if utf8.RuneCountInString(s) > MaxTextLength {
			return ErrTextTooLong
		}
	}
	if !currencyCodePattern.MatchString(a.CurrencyCode) {
		return ErrInvalidCurrencyCode
	}
	return nil
}

// OwnedBy reports whether userID owns the account.
func (a *Account) OwnedBy(userID uuid.UUID) bool {
	return a.UserID != nil && *a.UserID == userID
}

// Kind returns the variant kind selected by the account's group.
func (a *Account) Kind() Kind {
	return KindForGroup(a.GroupName)
}

// IsBankAccount reports whether the account belongs to the bank account group.
func (a *Account) IsBankAccount() bool {
	return a.GroupName == GroupBankAccount
}

// CanDelete returns ErrSystemDefaultAccount for system default accounts.
func (a *Account) CanDelete() error {
	if a.IsSystemDefault {
		return ErrSystemDefaultAccount
	}
	return nil
}

// Clone returns a copy safe to mutate independently.
func (a *Account) Clone() *Account {
	c := *a
	if a.UserID != nil {
		uid := *a.UserID
		c.UserID = &uid
	}
	return &c
}

// Equal compares the user-visible state of two accounts. Audit fields and the
// version counter are ignored.
func (a *Account) Equal(o *Account) bool {
	if a == nil || o == nil {
		return a == o
	}
	return a.ID == o.ID &&
		uuidPtrEqual(a.UserID, o.UserID) &&
		a.GroupID == o.GroupID &&
		a.Name == o.Name &&
		a.Description == o.Description &&
		a.Icon == o.Icon &&
		a.Balance.Equal(o.Balance) &&
		a.CurrencyCode == o.CurrencyCode &&
		a.IsActive == o.IsActive &&
		a.IsSystemDefault == o.IsSystemDefault
}

// Touch records a modification by actor.
func (a *Account) Touch(actor string) {
	a.UpdatedAt = time.Now().UTC()
	a.UpdatedBy = actor
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
