package account

import (
	"fmt"
	"time"

	"github.com/amirasaad/finsible/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind identifies an account variant.
type Kind string

const (
	KindPlain      Kind = "plain"
	KindCreditCard Kind = "credit_card"
	KindDebitCard  Kind = "debit_card"
	KindLoan       Kind = "loan"
)

// Default billing cycle days for credit cards.
const (
	DefaultBillingDate = 1
	DefaultDueDate     = 20
)

var (
	// ErrCreditLimitNotPositive is returned when a credit limit is zero or negative.
	ErrCreditLimitNotPositive = fmt.Errorf("%w: credit limit must be a positive value", domain.ErrValidation)
	// ErrDayOutOfRange is returned when a billing or due date is outside 1..31.
	ErrDayOutOfRange = fmt.Errorf("%w: billing and due date must be between 1 and 31", domain.ErrValidation)
	// ErrNotBankAccount is returned when a referenced account is not in the bank account group.
	ErrNotBankAccount = fmt.Errorf("%w: account must belong to bank account group", domain.ErrInvalidRequest)
	// ErrReferenceRequired is returned when a required account reference is missing.
	ErrReferenceRequired = fmt.Errorf("%w: account must be provided", domain.ErrInvalidRequest)
)

// KindForGroup maps an account group name to the variant it selects. Groups
// without an extension (bank account, cash, user-defined) are plain.
func KindForGroup(groupName string) Kind {
	switch groupName {
	case GroupCreditCard:
		return KindCreditCard
	case GroupDebitCard:
		return KindDebitCard
	case GroupLoan:
		return KindLoan
	default:
		return KindPlain
	}
}

// Variant is the closed set of type-specific extensions an account can carry.
type Variant interface {
	Kind() Kind
	variant()
}

// Plain is the variant of accounts without an extension record.
type Plain struct{}

func (Plain) Kind() Kind { return KindPlain }
func (Plain) variant()   {}

// CreditCard holds credit-card specific fields keyed by the owning account id.
type CreditCard struct {
	AccountID            uuid.UUID
	CreditLimit          decimal.Decimal
	AvailableCredit      decimal.Decimal
	BillingDate          int
	DueDate              int
	AutoPayEnabled       bool
	AutoPayFromAccountID *uuid.UUID
}

func (*CreditCard) Kind() Kind { return KindCreditCard }
func (*CreditCard) variant()   {}

// NewCreditCard applies creation defaults: available credit falls back to the
// credit limit, billing and due dates to DefaultBillingDate and DefaultDueDate,
// auto-pay to disabled.
func NewCreditCard(
	accountID uuid.UUID,
	creditLimit decimal.Decimal,
	availableCredit *decimal.Decimal,
	billingDate, dueDate *int,
	autoPayEnabled *bool,
) (*CreditCard, error) {
	cc := &CreditCard{
		AccountID:       accountID,
		CreditLimit:     creditLimit,
		AvailableCredit: creditLimit,
		BillingDate:     DefaultBillingDate,
		DueDate:         DefaultDueDate,
	}
	if availableCredit != nil {
		cc.AvailableCredit = *availableCredit
	}
	if billingDate != nil {
		cc.BillingDate = *billingDate
	}
	if dueDate != nil {
		cc.DueDate = *dueDate
	}
	if autoPayEnabled != nil {
		cc.AutoPayEnabled = *autoPayEnabled
	}
	if err := cc.Validate(); err != nil {
		return nil, err
	}
	return cc, nil
}

// Validate checks credit limit and day ranges.
func (c *CreditCard) Validate() error {
	if !c.CreditLimit.IsPositive() {
		return ErrCreditLimitNotPositive
	}
	if !validDay(c.BillingDate) || !validDay(c.DueDate) {
		return ErrDayOutOfRange
	}
	return nil
}

// EnableAutoPay links the funding account and switches auto-pay on.
func (c *CreditCard) EnableAutoPay(from uuid.UUID) {
	c.AutoPayEnabled = true
	c.AutoPayFromAccountID = &from
}

// DisableAutoPay switches auto-pay off and clears the funding account.
func (c *CreditCard) DisableAutoPay() {
	c.AutoPayEnabled = false
	c.AutoPayFromAccountID = nil
}

// Clone returns an independent copy.
func (c *CreditCard) Clone() *CreditCard {
	cp := *c
	if c.AutoPayFromAccountID != nil {
		id := *c.AutoPayFromAccountID
		cp.AutoPayFromAccountID = &id
	}
	return &cp
}

// Equal compares two credit card extensions field by field.
func (c *CreditCard) Equal(o *CreditCard) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.AccountID == o.AccountID &&
		c.CreditLimit.Equal(o.CreditLimit) &&
		c.AvailableCredit.Equal(o.AvailableCredit) &&
		c.BillingDate == o.BillingDate &&
		c.DueDate == o.DueDate &&
		c.AutoPayEnabled == o.AutoPayEnabled &&
		uuidPtrEqual(c.AutoPayFromAccountID, o.AutoPayFromAccountID)
}

// DebitCard links a debit card account to the bank account it draws from.
type DebitCard struct {
	AccountID           uuid.UUID
	LinkedBankAccountID uuid.UUID
}

func (*DebitCard) Kind() Kind { return KindDebitCard }
func (*DebitCard) variant()   {}

// Equal compares two debit card extensions.
func (d *DebitCard) Equal(o *DebitCard) bool {
	if d == nil || o == nil {
		return d == o
	}
	return *d == *o
}

// Loan holds loan fields. No lifecycle operation writes it yet; it is
// hydrated for listing only.
type Loan struct {
	AccountID       uuid.UUID
	LoanType        string
	PrincipalAmount decimal.Decimal
	InterestRate    decimal.NullDecimal
	EMIAmount       decimal.NullDecimal
	EMIDate         *int
	TenureMonths    *int
	StartDate       *time.Time
}

func (*Loan) Kind() Kind { return KindLoan }
func (*Loan) variant()   {}

// Equal reports whether every loan term matches.
func (l *Loan) Equal(o *Loan) bool {
	if l == nil || o == nil {
		return l == o
	}
	return l.AccountID == o.AccountID &&
		l.LoanType == o.LoanType &&
		l.PrincipalAmount.Equal(o.PrincipalAmount) &&
		nullDecimalEqual(l.InterestRate, o.InterestRate) &&
		nullDecimalEqual(l.EMIAmount, o.EMIAmount) &&
		intPtrEqual(l.EMIDate, o.EMIDate) &&
		intPtrEqual(l.TenureMonths, o.TenureMonths) &&
		timePtrEqual(l.StartDate, o.StartDate)
}

// CheckBankReference verifies that ref may be used as the funding or linked
// bank account of an account owned by owner. A missing or foreign ref yields
// ErrAccountNotFound and an account outside the bank account group
// ErrNotBankAccount.
func CheckBankReference(ref *Account, owner uuid.UUID) error {
	if ref == nil || !ref.OwnedBy(owner) {
		return ErrAccountNotFound
	}
	if !ref.IsBankAccount() {
		return ErrNotBankAccount
	}
	return nil
}

// VariantsEqual compares two variants structurally.
func VariantsEqual(a, b Variant) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Plain:
		return true
	case *CreditCard:
		return av.Equal(b.(*CreditCard))
	case *DebitCard:
		return av.Equal(b.(*DebitCard))
	case *Loan:
		return av.Equal(b.(*Loan))
	}
	return false
}

func nullDecimalEqual(a, b decimal.NullDecimal) bool {
	if !a.Valid || !b.Valid {
		return a.Valid == b.Valid
	}
	return a.Decimal.Equal(b.Decimal)
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func validDay(d int) bool {
	return d >= 1 && d <= 31
}
