package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRead is the read model returned by every account operation. Fields
// of variants that do not apply to the account stay nil and are omitted.
type AccountRead struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Icon            string          `json:"icon,omitempty"`
	Balance         decimal.Decimal `json:"balance"`
	AccountGroupID  uint            `json:"account_group_id"`
	CurrencyCode    string          `json:"currency_code"`
	IsActive        bool            `json:"is_active"`
	IsSystemDefault bool            `json:"is_system_default"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// credit card
	CreditLimit          *decimal.Decimal `json:"credit_limit,omitempty"`
	AvailableCredit      *decimal.Decimal `json:"available_credit,omitempty"`
	BillingDate          *int             `json:"billing_date,omitempty"`
	DueDate              *int             `json:"due_date,omitempty"`
	AutoPayEnabled       *bool            `json:"auto_pay_enabled,omitempty"`
	AutoPayFromAccountID *uuid.UUID       `json:"auto_pay_from_account_id,omitempty"`

	// debit card
	LinkedBankAccountID *uuid.UUID `json:"linked_bank_account_id,omitempty"`

	// loan
	LoanType        *string          `json:"loan_type,omitempty"`
	PrincipalAmount *decimal.Decimal `json:"principal_amount,omitempty"`
	InterestRate    *decimal.Decimal `json:"interest_rate,omitempty"`
	EMIAmount       *decimal.Decimal `json:"emi_amount,omitempty"`
	EMIDate         *int             `json:"emi_date,omitempty"`
	TenureMonths    *int             `json:"tenure_months,omitempty"`
	StartDate       *time.Time       `json:"start_date,omitempty"`
}

// AccountCreate carries the base fields for creating a plain account.
type AccountCreate struct {
	Name            string
	Description     string
	Icon            string
	CurrencyCode    string
	Balance         *decimal.Decimal
	IsActive        *bool
	IsSystemDefault bool
}

// AccountUpdate is a partial update of base fields; nil fields are left as is.
type AccountUpdate struct {
	Name         *string
	Description  *string
	Icon         *string
	CurrencyCode *string
	IsActive     *bool
}

// CreditCardCreate carries the fields for creating a credit card account.
type CreditCardCreate struct {
	AccountCreate
	CreditLimit          decimal.Decimal
	AvailableCredit      *decimal.Decimal
	BillingDate          *int
	DueDate              *int
	AutoPayEnabled       *bool
	AutoPayFromAccountID *uuid.UUID
}

// CreditCardUpdate is a partial update of a credit card account.
type CreditCardUpdate struct {
	AccountUpdate
	CreditLimit          *decimal.Decimal
	AvailableCredit      *decimal.Decimal
	BillingDate          *int
	DueDate              *int
	AutoPayEnabled       *bool
	AutoPayFromAccountID *uuid.UUID
}

// DebitCardCreate carries the fields for creating a debit card account.
type DebitCardCreate struct {
	AccountCreate
	LinkedBankAccountID *uuid.UUID
}

// DebitCardUpdate is a partial update of a debit card account.
type DebitCardUpdate struct {
	AccountUpdate
	LinkedBankAccountID *uuid.UUID
}
