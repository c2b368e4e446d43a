package account

import (
	"github.com/amirasaad/finsible/pkg/dto"
	"github.com/amirasaad/finsible/webapi/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//revive:disable

// CreateAccountRequest is the body of POST /accounts/groups/:groupId.
type CreateAccountRequest struct {
	Name         string           `json:"name" validate:"required,max=255"`
	Description  string           `json:"description" validate:"max=255"`
	Icon         string           `json:"icon" validate:"max=255"`
	CurrencyCode string           `json:"currency_code" validate:"omitempty,len=3,alpha"`
	Balance      *decimal.Decimal `json:"balance"`
	IsActive     *bool            `json:"is_active"`
}

// UpdateAccountRequest is the body of PUT /accounts/:id.
type UpdateAccountRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description  *string `json:"description" validate:"omitempty,max=255"`
	Icon         *string `json:"icon" validate:"omitempty,max=255"`
	CurrencyCode *string `json:"currency_code" validate:"omitempty,len=3,alpha"`
	IsActive     *bool   `json:"is_active"`
}

// CreateCreditCardRequest is the body of POST /accounts/credit-card.
type CreateCreditCardRequest struct {
	Name                 string           `json:"name" validate:"required,max=255"`
	Description          string           `json:"description" validate:"max=255"`
	Icon                 string           `json:"icon" validate:"max=255"`
	CurrencyCode         string           `json:"currency_code" validate:"omitempty,len=3,alpha"`
	IsActive             *bool            `json:"is_active"`
	CreditLimit          *decimal.Decimal `json:"credit_limit" validate:"required"`
	AvailableCredit      *decimal.Decimal `json:"available_credit"`
	BillingDate          *int             `json:"billing_date" validate:"omitempty,min=1,max=31"`
	DueDate              *int             `json:"due_date" validate:"omitempty,min=1,max=31"`
	AutoPayEnabled       *bool            `json:"auto_pay_enabled"`
	AutoPayFromAccountID *uuid.UUID       `json:"auto_pay_from_account_id"`
}

// UpdateCreditCardRequest is the body of PUT /accounts/credit-card/:id.
type UpdateCreditCardRequest struct {
	Name                 *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description          *string          `json:"description" validate:"omitempty,max=255"`
	Icon                 *string          `json:"icon" validate:"omitempty,max=255"`
	CurrencyCode         *string          `json:"currency_code" validate:"omitempty,len=3,alpha"`
	IsActive             *bool            `json:"is_active"`
	CreditLimit          *decimal.Decimal `json:"credit_limit"`
	AvailableCredit      *decimal.Decimal `json:"available_credit"`
	BillingDate          *int             `json:"billing_date" validate:"omitempty,min=1,max=31"`
	DueDate              *int             `json:"due_date" validate:"omitempty,min=1,max=31"`
	AutoPayEnabled       *bool            `json:"auto_pay_enabled"`
	AutoPayFromAccountID *uuid.UUID       `json:"auto_pay_from_account_id"`
}

// CreateDebitCardRequest is the body of POST /accounts/debit-card.
type CreateDebitCardRequest struct {
	Name                string     `json:"name" validate:"required,max=255"`
	Description         string     `json:"description" validate:"max=255"`
	Icon                string     `json:"icon" validate:"max=255"`
	CurrencyCode        string     `json:"currency_code" validate:"omitempty,len=3,alpha"`
	IsActive            *bool      `json:"is_active"`
	LinkedBankAccountID *uuid.UUID `json:"linked_bank_account_id" validate:"required"`
}

// UpdateDebitCardRequest is the body of PUT /accounts/debit-card/:id.
type UpdateDebitCardRequest struct {
	Name                *string    `json:"name" validate:"omitempty,min=1,max=255"`
	Description         *string    `json:"description" validate:"omitempty,max=255"`
	Icon                *string    `json:"icon" validate:"omitempty,max=255"`
	CurrencyCode        *string    `json:"currency_code" validate:"omitempty,len=3,alpha"`
	IsActive            *bool      `json:"is_active"`
	LinkedBankAccountID *uuid.UUID `json:"linked_bank_account_id"`
}

func init() {
	common.RegisterAtLeastOne(
		UpdateAccountRequest{},
		UpdateCreditCardRequest{},
		UpdateDebitCardRequest{},
	)
}

func (r *CreateAccountRequest) toDTO() dto.AccountCreate {
	return dto.AccountCreate{
		Name:         r.Name,
		Description:  r.Description,
		Icon:         r.Icon,
		CurrencyCode: r.CurrencyCode,
		Balance:      r.Balance,
		IsActive:     r.IsActive,
	}
}

func (r *UpdateAccountRequest) toDTO() dto.AccountUpdate {
	return dto.AccountUpdate{
		Name:         r.Name,
		Description:  r.Description,
		Icon:         r.Icon,
		CurrencyCode: r.CurrencyCode,
		IsActive:     r.IsActive,
	}
}

func (r *CreateCreditCardRequest) toDTO() dto.CreditCardCreate {
	return dto.CreditCardCreate{
		AccountCreate: dto.AccountCreate{
			Name:         r.Name,
			Description:  r.Description,
			Icon:         r.Icon,
			CurrencyCode: r.CurrencyCode,
			IsActive:     r.IsActive,
		},
		CreditLimit:          *r.CreditLimit,
		AvailableCredit:      r.AvailableCredit,
		BillingDate:          r.BillingDate,
		DueDate:              r.DueDate,
		AutoPayEnabled:       r.AutoPayEnabled,
		AutoPayFromAccountID: r.AutoPayFromAccountID,
	}
}

func (r *UpdateCreditCardRequest) toDTO() dto.CreditCardUpdate {
	return dto.CreditCardUpdate{
		AccountUpdate: dto.AccountUpdate{
			Name:         r.Name,
			Description:  r.Description,
			Icon:         r.Icon,
			CurrencyCode: r.CurrencyCode,
			IsActive:     r.IsActive,
		},
		CreditLimit:          r.CreditLimit,
		AvailableCredit:      r.AvailableCredit,
		BillingDate:          r.BillingDate,
		DueDate:              r.DueDate,
		AutoPayEnabled:       r.AutoPayEnabled,
		AutoPayFromAccountID: r.AutoPayFromAccountID,
	}
}

func (r *CreateDebitCardRequest) toDTO() dto.DebitCardCreate {
	return dto.DebitCardCreate{
		AccountCreate: dto.AccountCreate{
			Name:         r.Name,
			Description:  r.Description,
			Icon:         r.Icon,
			CurrencyCode: r.CurrencyCode,
			IsActive:     r.IsActive,
		},
		LinkedBankAccountID: r.LinkedBankAccountID,
	}
}

func (r *UpdateDebitCardRequest) toDTO() dto.DebitCardUpdate {
	return dto.DebitCardUpdate{
		AccountUpdate: dto.AccountUpdate{
			Name:         r.Name,
			Description:  r.Description,
			Icon:         r.Icon,
			CurrencyCode: r.CurrencyCode,
			IsActive:     r.IsActive,
		},
		LinkedBankAccountID: r.LinkedBankAccountID,
	}
}
