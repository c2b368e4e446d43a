package repository

import (
	"time"

	"github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/amirasaad/finsible/pkg/domain/reference"
	"github.com/amirasaad/finsible/pkg/domain/user"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// User represents an account owner record in the database.
type User struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email               string    `gorm:"uniqueIndex;not null;size:255"`
	Name                string    `gorm:"size:255"`
	DefaultCurrencyCode string    `gorm:"type:varchar(3);not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string { return "users" }

// AccountGroup represents an account group record in the database.
type AccountGroup struct {
	ID              uint       `gorm:"primaryKey"`
	Name            string     `gorm:"size:100;not null;uniqueIndex"`
	Description     string     `gorm:"size:255"`
	Icon            string     `gorm:"size:255"`
	IsSystemDefault bool       `gorm:"not null"`
	DisplayOrder    int        `gorm:"not null"`
	CreatedBy       *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the table name for the AccountGroup model.
func (AccountGroup) TableName() string { return "account_groups" }

// Currency represents a supported currency record in the database.
type Currency struct {
	Code   string `gorm:"type:varchar(3);primaryKey"`
	Name   string `gorm:"size:100;not null"`
	Symbol string `gorm:"size:10"`
}

// TableName specifies the table name for the Currency model.
func (Currency) TableName() string { return "supported_currencies" }

// Account represents a base account record in the database. The group is
// joined on read so the variant can be selected without a second query.
type Account struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          *uuid.UUID      `gorm:"type:uuid;index"`
	AccountGroupID  uint            `gorm:"not null"`
	AccountGroup    AccountGroup    `gorm:"foreignKey:AccountGroupID"`
	Name            string          `gorm:"size:255;not null"`
	Description     string          `gorm:"size:255"`
	Icon            string          `gorm:"size:255"`
	Balance         decimal.Decimal `gorm:"type:numeric(19,4);not null"`
	CurrencyCode    string          `gorm:"type:varchar(3);not null"`
	IsActive        bool            `gorm:"not null"`
	IsSystemDefault bool            `gorm:"not null"`
	Version         int64           `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CreatedBy       string `gorm:"size:64"`
	UpdatedBy       string `gorm:"size:64"`
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string { return "accounts" }

// CreditCardDetail represents the credit card extension of an account.
type CreditCardDetail struct {
	AccountID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CreditLimit          decimal.Decimal `gorm:"type:numeric(19,4);not null"`
	AvailableCredit      decimal.Decimal `gorm:"type:numeric(19,4);not null"`
	BillingDate          int             `gorm:"not null"`
	DueDate              int             `gorm:"not null"`
	AutoPayEnabled       bool            `gorm:"not null"`
	AutoPayFromAccountID *uuid.UUID      `gorm:"type:uuid"`
}

// TableName specifies the table name for the CreditCardDetail model.
func (CreditCardDetail) TableName() string { return "credit_card_details" }

// DebitCardDetail represents the debit card extension of an account.
type DebitCardDetail struct {
	AccountID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	LinkedBankAccountID uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName specifies the table name for the DebitCardDetail model.
func (DebitCardDetail) TableName() string { return "debit_card_details" }

// LoanDetail represents the loan extension of an account.
type LoanDetail struct {
	AccountID       uuid.UUID           `gorm:"type:uuid;primaryKey"`
	LoanType        string              `gorm:"size:50;not null"`
	PrincipalAmount decimal.Decimal     `gorm:"type:numeric(19,4);not null"`
	InterestRate    decimal.NullDecimal `gorm:"type:numeric(7,4)"`
	EMIAmount       decimal.NullDecimal `gorm:"column:emi_amount;type:numeric(19,4)"`
	EMIDate         *int                `gorm:"column:emi_date"`
	TenureMonths    *int
	StartDate       *time.Time `gorm:"type:date"`
}

// TableName specifies the table name for the LoanDetail model.
func (LoanDetail) TableName() string { return "loan_details" }

// AutoMigrate creates the schema from the models. Postgres deployments use
// the SQL migrations instead; this serves sqlite databases.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&AccountGroup{},
		&Currency{},
		&Account{},
		&CreditCardDetail{},
		&DebitCardDetail{},
		&LoanDetail{},
	)
}

func mapAccountModelToDomain(m *Account) *account.Account {
	return &account.Account{
		ID:              m.ID,
		UserID:          m.UserID,
		GroupID:         m.AccountGroupID,
		GroupName:       m.AccountGroup.Name,
		Name:            m.Name,
		Description:     m.Description,
		Icon:            m.Icon,
		Balance:         m.Balance,
		CurrencyCode:    m.CurrencyCode,
		IsActive:        m.IsActive,
		IsSystemDefault: m.IsSystemDefault,
		Version:         m.Version,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		CreatedBy:       m.CreatedBy,
		UpdatedBy:       m.UpdatedBy,
	}
}

func mapAccountDomainToModel(a *account.Account) Account {
	return Account{
		ID:              a.ID,
		UserID:          a.UserID,
		AccountGroupID:  a.GroupID,
		Name:            a.Name,
		Description:     a.Description,
		Icon:            a.Icon,
		Balance:         a.Balance,
		CurrencyCode:    a.CurrencyCode,
		IsActive:        a.IsActive,
		IsSystemDefault: a.IsSystemDefault,
		Version:         a.Version,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
		CreatedBy:       a.CreatedBy,
		UpdatedBy:       a.UpdatedBy,
	}
}

func mapCreditCardModelToDomain(m *CreditCardDetail) *account.CreditCard {
	return &account.CreditCard{
		AccountID:            m.AccountID,
		CreditLimit:          m.CreditLimit,
		AvailableCredit:      m.AvailableCredit,
		BillingDate:          m.BillingDate,
		DueDate:              m.DueDate,
		AutoPayEnabled:       m.AutoPayEnabled,
		AutoPayFromAccountID: m.AutoPayFromAccountID,
	}
}

func mapCreditCardDomainToModel(cc *account.CreditCard) CreditCardDetail {
	return CreditCardDetail{
		AccountID:            cc.AccountID,
		CreditLimit:          cc.CreditLimit,
		AvailableCredit:      cc.AvailableCredit,
		BillingDate:          cc.BillingDate,
		DueDate:              cc.DueDate,
		AutoPayEnabled:       cc.AutoPayEnabled,
		AutoPayFromAccountID: cc.AutoPayFromAccountID,
	}
}

func mapLoanModelToDomain(m *LoanDetail) *account.Loan {
	return &account.Loan{
		AccountID:       m.AccountID,
		LoanType:        m.LoanType,
		PrincipalAmount: m.PrincipalAmount,
		InterestRate:    m.InterestRate,
		EMIAmount:       m.EMIAmount,
		EMIDate:         m.EMIDate,
		TenureMonths:    m.TenureMonths,
		StartDate:       m.StartDate,
	}
}

func mapUserModelToDomain(m *User) *user.User {
	return &user.User{
		ID:                  m.ID,
		Email:               m.Email,
		Name:                m.Name,
		DefaultCurrencyCode: m.DefaultCurrencyCode,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func mapGroupModelToDomain(m *AccountGroup) *reference.AccountGroup {
	return &reference.AccountGroup{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		Icon:            m.Icon,
		IsSystemDefault: m.IsSystemDefault,
		DisplayOrder:    m.DisplayOrder,
		CreatedBy:       m.CreatedBy,
	}
}

func mapCurrencyModelToDomain(m *Currency) *reference.Currency {
	return &reference.Currency{Code: m.Code, Name: m.Name, Symbol: m.Symbol}
}
