package repository

import (
	"context"

	"github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/amirasaad/finsible/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type creditCardRepository struct {
	db *gorm.DB
}

// NewCreditCardRepository creates a credit card extension repository bound to db.
func NewCreditCardRepository(db *gorm.DB) repository.CreditCardRepository {
	return &creditCardRepository{db: db}
}

// Get implements repository.CreditCardRepository.
func (r *creditCardRepository) Get(ctx context.Context, accountID uuid.UUID) (*account.CreditCard, error) {
	var m CreditCardDetail
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Take(&m).Error; err != nil {
		return nil, notFoundAs(err, account.ErrDetailNotFound)
	}
	return mapCreditCardModelToDomain(&m), nil
}

// ListByAccountIDs implements repository.CreditCardRepository.
func (r *creditCardRepository) ListByAccountIDs(
	ctx context.Context,
	ids []uuid.UUID,
) (map[uuid.UUID]*account.CreditCard, error) {
	result := make(map[uuid.UUID]*account.CreditCard, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var rows []CreditCardDetail
	if err := r.db.WithContext(ctx).Where("account_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	for i := range rows {
		result[rows[i].AccountID] = mapCreditCardModelToDomain(&rows[i])
	}
	return result, nil
}

// Create implements repository.CreditCardRepository.
func (r *creditCardRepository) Create(ctx context.Context, cc *account.CreditCard) error {
	m := mapCreditCardDomainToModel(cc)
	return WrapError(func() error {
		return r.db.WithContext(ctx).Create(&m).Error
	})
}

// Update implements repository.CreditCardRepository. Zero values such as a
// disabled auto-pay are written explicitly.
func (r *creditCardRepository) Update(ctx context.Context, cc *account.CreditCard) error {
	m := mapCreditCardDomainToModel(cc)
	result := r.db.WithContext(ctx).
		Model(&CreditCardDetail{}).
		Where("account_id = ?", cc.AccountID).
		Select("credit_limit", "available_credit", "billing_date", "due_date",
			"auto_pay_enabled", "auto_pay_from_account_id").
		Updates(&m)
	if result.Error != nil {
		return MapGormErrorToDomain(result.Error)
	}
	if result.RowsAffected == 0 {
		return account.ErrDetailNotFound
	}
	return nil
}

type debitCardRepository struct {
	db *gorm.DB
}

// NewDebitCardRepository creates a debit card extension repository bound to db.
func NewDebitCardRepository(db *gorm.DB) repository.DebitCardRepository {
	return &debitCardRepository{db: db}
}

// Get implements repository.DebitCardRepository.
func (r *debitCardRepository) Get(ctx context.Context, accountID uuid.UUID) (*account.DebitCard, error) {
	var m DebitCardDetail
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Take(&m).Error; err != nil {
		return nil, notFoundAs(err, account.ErrDetailNotFound)
	}
	return &account.DebitCard{AccountID: m.AccountID, LinkedBankAccountID: m.LinkedBankAccountID}, nil
}

// ListByAccountIDs implements repository.DebitCardRepository.
func (r *debitCardRepository) ListByAccountIDs(
	ctx context.Context,
	ids []uuid.UUID,
) (map[uuid.UUID]*account.DebitCard, error) {
	result := make(map[uuid.UUID]*account.DebitCard, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var rows []DebitCardDetail
	if err := r.db.WithContext(ctx).Where("account_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	for _, m := range rows {
		result[m.AccountID] = &account.DebitCard{AccountID: m.AccountID, LinkedBankAccountID: m.LinkedBankAccountID}
	}
	return result, nil
}

// Create implements repository.DebitCardRepository.
func (r *debitCardRepository) Create(ctx context.Context, dc *account.DebitCard) error {
	m := DebitCardDetail{AccountID: dc.AccountID, LinkedBankAccountID: dc.LinkedBankAccountID}
	return WrapError(func() error {
		return r.db.WithContext(ctx).Create(&m).Error
	})
}

// Update implements repository.DebitCardRepository.
func (r *debitCardRepository) Update(ctx context.Context, dc *account.DebitCard) error {
	result := r.db.WithContext(ctx).
		Model(&DebitCardDetail{}).
		Where("account_id = ?", dc.AccountID).
		Update("linked_bank_account_id", dc.LinkedBankAccountID)
	if result.Error != nil {
		return MapGormErrorToDomain(result.Error)
	}
	if result.RowsAffected == 0 {
		return account.ErrDetailNotFound
	}
	return nil
}

type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a read-only loan extension repository bound to db.
func NewLoanRepository(db *gorm.DB) repository.LoanRepository {
	return &loanRepository{db: db}
}

// Get implements repository.LoanRepository.
func (r *loanRepository) Get(ctx context.Context, accountID uuid.UUID) (*account.Loan, error) {
	var m LoanDetail
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Take(&m).Error; err != nil {
		return nil, notFoundAs(err, account.ErrDetailNotFound)
	}
	return mapLoanModelToDomain(&m), nil
}

// ListByAccountIDs implements repository.LoanRepository.
func (r *loanRepository) ListByAccountIDs(
	ctx context.Context,
	ids []uuid.UUID,
) (map[uuid.UUID]*account.Loan, error) {
	result := make(map[uuid.UUID]*account.Loan, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var rows []LoanDetail
	if err := r.db.WithContext(ctx).Where("account_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	for i := range rows {
		result[rows[i].AccountID] = mapLoanModelToDomain(&rows[i])
	}
	return result, nil
}
