package repository

import (
	"context"
	"time"

	"github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/amirasaad/finsible/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository bound to db.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// withGroup joins the account group so GroupName is populated in the same query.
func (r *accountRepository) withGroup(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&Account{}).Joins("AccountGroup")
}

// Get implements repository.AccountRepository.
func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	var m Account
	if err := r.withGroup(ctx).Where("accounts.id = ?", id).Take(&m).Error; err != nil {
		return nil, notFoundAs(err, account.ErrAccountNotFound)
	}
	return mapAccountModelToDomain(&m), nil
}

// GetOwned implements repository.AccountRepository.
func (r *accountRepository) GetOwned(ctx context.Context, id, userID uuid.UUID) (*account.Account, error) {
	var m Account
	err := r.withGroup(ctx).
		Where("accounts.id = ? AND accounts.user_id = ?", id, userID).
		Take(&m).Error
	if err != nil {
		return nil, notFoundAs(err, account.ErrAccountNotFound)
	}
	return mapAccountModelToDomain(&m), nil
}

// ListByUser implements repository.AccountRepository.
func (r *accountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*account.Account, error) {
	var rows []Account
	err := r.withGroup(ctx).
		Where("accounts.user_id = ?", userID).
		Order("accounts.created_at, accounts.id").
		Find(&rows).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	result := make([]*account.Account, 0, len(rows))
	for i := range rows {
		result = append(result, mapAccountModelToDomain(&rows[i]))
	}
	return result, nil
}

// Create implements repository.AccountRepository.
func (r *accountRepository) Create(ctx context.Context, a *account.Account) error {
	if a.Version == 0 {
		a.Version = 1
	}
	m := mapAccountDomainToModel(a)
	return WrapError(func() error {
		return r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error
	})
}

// Update implements repository.AccountRepository. The write only applies
// when the stored version still equals a.Version.
func (r *accountRepository) Update(ctx context.Context, a *account.Account) error {
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = time.Now().UTC()
	}
	result := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ? AND version = ?", a.ID, a.Version).
		Updates(map[string]any{
			"name":          a.Name,
			"description":   a.Description,
			"icon":          a.Icon,
			"balance":       a.Balance,
			"currency_code": a.CurrencyCode,
			"is_active":     a.IsActive,
			"updated_at":    a.UpdatedAt,
			"updated_by":    a.UpdatedBy,
			"version":       gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return MapGormErrorToDomain(result.Error)
	}
	if result.RowsAffected == 0 {
		return account.ErrVersionMismatch
	}
	a.Version++
	return nil
}

// Delete implements repository.AccountRepository. Extension rows are removed
// in the same transaction as the base row.
func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ext := range []any{&CreditCardDetail{}, &DebitCardDetail{}, &LoanDetail{}} {
			if err := tx.Where("account_id = ?", id).Delete(ext).Error; err != nil {
				return MapGormErrorToDomain(err)
			}
		}
		result := tx.Where("id = ?", id).Delete(&Account{})
		if result.Error != nil {
			return MapGormErrorToDomain(result.Error)
		}
		if result.RowsAffected == 0 {
			return account.ErrAccountNotFound
		}
		return nil
	})
}

// IsReferenced implements repository.AccountRepository.
func (r *accountRepository) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&CreditCardDetail{}).
		Where("auto_pay_from_account_id = ?", id).
		Count(&n).Error
	if err != nil {
		return false, MapGormErrorToDomain(err)
	}
	if n > 0 {
		return true, nil
	}
	err = r.db.WithContext(ctx).Model(&DebitCardDetail{}).
		Where("linked_bank_account_id = ?", id).
		Count(&n).Error
	if err != nil {
		return false, MapGormErrorToDomain(err)
	}
	return n > 0, nil
}
