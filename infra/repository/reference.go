package repository

import (
	"context"

	"github.com/amirasaad/finsible/pkg/domain"
	"github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/amirasaad/finsible/pkg/domain/reference"
	"github.com/amirasaad/finsible/pkg/domain/user"
	"github.com/amirasaad/finsible/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository bound to db.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Get implements repository.UserRepository.
func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var m User
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		return nil, notFoundAs(err, domain.ErrOwnerNotFound)
	}
	return mapUserModelToDomain(&m), nil
}

type accountGroupRepository struct {
	db *gorm.DB
}

// NewAccountGroupRepository creates an account group repository bound to db.
func NewAccountGroupRepository(db *gorm.DB) repository.AccountGroupRepository {
	return &accountGroupRepository{db: db}
}

// Get implements repository.AccountGroupRepository.
func (r *accountGroupRepository) Get(ctx context.Context, id uint) (*reference.AccountGroup, error) {
	var m AccountGroup
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		return nil, notFoundAs(err, account.ErrGroupNotFound)
	}
	return mapGroupModelToDomain(&m), nil
}

// GetByName implements repository.AccountGroupRepository.
func (r *accountGroupRepository) GetByName(ctx context.Context, name string) (*reference.AccountGroup, error) {
	var m AccountGroup
	if err := r.db.WithContext(ctx).Where("name = ?", name).Take(&m).Error; err != nil {
		return nil, notFoundAs(err, account.ErrGroupNotFound)
	}
	return mapGroupModelToDomain(&m), nil
}

// List implements repository.AccountGroupRepository.
func (r *accountGroupRepository) List(ctx context.Context) ([]*reference.AccountGroup, error) {
	var rows []AccountGroup
	if err := r.db.WithContext(ctx).Order("display_order, id").Find(&rows).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	result := make([]*reference.AccountGroup, 0, len(rows))
	for i := range rows {
		result = append(result, mapGroupModelToDomain(&rows[i]))
	}
	return result, nil
}

type currencyRepository struct {
	db *gorm.DB
}

// NewCurrencyRepository creates a supported currency repository bound to db.
func NewCurrencyRepository(db *gorm.DB) repository.CurrencyRepository {
	return &currencyRepository{db: db}
}

// GetByCode implements repository.CurrencyRepository.
func (r *currencyRepository) GetByCode(ctx context.Context, code string) (*reference.Currency, error) {
	var m Currency
	if err := r.db.WithContext(ctx).Where("code = ?", code).Take(&m).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapCurrencyModelToDomain(&m), nil
}

// List implements repository.CurrencyRepository.
func (r *currencyRepository) List(ctx context.Context) ([]*reference.Currency, error) {
	var rows []Currency
	if err := r.db.WithContext(ctx).Order("code").Find(&rows).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	result := make([]*reference.Currency, 0, len(rows))
	for i := range rows {
		result = append(result, mapCurrencyModelToDomain(&rows[i]))
	}
	return result, nil
}
