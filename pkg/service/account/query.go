package account

import (
	"context"

	"github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/amirasaad/finsible/pkg/domain/events"
	"github.com/amirasaad/finsible/pkg/dto"
	"github.com/amirasaad/finsible/pkg/repository"
	"github.com/google/uuid"
)

// GetAccounts returns every account of owner with its details merged in,
// in creation order.
func (s *Service) GetAccounts(ctx context.Context, owner uuid.UUID) (out []dto.AccountRead, err error) {
	logger := s.logger.With("userID", owner)
	logger.Info("GetAccounts started")

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := resolveOwner(ctx, uow, owner); err != nil {
			return err
		}
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		accounts, err := repo.ListByUser(ctx, owner)
		if err != nil {
			return err
		}
		out, err = hydrate(ctx, uow, accounts)
		return err
	})
	if err != nil {
		logger.Error("GetAccounts failed", "error", err)
		return nil, err
	}

	logger.Info("GetAccounts successful", "count", len(out))
	return out, nil
}

// DeleteAccount removes an owned account together with its details. System
// default accounts and accounts a card still points at cannot be deleted.
func (s *Service) DeleteAccount(ctx context.Context, owner, accountID uuid.UUID) (err error) {
	logger := s.logger.With("userID", owner, "accountID", accountID)
	logger.Info("DeleteAccount started")

	var acc *account.Account
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := resolveOwner(ctx, uow, owner); err != nil {
			return err
		}
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acc, err = repo.GetOwned(ctx, accountID, owner)
		if err != nil {
			return err
		}
		if err := acc.CanDelete(); err != nil {
			return err
		}
		inUse, err := repo.IsReferenced(ctx, accountID)
		if err != nil {
			return err
		}
		if inUse {
			return account.ErrAccountInUse
		}
		return repo.Delete(ctx, accountID)
	})
	if err != nil {
		logger.Error("DeleteAccount failed", "error", err)
		return err
	}

	logger.Info("DeleteAccount successful")
	s.publish(ctx, events.NewAccountDeleted(owner, acc))
	return nil
}
