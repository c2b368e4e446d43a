// Package account implements the account lifecycle: creating, updating,
// listing and deleting accounts of every variant.
//
// Every operation resolves the calling owner first and runs in a single unit
// of work, so a base record and its extension commit or roll back together.
// Lifecycle events are published only after the unit of work committed.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/finsible/pkg/config"
	"github.com/amirasaad/finsible/pkg/domain"
	"github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/amirasaad/finsible/pkg/domain/events"
	"github.com/amirasaad/finsible/pkg/domain/reference"
	"github.com/amirasaad/finsible/pkg/domain/user"
	"github.com/amirasaad/finsible/pkg/eventbus"
	"github.com/amirasaad/finsible/pkg/repository"
	"github.com/google/uuid"
)

// Directory resolves reference data needed by account operations.
type Directory interface {
	AccountGroupByID(ctx context.Context, id uint) (*reference.AccountGroup, error)
	AccountGroupByName(ctx context.Context, name string) (*reference.AccountGroup, error)
	CurrencyByCode(ctx context.Context, code string) (*reference.Currency, error)
}

// Service provides the account lifecycle operations.
type Service struct {
	uow       repository.UnitOfWork
	directory Directory
	bus       eventbus.Bus
	logger    *slog.Logger
}

// NewService creates a new Service with the provided dependencies.
func NewService(deps config.Deps, directory Directory) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		uow:       deps.Uow,
		directory: directory,
		bus:       deps.EventBus,
		logger:    logger.With("service", "account"),
	}
}

// resolveOwner loads the calling user; any miss is domain.ErrOwnerNotFound.
func resolveOwner(ctx context.Context, uow repository.UnitOfWork, owner uuid.UUID) (*user.User, error) {
	repo, err := uow.UserRepository()
	if err != nil {
		return nil, err
	}
	u, err := repo.Get(ctx, owner)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrOwnerNotFound
	}
	return u, err
}

// resolveCurrency returns code when it is supported and the owner's default
// currency otherwise.
func (s *Service) resolveCurrency(ctx context.Context, code string, owner *user.User) (string, error) {
	if code != "" {
		c, err := s.directory.CurrencyByCode(ctx, code)
		if err == nil {
			return c.Code, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return "", err
		}
	}
	return owner.DefaultCurrencyCode, nil
}

// wellKnownGroup resolves a seeded group. A missing group means the
// reference data was never seeded.
func (s *Service) wellKnownGroup(ctx context.Context, name string) (*reference.AccountGroup, error) {
	g, err := s.directory.AccountGroupByName(ctx, name)
	if errors.Is(err, account.ErrGroupNotFound) {
		return nil, fmt.Errorf("%w: %q account group is not seeded", domain.ErrConfiguration, name)
	}
	return g, err
}

// resolveBankAccount loads the account referenced by field and checks it may
// fund or back an account of owner. Errors are prefixed with field.
func resolveBankAccount(
	ctx context.Context,
	repo repository.AccountRepository,
	owner uuid.UUID,
	id *uuid.UUID,
	field string,
) (*account.Account, error) {
	if id == nil {
		return nil, fmt.Errorf("%s: %w", field, account.ErrReferenceRequired)
	}
	ref, err := repo.GetOwned(ctx, *id, owner)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if err := account.CheckBankReference(ref, owner); err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return ref, nil
}

// publish emits evt after commit. The commit is authoritative, so a failed
// publish is logged and not returned.
func (s *Service) publish(ctx context.Context, evt events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, evt); err != nil {
		s.logger.Error("publishing account event failed", "type", evt.Type(), "error", err)
	}
}
