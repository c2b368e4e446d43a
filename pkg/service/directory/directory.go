// Package directory serves account groups and supported currencies. Both
// lists are small and rarely change, so they are cached as a whole and
// lookups are answered from the cached list.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/finsible/pkg/cache"
	"github.com/amirasaad/finsible/pkg/domain"
	"github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/amirasaad/finsible/pkg/domain/reference"
	"github.com/amirasaad/finsible/pkg/repository"
	"golang.org/x/sync/singleflight"
)

const (
	accountGroupsKey = "directory:account_groups"
	currenciesKey    = "directory:currencies"
)

// ErrCurrencyNotSupported is returned when a currency code is not in the
// supported list.
var ErrCurrencyNotSupported = fmt.Errorf("%w: currency not supported", domain.ErrNotFound)

// Service provides cache-aside access to reference data.
type Service struct {
	uow    repository.UnitOfWork
	cache  cache.Cache
	ttl    time.Duration
	logger *slog.Logger
	loads  singleflight.Group
}

// New creates a directory Service. A nil cache disables caching.
func New(
	uow repository.UnitOfWork,
	c cache.Cache,
	ttl time.Duration,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		uow:    uow,
		cache:  c,
		ttl:    ttl,
		logger: logger.With("service", "directory"),
	}
}

// ListAccountGroups returns all account groups in display order.
func (s *Service) ListAccountGroups(ctx context.Context) ([]*reference.AccountGroup, error) {
	return cached(ctx, s, accountGroupsKey, func(ctx context.Context) ([]*reference.AccountGroup, error) {
		repo, err := s.uow.AccountGroupRepository()
		if err != nil {
			return nil, err
		}
		return repo.List(ctx)
	})
}

// ListCurrencies returns all supported currencies ordered by code.
func (s *Service) ListCurrencies(ctx context.Context) ([]*reference.Currency, error) {
	return cached(ctx, s, currenciesKey, func(ctx context.Context) ([]*reference.Currency, error) {
		repo, err := s.uow.CurrencyRepository()
		if err != nil {
			return nil, err
		}
		return repo.List(ctx)
	})
}

// AccountGroupByID returns the group with id or account.ErrGroupNotFound.
func (s *Service) AccountGroupByID(ctx context.Context, id uint) (*reference.AccountGroup, error) {
	groups, err := s.ListAccountGroups(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, account.ErrGroupNotFound
}

// AccountGroupByName returns the group named name or account.ErrGroupNotFound.
func (s *Service) AccountGroupByName(ctx context.Context, name string) (*reference.AccountGroup, error) {
	groups, err := s.ListAccountGroups(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if g.Name == name {
			return g, nil
		}
	}
	return nil, account.ErrGroupNotFound
}

// CurrencyByCode returns the supported currency or ErrCurrencyNotSupported.
func (s *Service) CurrencyByCode(ctx context.Context, code string) (*reference.Currency, error) {
	currencies, err := s.ListCurrencies(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range currencies {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, ErrCurrencyNotSupported
}

// cached reads key from the cache and falls back to load on a miss. Cache
// failures are logged and never fail the lookup. Concurrent misses for the
// same key share one load.
func cached[T any](
	ctx context.Context,
	s *Service,
	key string,
	load func(context.Context) ([]T, error),
) ([]T, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("directory cache read failed", "key", key, "error", err)
		} else if raw != nil {
			var out []T
			if err := json.Unmarshal(raw, &out); err == nil {
				return out, nil
			}
			s.logger.Warn("directory cache entry corrupt", "key", key)
		}
	}

	v, err, _ := s.loads.Do(key, func() (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			if raw, err := json.Marshal(items); err == nil {
				if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
					s.logger.Warn("directory cache write failed", "key", key, "error", err)
				}
			}
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}
