package app_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	infracache "github.com/amirasaad/finsible/infra/cache"
	"github.com/amirasaad/finsible/infra/eventbus"
	"github.com/amirasaad/finsible/internal/fixtures/mocks"
	"github.com/amirasaad/finsible/pkg/app"
	"github.com/amirasaad/finsible/pkg/config"
	"github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/amirasaad/finsible/pkg/domain/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.App {
	return &config.App{
		Auth:      &config.Auth{Jwt: &config.Jwt{Secret: "secret", Expiry: time.Hour}},
		Directory: &config.Directory{CacheTTL: time.Minute},
	}
}

func TestNew_BuildsServices(t *testing.T) {
	a := app.New(config.Deps{
		Uow:      mocks.NewMockUnitOfWork(t),
		Cache:    infracache.NewMemoryCache(0),
		EventBus: eventbus.NewWithMemory(slog.Default()),
		Logger:   slog.Default(),
		Config:   testConfig(),
	})

	assert.NotNil(t, a.AuthService)
	assert.NotNil(t, a.AccountService)
	assert.NotNil(t, a.DirectoryService)
}

func TestNew_RegistersIdempotentAuditSubscriber(t *testing.T) {
	c := infracache.NewMemoryCache(0)
	bus := eventbus.NewWithMemory(slog.Default())
	app.New(config.Deps{
		Uow:      mocks.NewMockUnitOfWork(t),
		Cache:    c,
		EventBus: bus,
		Logger:   slog.Default(),
		Config:   testConfig(),
	})

	owner := uuid.New()
	acc, err := account.New().WithUserID(owner).WithGroup(1, account.GroupBankAccount).
		WithName("Savings", "", "").WithCurrency("INR").Build()
	require.NoError(t, err)
	ev := events.NewAccountCreated(owner, acc)

	require.NoError(t, bus.Emit(context.Background(), ev))

	v, err := c.Get(context.Background(), "idempotency:audit:"+ev.ID)
	require.NoError(t, err)
	assert.NotNil(t, v, "delivered event id is remembered")
}
