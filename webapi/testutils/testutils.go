// Package testutils builds a fully wired HTTP app over an in-memory sqlite
// database for handler tests.
package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	infracache "github.com/amirasaad/finsible/infra/cache"
	"github.com/amirasaad/finsible/infra/eventbus"
	"github.com/amirasaad/finsible/internal/fixtures/currency"
	infrarepo "github.com/amirasaad/finsible/infra/repository"
	"github.com/amirasaad/finsible/pkg/app"
	"github.com/amirasaad/finsible/pkg/config"
	"github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/amirasaad/finsible/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestEnv is a wired app plus one seeded user.
type TestEnv struct {
	App    *fiber.App
	Core   *app.App
	DB     *gorm.DB
	Bus    *eventbus.MemoryEventBus
	Owner  uuid.UUID
	Token  string
	Groups map[string]uint
}

// Response mirrors common.Response with the data left raw.
type Response struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func testConfig() *config.App {
	return &config.App{
		Env:       "test",
		Auth:      &config.Auth{Jwt: &config.Jwt{Secret: "test-secret", Expiry: time.Hour}},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
		Directory: &config.Directory{CacheTTL: time.Minute},
	}
}

// NewTestEnv migrates a private sqlite database, seeds reference data and a
// user with default currency INR, and returns the app with a token for it.
// Each opt may adjust the configuration before the app is built.
func NewTestEnv(t testing.TB, opts ...func(*config.App)) *TestEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, infrarepo.AutoMigrate(db))

	env := &TestEnv{DB: db, Groups: map[string]uint{}}
	for i, name := range []string{
		account.GroupCash, account.GroupBankAccount, account.GroupCreditCard,
		account.GroupDebitCard, account.GroupLoan,
	} {
		g := infrarepo.AccountGroup{Name: name, IsSystemDefault: true, DisplayOrder: i + 1}
		require.NoError(t, db.Create(&g).Error)
		env.Groups[name] = g.ID
	}
	currencies, err := currency.LoadCurrencies("")
	require.NoError(t, err)
	for _, c := range currencies {
		require.NoError(t, db.Create(&infrarepo.Currency{Code: c.Code, Name: c.Name, Symbol: c.Symbol}).Error)
	}

	cfg := testConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	env.Bus = eventbus.NewWithMemory(slog.Default())
	env.Core = app.New(config.Deps{
		Uow:      infrarepo.NewUoW(db),
		Cache:    infracache.NewMemoryCache(0),
		EventBus: env.Bus,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config:   cfg,
	})
	env.App = webapi.SetupApp(env.Core)
	env.Owner, env.Token = env.NewUser(t, "INR")
	return env
}

// NewUser stores a user and returns its id with a signed token.
func (e *TestEnv) NewUser(t testing.TB, currencyCode string) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	require.NoError(t, e.DB.Create(&infrarepo.User{
		ID: id, Email: id.String() + "@example.com", DefaultCurrencyCode: currencyCode,
	}).Error)
	token, err := e.Core.AuthService.GenerateToken(id)
	require.NoError(t, err)
	return id, token
}

// TokenFor signs a token for an id that need not exist.
func (e *TestEnv) TokenFor(t testing.TB, id uuid.UUID) string {
	t.Helper()
	token, err := e.Core.AuthService.GenerateToken(id)
	require.NoError(t, err)
	return token
}

// MakeRequest is a helper for making HTTP requests in tests
func (e *TestEnv) MakeRequest(t testing.TB, method, path, body, token string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := e.App.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Decode reads a success envelope and unmarshals its data into out.
func Decode(t testing.TB, resp *http.Response, out any) Response {
	t.Helper()
	defer resp.Body.Close() //nolint: errcheck
	var r Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	if out != nil {
		require.NoError(t, json.Unmarshal(r.Data, out))
	}
	return r
}
