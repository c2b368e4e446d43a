//go:build integration

package infra_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/finsible/infra"
	"github.com/amirasaad/finsible/infra/cache"
	"github.com/amirasaad/finsible/infra/eventbus"
	infrarepo "github.com/amirasaad/finsible/infra/repository"
	"github.com/amirasaad/finsible/pkg/config"
	"github.com/amirasaad/finsible/pkg/domain"
	"github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/amirasaad/finsible/pkg/dto"
	accountsvc "github.com/amirasaad/finsible/pkg/service/account"
	"github.com/amirasaad/finsible/pkg/service/directory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type PostgresSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	svc       *accountsvc.Service
	dir       *directory.Service
}

func (s *PostgresSuite) SetupSuite() {
	ctx := context.Background()
	c, err := tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("finsible"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = c

	dsn, err := c.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)
	s.db, err = infra.NewDBConnection(&config.DB{Url: dsn}, "test")
	s.Require().NoError(err)
	s.Require().NoError(infra.RunMigrations(s.db, slog.Default()))

	uow := infrarepo.NewUoW(s.db)
	s.dir = directory.New(uow, cache.NewMemoryCache(0), time.Minute, slog.Default())
	s.svc = accountsvc.NewService(config.Deps{
		Uow:      uow,
		EventBus: eventbus.NewWithMemory(slog.Default()),
		Logger:   slog.Default(),
	}, s.dir)
}

func (s *PostgresSuite) TearDownSuite() {
	if s.container != nil {
		s.NoError(testcontainers.TerminateContainer(s.container))
	}
}

func (s *PostgresSuite) newOwner() uuid.UUID {
	id := uuid.New()
	s.Require().NoError(s.db.Create(&infrarepo.User{
		ID: id, Email: id.String() + "@example.com", DefaultCurrencyCode: "INR",
	}).Error)
	return id
}

func (s *PostgresSuite) TestMigrationsAreIdempotent() {
	s.NoError(infra.RunMigrations(s.db, slog.Default()))
}

func (s *PostgresSuite) TestSeededReferenceData() {
	groups, err := s.dir.ListAccountGroups(context.Background())
	s.Require().NoError(err)
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	s.ElementsMatch([]string{
		account.GroupCash, account.GroupBankAccount, account.GroupCreditCard,
		account.GroupDebitCard, account.GroupLoan,
	}, names)

	c, err := s.dir.CurrencyByCode(context.Background(), "INR")
	s.Require().NoError(err)
	s.Equal("₹", c.Symbol)
}

func (s *PostgresSuite) TestAccountLifecycle() {
	ctx := context.Background()
	owner := s.newOwner()
	bankGroup, err := s.dir.AccountGroupByName(ctx, account.GroupBankAccount)
	s.Require().NoError(err)

	balance := decimal.NewFromInt(2500)
	bank, err := s.svc.CreatePlainAccount(ctx, owner, bankGroup.ID, dto.AccountCreate{
		Name: "Savings", Balance: &balance,
	})
	s.Require().NoError(err)

	enabled := true
	card, err := s.svc.CreateCreditCardAccount(ctx, owner, dto.CreditCardCreate{
		AccountCreate:        dto.AccountCreate{Name: "Visa", CurrencyCode: "USD"},
		CreditLimit:          decimal.NewFromInt(1000),
		AutoPayEnabled:       &enabled,
		AutoPayFromAccountID: &bank.ID,
	})
	s.Require().NoError(err)
	s.Equal("USD", card.CurrencyCode)
	s.Equal(bank.ID, *card.AutoPayFromAccountID)

	debit, err := s.svc.CreateDebitCardAccount(ctx, owner, dto.DebitCardCreate{
		AccountCreate:       dto.AccountCreate{Name: "Debit"},
		LinkedBankAccountID: &bank.ID,
	})
	s.Require().NoError(err)
	s.True(debit.Balance.Equal(balance))

	accounts, err := s.svc.GetAccounts(ctx, owner)
	s.Require().NoError(err)
	s.Require().Len(accounts, 3)
	s.Equal([]uuid.UUID{bank.ID, card.ID, debit.ID},
		[]uuid.UUID{accounts[0].ID, accounts[1].ID, accounts[2].ID})

	s.ErrorIs(s.svc.DeleteAccount(ctx, owner, bank.ID), account.ErrAccountInUse)
	s.Error(s.db.Exec("DELETE FROM accounts WHERE id = ?", bank.ID).Error, "funding account is restricted")

	s.Require().NoError(s.svc.DeleteAccount(ctx, owner, card.ID))
	var n int64
	s.Require().NoError(s.db.Model(&infrarepo.CreditCardDetail{}).Where("account_id = ?", card.ID).Count(&n).Error)
	s.Zero(n, "details removed with the account")
}

func (s *PostgresSuite) TestConcurrentUpdateConflicts() {
	ctx := context.Background()
	owner := s.newOwner()
	cash, err := s.dir.AccountGroupByName(ctx, account.GroupCash)
	s.Require().NoError(err)
	created, err := s.svc.CreatePlainAccount(ctx, owner, cash.ID, dto.AccountCreate{Name: "Wallet"})
	s.Require().NoError(err)

	repo := infrarepo.NewAccountRepository(s.db)
	first, err := repo.GetOwned(ctx, created.ID, owner)
	s.Require().NoError(err)
	second, err := repo.GetOwned(ctx, created.ID, owner)
	s.Require().NoError(err)

	first.Name = "first"
	s.Require().NoError(repo.Update(ctx, first))
	second.Name = "second"
	err = repo.Update(ctx, second)
	assert.ErrorIs(s.T(), err, domain.ErrConflict)
}

func TestPostgresSuite(t *testing.T) {
	suite.Run(t, new(PostgresSuite))
}
