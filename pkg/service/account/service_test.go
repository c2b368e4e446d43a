package account_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/amirasaad/finsible/infra/eventbus"
	"github.com/amirasaad/finsible/internal/fixtures/mocks"
	"github.com/amirasaad/finsible/pkg/config"
	"github.com/amirasaad/finsible/pkg/domain"
	"github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/amirasaad/finsible/pkg/domain/events"
	"github.com/amirasaad/finsible/pkg/domain/reference"
	"github.com/amirasaad/finsible/pkg/domain/user"
	"github.com/amirasaad/finsible/pkg/dto"
	"github.com/amirasaad/finsible/pkg/repository"
	accountsvc "github.com/amirasaad/finsible/pkg/service/account"
	"github.com/amirasaad/finsible/pkg/service/directory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	bankGroup   = &reference.AccountGroup{ID: 1, Name: account.GroupBankAccount}
	cashGroup   = &reference.AccountGroup{ID: 2, Name: account.GroupCash}
	creditGroup = &reference.AccountGroup{ID: 3, Name: account.GroupCreditCard}
	debitGroup  = &reference.AccountGroup{ID: 4, Name: account.GroupDebitCard}
	loanGroup   = &reference.AccountGroup{ID: 5, Name: account.GroupLoan}
)

type fixture struct {
	uow      *mocks.MockUnitOfWork
	users    *mocks.MockUserRepository
	accounts *mocks.MockAccountRepository
	credit   *mocks.MockCreditCardRepository
	debit    *mocks.MockDebitCardRepository
	loans    *mocks.MockLoanRepository
	dir      *mocks.MockDirectory
	bus      *eventbus.MemoryEventBus
	owner    *user.User
	svc      *accountsvc.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		uow:      mocks.NewMockUnitOfWork(t),
		users:    mocks.NewMockUserRepository(t),
		accounts: mocks.NewMockAccountRepository(t),
		credit:   mocks.NewMockCreditCardRepository(t),
		debit:    mocks.NewMockDebitCardRepository(t),
		loans:    mocks.NewMockLoanRepository(t),
		dir:      mocks.NewMockDirectory(t),
		bus:      eventbus.NewWithMemory(slog.Default()),
		owner:    &user.User{ID: uuid.New(), DefaultCurrencyCode: "INR"},
	}
	f.uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(f.uow)
		},
	).Maybe()
	f.uow.EXPECT().UserRepository().Return(f.users, nil).Maybe()
	f.uow.EXPECT().AccountRepository().Return(f.accounts, nil).Maybe()
	f.uow.EXPECT().CreditCardRepository().Return(f.credit, nil).Maybe()
	f.uow.EXPECT().DebitCardRepository().Return(f.debit, nil).Maybe()
	f.uow.EXPECT().LoanRepository().Return(f.loans, nil).Maybe()

	f.svc = accountsvc.NewService(config.Deps{
		Uow:      f.uow,
		EventBus: f.bus,
		Logger:   slog.Default(),
	}, f.dir)
	return f
}

func (f *fixture) expectOwner() {
	f.users.EXPECT().Get(mock.Anything, f.owner.ID).Return(f.owner, nil).Once()
}

func (f *fixture) expectCurrency(code string) {
	f.dir.EXPECT().CurrencyByCode(mock.Anything, code).
		Return(&reference.Currency{Code: code}, nil).Once()
}

func (f *fixture) newAccount(t *testing.T, g *reference.AccountGroup, balance int64) *account.Account {
	t.Helper()
	a, err := account.New().
		WithUserID(f.owner.ID).
		WithGroup(g.ID, g.Name).
		WithName(g.Name+" account", "", "").
		WithBalance(decimal.NewFromInt(balance)).
		WithCurrency("INR").
		Build()
	require.NoError(t, err)
	a.Version = 1
	return a
}

func TestCreatePlainAccount_AppliesDefaults(t *testing.T) {
	f := newFixture(t)
	f.expectOwner()
	f.dir.EXPECT().AccountGroupByID(mock.Anything, cashGroup.ID).Return(cashGroup, nil).Once()
	f.dir.EXPECT().CurrencyByCode(mock.Anything, "XYZ").Return(nil, directory.ErrCurrencyNotSupported).Once()
	f.accounts.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *account.Account) bool {
		return a.Balance.IsZero() && a.CurrencyCode == "INR" && a.IsActive && a.OwnedBy(f.owner.ID)
	})).Return(nil).Once()

	got, err := f.svc.CreatePlainAccount(context.Background(), f.owner.ID, cashGroup.ID, dto.AccountCreate{
		Name:         "Wallet",
		CurrencyCode: "XYZ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Wallet", got.Name)
	assert.Equal(t, "INR", got.CurrencyCode)
	assert.True(t, got.Balance.IsZero())
	assert.Nil(t, got.CreditLimit)
	assert.Nil(t, got.LinkedBankAccountID)

	published := f.bus.Published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventTypeAccountCreated.String(), published[0].Type())
}

func TestCreatePlainAccount_UnknownGroup(t *testing.T) {
	f := newFixture(t)
	f.expectOwner()
	f.dir.EXPECT().AccountGroupByID(mock.Anything, uint(42)).Return(nil, account.ErrGroupNotFound).Once()

	_, err := f.svc.CreatePlainAccount(context.Background(), f.owner.ID, 42, dto.AccountCreate{Name: "x"})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.bus.Published())
}

func TestCreatePlainAccount_RejectsCardGroups(t *testing.T) {
	f := newFixture(t)
	f.expectOwner()
	f.dir.EXPECT().AccountGroupByID(mock.Anything, creditGroup.ID).Return(creditGroup, nil).Once()

	_, err := f.svc.CreatePlainAccount(context.Background(), f.owner.ID, creditGroup.ID, dto.AccountCreate{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestOperations_OwnerNotFound(t *testing.T) {
	ctx := context.Background()
	cases := map[string]func(*fixture) error{
		"create plain": func(f *fixture) error {
			_, err := f.svc.CreatePlainAccount(ctx, f.owner.ID, 1, dto.AccountCreate{Name: "x"})
			return err
		},
		"create credit card": func(f *fixture) error {
			_, err := f.svc.CreateCreditCardAccount(ctx, f.owner.ID, dto.CreditCardCreate{CreditLimit: decimal.NewFromInt(1)})
			return err
		},
		"create debit card": func(f *fixture) error {
			_, err := f.svc.CreateDebitCardAccount(ctx, f.owner.ID, dto.DebitCardCreate{})
			return err
		},
		"update plain": func(f *fixture) error {
			_, err := f.svc.UpdatePlainAccount(ctx, f.owner.ID, uuid.New(), dto.AccountUpdate{})
			return err
		},
		"update credit card": func(f *fixture) error {
			_, err := f.svc.UpdateCreditCardAccount(ctx, f.owner.ID, uuid.New(), dto.CreditCardUpdate{})
			return err
		},
		"update debit card": func(f *fixture) error {
			_, err := f.svc.UpdateDebitCardAccount(ctx, f.owner.ID, uuid.New(), dto.DebitCardUpdate{})
			return err
		},
		"get accounts": func(f *fixture) error {
			_, err := f.svc.GetAccounts(ctx, f.owner.ID)
			return err
		},
		"delete": func(f *fixture) error {
			return f.svc.DeleteAccount(ctx, f.owner.ID, uuid.New())
		},
	}
	for name, call := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			f.users.EXPECT().Get(mock.Anything, f.owner.ID).Return(nil, domain.ErrOwnerNotFound).Once()
			assert.ErrorIs(t, call(f), domain.ErrOwnerNotFound)
		})
	}
}

func TestCreateCreditCardAccount_Defaults(t *testing.T) {
	f := newFixture(t)
	f.expectOwner()
	f.expectCurrency("INR")
	f.dir.EXPECT().AccountGroupByName(mock.Anything, account.GroupCreditCard).Return(creditGroup, nil).Once()

	var baseID uuid.UUID
	f.accounts.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, a *account.Account) { baseID = a.ID }).
		Return(nil).Once()
	f.credit.EXPECT().Create(mock.Anything, mock.MatchedBy(func(cc *account.CreditCard) bool {
		return cc.AccountID == baseID
	})).Return(nil).Once()

	got, err := f.svc.CreateCreditCardAccount(context.Background(), f.owner.ID, dto.CreditCardCreate{
		AccountCreate: dto.AccountCreate{Name: "Visa", CurrencyCode: "INR"},
		CreditLimit:   decimal.NewFromInt(50000),
	})
	require.NoError(t, err)

	assert.Equal(t, baseID, got.ID)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(50000)))
	require.NotNil(t, got.AvailableCredit)
	assert.True(t, got.AvailableCredit.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, 1, *got.BillingDate)
	assert.Equal(t, 20, *got.DueDate)
	assert.False(t, *got.AutoPayEnabled)
	assert.Nil(t, got.AutoPayFromAccountID)
	assert.True(t, got.IsActive)
}

func TestCreateCreditCardAccount_MissingGroupIsConfigurationError(t *testing.T) {
	f := newFixture(t)
	f.expectOwner()
	f.dir.EXPECT().AccountGroupByName(mock.Anything, account.GroupCreditCard).Return(nil, account.ErrGroupNotFound).Once()

	_, err := f.svc.CreateCreditCardAccount(context.Background(), f.owner.ID, dto.CreditCardCreate{
		CreditLimit: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestCreateCreditCardAccount_AutoPayReference(t *testing.T) {
	enabled := true

	t.Run("missing reference", func(t *testing.T) {
		f := newFixture(t)
		f.expectOwner()
		f.dir.EXPECT().AccountGroupByName(mock.Anything, account.GroupCreditCard).Return(creditGroup, nil).Once()

		_, err := f.svc.CreateCreditCardAccount(context.Background(), f.owner.ID, dto.CreditCardCreate{
			AccountCreate:  dto.AccountCreate{Name: "Visa"},
			CreditLimit:    decimal.NewFromInt(100),
			AutoPayEnabled: &enabled,
		})
		require.ErrorIs(t, err, account.ErrReferenceRequired)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("not a bank account", func(t *testing.T) {
		f := newFixture(t)
		f.expectOwner()
		f.dir.EXPECT().AccountGroupByName(mock.Anything, account.GroupCreditCard).Return(creditGroup, nil).Once()
		cash := f.newAccount(t, cashGroup, 10)
		f.accounts.EXPECT().GetOwned(mock.Anything, cash.ID, f.owner.ID).Return(cash, nil).Once()

		_, err := f.svc.CreateCreditCardAccount(context.Background(), f.owner.ID, dto.CreditCardCreate{
			AccountCreate:        dto.AccountCreate{Name: "Visa"},
			CreditLimit:          decimal.NewFromInt(100),
			AutoPayEnabled:       &enabled,
			AutoPayFromAccountID: &cash.ID,
		})
		assert.ErrorIs(t, err, account.ErrNotBankAccount)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("foreign account", func(t *testing.T) {
		f := newFixture(t)
		f.expectOwner()
		f.dir.EXPECT().AccountGroupByName(mock.Anything, account.GroupCreditCard).Return(creditGroup, nil).Once()
		foreign := uuid.New()
		f.accounts.EXPECT().GetOwned(mock.Anything, foreign, f.owner.ID).Return(nil, account.ErrAccountNotFound).Once()

		_, err := f.svc.CreateCreditCardAccount(context.Background(), f.owner.ID, dto.CreditCardCreate{
			AccountCreate:        dto.AccountCreate{Name: "Visa"},
			CreditLimit:          decimal.NewFromInt(100),
			AutoPayEnabled:       &enabled,
			AutoPayFromAccountID: &foreign,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("bank account links", func(t *testing.T) {
		f := newFixture(t)
		f.expectOwner()
		f.expectCurrency("INR")
		f.dir.EXPECT().AccountGroupByName(mock.Anything, account.GroupCreditCard).Return(creditGroup, nil).Once()
		bank := f.newAccount(t, bankGroup, 500)
		f.accounts.EXPECT().GetOwned(mock.Anything, bank.ID, f.owner.ID).Return(bank, nil).Once()
		f.accounts.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		f.credit.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		got, err := f.svc.CreateCreditCardAccount(context.Background(), f.owner.ID, dto.CreditCardCreate{
			AccountCreate:        dto.AccountCreate{Name: "Visa", CurrencyCode: "INR"},
			CreditLimit:          decimal.NewFromInt(100),
			AutoPayEnabled:       &enabled,
			AutoPayFromAccountID: &bank.ID,
		})
		require.NoError(t, err)
		assert.True(t, *got.AutoPayEnabled)
		assert.Equal(t, bank.ID, *got.AutoPayFromAccountID)
	})
}

func TestCreateCreditCardAccount_ExtensionFailureFailsOperation(t *testing.T) {
	f := newFixture(t)
	f.expectOwner()
	f.expectCurrency("INR")
	f.dir.EXPECT().AccountGroupByName(mock.Anything, account.GroupCreditCard).Return(creditGroup, nil).Once()
	f.accounts.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	f.credit.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("insert failed")).Once()

	_, err := f.svc.CreateCreditCardAccount(context.Background(), f.owner.ID, dto.CreditCardCreate{
		AccountCreate: dto.AccountCreate{Name: "Visa", CurrencyCode: "INR"},
		CreditLimit:   decimal.NewFromInt(100),
	})
	assert.EqualError(t, err, "insert failed")
	assert.Empty(t, f.bus.Published())
}

func TestCreateDebitCardAccount_SnapshotsLinkedBalance(t *testing.T) {
	f := newFixture(t)
	f.expectOwner()
	f.dir.EXPECT().AccountGroupByName(mock.Anything, account.GroupDebitCard).Return(debitGroup, nil).Once()
	bank := f.newAccount(t, bankGroup, 10000)
	f.accounts.EXPECT().GetOwned(mock.Anything, bank.ID, f.owner.ID).Return(bank, nil).Once()
	f.accounts.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	f.debit.EXPECT().Create(mock.Anything, mock.MatchedBy(func(dc *account.DebitCard) bool {
		return dc.LinkedBankAccountID == bank.ID
	})).Return(nil).Once()

	got, err := f.svc.CreateDebitCardAccount(context.Background(), f.owner.ID, dto.DebitCardCreate{
		AccountCreate:       dto.AccountCreate{Name: "Debit"},
		LinkedBankAccountID: &bank.ID,
	})
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, bank.ID, *got.LinkedBankAccountID)
	assert.Equal(t, "INR", got.CurrencyCode)
}

func TestCreateDebitCardAccount_RequiresBankAccount(t *testing.T) {
	f := newFixture(t)
	f.expectOwner()
	f.dir.EXPECT().AccountGroupByName(mock.Anything, account.GroupDebitCard).Return(debitGroup, nil).Once()

	_, err := f.svc.CreateDebitCardAccount(context.Background(), f.owner.ID, dto.DebitCardCreate{
		AccountCreate: dto.AccountCreate{Name: "Debit"},
	})
	assert.ErrorIs(t, err, account.ErrReferenceRequired)
}

func (f *fixture) creditCard(t *testing.T) (*account.Account, *account.CreditCard) {
	t.Helper()
	acc := f.newAccount(t, creditGroup, 1000)
	cc, err := account.NewCreditCard(acc.ID, decimal.NewFromInt(1000), nil, nil, nil, nil)
	require.NoError(t, err)
	return acc, cc
}

func TestUpdateCreditCardAccount_NoOpSkipsWrites(t *testing.T) {
	f := newFixture(t)
	f.expectOwner()
	acc, cc := f.creditCard(t)
	f.accounts.EXPECT().GetOwned(mock.Anything, acc.ID, f.owner.ID).Return(acc, nil).Once()
	f.credit.EXPECT().Get(mock.Anything, acc.ID).Return(cc, nil).Once()

	name := acc.Name
	limit := decimal.NewFromInt(1000)
	got, err := f.svc.UpdateCreditCardAccount(context.Background(), f.owner.ID, acc.ID, dto.CreditCardUpdate{
		AccountUpdate: dto.AccountUpdate{Name: &name},
		CreditLimit:   &limit,
	})
	require.NoError(t, err)
	assert.Equal(t, acc.Name, got.Name)
	f.accounts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.credit.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Empty(t, f.bus.Published())
}

func TestUpdateCreditCardAccount_DisableAutoPayClearsLink(t *testing.T) {
	f := newFixture(t)
	f.expectOwner()
	acc, cc := f.creditCard(t)
	cc.EnableAutoPay(uuid.New())
	f.accounts.EXPECT().GetOwned(mock.Anything, acc.ID, f.owner.ID).Return(acc, nil).Once()
	f.credit.EXPECT().Get(mock.Anything, acc.ID).Return(cc, nil).Once()
	f.accounts.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
	f.credit.EXPECT().Update(mock.Anything, mock.MatchedBy(func(c *account.CreditCard) bool {
		return !c.AutoPayEnabled && c.AutoPayFromAccountID == nil
	})).Return(nil).Once()

	disabled := false
	got, err := f.svc.UpdateCreditCardAccount(context.Background(), f.owner.ID, acc.ID, dto.CreditCardUpdate{
		AutoPayEnabled: &disabled,
	})
	require.NoError(t, err)
	assert.False(t, *got.AutoPayEnabled)
	assert.Nil(t, got.AutoPayFromAccountID)
	assert.Len(t, f.bus.Published(), 1)
}

func TestUpdateCreditCardAccount_EnableAutoPayValidatesBankAccount(t *testing.T) {
	f := newFixture(t)
	f.expectOwner()
	acc, cc := f.creditCard(t)
	loan := f.newAccount(t, loanGroup, 0)
	f.accounts.EXPECT().GetOwned(mock.Anything, acc.ID, f.owner.ID).Return(acc, nil).Once()
	f.credit.EXPECT().Get(mock.Anything, acc.ID).Return(cc, nil).Once()
	f.accounts.EXPECT().GetOwned(mock.Anything, loan.ID, f.owner.ID).Return(loan, nil).Once()

	enabled := true
	_, err := f.svc.UpdateCreditCardAccount(context.Background(), f.owner.ID, acc.ID, dto.CreditCardUpdate{
		AutoPayEnabled:       &enabled,
		AutoPayFromAccountID: &loan.ID,
	})
	assert.ErrorIs(t, err, account.ErrNotBankAccount)
}

func TestUpdateCreditCardAccount_FundingAccountNeedsAutoPay(t *testing.T) {
	f := newFixture(t)
	f.expectOwner()
	acc, cc := f.creditCard(t)
	f.accounts.EXPECT().GetOwned(mock.Anything, acc.ID, f.owner.ID).Return(acc, nil).Once()
	f.credit.EXPECT().Get(mock.Anything, acc.ID).Return(cc, nil).Once()

	from := uuid.New()
	_, err := f.svc.UpdateCreditCardAccount(context.Background(), f.owner.ID, acc.ID, dto.CreditCardUpdate{
		AutoPayFromAccountID: &from,
	})
	assert.ErrorIs(t, err, accountsvc.ErrAutoPayDisabled)
}

func TestUpdateCreditCardAccount_WrongVariant(t *testing.T) {
	f := newFixture(t)
	f.expectOwner()
	bank := f.newAccount(t, bankGroup, 0)
	f.accounts.EXPECT().GetOwned(mock.Anything, bank.ID, f.owner.ID).Return(bank, nil).Once()

	_, err := f.svc.UpdateCreditCardAccount(context.Background(), f.owner.ID, bank.ID, dto.CreditCardUpdate{})
	assert.ErrorIs(t, err, account.ErrDetailNotFound)
}

func TestUpdateCreditCardAccount_VersionConflict(t *testing.T) {
	f := newFixture(t)
	f.expectOwner()
	acc, cc := f.creditCard(t)
	f.accounts.EXPECT().GetOwned(mock.Anything, acc.ID, f.owner.ID).Return(acc, nil).Once()
	f.credit.EXPECT().Get(mock.Anything, acc.ID).Return(cc, nil).Once()
	f.accounts.EXPECT().Update(mock.Anything, mock.Anything).Return(account.ErrVersionMismatch).Once()

	due := 25
	_, err := f.svc.UpdateCreditCardAccount(context.Background(), f.owner.ID, acc.ID, dto.CreditCardUpdate{
		DueDate: &due,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, f.bus.Published())
}

func TestUpdateCreditCardAccount_InvalidDay(t *testing.T) {
	f := newFixture(t)
	f.expectOwner()
	acc, cc := f.creditCard(t)
	f.accounts.EXPECT().GetOwned(mock.Anything, acc.ID, f.owner.ID).Return(acc, nil).Once()
	f.credit.EXPECT().Get(mock.Anything, acc.ID).Return(cc, nil).Once()

	billing := 32
	_, err := f.svc.UpdateCreditCardAccount(context.Background(), f.owner.ID, acc.ID, dto.CreditCardUpdate{
		BillingDate: &billing,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateDebitCardAccount_RelinksWithoutResync(t *testing.T) {
	f := newFixture(t)
	f.expectOwner()
	acc := f.newAccount(t, debitGroup, 700)
	dc := &account.DebitCard{AccountID: acc.ID, LinkedBankAccountID: uuid.New()}
	other := f.newAccount(t, bankGroup, 99999)
	f.accounts.EXPECT().GetOwned(mock.Anything, acc.ID, f.owner.ID).Return(acc, nil).Once()
	f.debit.EXPECT().Get(mock.Anything, acc.ID).Return(dc, nil).Once()
	f.accounts.EXPECT().GetOwned(mock.Anything, other.ID, f.owner.ID).Return(other, nil).Once()
	f.accounts.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
	f.debit.EXPECT().Update(mock.Anything, &account.DebitCard{AccountID: acc.ID, LinkedBankAccountID: other.ID}).
		Return(nil).Once()

	got, err := f.svc.UpdateDebitCardAccount(context.Background(), f.owner.ID, acc.ID, dto.DebitCardUpdate{
		LinkedBankAccountID: &other.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, other.ID, *got.LinkedBankAccountID)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(700)))
}

func TestUpdateDebitCardAccount_MissingDetails(t *testing.T) {
	f := newFixture(t)
	f.expectOwner()
	acc := f.newAccount(t, debitGroup, 0)
	f.accounts.EXPECT().GetOwned(mock.Anything, acc.ID, f.owner.ID).Return(acc, nil).Once()
	f.debit.EXPECT().Get(mock.Anything, acc.ID).Return(nil, account.ErrDetailNotFound).Once()

	_, err := f.svc.UpdateDebitCardAccount(context.Background(), f.owner.ID, acc.ID, dto.DebitCardUpdate{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdatePlainAccount(t *testing.T) {
	t.Run("unsupported currency is ignored", func(t *testing.T) {
		f := newFixture(t)
		f.expectOwner()
		acc := f.newAccount(t, cashGroup, 5)
		f.accounts.EXPECT().GetOwned(mock.Anything, acc.ID, f.owner.ID).Return(acc, nil).Once()
		f.dir.EXPECT().CurrencyByCode(mock.Anything, "ZZZ").Return(nil, directory.ErrCurrencyNotSupported).Once()

		code := "ZZZ"
		got, err := f.svc.UpdatePlainAccount(context.Background(), f.owner.ID, acc.ID, dto.AccountUpdate{CurrencyCode: &code})
		require.NoError(t, err)
		assert.Equal(t, "INR", got.CurrencyCode)
		f.accounts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("changes are written", func(t *testing.T) {
		f := newFixture(t)
		f.expectOwner()
		f.expectCurrency("USD")
		acc := f.newAccount(t, cashGroup, 5)
		f.accounts.EXPECT().GetOwned(mock.Anything, acc.ID, f.owner.ID).Return(acc, nil).Once()
		f.accounts.EXPECT().Update(mock.Anything, mock.MatchedBy(func(a *account.Account) bool {
			return a.Name == "Pocket" && a.CurrencyCode == "USD" && a.Version == 1
		})).Return(nil).Once()

		name, code := "Pocket", "USD"
		got, err := f.svc.UpdatePlainAccount(context.Background(), f.owner.ID, acc.ID, dto.AccountUpdate{
			Name:         &name,
			CurrencyCode: &code,
		})
		require.NoError(t, err)
		assert.Equal(t, "Pocket", got.Name)
		assert.Equal(t, "Cash account", acc.Name, "stored account must not be mutated")
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.expectOwner()
		acc := f.newAccount(t, cashGroup, 5)
		f.accounts.EXPECT().GetOwned(mock.Anything, acc.ID, f.owner.ID).Return(acc, nil).Once()

		blank := ""
		_, err := f.svc.UpdatePlainAccount(context.Background(), f.owner.ID, acc.ID, dto.AccountUpdate{Name: &blank})
		assert.ErrorIs(t, err, account.ErrNameRequired)
	})
}

func TestGetAccounts_BatchesOneLookupPerKind(t *testing.T) {
	f := newFixture(t)
	f.expectOwner()

	bank := f.newAccount(t, bankGroup, 100)
	card1 := f.newAccount(t, creditGroup, 200)
	debit := f.newAccount(t, debitGroup, 100)
	card2 := f.newAccount(t, creditGroup, 300)
	loan := f.newAccount(t, loanGroup, 0)
	orphan := f.newAccount(t, debitGroup, 0)
	list := []*account.Account{bank, card1, debit, card2, loan, orphan}
	f.accounts.EXPECT().ListByUser(mock.Anything, f.owner.ID).Return(list, nil).Once()

	cc1, _ := account.NewCreditCard(card1.ID, decimal.NewFromInt(200), nil, nil, nil, nil)
	cc2, _ := account.NewCreditCard(card2.ID, decimal.NewFromInt(300), nil, nil, nil, nil)
	f.credit.EXPECT().ListByAccountIDs(mock.Anything, []uuid.UUID{card1.ID, card2.ID}).
		Return(map[uuid.UUID]*account.CreditCard{card1.ID: cc1, card2.ID: cc2}, nil).Once()
	f.debit.EXPECT().ListByAccountIDs(mock.Anything, []uuid.UUID{debit.ID, orphan.ID}).
		Return(map[uuid.UUID]*account.DebitCard{debit.ID: {AccountID: debit.ID, LinkedBankAccountID: bank.ID}}, nil).Once()
	f.loans.EXPECT().ListByAccountIDs(mock.Anything, []uuid.UUID{loan.ID}).
		Return(map[uuid.UUID]*account.Loan{loan.ID: {AccountID: loan.ID, LoanType: "home", PrincipalAmount: decimal.NewFromInt(1)}}, nil).Once()

	got, err := f.svc.GetAccounts(context.Background(), f.owner.ID)
	require.NoError(t, err)
	require.Len(t, got, len(list))

	for i, a := range list {
		assert.Equal(t, a.ID, got[i].ID, "order must follow the base listing")
	}
	assert.Nil(t, got[0].CreditLimit)
	assert.Nil(t, got[0].LinkedBankAccountID)
	assert.True(t, got[1].CreditLimit.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, bank.ID, *got[2].LinkedBankAccountID)
	assert.Nil(t, got[2].CreditLimit)
	assert.True(t, got[3].CreditLimit.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, "home", *got[4].LoanType)
	assert.Nil(t, got[5].LinkedBankAccountID, "missing details leave only base fields")
}

func TestGetAccounts_PlainOnlySkipsExtensionLookups(t *testing.T) {
	f := newFixture(t)
	f.expectOwner()
	f.accounts.EXPECT().ListByUser(mock.Anything, f.owner.ID).
		Return([]*account.Account{f.newAccount(t, cashGroup, 1)}, nil).Once()

	got, err := f.svc.GetAccounts(context.Background(), f.owner.ID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	f.credit.AssertNotCalled(t, "ListByAccountIDs", mock.Anything, mock.Anything)
	f.debit.AssertNotCalled(t, "ListByAccountIDs", mock.Anything, mock.Anything)
	f.loans.AssertNotCalled(t, "ListByAccountIDs", mock.Anything, mock.Anything)
}

func TestDeleteAccount(t *testing.T) {
	t.Run("system default is protected", func(t *testing.T) {
		f := newFixture(t)
		f.expectOwner()
		acc := f.newAccount(t, cashGroup, 0)
		acc.IsSystemDefault = true
		f.accounts.EXPECT().GetOwned(mock.Anything, acc.ID, f.owner.ID).Return(acc, nil).Once()

		err := f.svc.DeleteAccount(context.Background(), f.owner.ID, acc.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		f.accounts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("not owned", func(t *testing.T) {
		f := newFixture(t)
		f.expectOwner()
		id := uuid.New()
		f.accounts.EXPECT().GetOwned(mock.Anything, id, f.owner.ID).Return(nil, account.ErrAccountNotFound).Once()

		err := f.svc.DeleteAccount(context.Background(), f.owner.ID, id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("bank account still referenced by a card", func(t *testing.T) {
		f := newFixture(t)
		f.expectOwner()
		acc := f.newAccount(t, bankGroup, 100)
		f.accounts.EXPECT().GetOwned(mock.Anything, acc.ID, f.owner.ID).Return(acc, nil).Once()
		f.accounts.EXPECT().IsReferenced(mock.Anything, acc.ID).Return(true, nil).Once()

		err := f.svc.DeleteAccount(context.Background(), f.owner.ID, acc.ID)
		assert.ErrorIs(t, err, account.ErrAccountInUse)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		f.accounts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		assert.Empty(t, f.bus.Published())
	})

	t.Run("ordinary account", func(t *testing.T) {
		f := newFixture(t)
		f.expectOwner()
		acc := f.newAccount(t, creditGroup, 0)
		f.accounts.EXPECT().GetOwned(mock.Anything, acc.ID, f.owner.ID).Return(acc, nil).Once()
		f.accounts.EXPECT().IsReferenced(mock.Anything, acc.ID).Return(false, nil).Once()
		f.accounts.EXPECT().Delete(mock.Anything, acc.ID).Return(nil).Once()

		require.NoError(t, f.svc.DeleteAccount(context.Background(), f.owner.ID, acc.ID))
		published := f.bus.Published()
		require.Len(t, published, 1)
		deleted, ok := published[0].(*events.AccountDeleted)
		require.True(t, ok)
		assert.Equal(t, acc.ID, deleted.AccountID)
		assert.Equal(t, string(account.KindCreditCard), deleted.Kind)
	})
}

func TestPublishFailureDoesNotFailOperation(t *testing.T) {
	f := newFixture(t)
	bus := mocks.NewMockBus(t)
	svc := accountsvc.NewService(config.Deps{Uow: f.uow, EventBus: bus}, f.dir)

	f.expectOwner()
	acc := f.newAccount(t, cashGroup, 0)
	f.accounts.EXPECT().GetOwned(mock.Anything, acc.ID, f.owner.ID).Return(acc, nil).Once()
	f.accounts.EXPECT().IsReferenced(mock.Anything, acc.ID).Return(false, nil).Once()
	f.accounts.EXPECT().Delete(mock.Anything, acc.ID).Return(nil).Once()
	bus.EXPECT().Emit(mock.Anything, mock.AnythingOfType("*events.AccountDeleted")).
		Return(errors.New("broker unavailable")).Once()

	assert.NoError(t, svc.DeleteAccount(context.Background(), f.owner.ID, acc.ID))
}
