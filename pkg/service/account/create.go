package account

import (
	"context"
	"fmt"

	"github.com/amirasaad/finsible/pkg/domain"
	"github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/amirasaad/finsible/pkg/domain/events"
	"github.com/amirasaad/finsible/pkg/domain/reference"
	"github.com/amirasaad/finsible/pkg/domain/user"
	"github.com/amirasaad/finsible/pkg/dto"
	"github.com/amirasaad/finsible/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrVariantGroup is returned when a plain account is created under a group
// that requires an extension record.
var ErrVariantGroup = fmt.Errorf("%w: account group requires type-specific details", domain.ErrInvalidRequest)

// CreatePlainAccount creates an account without an extension under groupID.
// A missing balance defaults to zero and an unsupported currency to the
// owner's default currency.
func (s *Service) CreatePlainAccount(
	ctx context.Context,
	owner uuid.UUID,
	groupID uint,
	in dto.AccountCreate,
) (out dto.AccountRead, err error) {
	logger := s.logger.With("userID", owner, "groupID", groupID)
	logger.Info("CreatePlainAccount started")

	var acc *account.Account
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		u, err := resolveOwner(ctx, uow, owner)
		if err != nil {
			return err
		}
		group, err := s.directory.AccountGroupByID(ctx, groupID)
		if err != nil {
			return err
		}
		if account.KindForGroup(group.Name) != account.KindPlain {
			return ErrVariantGroup
		}
		balance := decimal.Zero
		if in.Balance != nil {
			balance = *in.Balance
		}
		acc, err = s.buildAccount(ctx, u, group, in, balance)
		if err != nil {
			return err
		}
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, acc)
	})
	if err != nil {
		logger.Error("CreatePlainAccount failed", "error", err)
		return dto.AccountRead{}, err
	}

	logger.Info("CreatePlainAccount successful", "accountID", acc.ID)
	s.publish(ctx, events.NewAccountCreated(owner, acc))
	return Assemble(acc, account.Plain{}), nil
}

// CreateCreditCardAccount creates a credit card account and its details.
// The opening balance equals the available credit.
func (s *Service) CreateCreditCardAccount(
	ctx context.Context,
	owner uuid.UUID,
	in dto.CreditCardCreate,
) (out dto.AccountRead, err error) {
	logger := s.logger.With("userID", owner)
	logger.Info("CreateCreditCardAccount started")

	var (
		acc *account.Account
		cc  *account.CreditCard
	)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		u, err := resolveOwner(ctx, uow, owner)
		if err != nil {
			return err
		}
		group, err := s.wellKnownGroup(ctx, account.GroupCreditCard)
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}

		id := uuid.New()
		cc, err = account.NewCreditCard(id, in.CreditLimit, in.AvailableCredit, in.BillingDate, in.DueDate, in.AutoPayEnabled)
		if err != nil {
			return err
		}
		if cc.AutoPayEnabled {
			from, err := resolveBankAccount(ctx, accounts, owner, in.AutoPayFromAccountID, "auto pay")
			if err != nil {
				return err
			}
			cc.EnableAutoPay(from.ID)
		}

		acc, err = s.buildAccount(ctx, u, group, in.AccountCreate, cc.AvailableCredit)
		if err != nil {
			return err
		}
		acc.ID = id

		if err := accounts.Create(ctx, acc); err != nil {
			return err
		}
		details, err := uow.CreditCardRepository()
		if err != nil {
			return err
		}
		return details.Create(ctx, cc)
	})
	if err != nil {
		logger.Error("CreateCreditCardAccount failed", "error", err)
		return dto.AccountRead{}, err
	}

	logger.Info("CreateCreditCardAccount successful", "accountID", acc.ID)
	s.publish(ctx, events.NewAccountCreated(owner, acc))
	return Assemble(acc, cc), nil
}

// CreateDebitCardAccount creates a debit card account linked to one of the
// owner's bank accounts. The balance is copied from the linked account once
// and is not kept in sync afterwards.
func (s *Service) CreateDebitCardAccount(
	ctx context.Context,
	owner uuid.UUID,
	in dto.DebitCardCreate,
) (out dto.AccountRead, err error) {
	logger := s.logger.With("userID", owner)
	logger.Info("CreateDebitCardAccount started")

	var (
		acc *account.Account
		dc  *account.DebitCard
	)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		u, err := resolveOwner(ctx, uow, owner)
		if err != nil {
			return err
		}
		group, err := s.wellKnownGroup(ctx, account.GroupDebitCard)
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		linked, err := resolveBankAccount(ctx, accounts, owner, in.LinkedBankAccountID, "linked bank")
		if err != nil {
			return err
		}

		acc, err = s.buildAccount(ctx, u, group, in.AccountCreate, linked.Balance)
		if err != nil {
			return err
		}
		dc = &account.DebitCard{AccountID: acc.ID, LinkedBankAccountID: linked.ID}

		if err := accounts.Create(ctx, acc); err != nil {
			return err
		}
		details, err := uow.DebitCardRepository()
		if err != nil {
			return err
		}
		return details.Create(ctx, dc)
	})
	if err != nil {
		logger.Error("CreateDebitCardAccount failed", "error", err)
		return dto.AccountRead{}, err
	}

	logger.Info("CreateDebitCardAccount successful", "accountID", acc.ID)
	s.publish(ctx, events.NewAccountCreated(owner, acc))
	return Assemble(acc, dc), nil
}

func (s *Service) buildAccount(
	ctx context.Context,
	owner *user.User,
	group *reference.AccountGroup,
	in dto.AccountCreate,
	balance decimal.Decimal,
) (*account.Account, error) {
	currency, err := s.resolveCurrency(ctx, in.CurrencyCode, owner)
	if err != nil {
		return nil, err
	}
	b := account.New().
		WithUserID(owner.ID).
		WithGroup(group.ID, group.Name).
		WithName(in.Name, in.Description, in.Icon).
		WithBalance(balance).
		WithCurrency(currency).
		WithSystemDefault(in.IsSystemDefault)
	if in.IsActive != nil {
		b = b.WithActive(*in.IsActive)
	}
	return b.Build()
}
