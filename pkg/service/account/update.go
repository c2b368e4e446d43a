package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirasaad/finsible/pkg/domain"
	"github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/amirasaad/finsible/pkg/domain/events"
	"github.com/amirasaad/finsible/pkg/domain/user"
	"github.com/amirasaad/finsible/pkg/dto"
	"github.com/amirasaad/finsible/pkg/repository"
	"github.com/google/uuid"
)

// ErrAutoPayDisabled is returned when a funding account is supplied for a
// card whose auto-pay stays off.
var ErrAutoPayDisabled = fmt.Errorf("%w: auto pay account requires auto pay to be enabled", domain.ErrInvalidRequest)

// UpdatePlainAccount applies a partial update to the base fields of an
// owned account. Nothing is written when the update leaves the account
// unchanged.
func (s *Service) UpdatePlainAccount(
	ctx context.Context,
	owner, accountID uuid.UUID,
	in dto.AccountUpdate,
) (out dto.AccountRead, err error) {
	logger := s.logger.With("userID", owner, "accountID", accountID)
	logger.Info("UpdatePlainAccount started")

	var (
		acc     *account.Account
		changed bool
	)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		u, err := resolveOwner(ctx, uow, owner)
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		prev, err := accounts.GetOwned(ctx, accountID, owner)
		if err != nil {
			return err
		}

		acc = prev.Clone()
		if err := s.applyAccountUpdate(ctx, acc, in, u); err != nil {
			return err
		}
		if prev.Equal(acc) {
			acc = prev
			return nil
		}
		changed = true
		acc.Touch(owner.String())
		return accounts.Update(ctx, acc)
	})
	if err != nil {
		logger.Error("UpdatePlainAccount failed", "error", err)
		return dto.AccountRead{}, err
	}

	logger.Info("UpdatePlainAccount successful", "changed", changed)
	if changed {
		s.publish(ctx, events.NewAccountUpdated(owner, acc))
	}
	return Assemble(acc, account.Plain{}), nil
}

// UpdateCreditCardAccount applies a partial update to a credit card account
// and its details. Enabling auto-pay validates the funding account and
// disabling it clears the link. Nothing is written when the merged state
// equals the stored state.
func (s *Service) UpdateCreditCardAccount(
	ctx context.Context,
	owner, accountID uuid.UUID,
	in dto.CreditCardUpdate,
) (out dto.AccountRead, err error) {
	logger := s.logger.With("userID", owner, "accountID", accountID)
	logger.Info("UpdateCreditCardAccount started")

	var (
		acc     *account.Account
		cc      *account.CreditCard
		changed bool
	)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		u, err := resolveOwner(ctx, uow, owner)
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		prev, err := accounts.GetOwned(ctx, accountID, owner)
		if err != nil {
			return err
		}
		if prev.Kind() != account.KindCreditCard {
			return account.ErrDetailNotFound
		}
		details, err := uow.CreditCardRepository()
		if err != nil {
			return err
		}
		prevCC, err := details.Get(ctx, accountID)
		if err != nil {
			return err
		}

		acc, cc = prev.Clone(), prevCC.Clone()
		switch {
		case in.AutoPayEnabled != nil && *in.AutoPayEnabled:
			from, err := resolveBankAccount(ctx, accounts, owner, in.AutoPayFromAccountID, "auto pay")
			if err != nil {
				return err
			}
			cc.EnableAutoPay(from.ID)
		case in.AutoPayEnabled != nil:
			cc.DisableAutoPay()
		case in.AutoPayFromAccountID != nil:
			if !cc.AutoPayEnabled {
				return ErrAutoPayDisabled
			}
			from, err := resolveBankAccount(ctx, accounts, owner, in.AutoPayFromAccountID, "auto pay")
			if err != nil {
				return err
			}
			cc.EnableAutoPay(from.ID)
		}

		if err := s.applyAccountUpdate(ctx, acc, in.AccountUpdate, u); err != nil {
			return err
		}
		if in.CreditLimit != nil {
			cc.CreditLimit = *in.CreditLimit
		}
		if in.AvailableCredit != nil {
			cc.AvailableCredit = *in.AvailableCredit
		}
		if in.BillingDate != nil {
			cc.BillingDate = *in.BillingDate
		}
		if in.DueDate != nil {
			cc.DueDate = *in.DueDate
		}
		if err := cc.Validate(); err != nil {
			return err
		}

		if prev.Equal(acc) && account.VariantsEqual(prevCC, cc) {
			acc, cc = prev, prevCC
			return nil
		}
		changed = true
		acc.Touch(owner.String())
		if err := accounts.Update(ctx, acc); err != nil {
			return err
		}
		if prevCC.Equal(cc) {
			return nil
		}
		return details.Update(ctx, cc)
	})
	if err != nil {
		logger.Error("UpdateCreditCardAccount failed", "error", err)
		return dto.AccountRead{}, err
	}

	logger.Info("UpdateCreditCardAccount successful", "changed", changed)
	if changed {
		s.publish(ctx, events.NewAccountUpdated(owner, acc))
	}
	return Assemble(acc, cc), nil
}

// UpdateDebitCardAccount applies a partial update to a debit card account. A
// new linked bank account is validated like on creation; the balance is not
// resynchronized from it.
func (s *Service) UpdateDebitCardAccount(
	ctx context.Context,
	owner, accountID uuid.UUID,
	in dto.DebitCardUpdate,
) (out dto.AccountRead, err error) {
	logger := s.logger.With("userID", owner, "accountID", accountID)
	logger.Info("UpdateDebitCardAccount started")

	var (
		acc     *account.Account
		dc      *account.DebitCard
		changed bool
	)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		u, err := resolveOwner(ctx, uow, owner)
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		prev, err := accounts.GetOwned(ctx, accountID, owner)
		if err != nil {
			return err
		}
		if prev.Kind() != account.KindDebitCard {
			return account.ErrDetailNotFound
		}
		details, err := uow.DebitCardRepository()
		if err != nil {
			return err
		}
		prevDC, err := details.Get(ctx, accountID)
		if err != nil {
			return err
		}

		acc = prev.Clone()
		next := *prevDC
		dc = &next
		if in.LinkedBankAccountID != nil {
			linked, err := resolveBankAccount(ctx, accounts, owner, in.LinkedBankAccountID, "linked bank")
			if err != nil {
				return err
			}
			dc.LinkedBankAccountID = linked.ID
		}
		if err := s.applyAccountUpdate(ctx, acc, in.AccountUpdate, u); err != nil {
			return err
		}

		if prev.Equal(acc) && account.VariantsEqual(prevDC, dc) {
			acc, dc = prev, prevDC
			return nil
		}
		changed = true
		acc.Touch(owner.String())
		if err := accounts.Update(ctx, acc); err != nil {
			return err
		}
		if prevDC.Equal(dc) {
			return nil
		}
		return details.Update(ctx, dc)
	})
	if err != nil {
		logger.Error("UpdateDebitCardAccount failed", "error", err)
		return dto.AccountRead{}, err
	}

	logger.Info("UpdateDebitCardAccount successful", "changed", changed)
	if changed {
		s.publish(ctx, events.NewAccountUpdated(owner, acc))
	}
	return Assemble(acc, dc), nil
}

// applyAccountUpdate overwrites the base fields set in in. A currency code
// replaces the current one only when it is supported.
func (s *Service) applyAccountUpdate(
	ctx context.Context,
	acc *account.Account,
	in dto.AccountUpdate,
	owner *user.User,
) error {
	if in.Name != nil {
		acc.Name = *in.Name
	}
	if in.Description != nil {
		acc.Description = *in.Description
	}
	if in.Icon != nil {
		acc.Icon = *in.Icon
	}
	if in.IsActive != nil {
		acc.IsActive = *in.IsActive
	}
	if in.CurrencyCode != nil {
		c, err := s.directory.CurrencyByCode(ctx, *in.CurrencyCode)
		switch {
		case err == nil:
			acc.CurrencyCode = c.Code
		case !errors.Is(err, domain.ErrNotFound):
			return err
		default:
			s.logger.Debug("ignoring unsupported currency on update",
				"userID", owner.ID, "currency", *in.CurrencyCode)
		}
	}
	return acc.Validate()
}
