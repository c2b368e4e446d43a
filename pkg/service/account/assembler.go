package account

import (
	"context"

	"github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/amirasaad/finsible/pkg/dto"
	"github.com/amirasaad/finsible/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Assemble merges a base account with its variant into the read model. Only
// the fields of v's kind are set.
func Assemble(a *account.Account, v account.Variant) dto.AccountRead {
	out := dto.AccountRead{
		ID:              a.ID,
		Name:            a.Name,
		Description:     a.Description,
		Icon:            a.Icon,
		Balance:         a.Balance,
		AccountGroupID:  a.GroupID,
		CurrencyCode:    a.CurrencyCode,
		IsActive:        a.IsActive,
		IsSystemDefault: a.IsSystemDefault,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}

	switch ext := v.(type) {
	case *account.CreditCard:
		limit, available := ext.CreditLimit, ext.AvailableCredit
		billing, due, autoPay := ext.BillingDate, ext.DueDate, ext.AutoPayEnabled
		out.CreditLimit = &limit
		out.AvailableCredit = &available
		out.BillingDate = &billing
		out.DueDate = &due
		out.AutoPayEnabled = &autoPay
		out.AutoPayFromAccountID = copyID(ext.AutoPayFromAccountID)
	case *account.DebitCard:
		linked := ext.LinkedBankAccountID
		out.LinkedBankAccountID = &linked
	case *account.Loan:
		loanType, principal := ext.LoanType, ext.PrincipalAmount
		out.LoanType = &loanType
		out.PrincipalAmount = &principal
		out.InterestRate = nullable(ext.InterestRate)
		out.EMIAmount = nullable(ext.EMIAmount)
		out.EMIDate = ext.EMIDate
		out.TenureMonths = ext.TenureMonths
		out.StartDate = ext.StartDate
	}
	return out
}

// hydrate loads the extensions of accounts and merges them in. Accounts are
// partitioned by kind and each non-empty partition costs exactly one batched
// lookup, so at most three queries run regardless of len(accounts). The
// result keeps the order of accounts.
func hydrate(ctx context.Context, uow repository.UnitOfWork, accounts []*account.Account) ([]dto.AccountRead, error) {
	buckets := make(map[account.Kind][]uuid.UUID, 3)
	for _, a := range accounts {
		if k := a.Kind(); k != account.KindPlain {
			buckets[k] = append(buckets[k], a.ID)
		}
	}

	var (
		credit map[uuid.UUID]*account.CreditCard
		debit  map[uuid.UUID]*account.DebitCard
		loans  map[uuid.UUID]*account.Loan
	)
	if ids := buckets[account.KindCreditCard]; len(ids) > 0 {
		repo, err := uow.CreditCardRepository()
		if err != nil {
			return nil, err
		}
		if credit, err = repo.ListByAccountIDs(ctx, ids); err != nil {
			return nil, err
		}
	}
	if ids := buckets[account.KindDebitCard]; len(ids) > 0 {
		repo, err := uow.DebitCardRepository()
		if err != nil {
			return nil, err
		}
		if debit, err = repo.ListByAccountIDs(ctx, ids); err != nil {
			return nil, err
		}
	}
	if ids := buckets[account.KindLoan]; len(ids) > 0 {
		repo, err := uow.LoanRepository()
		if err != nil {
			return nil, err
		}
		if loans, err = repo.ListByAccountIDs(ctx, ids); err != nil {
			return nil, err
		}
	}

	out := make([]dto.AccountRead, 0, len(accounts))
	for _, a := range accounts {
		var v account.Variant = account.Plain{}
		switch a.Kind() {
		case account.KindCreditCard:
			if ext, ok := credit[a.ID]; ok {
				v = ext
			}
		case account.KindDebitCard:
			if ext, ok := debit[a.ID]; ok {
				v = ext
			}
		case account.KindLoan:
			if ext, ok := loans[a.ID]; ok {
				v = ext
			}
		}
		out = append(out, Assemble(a, v))
	}
	return out, nil
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func nullable(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
