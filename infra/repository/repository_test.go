package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/finsible/pkg/domain"
	"github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const accountSelect = `SELECT (.+) FROM "accounts" LEFT JOIN "account_groups" "AccountGroup" ` +
	`ON "accounts"\."account_group_id" = "AccountGroup"\."id" `

var accountColumns = []string{
	"id", "user_id", "account_group_id", "name", "balance", "currency_code",
	"is_active", "is_system_default", "version", "AccountGroup__id", "AccountGroup__name",
}

func TestAccountRepository_GetOwned(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := accountRepository{db: db}
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	rows := sqlmock.NewRows(accountColumns).
		AddRow(accountID.String(), userID.String(), 2, "Savings", "1500.25", "INR", true, false, 3, 2, account.GroupBankAccount)
	mock.ExpectQuery(accountSelect+`WHERE accounts\.id = \$1 AND accounts\.user_id = \$2`).
		WithArgs(accountID, userID, 1).
		WillReturnRows(rows)

	acc, err := repo.GetOwned(ctx, accountID, userID)
	require.NoError(err)
	assert.Equal(accountID, acc.ID)
	assert.Equal(account.GroupBankAccount, acc.GroupName)
	assert.True(acc.Balance.Equal(decimal.RequireFromString("1500.25")))
	assert.Equal(int64(3), acc.Version)
	assert.True(acc.OwnedBy(userID))

	mock.ExpectQuery(accountSelect+`WHERE accounts\.id = \$1 AND accounts\.user_id = \$2`).
		WithArgs(accountID, userID, 1).
		WillReturnRows(sqlmock.NewRows(accountColumns))
	acc, err = repo.GetOwned(ctx, accountID, userID)
	assert.ErrorIs(err, account.ErrAccountNotFound)
	assert.Nil(acc)
	assert.NoError(mock.ExpectationsWereMet())
}

func TestAccountRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := accountRepository{db: db}
	userID := uuid.New()
	first, second := uuid.New(), uuid.New()

	rows := sqlmock.NewRows(accountColumns).
		AddRow(first.String(), userID.String(), 5, "Cash", "0", "INR", true, true, 1, 5, account.GroupCash).
		AddRow(second.String(), userID.String(), 3, "Visa", "50000", "INR", true, false, 1, 3, account.GroupCreditCard)
	mock.ExpectQuery(accountSelect + `WHERE accounts\.user_id = \$1 ORDER BY accounts\.created_at, accounts\.id`).
		WithArgs(userID).
		WillReturnRows(rows)

	accounts, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, first, accounts[0].ID)
	assert.Equal(t, account.KindPlain, accounts[0].Kind())
	assert.Equal(t, second, accounts[1].ID)
	assert.Equal(t, account.KindCreditCard, accounts[1].Kind())
}

func TestAccountRepository_Create(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := accountRepository{db: db}
	acc, err := account.New().
		WithUserID(uuid.New()).
		WithGroup(2, account.GroupBankAccount).
		WithName("Savings", "", "").
		WithCurrency("INR").
		Build()
	require.NoError(err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(repo.Create(context.Background(), acc))
	assert.Equal(t, int64(1), acc.Version)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
		WillReturnError(errors.New("create error"))
	mock.ExpectRollback()

	require.Error(repo.Create(context.Background(), acc))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Update_VersionCheck(t *testing.T) {
	db, mock := newMockDB(t)
	repo := accountRepository{db: db}
	acc := &account.Account{
		ID:           uuid.New(),
		Name:         "Renamed",
		CurrencyCode: "INR",
		Balance:      decimal.NewFromInt(10),
		Version:      4,
		UpdatedAt:    time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET (.+)"version"=version \+ 1 WHERE id = \$\d+ AND version = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Update(context.Background(), acc))
	assert.Equal(t, int64(5), acc.Version)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET (.+) WHERE id = \$\d+ AND version = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), acc)
	assert.ErrorIs(t, err, account.ErrVersionMismatch)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, int64(5), acc.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := accountRepository{db: db}
	id := uuid.New()

	expectExtensionDeletes := func() {
		for _, table := range []string{"credit_card_details", "debit_card_details", "loan_details"} {
			mock.ExpectExec(`DELETE FROM "` + table + `" WHERE account_id = \$1`).
				WithArgs(id).
				WillReturnResult(sqlmock.NewResult(0, 0))
		}
	}

	mock.ExpectBegin()
	expectExtensionDeletes()
	mock.ExpectExec(`DELETE FROM "accounts" WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	require.NoError(t, repo.Delete(context.Background(), id))

	mock.ExpectBegin()
	expectExtensionDeletes()
	mock.ExpectExec(`DELETE FROM "accounts" WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()
	assert.ErrorIs(t, repo.Delete(context.Background(), id), account.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_IsReferenced(t *testing.T) {
	db, mock := newMockDB(t)
	repo := accountRepository{db: db}
	ctx := context.Background()
	id := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "credit_card_details" WHERE auto_pay_from_account_id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	referenced, err := repo.IsReferenced(ctx, id)
	require.NoError(t, err)
	assert.True(t, referenced)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "credit_card_details" WHERE auto_pay_from_account_id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "debit_card_details" WHERE linked_bank_account_id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	referenced, err = repo.IsReferenced(ctx, id)
	require.NoError(t, err)
	assert.False(t, referenced)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreditCardRepository_ListByAccountIDs(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := creditCardRepository{db: db}
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	// no ids, no query
	got, err := repo.ListByAccountIDs(ctx, nil)
	require.NoError(err)
	assert.Empty(t, got)

	rows := sqlmock.NewRows([]string{
		"account_id", "credit_limit", "available_credit", "billing_date", "due_date", "auto_pay_enabled", "auto_pay_from_account_id",
	}).AddRow(a.String(), "50000", "42000", 1, 20, false, nil)
	mock.ExpectQuery(`SELECT \* FROM "credit_card_details" WHERE account_id IN \(\$1,\$2\)`).
		WithArgs(a, b).
		WillReturnRows(rows)

	got, err = repo.ListByAccountIDs(ctx, []uuid.UUID{a, b})
	require.NoError(err)
	require.Len(got, 1)
	assert.True(t, got[a].AvailableCredit.Equal(decimal.NewFromInt(42000)))
	assert.Nil(t, got[a].AutoPayFromAccountID)
	assert.NotContains(t, got, b)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreditCardRepository_Get_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := creditCardRepository{db: db}
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "credit_card_details" WHERE account_id = \$1`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"account_id"}))

	_, err := repo.Get(context.Background(), id)
	assert.ErrorIs(t, err, account.ErrDetailNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDebitCardRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := debitCardRepository{db: db}
	dc := &account.DebitCard{AccountID: uuid.New(), LinkedBankAccountID: uuid.New()}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "debit_card_details" SET "linked_bank_account_id"=\$1 WHERE account_id = \$2`).
		WithArgs(dc.LinkedBankAccountID, dc.AccountID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	require.NoError(t, repo.Update(context.Background(), dc))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "debit_card_details" SET "linked_bank_account_id"=\$1 WHERE account_id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	assert.ErrorIs(t, repo.Update(context.Background(), dc), account.ErrDetailNotFound)
}

func TestUserRepository_Get_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := userRepository{db: db}
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrOwnerNotFound)
}

func TestAccountGroupRepository_GetByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := accountGroupRepository{db: db}

	mock.ExpectQuery(`SELECT \* FROM "account_groups" WHERE name = \$1`).
		WithArgs(account.GroupCreditCard, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_system_default", "display_order"}).
			AddRow(3, account.GroupCreditCard, true, 3))

	g, err := repo.GetByName(context.Background(), account.GroupCreditCard)
	require.NoError(t, err)
	assert.Equal(t, uint(3), g.ID)

	mock.ExpectQuery(`SELECT \* FROM "account_groups" WHERE name = \$1`).
		WithArgs("Wallet", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, err = repo.GetByName(context.Background(), "Wallet")
	assert.ErrorIs(t, err, account.ErrGroupNotFound)
}
