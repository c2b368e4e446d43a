package account_test

import (
	"strings"
	"testing"

	"github.com/amirasaad/finsible/pkg/domain"
	domainaccount "github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	userID := uuid.New()
	acc, err := domainaccount.New().
		WithUserID(userID).
		WithGroup(2, domainaccount.GroupBankAccount).
		WithName("Savings", "", "bank").
		WithCurrency("INR").
		Build()
	require.NoError(err)
	assert.NotEqual(t, uuid.Nil, acc.ID)
	assert.True(t, acc.IsActive)
	assert.False(t, acc.IsSystemDefault)
	assert.True(t, acc.Balance.IsZero())
	assert.True(t, acc.OwnedBy(userID))
	assert.Equal(t, userID.String(), acc.CreatedBy)
	assert.Equal(t, domainaccount.KindPlain, acc.Kind())
}

func TestBuild_Validation(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("x", domainaccount.MaxTextLength+1)

	tests := []struct {
		name    string
		builder *domainaccount.Builder
		wantErr error
	}{
		{
			name:    "missing group",
			builder: domainaccount.New().WithName("a", "", "").WithCurrency("USD"),
			wantErr: domainaccount.ErrGroupRequired,
		},
		{
			name:    "blank name",
			builder: domainaccount.New().WithGroup(1, domainaccount.GroupCash).WithCurrency("USD"),
			wantErr: domainaccount.ErrNameRequired,
		},
		{
			name:    "description too long",
			builder: domainaccount.New().WithGroup(1, domainaccount.GroupCash).WithName("a", long, "").WithCurrency("USD"),
			wantErr: domainaccount.ErrTextTooLong,
		},
		{
			name:    "lowercase currency",
			builder: domainaccount.New().WithGroup(1, domainaccount.GroupCash).WithName("a", "", "").WithCurrency("usd"),
			wantErr: domainaccount.ErrInvalidCurrencyCode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.builder.Build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidationErrorsWrapDomainKinds(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, domainaccount.ErrNameRequired, domain.ErrValidation)
	assert.ErrorIs(t, domainaccount.ErrAccountNotFound, domain.ErrNotFound)
	assert.ErrorIs(t, domainaccount.ErrSystemDefaultAccount, domain.ErrInvalidRequest)
	assert.ErrorIs(t, domainaccount.ErrNotBankAccount, domain.ErrInvalidRequest)
	assert.ErrorIs(t, domainaccount.ErrVersionMismatch, domain.ErrConflict)
}

func TestCanDelete(t *testing.T) {
	t.Parallel()
	acc, err := domainaccount.New().
		WithUserID(uuid.New()).
		WithGroup(1, domainaccount.GroupCash).
		WithName("Cash", "", "").
		WithCurrency("INR").
		WithSystemDefault(true).
		Build()
	require.NoError(t, err)
	assert.ErrorIs(t, acc.CanDelete(), domainaccount.ErrSystemDefaultAccount)

	acc.IsSystemDefault = false
	assert.NoError(t, acc.CanDelete())
}

func TestEqual_IgnoresAuditFields(t *testing.T) {
	t.Parallel()
	acc, err := domainaccount.New().
		WithUserID(uuid.New()).
		WithGroup(2, domainaccount.GroupBankAccount).
		WithName("Bank", "", "").
		WithCurrency("INR").
		WithBalance(decimal.RequireFromString("100.50")).
		Build()
	require.NoError(t, err)

	clone := acc.Clone()
	clone.Version++
	clone.Touch("someone")
	clone.Balance = decimal.RequireFromString("100.500")
	assert.True(t, acc.Equal(clone), "trailing zeros and audit fields must not matter")

	clone.Name = "Other"
	assert.False(t, acc.Equal(clone))
}

func TestClone_DoesNotShareOwnerPointer(t *testing.T) {
	t.Parallel()
	acc, err := domainaccount.New().
		WithUserID(uuid.New()).
		WithGroup(2, domainaccount.GroupBankAccount).
		WithName("Bank", "", "").
		WithCurrency("INR").
		Build()
	require.NoError(t, err)

	clone := acc.Clone()
	*clone.UserID = uuid.New()
	assert.False(t, acc.Equal(clone))
}
