package reference_test

import (
	"net/http"
	"testing"

	"github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/amirasaad/finsible/pkg/domain/reference"
	"github.com/amirasaad/finsible/webapi/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAccountGroups(t *testing.T) {
	env := testutils.NewTestEnv(t)

	resp := env.MakeRequest(t, http.MethodGet, "/account-groups", "", env.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var groups []reference.AccountGroup
	testutils.Decode(t, resp, &groups)
	require.Len(t, groups, 5)
	assert.Equal(t, account.GroupCash, groups[0].Name)
	for i := 1; i < len(groups); i++ {
		assert.Less(t, groups[i-1].DisplayOrder, groups[i].DisplayOrder)
	}
}

func TestListCurrencies(t *testing.T) {
	env := testutils.NewTestEnv(t)

	resp := env.MakeRequest(t, http.MethodGet, "/currencies", "", env.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var currencies []reference.Currency
	testutils.Decode(t, resp, &currencies)
	codes := make([]string, 0, len(currencies))
	for _, c := range currencies {
		codes = append(codes, c.Code)
	}
	assert.ElementsMatch(t, []string{"INR", "USD", "EUR", "GBP", "JPY", "AED", "SGD", "AUD", "CAD"}, codes)
}

func TestReferenceRoutes_RequireToken(t *testing.T) {
	env := testutils.NewTestEnv(t)

	for _, path := range []string{"/account-groups", "/currencies"} {
		resp := env.MakeRequest(t, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestListAccountGroups_ServedFromCache(t *testing.T) {
	env := testutils.NewTestEnv(t)

	resp := env.MakeRequest(t, http.MethodGet, "/account-groups", "", env.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, env.DB.Exec("DELETE FROM account_groups").Error)

	resp = env.MakeRequest(t, http.MethodGet, "/account-groups", "", env.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var groups []reference.AccountGroup
	testutils.Decode(t, resp, &groups)
	assert.Len(t, groups, 5)
}
