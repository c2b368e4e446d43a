package currency_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amirasaad/finsible/internal/fixtures/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "currencies.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCurrencies_FromFile(t *testing.T) {
	path := writeCSV(t, `code,name,symbol,active
usd,US Dollar,$,true
EUR,Euro,€,TRUE
XXX,Retired,?,false
broken,row`)

	got, err := currency.LoadCurrencies(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "USD", got[0].Code)
	assert.Equal(t, "US Dollar", got[0].Name)
	assert.Equal(t, "$", got[0].Symbol)
	assert.Equal(t, "EUR", got[1].Code)
}

func TestLoadCurrencies_Embedded(t *testing.T) {
	got, err := currency.LoadCurrencies("")
	require.NoError(t, err)
	codes := make([]string, 0, len(got))
	for _, c := range got {
		assert.Len(t, c.Code, 3)
		codes = append(codes, c.Code)
	}
	assert.Contains(t, codes, "INR")
	assert.Contains(t, codes, "USD")
}

func TestLoadCurrencies_Errors(t *testing.T) {
	_, err := currency.LoadCurrencies(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, err = currency.LoadCurrencies(writeCSV(t, "code,name\nUSD,US Dollar\n"))
	assert.ErrorIs(t, err, currency.ErrInvalidHeader)

	_, err = currency.LoadCurrencies(writeCSV(t, ""))
	assert.ErrorIs(t, err, currency.ErrInvalidHeader)
}
