// Package currency provides the supported currency fixture used to seed
// databases that are not built from the SQL migrations.
package currency

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amirasaad/finsible/pkg/domain/reference"
)

//go:embed currencies.csv
var currenciesCSV string

const columns = 4

// ErrInvalidHeader is returned when the CSV header has fewer columns than
// code,name,symbol,active.
var ErrInvalidHeader = errors.New("invalid currency CSV header")

// LoadCurrencies reads active currencies from the CSV at path, or from the
// embedded fixture when path is empty.
func LoadCurrencies(path string) ([]reference.Currency, error) {
	if path == "" {
		return parseCurrencies(strings.NewReader(currenciesCSV))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close() //nolint: errcheck
	return parseCurrencies(f)
}

func parseCurrencies(r io.Reader) ([]reference.Currency, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 || len(records[0]) < columns {
		return nil, ErrInvalidHeader
	}

	var out []reference.Currency
	for _, rec := range records[1:] {
		// Skip malformed rows
		if len(rec) < columns {
			continue
		}
		if !strings.EqualFold(rec[3], "true") {
			continue
		}
		out = append(out, reference.Currency{
			Code:   strings.ToUpper(strings.TrimSpace(rec[0])),
			Name:   rec[1],
			Symbol: rec[2],
		})
	}
	return out, nil
}
