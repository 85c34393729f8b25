package testutil

import (
	"database/sql"
	"testing"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/clipboard"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/repository"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/service"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/session"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/vat"
)

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db, true)
}

func NewTestPreferenceService(t *testing.T, db *sql.DB) *service.PreferenceService {
	t.Helper()

	return service.NewPreferenceService(
		repository.NewPreferenceRepository(db),
		"light",
	)
}

// NewTestCalculatorService creates a calculator service with a fresh session
// store and the given clipboard.
func NewTestCalculatorService(t *testing.T, clip clipboard.Writer) *service.CalculatorService {
	t.Helper()

	return service.NewCalculatorService(
		session.NewStore(session.Options{Catalog: vat.DefaultRates}),
		clip,
		vat.DefaultRates,
	)
}

func NewTestPreferenceRepository(t *testing.T, db *sql.DB) *repository.PreferenceRepository {
	t.Helper()

	return repository.NewPreferenceRepository(db)
}
