package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/database"
	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing with all
// migrations applied. The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Every pooled connection would get its own empty in-memory database
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = MEMORY"); err != nil {
		t.Fatalf("Failed to set pragma: %v", err)
	}

	// Create schema
	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
//
// Example usage:
//
//	count := testutil.CountRows(t, db, "preference")
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	//nolint:gosec // G202: Table names come from test code, no SQL injection risk
	query := "SELECT COUNT(*) FROM " + table
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
//
// Example usage:
//
//	testutil.AssertRowCount(t, db, "preference", 1)
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
