// Package testing provides test utilities for exprql.
package testing

import (
	"strings"
	"testing"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/exprql"
)

// TestSchema creates a numeric-heavy schema for testing. Includes
// measurements, accounts, and games tables.
func TestSchema(t *testing.T) *exprql.Schema {
	t.Helper()

	project := dbml.NewProject("test")

	// Measurements table
	measurements := dbml.NewTable("measurements")
	measurements.AddColumn(dbml.NewColumn("id", "bigint"))
	measurements.AddColumn(dbml.NewColumn("value", "double precision"))
	measurements.AddColumn(dbml.NewColumn("angle", "numeric"))
	measurements.AddColumn(dbml.NewColumn("label", "varchar"))
	measurements.AddColumn(dbml.NewColumn("taken_at", "timestamp"))
	project.AddTable(measurements)

	// Accounts table
	accounts := dbml.NewTable("accounts")
	accounts.AddColumn(dbml.NewColumn("id", "bigint"))
	accounts.AddColumn(dbml.NewColumn("balance", "numeric"))
	accounts.AddColumn(dbml.NewColumn("rate", "real"))
	accounts.AddColumn(dbml.NewColumn("active", "boolean"))
	project.AddTable(accounts)

	// Games table
	games := dbml.NewTable("games")
	games.AddColumn(dbml.NewColumn("id", "bigint"))
	games.AddColumn(dbml.NewColumn("wins", "int"))
	games.AddColumn(dbml.NewColumn("losses", "int"))
	games.AddColumn(dbml.NewColumn("score", "float"))
	project.AddTable(games)

	schema, err := exprql.NewSchema(project)
	if err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}
	return schema
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertPanicsWithMessage verifies that a function panics with a specific message.
func AssertPanicsWithMessage(t *testing.T, fn func(), substr string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("Expected panic containing %q but function completed normally", substr)
			return
		}
		var msg string
		switch v := r.(type) {
		case error:
			msg = v.Error()
		case string:
			msg = v
		default:
			t.Errorf("Panic value is not string or error: %T", r)
			return
		}
		if !strings.Contains(msg, substr) {
			t.Errorf("Expected panic containing %q, got: %s", substr, msg)
		}
	}()
	fn()
}
