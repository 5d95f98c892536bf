// Package integration verifies rendered SQL against real databases.
package integration

import (
	"database/sql"
	"math"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/dialect"
)

// SQLiteDB wraps an in-memory SQLite database for testing.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB creates a new in-memory SQLite database, skipping the test
// when the math function extension is unavailable.
func NewSQLiteDB(t *testing.T) *SQLiteDB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open SQLite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	var probe float64
	if err := db.QueryRow("SELECT ln(1)").Scan(&probe); err != nil {
		t.Skipf("SQLite built without math functions: %v", err)
	}

	return &SQLiteDB{db: db}
}

// Exec executes a SQL statement.
func (s *SQLiteDB) Exec(t *testing.T, query string, args ...any) {
	t.Helper()
	_, err := s.db.Exec(query, args...)
	if err != nil {
		t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, query)
	}
}

func TestSQLite_EvaluatesCorpus(t *testing.T) {
	s := NewSQLiteDB(t)

	for _, tc := range evalCorpus() {
		t.Run(tc.name, func(t *testing.T) {
			result, err := exprql.Render(tc.expr, dialect.SQLite)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if len(result.Params) != 0 {
				t.Fatalf("SQLite profile inlines literals, got %d params", len(result.Params))
			}

			var got float64
			if err := s.db.QueryRow("SELECT " + result.SQL).Scan(&got); err != nil {
				t.Fatalf("Query failed for %q: %v", result.SQL, err)
			}
			assertClose(t, result.SQL, got, tc.want)
		})
	}
}

func TestSQLite_ColumnExpressions(t *testing.T) {
	s := NewSQLiteDB(t)

	s.Exec(t, `CREATE TABLE sqlite_samples (ratio REAL NOT NULL)`)
	s.Exec(t, `INSERT INTO sqlite_samples (ratio) VALUES (-0.9), (-0.25), (0.25), (0.9)`)

	result, err := exprql.Render(exprql.Atanh(exprql.Col("ratio")), dialect.SQLite)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows, err := s.db.Query(`SELECT ratio, ` + result.SQL + ` FROM sqlite_samples ORDER BY ratio`)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var ratio, got float64
		if err := rows.Scan(&ratio, &got); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		assertClose(t, result.SQL, got, math.Atanh(ratio))
		count++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Row iteration failed: %v", err)
	}
	if count != 4 {
		t.Errorf("Expected 4 rows, got %d", count)
	}
}
