// Package integration verifies rendered SQL against real PostgreSQL.
package integration

import (
	"context"
	"math"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/dialect"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance.
type PostgresContainer struct {
	container *postgres.PostgresContainer
	conn      *pgx.Conn
	connStr   string
}

// Exec executes a SQL statement.
func (pc *PostgresContainer) Exec(ctx context.Context, t *testing.T, sql string, args ...any) {
	t.Helper()
	_, err := pc.conn.Exec(ctx, sql, args...)
	if err != nil {
		t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, sql)
	}
}

// QueryRow executes a query and scans a single row.
func (pc *PostgresContainer) QueryRow(ctx context.Context, t *testing.T, sql string, args ...any) pgx.Row {
	t.Helper()
	return pc.conn.QueryRow(ctx, sql, args...)
}

func TestPostgres_EvaluatesCorpus(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	pc := getPostgresContainer(t)
	ctx := context.Background()

	for _, tc := range evalCorpus() {
		t.Run(tc.name, func(t *testing.T) {
			result, err := exprql.Render(tc.expr, dialect.Postgres)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if len(result.Params) != 0 {
				t.Fatalf("Postgres profile inlines literals, got %d params", len(result.Params))
			}

			var got float64
			if err := pc.QueryRow(ctx, t, "SELECT ("+result.SQL+")::float8").Scan(&got); err != nil {
				t.Fatalf("Query failed for %q: %v", result.SQL, err)
			}
			assertClose(t, result.SQL, got, tc.want)
		})
	}
}

// TestPostgres_EmulationAgreesWithNative renders each expression under
// the SQLite profile, whose syntax is also valid PostgreSQL, and checks
// that the emulated form evaluates to the same value as the native form.
func TestPostgres_EmulationAgreesWithNative(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	pc := getPostgresContainer(t)
	ctx := context.Background()

	for _, tc := range evalCorpus() {
		t.Run(tc.name, func(t *testing.T) {
			native, err := exprql.Render(tc.expr, dialect.Postgres)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			emulated, err := exprql.Render(tc.expr, dialect.SQLite)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}

			var nativeVal, emulatedVal float64
			row := pc.QueryRow(ctx, t,
				"SELECT ("+native.SQL+")::float8, ("+emulated.SQL+")::float8")
			if err := row.Scan(&nativeVal, &emulatedVal); err != nil {
				t.Fatalf("Query failed: %v", err)
			}
			assertClose(t, emulated.SQL, emulatedVal, nativeVal)
		})
	}
}

func TestPostgres_ColumnExpressions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	pc := getPostgresContainer(t)
	ctx := context.Background()

	pc.Exec(ctx, t, `
		CREATE TABLE IF NOT EXISTS pg_samples (
			id BIGSERIAL PRIMARY KEY,
			ratio DOUBLE PRECISION NOT NULL
		)
	`)
	pc.Exec(ctx, t, `TRUNCATE pg_samples`)
	pc.Exec(ctx, t, `INSERT INTO pg_samples (ratio) VALUES (-0.9), (-0.25), (0.25), (0.9)`)

	result, err := exprql.Render(
		exprql.Atanh(exprql.ColTable("pg_samples", "ratio")), dialect.Postgres)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows, err := pc.conn.Query(ctx,
		`SELECT ratio, (`+result.SQL+`)::float8 FROM pg_samples ORDER BY ratio`)
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
