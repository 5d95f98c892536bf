// Package integration verifies rendered SQL against real database engines.
package integration

import (
	"context"
	"database/sql"
	"log"
	"math"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	_ "github.com/microsoft/go-mssqldb"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mariadb"
	"github.com/testcontainers/testcontainers-go/modules/mssql"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/zoobzio/exprql"
)

// Shared containers - lazily initialized
var (
	sharedPgContainer      *PostgresContainer
	sharedMariaDBContainer *MariaDBContainer
	sharedMSSQLContainer   *MSSQLContainer

	pgOnce      sync.Once
	mariadbOnce sync.Once
	mssqlOnce   sync.Once

	// Track which containers were started for cleanup
	containersStarted = struct {
		pg      bool
		mariadb bool
		mssql   bool
	}{}
)

// TestMain sets up shared containers for all integration tests.
func TestMain(m *testing.M) {
	// Note: We can't check testing.Short() here because flag.Parse() hasn't been called yet.
	// The individual tests check for short mode themselves.

	// Run tests
	code := m.Run()

	// Cleanup any containers that were started
	ctx := context.Background()

	if containersStarted.pg && sharedPgContainer != nil {
		if sharedPgContainer.conn != nil {
			_ = sharedPgContainer.conn.Close(ctx)
		}
		if sharedPgContainer.container != nil {
			_ = sharedPgContainer.container.Terminate(ctx)
		}
	}

	if containersStarted.mariadb && sharedMariaDBContainer != nil {
		if sharedMariaDBContainer.db != nil {
			_ = sharedMariaDBContainer.db.Close()
		}
		if sharedMariaDBContainer.container != nil {
			_ = sharedMariaDBContainer.container.Terminate(ctx)
		}
	}

	if containersStarted.mssql && sharedMSSQLContainer != nil {
		if sharedMSSQLContainer.db != nil {
			_ = sharedMSSQLContainer.db.Close()
		}
		if sharedMSSQLContainer.container != nil {
			_ = sharedMSSQLContainer.container.Terminate(ctx)
		}
	}

	os.Exit(code)
}

// getPostgresContainer returns the shared PostgreSQL container, starting it if needed.
func getPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	pgOnce.Do(func() {
		ctx := context.Background()

		container, err := postgres.Run(ctx,
			"docker.io/postgres:16-alpine",
			postgres.WithDatabase("exprql_test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start postgres container: %v", err)
		}

		connStr, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		conn, err := pgx.Connect(ctx, connStr)
		if err != nil {
			log.Fatalf("Failed to connect to postgres: %v", err)
		}

		sharedPgContainer = &PostgresContainer{
			container: container,
			conn:      conn,
			connStr:   connStr,
		}
		containersStarted.pg = true
	})

	return sharedPgContainer
}

// getMariaDBContainer returns the shared MariaDB container, starting it if needed.
func getMariaDBContainer(t *testing.T) *MariaDBContainer {
	t.Helper()

	mariadbOnce.Do(func() {
		ctx := context.Background()

		container, err := mariadb.Run(ctx,
			"docker.io/mariadb:11",
			mariadb.WithDatabase("exprql_test"),
			mariadb.WithUsername("test"),
			mariadb.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("mariadbd: ready for connections").
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start mariadb container: %v", err)
		}

		connStr, err := container.ConnectionString(ctx)
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		db, err := sql.Open("mysql", connStr)
		if err != nil {
			log.Fatalf("Failed to connect to mariadb: %v", err)
		}
		waitForPing(db, 30)

		sharedMariaDBContainer = &MariaDBContainer{
			container: container,
			db:        db,
			connStr:   connStr,
		}
		containersStarted.mariadb = true
	})

	return sharedMariaDBContainer
}

// getMSSQLContainer returns the shared MSSQL container, starting it if needed.
func getMSSQLContainer(t *testing.T) *MSSQLContainer {
	t.Helper()

	mssqlOnce.Do(func() {
		ctx := context.Background()

		container, err := mssql.Run(ctx,
			"mcr.microsoft.com/mssql/server:2022-latest",
			mssql.WithAcceptEULA(),
			mssql.WithPassword("Test@12345"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("SQL Server is now ready for client connections").
					WithStartupTimeout(120*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start mssql container: %v", err)
		}

		connStr, err := container.ConnectionString(ctx)
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		db, err := sql.Open("sqlserver", connStr)
		if err != nil {
			log.Fatalf("Failed to connect to mssql: %v", err)
		}
		waitForPing(db, 60)

		sharedMSSQLContainer = &MSSQLContainer{
			container: container,
			db:        db,
			connStr:   connStr,
		}
		containersStarted.mssql = true
	})

	return sharedMSSQLContainer
}

// waitForPing polls the driver until the container accepts connections.
func waitForPing(db *sql.DB, attempts int) {
	for i := 0; i < attempts; i++ {
		if err := db.Ping(); err == nil {
			return
		}
		time.Sleep(time.Second)
	}
}

// evalCase pairs an expression with its expected numeric value.
type evalCase struct {
	name string
	expr *exprql.Expr
	want float64
}

// evalCorpus covers every function the engine can emulate, with operand
// values inside each function's domain.
func evalCorpus() []evalCase {
	return []evalCase{
		{"atanh", exprql.Atanh(exprql.Float(0.5)), math.Atanh(0.5)},
		{"atanh negative", exprql.Atanh(exprql.Float(-0.5)), math.Atanh(-0.5)},
		{"asinh", exprql.Asinh(exprql.Float(1.25)), math.Asinh(1.25)},
		{"acosh", exprql.Acosh(exprql.Float(1.5)), math.Acosh(1.5)},
		{"sinh", exprql.Sinh(exprql.Float(0.75)), math.Sinh(0.75)},
		{"cosh", exprql.Cosh(exprql.Float(0.75)), math.Cosh(0.75)},
		{"tanh", exprql.Tanh(exprql.Float(0.75)), math.Tanh(0.75)},
		{"coth", exprql.Coth(exprql.Float(1.3)), math.Cosh(1.3) / math.Sinh(1.3)},
		{"cot", exprql.Cot(exprql.Float(0.9)), math.Cos(0.9) / math.Sin(0.9)},
		{"log base 3", exprql.Log(exprql.Int(3), exprql.Float(81)), 4},
		{"log10", exprql.Log10(exprql.Float(42)), math.Log10(42)},
		{"log2", exprql.Log2(exprql.Float(10)), math.Log2(10)},
		{"power", exprql.Power(exprql.Float(2.5), exprql.Float(1.5)), math.Pow(2.5, 1.5)},
		{"pi", exprql.Pi(), math.Pi},
		{"degrees", exprql.Degrees(exprql.Float(1)), 180 / math.Pi},
		{"radians", exprql.Radians(exprql.Float(90)), math.Pi / 2},
	}
}

// assertClose fails when got and want differ beyond floating point noise
// accumulated by the emulation identities.
func assertClose(t *testing.T, sql string, got, want float64) {
	t.Helper()
	tolerance := 1e-9 * math.Max(1, math.Abs(want))
	if math.Abs(got-want) > tolerance {
		t.Errorf("%q evaluated to %v, want %v", sql, got, want)
	}
}

// namedArgs converts a render result's bind list into driver arguments
// for engines using named placeholders.
func namedArgs(params []exprql.Param) []any {
	args := make([]any, len(params))
	for i, p := range params {
		args[i] = sql.Named(p.Name, p.Value.InexactFloat64())
	}
	return args
}
