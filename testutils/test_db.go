package testutils

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ffliq/ffliq-backend/containers"
	"github.com/ffliq/ffliq-backend/db"
	"github.com/ffliq/ffliq-backend/migrations"
)

// TestDB is a migrated Postgres database running in a container.
type TestDB struct {
	container *containers.DBContainer
	DB        *sql.DB
}

func NewTestDB(ctx context.Context) (*TestDB, error) {
	container, err := containers.NewDBContainer(ctx)
	if err != nil {
		return nil, err
	}

	tdb, err := open(ctx, container)
	if err != nil {
		_ = container.Shutdown(context.Background())
		return nil, err
	}
	return tdb, nil
}

func open(ctx context.Context, container *containers.DBContainer) (*TestDB, error) {
	connStr, err := container.ConnectionString(ctx)
	if err != nil {
		return nil, fmt.Errorf("container connection string: %w", err)
	}

	sqlDB, err := db.Connect(connStr, 10*time.Second)
	if err != nil {
		return nil, err
	}

	migrator, err := migrations.NewEmbedded(sqlDB, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	if _, err := migrator.Upgrade(ctx, migrations.Head); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate test database: %w", err)
	}

	return &TestDB{container: container, DB: sqlDB}, nil
}

func (tdb *TestDB) Shutdown() {
	tdb.DB.Close()
	if err := tdb.container.Shutdown(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

// RunWithDB starts a TestDB, stores it in target and runs the tests. When
// -short is set or Docker is unavailable target stays nil and tests that call
// Require are skipped.
func RunWithDB(m *testing.M, target **TestDB) int {
	flag.Parse()

	if !testing.Short() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		tdb, err := NewTestDB(ctx)
		cancel()
		if err != nil {
			fmt.Fprintf(os.Stderr, "postgres integration tests disabled: %v\n", err)
		} else {
			*target = tdb
			defer tdb.Shutdown()
		}
	}

	return m.Run()
}

// Require skips t when no database is available.
func Require(t *testing.T, tdb *TestDB) *sql.DB {
	t.Helper()
	if tdb == nil {
		t.Skip("postgres test container not available")
	}
	return tdb.DB
}
