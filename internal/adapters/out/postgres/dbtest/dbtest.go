// Package dbtest prepares migrated databases for repository, query and unit
// of work tests: an in-memory SQLite per test, or a PostgreSQL container per
// suite.
package dbtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	adapter "restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// OpenSQLite returns a migrated in-memory database private to the test. It
// is closed when the test ends.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", kernel.NewUUID().String())
	db, err := adapter.Open(context.Background(), adapter.DriverSQLite, dsn, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = adapter.Close(db) })

	if err = adapter.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

// Postgres is a migrated database running in a throwaway container.
type Postgres struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// StartPostgres runs postgres:15-alpine, connects to it and applies the schema.
func StartPostgres(ctx context.Context) (*Postgres, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}
	pg := &Postgres{Container: container}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, err
	}

	pg.DB, err = adapter.Open(ctx, adapter.DriverPostgres, dsn, nil)
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, err
	}

	if err = adapter.Migrate(ctx, pg.DB); err != nil {
		_ = pg.Terminate(ctx)
		return nil, err
	}

	return pg, nil
}

// Truncate empties both tables.
func (p *Postgres) Truncate() error {
	return p.DB.Exec("TRUNCATE TABLE ordenes, clientes").Error
}

func (p *Postgres) Terminate(ctx context.Context) error {
	if p.DB != nil {
		_ = adapter.Close(p.DB)
	}
	if p.Container == nil {
		return nil
	}
	return p.Container.Terminate(ctx)
}

// SkipIfShort keeps container suites out of `go test -short` runs.
func SkipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
}
