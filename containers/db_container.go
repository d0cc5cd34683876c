package containers

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image      = "postgres:16.3-alpine"
	dbName     = "ffliq"
	dbUser     = "ffliq_user"
	dbPassword = "ffliq_pass"
)

// DBContainer is a throwaway Postgres server for integration tests.
type DBContainer struct {
	container *postgres.PostgresContainer
}

// NewDBContainer starts the container. It fails when Docker is unavailable.
func NewDBContainer(ctx context.Context) (c *DBContainer, err error) {
	// testcontainers panics instead of returning an error on some hosts without a docker socket
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("start postgres container: %v", r)
		}
	}()

	container, err := postgres.Run(ctx, image,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	return &DBContainer{container: container}, nil
}

func (c *DBContainer) Shutdown(ctx context.Context) error {
	if err := c.container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate postgres container: %w", err)
	}
	return nil
}

func (c *DBContainer) ConnectionString(ctx context.Context) (string, error) {
	// the container is not configured for TLS
	return c.container.ConnectionString(ctx, "sslmode=disable")
}
