package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ffliq/ffliq-backend/db"
)

const versionTable = "ffliq_version"

// Migrator applies a Chain to a database and tracks the current revision.
type Migrator struct {
	db     *sql.DB
	chain  *Chain
	logger *slog.Logger
}

func NewMigrator(sqlDB *sql.DB, chain *Chain, logger *slog.Logger) *Migrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Migrator{db: sqlDB, chain: chain, logger: logger}
}

// NewEmbedded builds a Migrator for the migrations compiled into the binary.
func NewEmbedded(sqlDB *sql.DB, logger *slog.Logger) (*Migrator, error) {
	chain, err := Load(FS, ".")
	if err != nil {
		return nil, err
	}
	return NewMigrator(sqlDB, chain, logger), nil
}

func (m *Migrator) Chain() *Chain {
	return m.chain
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (version_num VARCHAR(64) PRIMARY KEY)`, versionTable)
	if _, err := m.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("ensure %s table: %w", versionTable, err)
	}
	return nil
}

// Current returns the applied revision, or "" when nothing has been applied.
func (m *Migrator) Current(ctx context.Context) (string, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return "", err
	}
	var rev string
	err := m.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT version_num FROM %s LIMIT 1`, versionTable)).Scan(&rev)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("read current revision: %w", err)
	}
	return rev, nil
}

// Upgrade applies migrations up to target and returns the revisions applied.
func (m *Migrator) Upgrade(ctx context.Context, target string) ([]string, error) {
	current, err := m.Current(ctx)
	if err != nil {
		return nil, err
	}
	plan, err := m.chain.UpgradePlan(current, target)
	if err != nil {
		return nil, err
	}

	applied := make([]string, 0, len(plan))
	for _, mig := range plan {
		if err := m.step(ctx, mig.Up, mig.Revision); err != nil {
			return applied, fmt.Errorf("upgrade %s: %w", mig.Revision, err)
		}
		m.logger.InfoContext(ctx, "migration applied", slog.String("revision", mig.Revision))
		applied = append(applied, mig.Revision)
	}
	return applied, nil
}

// Downgrade reverts migrations down to target and returns the revisions reverted.
func (m *Migrator) Downgrade(ctx context.Context, target string) ([]string, error) {
	current, err := m.Current(ctx)
	if err != nil {
		return nil, err
	}
	plan, err := m.chain.DowngradePlan(current, target)
	if err != nil {
		return nil, err
	}

	reverted := make([]string, 0, len(plan))
	for _, mig := range plan {
		if err := m.step(ctx, mig.Down, mig.DownRevision); err != nil {
			return reverted, fmt.Errorf("downgrade %s: %w", mig.Revision, err)
		}
		m.logger.InfoContext(ctx, "migration reverted", slog.String("revision", mig.Revision))
		reverted = append(reverted, mig.Revision)
	}
	return reverted, nil
}

// step runs one script and moves the version marker in the same transaction.
func (m *Migrator) step(ctx context.Context, script, newRevision string) error {
	return db.WithTx(ctx, m.db, func(ctx context.Context, tx *sql.Tx) error {
		if script != "" {
			if _, err := tx.ExecContext(ctx, script); err != nil {
				return err
			}
		}
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, versionTable)); err != nil {
			return fmt.Errorf("clear version marker: %w", err)
		}
		if newRevision == "" {
			return nil
		}
		_, err := tx.ExecContext(ctx, fmt.Sprintf(`INSERT INTO %s (version_num) VALUES ($1)`, versionTable), newRevision)
		if err != nil {
			return fmt.Errorf("write version marker: %w", err)
		}
		return nil
	})
}

// HistoryEntry describes one revision of the chain relative to the database.
type HistoryEntry struct {
	Migration *Migration
	Applied   bool
	Current   bool
}

// History lists the chain from base to head, marking applied revisions.
func (m *Migrator) History(ctx context.Context) ([]HistoryEntry, error) {
	current, err := m.Current(ctx)
	if err != nil {
		return nil, err
	}

	applied := current != ""
	migs := m.chain.Migrations()
	entries := make([]HistoryEntry, 0, len(migs))
	for _, mig := range migs {
		entries = append(entries, HistoryEntry{
			Migration: mig,
			Applied:   applied,
			Current:   mig.Revision == current,
		})
		if mig.Revision == current {
			applied = false
		}
	}
	return entries, nil
}
