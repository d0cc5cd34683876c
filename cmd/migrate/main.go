// Command migrate applies the embedded schema migrations.
//
//	migrate [-database-url URL] upgrade [target]
//	migrate [-database-url URL] downgrade [target]
//	migrate [-database-url URL] current
//	migrate [-database-url URL] history
//	migrate new -m message
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ffliq/ffliq-backend/config"
	"github.com/ffliq/ffliq-backend/db"
	"github.com/ffliq/ffliq-backend/migrations"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(os.Args[1:], logger); err != nil {
		logger.Error("migrate failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	databaseURL := fs.String("database-url", "", "database URL (defaults to DATABASE_URL)")
	dir := fs.String("dir", "migrations", "directory for new migration files")
	message := fs.String("m", "", "message for a new migration")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("command required: upgrade, downgrade, current, history or new")
	}
	command, target := fs.Arg(0), fs.Arg(1)

	if command == "new" {
		path, err := newMigration(*dir, *message)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *databaseURL != "" {
		cfg.DatabaseURL = *databaseURL
	}

	sqlDB, err := db.Connect(cfg.DatabaseURL, cfg.DBConnectTimeout)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	m, err := migrations.NewEmbedded(sqlDB, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	switch command {
	case "upgrade":
		if target == "" {
			target = migrations.Head
		}
		applied, err := m.Upgrade(ctx, target)
		fmt.Printf("applied %d migration(s)\n", len(applied))
		return err
	case "downgrade":
		if target == "" {
			target = "-1"
		}
		reverted, err := m.Downgrade(ctx, target)
		fmt.Printf("reverted %d migration(s)\n", len(reverted))
		return err
	case "current":
		rev, err := m.Current(ctx)
		if err != nil {
			return err
		}
		if rev == "" {
			rev = "(base)"
		}
		fmt.Println(rev)
		return nil
	case "history":
		entries, err := m.History(ctx)
		if err != nil {
			return err
		}
		for _, e := range entries {
			marker := " "
			switch {
			case e.Current:
				marker = "*"
			case e.Applied:
				marker = "+"
			}
			down := e.Migration.DownRevision
			if down == "" {
				down = "<base>"
			}
			fmt.Printf("%s %s -> %s\n", marker, down, e.Migration.Revision)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// newMigration writes a file following the current head of the chain in dir.
func newMigration(dir, message string) (string, error) {
	if message == "" {
		return "", errors.New("-m message is required for new")
	}

	var (
		count int
		head  string
	)
	chain, err := migrations.Load(os.DirFS(dir), ".")
	switch {
	case err == nil:
		count, head = len(chain.Migrations()), chain.Head()
	case errors.Is(err, migrations.ErrNoMigrations):
	default:
		return "", fmt.Errorf("load migrations from %s: %w", dir, err)
	}

	revision := fmt.Sprintf("%04d_%s", count+1, migrations.Slug(message))
	content, err := migrations.RenderNew(revision, head, message)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, revision+".sql")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
