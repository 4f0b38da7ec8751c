package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// newMigrator builds a goose provider over the embedded schema files.
func newMigrator(db *sql.DB) (*goose.Provider, error) {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open migration directory: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}

	return provider, nil
}

func migrateUp(ctx context.Context, p *goose.Provider) error {
	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	for _, r := range results {
		slog.Debug("schema migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("path", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}

	return nil
}

// dropSchema rolls back every applied migration, dropping all record tables.
func dropSchema(ctx context.Context, p *goose.Provider) error {
	if _, err := p.DownTo(ctx, 0); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	return nil
}
