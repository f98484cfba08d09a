package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate aplica con goose las migraciones embebidas pendientes (tabla goose_db_version).
// Devuelve los archivos aplicados en esta ejecución, también cuando una falla a mitad.
func Migrate(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	provider, err := newMigrationProvider(pool)
	if err != nil {
		return nil, err
	}
	defer func() { _ = provider.Close() }()

	results, err := provider.Up(ctx)
	var partial *goose.PartialError
	if errors.As(err, &partial) {
		return migrationNames(partial.Applied), fmt.Errorf("migración %s: %w", filepath.Base(partial.Failed.Source.Path), partial.Err)
	}
	if err != nil {
		return nil, mapError("migrate up", err)
	}
	return migrationNames(results), nil
}

// MigrationVersion devuelve la versión aplicada más reciente (0 sin migraciones).
func MigrationVersion(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	provider, err := newMigrationProvider(pool)
	if err != nil {
		return 0, err
	}
	defer func() { _ = provider.Close() }()

	v, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, mapError("migrate version", err)
	}
	return v, nil
}

// newMigrationProvider abre un *sql.DB sobre el pool; provider.Close lo libera.
func newMigrationProvider(pool *pgxpool.Pool) (*goose.Provider, error) {
	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("migraciones embebidas: %w", err)
	}
	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose: %w", err)
	}
	return provider, nil
}

func migrationNames(results []*goose.MigrationResult) []string {
	names := make([]string, 0, len(results))
	for _, r := range results {
		if r == nil || r.Error != nil {
			continue
		}
		names = append(names, filepath.Base(r.Source.Path))
	}
	return names
}
