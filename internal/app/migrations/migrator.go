package migrations

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// DB is the part of *pgxpool.Pool the migrator uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Migrator manages database migrations
type Migrator struct {
	db    DB
	files fs.FS
	lgr   zerolog.Logger
}

// NewMigrator creates a migrator applying the *.sql files at the root of files
func NewMigrator(db DB, files fs.FS, lgr zerolog.Logger) *Migrator {
	return &Migrator{
		db:    db,
		files: files,
		lgr:   lgr,
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`

	if _, err := m.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);`
	if err := m.db.QueryRow(ctx, query, version).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// Migrate applies every pending migration in file name order
func (m *Migrator) Migrate(ctx context.Context) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	names, err := migrationFiles(m.files)
	if err != nil {
		return err
	}

	for _, name := range names {
		if err := m.apply(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

// apply runs one migration file and records its version in the same transaction
func (m *Migrator) apply(ctx context.Context, name string) error {
	version := versionOf(name)

	applied, err := m.isMigrationApplied(ctx, version)
	if err != nil {
		return err
	}
	if applied {
		m.lgr.Debug().Str("migration", name).Msg("Migration already applied, skipping")
		return nil
	}

	content, err := fs.ReadFile(m.files, name)
	if err != nil {
		return fmt.Errorf("failed to read migration file %s: %w", name, err)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, string(content)); err != nil {
		return fmt.Errorf("error occurred during SQL migration %s: %w", name, err)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", name, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit migration %s: %w", name, err)
	}

	m.lgr.Info().Str("migration", name).Msg("Migration applied")
	return nil
}

// migrationFiles lists the *.sql files at the root of fsys, sorted by name
func migrationFiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".sql" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// versionOf extracts the version prefix: "001_init.sql" => "001"
func versionOf(name string) string {
	base := strings.TrimSuffix(path.Base(name), ".sql")
	return strings.SplitN(base, "_", 2)[0]
}
