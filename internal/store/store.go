// Package store opens the relational store, applies migrations, and exposes
// the per-entity repositories over one shared connection handle.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"github.com/pressly/goose/v3"

	"moondb/internal/config"
	"moondb/internal/repositories/accounts"
	"moondb/internal/repositories/missions"
	"moondb/internal/store/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// DevDatabaseFile is the sqlite file used when running with -dev.
const DevDatabaseFile = "moondb_dev.db"

type Store struct {
	db       *sql.DB
	Accounts accounts.Repository
	Missions missions.Repository
}

// Conn exposes the underlying handle, mainly for tests.
func (s *Store) Conn() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Open connects to the configured store and runs migrations. Dev mode uses a
// self-contained sqlite database; otherwise an external Postgres server is
// expected. One connection is held for the process lifetime.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	if cfg.Dev {
		return OpenSQLite(ctx, DevDatabaseFile)
	}

	dsn, err := buildDSN(cfg.DatabaseDSN, cfg.DBUser, cfg.DBPassword)
	if err != nil {
		return nil, err
	}
	return OpenPostgres(ctx, dsn)
}

func OpenPostgres(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db connect error: %w", err)
	}

	if err := runMigrations(ctx, db, "postgres", "postgres"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Store{
		db:       db,
		Accounts: accounts.NewPostgresRepository(db),
		Missions: missions.NewPostgresRepository(db),
	}, nil
}

func OpenSQLite(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, db, "sqlite3", "sqlite"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Store{
		db:       db,
		Accounts: accounts.NewSQLiteRepository(db),
		Missions: missions.NewSQLiteRepository(db),
	}, nil
}

func runMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, dir)
}

// buildDSN injects the separately configured user and password into the
// connection URL so credentials never need to be written into the DSN value.
func buildDSN(raw, user, password string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid database DSN: %w", err)
	}
	if user != "" {
		u.User = url.UserPassword(user, password)
	}
	return u.String(), nil
}
