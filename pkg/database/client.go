// Package database provides the PostgreSQL client behind the ent ledger
// and applies embedded schema migrations at startup.
package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // register the pgx driver for database/sql

	"github.com/swarmops/swarmsre/ent"
	"github.com/swarmops/swarmsre/pkg/config"
)

//go:embed migrations
var migrationsFS embed.FS

// Client bundles the ent client with its underlying connection pool.
type Client struct {
	*ent.Client
	db *stdsql.DB
}

// DB exposes the raw pool for health checks.
func (c *Client) DB() *stdsql.DB { return c.db }

// Close closes the ent client and the pool.
func (c *Client) Close() error {
	return c.Client.Close()
}

// Open connects to Postgres, applies pending migrations and returns a
// ready client.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Client, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode)

	db, err := stdsql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	if err := applyMigrations(db, cfg.Database); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database: migrate: %w", err)
	}

	drv := entsql.OpenDB(dialect.Postgres, db)
	return &Client{
		Client: ent.NewClient(ent.Driver(drv)),
		db:     db,
	}, nil
}

// applyMigrations runs the embedded SQL migrations with golang-migrate.
// Only the source driver is closed afterwards: closing the migrate
// instance would also close the shared *sql.DB.
func applyMigrations(db *stdsql.DB, dbName string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, dbName, driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply: %w", err)
	}
	return source.Close()
}

// Health pings the database with the request context.
func Health(ctx context.Context, db *stdsql.DB) error {
	return db.PingContext(ctx)
}
