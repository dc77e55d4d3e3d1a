package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"regexp"

	"starseed-server/internal/shared/config"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DB struct {
	*sql.DB
	Driver string
}

type Tx struct {
	*sql.Tx
}

type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (db *DB) BeginTxContext(ctx context.Context) (*Tx, error) {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &Tx{tx}, nil
}

var placeholderPattern = regexp.MustCompile(`\$\d+`)

// Rebind rewrites postgres-style $N placeholders for the connected driver.
// Queries must reference each placeholder once and in order.
func (db *DB) Rebind(query string) string {
	if db.Driver != DriverSQLite {
		return query
	}
	return placeholderPattern.ReplaceAllString(query, "?")
}

// Connect opens the catalog database selected by cfg.Database.Driver.
func Connect(cfg *config.Config) (*DB, error) {
	logger := slog.With("component", "database", "operation", "connect", "driver", cfg.Database.Driver)
	logger.Debug("Initializing database connection")

	switch cfg.Database.Driver {
	case DriverPostgres:
		logger.Info("Connecting to database",
			"host", cfg.Database.Host,
			"port", cfg.Database.Port,
			"user", cfg.Database.User,
			"database", cfg.Database.Name,
			"sslmode", cfg.Database.SSLMode,
			"max_open_conns", cfg.Database.MaxOpenConns,
			"max_idle_conns", cfg.Database.MaxIdleConns,
		)
		db, err := Open(DriverPostgres, cfg.ConnectionString())
		if err != nil {
			logger.Error("Failed to connect to database", "error", err, "host", cfg.Database.Host)
			return nil, err
		}
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
		logger.Info("Database connection established successfully", "host", cfg.Database.Host)
		return db, nil
	case DriverSQLite:
		logger.Info("Opening sqlite database", "path", cfg.Database.SQLitePath)
		db, err := Open(DriverSQLite, cfg.Database.SQLitePath)
		if err != nil {
			logger.Error("Failed to open sqlite database", "error", err, "path", cfg.Database.SQLitePath)
			return nil, err
		}
		logger.Info("Database connection established successfully", "path", cfg.Database.SQLitePath)
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// Open opens and pings a database. SQLite connections are limited to one so
// an in-memory database is shared by every query.
func Open(driver, dsn string) (*DB, error) {
	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		if closeErr := sqlDB.Close(); closeErr != nil {
			slog.Error("Failed to close database after ping failure", "close_error", closeErr, "ping_error", err)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: sqlDB, Driver: driver}, nil
}
