package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/common"
)

// Dialect selects placeholder style.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

type Config struct {
	Driver           string
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ConfigFrom maps the application database settings.
func ConfigFrom(c common.DatabaseConfig) Config {
	return Config{
		Driver:           c.Driver,
		DSN:              c.DSN,
		MaxConns:         c.MaxConns,
		MinConns:         c.MinConns,
		MaxConnLifetime:  c.MaxConnLifetime,
		MaxConnIdleTime:  c.MaxConnIdleTime,
		DialTimeout:      c.DialTimeout,
		StatementTimeout: c.StatementTimeout,
	}
}

// DB is a database/sql handle plus the pgx pool behind it, when there is one.
type DB struct {
	SQL     *sql.DB
	Pool    *pgxpool.Pool
	Dialect Dialect
	logger  *slog.Logger
}

// Open connects using cfg.Driver ("sqlite" or "postgres") and creates the schema.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var (
		db  *DB
		err error
	)
	switch cfg.Driver {
	case "postgres":
		db, err = OpenPostgres(ctx, cfg, logger)
	case "sqlite", "":
		db, err = OpenSQLite(ctx, cfg.DSN, logger)
	default:
		return nil, common.NewAppError("CONFIG_ERROR", "unknown database driver "+cfg.Driver, common.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenSQLite opens a SQLite file (or ":memory:") through one shared connection
// so concurrent writers serialize instead of failing with SQLITE_BUSY.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*DB, error) {
	logger.Info("opening sqlite database", "path", path)
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqldb.SetMaxOpenConns(1)
	if err := sqldb.PingContext(ctx); err != nil {
		_ = sqldb.Close()
		logger.Error("failed to open sqlite database", "error", err)
		return nil, fmt.Errorf("%w: ping sqlite: %v", common.ErrDatabase, err)
	}
	return &DB{SQL: sqldb, Dialect: SQLite, logger: logger}, nil
}

// OpenPostgres creates a pgx pool and wraps it as *sql.DB.
func OpenPostgres(ctx context.Context, cfg Config, logger *slog.Logger) (*DB, error) {
	logger.Info("connecting to database", "driver", "postgres")
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to parse database dsn", "error", err)
		return nil, fmt.Errorf("%w: parse dsn: %v", common.ErrDatabase, err)
	}

	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "po-extract"
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(cfg.StatementTimeout.Milliseconds(), 10)
	}

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, fmt.Errorf("%w: connect: %v", common.ErrDatabase, err)
	}

	logger.Info("successfully connected to database")
	return &DB{SQL: stdlib.OpenDBFromPool(pool), Pool: pool, Dialect: Postgres, logger: logger}, nil
}

// Close closes the database connections gracefully
func (d *DB) Close() {
	d.logger.Info("closing database connections")
	if err := d.SQL.Close(); err != nil {
		d.logger.Error("failed to close sql db", "error", err)
	}
	if d.Pool != nil {
		d.Pool.Close()
	}
	d.logger.Info("database connections closed")
}

// HealthCheck pings the database, bounded by timeout when positive.
func (d *DB) HealthCheck(ctx context.Context, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	d.logger.Debug("pinging database")
	if d.Pool != nil {
		return d.Pool.Ping(ctx)
	}
	return d.SQL.PingContext(ctx)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS extractions (
		id TEXT PRIMARY KEY,
		source_path TEXT NOT NULL,
		content_hash TEXT NOT NULL,
		builder_hint TEXT NOT NULL DEFAULT '',
		builder TEXT NOT NULL DEFAULT '',
		po_number TEXT NOT NULL DEFAULT '',
		po_status TEXT NOT NULL DEFAULT '',
		customer_name TEXT NOT NULL DEFAULT '',
		dollar_value DOUBLE PRECISION NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		error_message TEXT,
		record_json TEXT,
		backend TEXT NOT NULL DEFAULT '',
		started_at BIGINT NOT NULL,
		finished_at BIGINT
	)`,
	`CREATE INDEX IF NOT EXISTS extractions_content_hash_idx ON extractions (content_hash)`,
	`CREATE INDEX IF NOT EXISTS extractions_po_number_idx ON extractions (po_number)`,
	`CREATE INDEX IF NOT EXISTS extractions_started_at_idx ON extractions (started_at)`,
}

// Migrate creates the tables and indexes if they do not exist.
func (d *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := d.SQL.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: migrate: %v", common.ErrDatabase, err)
		}
	}
	d.logger.Debug("schema ready")
	return nil
}

// rebind rewrites "?" placeholders to "$n" for Postgres.
func (d *DB) rebind(q string) string {
	if d.Dialect != Postgres {
		return q
	}
	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
