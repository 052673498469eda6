package common

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig   `toml:"database"`
	Server     ServerConfig     `toml:"server"`
	Extraction ExtractionConfig `toml:"extraction"`
	Queue      QueueConfig      `toml:"queue"`
	Ingest     IngestConfig     `toml:"ingest"`
	Log        LogConfig        `toml:"log"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver           string        `toml:"driver"` // sqlite | postgres
	DSN              string        `toml:"dsn"`
	MaxConns         int32         `toml:"max_conns"`
	MinConns         int32         `toml:"min_conns"`
	MaxConnLifetime  time.Duration `toml:"max_conn_lifetime"`
	MaxConnIdleTime  time.Duration `toml:"max_conn_idle_time"`
	DialTimeout      time.Duration `toml:"dial_timeout"`
	StatementTimeout time.Duration `toml:"statement_timeout"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string `toml:"grpc_addr"`
}

// ExtractionConfig holds the text-extraction cascade settings
type ExtractionConfig struct {
	PdftotextBin    string        `toml:"pdftotext_bin"`
	PopplerLayout   bool          `toml:"poppler_layout"`
	BackendTimeout  time.Duration `toml:"backend_timeout"`
	ExcludedNumbers []string      `toml:"excluded_numbers"`
	BuilderHint     string        `toml:"builder_hint"`
}

// QueueConfig holds worker-pool configuration
type QueueConfig struct {
	Workers        int           `toml:"workers"`
	Size           int           `toml:"size"`
	ProcessTimeout time.Duration `toml:"process_timeout"`
}

// IngestConfig holds inbox watching configuration
type IngestConfig struct {
	InboxDirs []string      `toml:"inbox_dirs"`
	Debounce  time.Duration `toml:"debounce"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // json, text
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:          "sqlite",
			DSN:             "po-extract.db",
			MaxConns:        20,
			MinConns:        5,
			MaxConnLifetime: 30 * time.Minute,
			MaxConnIdleTime: 5 * time.Minute,
			DialTimeout:     3 * time.Second,
		},
		Server: ServerConfig{
			GRPCAddr: ":8080",
		},
		Extraction: ExtractionConfig{
			PdftotextBin:   "pdftotext",
			PopplerLayout:  true,
			BackendTimeout: 60 * time.Second,
		},
		Queue: QueueConfig{
			Workers:        2,
			Size:           32,
			ProcessTimeout: 2 * time.Minute,
		},
		Ingest: IngestConfig{
			Debounce: 500 * time.Millisecond,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads config: defaults -> TOML file -> env vars (env wins).
// A missing file is not an error; a malformed one is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = getEnv("PO_CONFIG", "po-extract.toml")
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, NewAppError("CONFIG_ERROR", fmt.Sprintf("parse %s", path), err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, NewAppError("CONFIG_ERROR", fmt.Sprintf("read %s", path), err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	db := &c.Database
	db.Driver = getEnv("DB_DRIVER", db.Driver)
	db.DSN = getEnv("DB_URL", db.DSN)
	db.MaxConns = getEnvAsInt32("DB_MAX_CONNS", db.MaxConns)
	db.MinConns = getEnvAsInt32("DB_MIN_CONNS", db.MinConns)
	db.MaxConnLifetime = getEnvAsDuration("DB_MAX_CONN_LIFETIME", db.MaxConnLifetime)
	db.MaxConnIdleTime = getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", db.MaxConnIdleTime)
	db.DialTimeout = getEnvAsDuration("DB_DIAL_TIMEOUT", db.DialTimeout)
	db.StatementTimeout = getEnvAsDuration("DB_STATEMENT_TIMEOUT", db.StatementTimeout)

	c.Server.GRPCAddr = getEnv("GRPC_ADDR", c.Server.GRPCAddr)

	ex := &c.Extraction
	ex.PdftotextBin = getEnv("PDFTOTEXT_BIN", ex.PdftotextBin)
	ex.PopplerLayout = getEnvAsBool("POPPLER_LAYOUT", ex.PopplerLayout)
	ex.BackendTimeout = getEnvAsDuration("BACKEND_TIMEOUT", ex.BackendTimeout)
	ex.ExcludedNumbers = getEnvAsList("EXCLUDED_NUMBERS", ex.ExcludedNumbers)
	ex.BuilderHint = getEnv("BUILDER_HINT", ex.BuilderHint)

	c.Queue.Workers = getEnvAsInt("QUEUE_WORKERS", c.Queue.Workers)
	c.Queue.Size = getEnvAsInt("QUEUE_SIZE", c.Queue.Size)
	c.Queue.ProcessTimeout = getEnvAsDuration("PROCESS_TIMEOUT", c.Queue.ProcessTimeout)

	c.Ingest.InboxDirs = getEnvAsList("INBOX_DIRS", c.Ingest.InboxDirs)
	c.Ingest.Debounce = getEnvAsDuration("INGEST_DEBOUNCE", c.Ingest.Debounce)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping blanks.
func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	v := NewValidator().
		Field("database.driver", c.Database.Driver, Required, OneOf("sqlite", "postgres")).
		Field("database.dsn", c.Database.DSN, Required).
		Field("extraction.pdftotext_bin", c.Extraction.PdftotextBin, Required).
		Field("queue.workers", c.Queue.Workers, Positive).
		Field("queue.size", c.Queue.Size, Positive).
		Field("log.format", c.Log.Format, OneOf("json", "text"))
	if v.HasErrors() {
		return NewAppError("CONFIG_ERROR", v.ErrorMessage(), ErrInvalidInput)
	}
	return nil
}
