package database

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"time"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

// Postgres holds only the recognition history; conversation context
// lives in memory and is lost on restart.
const (
	dbName = "zoobot"

	maxOpenConns    = 10
	maxIdleConns    = 10
	connMaxLifetime = time.Hour
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// NewDB connects to Postgres and brings the schema up to date. When no
// DSN is given, one is built from the host with stock credentials.
func NewDB(url, host string) (*bun.DB, error) {
	if url == "" {
		url = fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", dbName, dbName, host, dbName)
	}
	slog.Info("connecting to postgres", "host", host)

	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(url)))
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	migrations := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       "migrations",
	}
	applied, err := migrate.Exec(sqlDB, "postgres", migrations, migrate.Up)
	if err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	if applied > 0 {
		slog.Info("applied migrations", "count", applied)
	}

	bunDB := bun.NewDB(sqlDB, pgdialect.New())
	bunDB.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithVerbose(true),
		bundebug.FromEnv("BUNDEBUG"),
	))

	return bunDB, nil
}
