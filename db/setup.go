// Package db applies the embedded schema migrations. Tables are created
// only when absent, so calling setup on an existing database is a no-op.
package db

import (
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/project/dbcentral/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

func SetupPostgres(pool *pgxpool.Pool, l *zap.Logger) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("can not set goose dialect: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("can not apply migrations: %w", err)
	}

	logger.MakeInfo(l, "database schema is up to date")
	return sqlDB.Close()
}
