// Package postgres implementa los puertos de persistencia sobre PostgreSQL (pgx v5).
// Se activa con DB_DRIVER=postgres; por defecto la app usa el archivo SQLite.
package postgres

import (
	"context"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/anuncios-armazem/pkg/config"
)

// NewPool crea un pool de conexiones PostgreSQL usando DATABASE_URL o el DSN armado desde DB_*.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// Registrar codec para NUMERIC -> shopspring/decimal (precio de los anuncios).
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// Migrate crea el esquema si no existe. Idempotente.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS companies (
			id            BIGSERIAL PRIMARY KEY,
			name          TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			type          TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS listings (
			id           BIGSERIAL PRIMARY KEY,
			company_id   BIGINT NOT NULL REFERENCES companies(id),
			title        TEXT NOT NULL,
			description  TEXT NOT NULL,
			location     TEXT NOT NULL,
			price        NUMERIC(14,2) NOT NULL,
			type         TEXT NOT NULL,
			country      TEXT,
			address      TEXT,
			neighborhood TEXT,
			city         TEXT,
			state        TEXT,
			postal_code  TEXT,
			tax_id       TEXT,
			image_path   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_listings_company ON listings(company_id)`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrar esquema: %w", err)
		}
	}
	return nil
}
