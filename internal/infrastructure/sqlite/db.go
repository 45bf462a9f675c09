// Package sqlite implementa los puertos de persistencia sobre un archivo SQLite (driver mattn/go-sqlite3).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"
)

// Open abre (o crea) la base en path con claves foráneas activas en cada conexión del pool.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio de la base: %w", err)
		}
	}
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// Migrate crea el esquema si no existe. Es idempotente y se ejecuta al arrancar.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS companies (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			name          TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			type          TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS listings (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			company_id   INTEGER NOT NULL REFERENCES companies(id),
			title        TEXT NOT NULL,
			description  TEXT NOT NULL,
			location     TEXT NOT NULL,
			price        REAL NOT NULL,
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
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrar esquema: %w", err)
		}
	}
	return nil
}

// isUniqueViolation verifica si un error es una violación de constraint UNIQUE.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
