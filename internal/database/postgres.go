// Package database opens the persistence backends and owns the schema.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/georgemunganga/productions-api/internal/apperr"
)

// OpenPostgres opens and pings a PostgreSQL pool through lib/pq.
func OpenPostgres(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, migrationSQL); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// IsUniqueViolation reports whether err is a PostgreSQL unique_violation (23505).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// Titles are unique at the storage level; the services' existence checks only
// produce friendlier errors and cannot close the create race on their own.
const migrationSQL = `
CREATE TABLE IF NOT EXISTS users (
    id            UUID PRIMARY KEY,
    email         TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    first_name    TEXT NOT NULL DEFAULT '',
    last_name     TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS action_announcements (
    id           TEXT PRIMARY KEY,
    seq          BIGSERIAL,
    title        TEXT UNIQUE NOT NULL,
    subtitle     TEXT NOT NULL DEFAULT '',
    description  TEXT NOT NULL DEFAULT '',
    full_name    TEXT NOT NULL DEFAULT '',
    institution  TEXT NOT NULL DEFAULT '',
    email        TEXT NOT NULL DEFAULT '',
    url_img      TEXT NOT NULL DEFAULT '',
    category_ref TEXT NOT NULL DEFAULT '',
    initial_date TIMESTAMPTZ,
    final_date   TIMESTAMPTZ,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS action_articles (
    id         TEXT PRIMARY KEY,
    seq        BIGSERIAL,
    title      TEXT NOT NULL,
    subtitle   TEXT NOT NULL DEFAULT '',
    content    TEXT NOT NULL DEFAULT '',
    image_url  TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS production_data (
    id         TEXT PRIMARY KEY,
    seq        BIGSERIAL,
    data       JSONB NOT NULL DEFAULT '{}',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS productions (
    id                  TEXT PRIMARY KEY,
    seq                 BIGSERIAL,
    title               TEXT UNIQUE NOT NULL,
    subtitle            TEXT NOT NULL DEFAULT '',
    responsible         TEXT NOT NULL,
    situation           TEXT NOT NULL DEFAULT '',
    list_of_productions TEXT[] NOT NULL DEFAULT '{}',
    created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// PostgresError maps driver errors onto the apperr sentinels repositories return.
func PostgresError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return apperr.ErrNotFound
	case IsUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, apperr.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
