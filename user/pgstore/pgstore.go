// Package pgstore implements user.Store on PostgreSQL via the pgx stdlib
// driver.
package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/userstore/user"
	"github.com/dmitrijs2005/userstore/user/pgstore/migrations"
)

// DBTX is the subset of database/sql used by the store. Both *sql.DB and
// *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db DBTX
}

func New(db DBTX) *Store {
	return &Store{db: db}
}

// Open connects to PostgreSQL and applies the embedded schema migration,
// which creates the user_records table with its UNIQUE (realm, username)
// constraint.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := Bootstrap(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return db, nil
}

// Bootstrap runs the embedded goose migrations against db.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	return goose.UpContext(ctx, db, ".")
}

func (s *Store) FindOne(ctx context.Context, realm, username string) (*user.Record, error) {
	query :=
		`SELECT id, realm, username, COALESCE(password, '') FROM user_records
		 WHERE realm = $1 AND username = $2
		 `

	rec := &user.Record{}
	err := s.db.QueryRowContext(ctx, query, realm, username).
		Scan(&rec.ID, &rec.Realm, &rec.Username, &rec.Password)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

func (s *Store) Insert(ctx context.Context, rec *user.Record) error {

	query :=
		`INSERT INTO user_records (realm, username, password)
         VALUES ($1, $2, NULLIF($3, ''))
		 RETURNING id
		 `

	err := s.db.QueryRowContext(ctx, query,
		rec.Realm, rec.Username, rec.Password).Scan(&rec.ID)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (s *Store) UpdatePassword(ctx context.Context, realm, username, hash string) (int64, error) {
	query :=
		`UPDATE user_records SET password = $3
		 WHERE realm = $1 AND username = $2
		 `

	res, err := s.db.ExecContext(ctx, query, realm, username, hash)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	matched, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return matched, nil
}
