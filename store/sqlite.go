package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite has no TRUNCATE, the table is cleared with DELETE instead
type SQLite struct {
	db *sql.DB
}

// Opens the database file at path, ":memory:" is also accepted
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	// Single writer. Also keeps in-memory databases on one connection
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) DB() *sql.DB {
	return s.db
}

func (s *SQLite) Close() {
	s.db.Close()
}

func (s *SQLite) Truncate(ctx context.Context, table string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM "+quote(table))
	return err
}

func (s *SQLite) Insert(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, InsertStatement(table, columns, questionPlaceholder))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	var count int64
	for i, row := range rows {
		res, err := stmt.ExecContext(ctx, row...)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		count += n
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}
