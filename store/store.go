package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"dwdimport/config"
)

// Destination database of the import
type Store interface {
	// Removes all the rows of the table
	Truncate(ctx context.Context, table string) error
	// Inserts the rows in a single transaction, committed before returning.
	// An empty slice of rows is a no-op.
	Insert(ctx context.Context, table string, columns []string, rows [][]any) (int64, error)
	Close()
}

// Opens a connection to the configured database and checks that it is reachable
func Open(ctx context.Context, cfg *config.Database) (Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return OpenPostgres(ctx, cfg.DSN())
	case config.DriverSQLite:
		return OpenSQLite(ctx, cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

// Quotes a table or column name
func quote(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func dollarPlaceholder(i int) string {
	return fmt.Sprintf("$%d", i+1)
}

func questionPlaceholder(int) string {
	return "?"
}

// Builds a parameterized INSERT statement for a single row
func InsertStatement(table string, columns []string, placeholder func(i int) string) string {
	names := make([]string, len(columns))
	params := make([]string, len(columns))
	for i, col := range columns {
		names[i] = quote(col)
		params[i] = placeholder(i)
	}

	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		quote(table),
		strings.Join(names, ", "),
		strings.Join(params, ", "),
	)
}
