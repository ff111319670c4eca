package port

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"dwdimport/dwd/db"
	"dwdimport/store"
)

const SEPARATOR = ";"

// Receives one tick per imported file
type Progress interface {
	Add(num int) error
}

// Truncates the category table and imports all the files matching the category pattern.
// Files are processed in lexical order, each one inserted and committed in a single batch.
// The first error aborts the import, rows of files already committed are kept.
func ImportTable(ctx context.Context, category *db.Category, st store.Store, config *Config) (rowsInserted int64, err error) {
	files, err := filepath.Glob(filepath.Join(config.BaseDir, category.Pattern))
	if err != nil {
		return 0, fmt.Errorf("invalid pattern %q: %w", category.Pattern, err)
	}
	slices.Sort(files)

	slog.Debug(fmt.Sprintf("%s: %d files matching %q", category.TableName, len(files), category.Pattern))

	if err := st.Truncate(ctx, category.TableName); err != nil {
		return 0, &TruncateError{Table: category.TableName, Err: err}
	}

	bar := config.newBar(len(files), category.TableName)
	for _, filename := range files {
		count, err := importFile(ctx, filename, category, st)
		if err != nil {
			return rowsInserted, err
		}

		rowsInserted += count
		bar.Add(1)
	}

	slog.Info(fmt.Sprintf("%v: %v total rows inserted", category.TableName, rowsInserted))
	return rowsInserted, nil
}

func importFile(ctx context.Context, filename string, category *db.Category, st store.Store) (int64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	rows, err := parseData(file, filename, category)
	if err != nil {
		return 0, err
	}

	logStr := filepath.Base(filename) + ": "
	if len(rows) == 0 {
		slog.Debug(logStr + "no rows to insert")
		return 0, nil
	}

	count, err := st.Insert(ctx, category.TableName, category.Fields, rows)
	if err != nil {
		return 0, fmt.Errorf("%sfailed bulk insertion: %w", logStr, err)
	}

	logStr += fmt.Sprintf("%v/%v rows inserted", count, len(rows))
	if int(count) != len(rows) {
		slog.Warn(logStr)
	} else {
		slog.Debug(logStr)
	}
	return count, nil
}

// Skips the header line and converts every following non-blank line
// with the category parser
func parseData(r io.Reader, filename string, category *db.Category) ([][]any, error) {
	scanner := bufio.NewScanner(r)

	// Skip header
	scanner.Scan()

	var rows [][]any
	line := 1
	for scanner.Scan() {
		line++

		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		row, err := category.ParseRow(strings.Split(text, SEPARATOR))
		if err != nil {
			return nil, &RowError{File: filename, Line: line, Err: err}
		}
		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return rows, nil
}
