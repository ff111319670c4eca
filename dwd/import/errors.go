package port

import "fmt"

// Returned when the destination table could not be cleared.
// The import of the category is aborted before reading any file.
type TruncateError struct {
	Table string
	Err   error
}

func (e *TruncateError) Error() string {
	return fmt.Sprintf("could not truncate table %q: %s", e.Table, e.Err)
}

func (e *TruncateError) Unwrap() error {
	return e.Err
}

// Returned when a row of a product file cannot be converted
type RowError struct {
	File string
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
