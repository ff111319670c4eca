package db

import (
	"fmt"
	"strconv"
	"strings"
)

// Length of the `YYYYMMDDHH` timestamp layout
const hourLayoutLen = 10

// Length of the `YYYYMMDDHH:MM` timestamp layout used by the solar category
const minuteLayoutLen = 13

// Returned when a single field of a row cannot be converted
type FieldError struct {
	Column int
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("column %d (%q): %s", e.Column, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Returned when a parsed record does not match the category columns
type ShapeError struct {
	Table string
	Got   int
	Want  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: record has %d values, table has %d columns", e.Table, e.Got, e.Want)
}

// Reformats a `YYYYMMDDHH` timestamp to `YYYY-MM-DD HH:00:00`.
// The value is sliced as is, no calendar validation is performed.
func FormatTimestamp(ts string) (string, error) {
	if len(ts) < hourLayoutLen {
		return "", fmt.Errorf("timestamp %q is shorter than the YYYYMMDDHH layout", ts)
	}
	return ts[:4] + "-" + ts[4:6] + "-" + ts[6:8] + " " + ts[8:10] + ":00:00", nil
}

// Reformats a `YYYYMMDDHH:MM` timestamp to `YYYY-MM-DD HH:MM:00`
func FormatMinuteTimestamp(ts string) (string, error) {
	if len(ts) < minuteLayoutLen {
		return "", fmt.Errorf("timestamp %q is shorter than the YYYYMMDDHH:MM layout", ts)
	}
	return ts[:4] + "-" + ts[4:6] + "-" + ts[6:8] + " " + ts[8:10] + ":" + ts[11:13] + ":00", nil
}

// Converts the fields of a single row, keeping only the first error.
// Once an error is recorded every following conversion returns the zero value.
type fieldReader struct {
	fields []string
	err    error
}

func newFieldReader(fields []string, expected int) *fieldReader {
	r := &fieldReader{fields: fields}
	if len(fields) < expected {
		r.err = fmt.Errorf("expected at least %d fields, got %d", expected, len(fields))
	}
	return r
}

func (r *fieldReader) fail(col int, value string, err error) {
	r.err = &FieldError{Column: col, Value: value, Err: err}
}

func (r *fieldReader) str(col int) string {
	if r.err != nil {
		return ""
	}
	return strings.TrimSpace(r.fields[col])
}

func (r *fieldReader) int(col int) int32 {
	value := r.str(col)
	if r.err != nil {
		return 0
	}

	i, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		r.fail(col, value, err)
		return 0
	}
	return int32(i)
}

func (r *fieldReader) float(col int) float64 {
	value := r.str(col)
	if r.err != nil {
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		r.fail(col, value, err)
		return 0
	}
	return f
}

func (r *fieldReader) timestamp(col int) string {
	return r.formatted(col, FormatTimestamp)
}

func (r *fieldReader) minuteTimestamp(col int) string {
	return r.formatted(col, FormatMinuteTimestamp)
}

func (r *fieldReader) formatted(col int, format func(string) (string, error)) string {
	value := r.str(col)
	if r.err != nil {
		return ""
	}

	ts, err := format(value)
	if err != nil {
		r.fail(col, value, err)
		return ""
	}
	return ts
}
