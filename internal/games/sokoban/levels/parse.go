// Package levels loads Sokoban level and solution files.
// This package depends on the sokoban core but core does not depend on levels.
package levels

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrLevelNotFound means the level or solution file does not exist.
	ErrLevelNotFound = errors.New("level not found")

	// ErrMalformedLevel means a level or solution file could not be parsed
	// or does not match the configured grid size.
	ErrMalformedLevel = errors.New("malformed level data")
)

// ParseError describes a bad token in a level file.
// It matches ErrMalformedLevel with errors.Is.
type ParseError struct {
	File   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("%s:%d:%d: %v", e.File, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ParseError as a malformed level.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedLevel
}

// Parse reads comma separated integer rows, one row per line.
// Blank lines are skipped and whitespace around each value is ignored.
// Every row must have the same number of values as the first.
func Parse(r io.Reader, name string) ([][]int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var rows [][]int
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &ParseError{File: name, Line: pe.Line, Column: pe.Column, Err: pe.Err}
			}
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}

		line, _ := cr.FieldPos(0)
		if len(rows) > 0 && len(record) != len(rows[0]) {
			return nil, &ParseError{
				File: name,
				Line: line,
				Err:  fmt.Errorf("row has %d values, want %d", len(record), len(rows[0])),
			}
		}

		row := make([]int, len(record))
		for i, field := range record {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				_, col := cr.FieldPos(i)
				return nil, &ParseError{
					File:   name,
					Line:   line,
					Column: col,
					Err:    fmt.Errorf("value %q is not an integer", field),
				}
			}
			row[i] = v
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, &ParseError{File: name, Line: 1, Err: errors.New("no rows")}
	}
	return rows, nil
}

// Encode writes rows in the same format Parse reads.
func Encode(w io.Writer, rows [][]int) error {
	cw := csv.NewWriter(w)
	record := make([]string, 0, 16)
	for _, row := range rows {
		record = record[:0]
		for _, v := range row {
			record = append(record, strconv.Itoa(v))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Format returns rows encoded as text.
func Format(rows [][]int) string {
	var buf bytes.Buffer
	_ = Encode(&buf, rows)
	return buf.String()
}

// checkSize verifies parsed rows match the grid size.
func checkSize(rows [][]int, name string, wantRows, wantCols int) error {
	if len(rows) != wantRows || len(rows[0]) != wantCols {
		return fmt.Errorf("%w: %s is %dx%d, want %dx%d",
			ErrMalformedLevel, name, len(rows), len(rows[0]), wantRows, wantCols)
	}
	return nil
}
