// SPDX-License-Identifier: MIT

package linkgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/lvrank/matrix"
)

// ParseEdgeList reads one directed link per line: "from to" or "from,to".
// Comment lines ("#", "//") and blank lines are skipped; surrounding spaces
// are ignored.
//
// Errors:
//   - ErrMalformedLine (with the 1-based line number) for any other line
//     that does not split into exactly two IDs.
//   - I/O errors from r.
func ParseEdgeList(r io.Reader) (*Graph, error) {
	g := New()
	err := scanRecords(r, func(lineNo int, fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("line %d: want 2 node ids, got %d: %w", lineNo, len(fields), ErrMalformedLine)
		}

		return g.AddEdge(fields[0], fields[1])
	})
	if err != nil {
		return nil, fmt.Errorf("ParseEdgeList: %w", err)
	}

	return g, nil
}

// ParseMatrix reads a dense matrix, one row per line, values separated by
// whitespace and/or commas. Comment and blank lines are skipped.
//
// Errors:
//   - ErrMalformedLine for a non-numeric value or a row whose length differs
//     from the first row.
//   - ErrEmptyGraph when no row is present.
//   - matrix.ErrNaNInf for NaN or infinite values.
func ParseMatrix(r io.Reader) (*matrix.Dense, error) {
	var rows [][]float64
	err := scanRecords(r, func(lineNo int, fields []string) error {
		if len(rows) > 0 && len(fields) != len(rows[0]) {
			return fmt.Errorf("line %d: want %d values, got %d: %w",
				lineNo, len(rows[0]), len(fields), ErrMalformedLine)
		}
		row := make([]float64, len(fields))
		for k, f := range fields {
			v, perr := strconv.ParseFloat(f, 64)
			if perr != nil {
				return fmt.Errorf("line %d: value %q: %w", lineNo, f, ErrMalformedLine)
			}
			row[k] = v
		}
		rows = append(rows, row)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ParseMatrix: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("ParseMatrix: %w", ErrEmptyGraph)
	}

	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("ParseMatrix: %w", err)
	}

	return m, nil
}

// scanRecords feeds every non-comment, non-blank line of r to fn as a list of
// fields, together with its 1-based line number.
func scanRecords(r io.Reader, fn func(lineNo int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if isSkippable(line) {
			continue
		}
		if err := fn(lineNo, splitFields(line)); err != nil {
			return err
		}
	}

	return sc.Err()
}

// isSkippable reports blank and comment lines.
func isSkippable(line string) bool {
	return line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//")
}

// splitFields splits on commas and whitespace; empty fields between
// consecutive separators are dropped.
func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
