// SPDX-License-Identifier: MIT

package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/numerics/matrix"
	"github.com/katalvlaran/numerics/plot"
)

// Number parses one float.
func Number(text string) (float64, error) {
	s := strings.TrimSpace(text)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, text)
	}

	return v, nil
}

// Vector parses numbers separated by commas and/or whitespace.
func Vector(text string) ([]float64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty vector", ErrInvalidInput)
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := Number(f)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// Matrix parses rows separated by ';' or newlines, each row a Vector.
// Rows must have equal length.
func Matrix(text string) (*matrix.Dense, error) {
	lines := splitRows(text)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrInvalidInput)
	}
	rows := make([][]float64, len(lines))
	for i, line := range lines {
		r, err := Vector(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if i > 0 && len(r) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d entries, row 0 has %d", ErrInvalidInput, i, len(r), len(rows[0]))
		}
		rows[i] = r
	}
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return m, nil
}

// Points parses "x,y" pairs separated by ';' or newlines.
func Points(text string) ([]plot.Point, error) {
	pairs := splitRows(text)
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: no points", ErrInvalidInput)
	}
	out := make([]plot.Point, len(pairs))
	for i, pair := range pairs {
		xy, err := Vector(pair)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		if len(xy) != 2 {
			return nil, fmt.Errorf("%w: point %d %q needs exactly x,y", ErrInvalidInput, i, strings.TrimSpace(pair))
		}
		out[i] = plot.Point{X: xy[0], Y: xy[1]}
	}

	return out, nil
}

// splitRows splits on ';' and newlines, dropping blank rows.
func splitRows(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool { return r == ';' || r == '\n' || r == '\r' })
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}

	return out
}
