// Package board implements a 9x9 integer grid with fail-soft accessors:
// reads outside the grid return InvalidCell, invalid writes are dropped
// without an error. Outcomes surface as Events on an optional Observer
// instead of console output or return values.
//
// Construction and mutation are deliberately asymmetric: New copies the
// given rows without validating their contents, while Set only accepts
// values in [MinValue, MaxValue]. A cell can therefore start at EmptyCell
// (or any other out-of-range content) but can never be written back to it.
package board

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

const (
	// Size is the edge length of the grid.
	Size = 9

	// EmptyCell marks a cell with no content. Rendered as '.'.
	EmptyCell = 0

	// InvalidCell is the sentinel returned by Get for positions outside
	// the grid.
	InvalidCell = -1

	// MinValue and MaxValue bound the values Set accepts.
	MinValue = 1
	MaxValue = 9
)

// ErrInvalidShape reports input that is not exactly Size rows of Size cells.
var ErrInvalidShape = errors.New("grid must be 9x9")

// Board is a fixed 9x9 grid. It owns its cells: the slice passed to New is
// copied and later changes to it do not affect the board.
type Board struct {
	cells [Size][Size]int
	obs   Observer
}

// Option configures a Board during construction.
type Option func(*Board)

// WithObserver routes the board's access events to o.
func WithObserver(o Observer) Option {
	return func(b *Board) { b.obs = o }
}

// New builds a Board from exactly Size rows of Size cells each. Ragged or
// wrongly sized input yields ErrInvalidShape naming the offending row.
// Cell contents are not validated; they are stored as given.
func New(cells [][]int, opts ...Option) (*Board, error) {
	if len(cells) != Size {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrInvalidShape, len(cells), Size)
	}

	b := &Board{}
	for r, row := range cells {
		if len(row) != Size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidShape, r, len(row), Size)
		}
		copy(b.cells[r][:], row)
	}

	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Get returns the cell at (row, col). Positions outside the grid emit a
// bad_position event and return InvalidCell; valid reads emit nothing.
func (b *Board) Get(row, col int) int {
	if !inBounds(row, col) {
		b.observe(Event{
			Op:     OpGet,
			Kind:   KindBadPosition,
			Row:    row,
			Col:    col,
			Detail: positionDetail(row, col),
		})
		return InvalidCell
	}
	return b.cells[row][col]
}

// Set stores value at (row, col). The position is checked first, then the
// value against [MinValue, MaxValue]; on either failure the write is
// dropped and a warn-level event names the failed check. A successful
// write emits an applied event. Set never returns an error.
func (b *Board) Set(row, col, value int) {
	if !inBounds(row, col) {
		b.observe(Event{
			Op:     OpSet,
			Kind:   KindBadPosition,
			Row:    row,
			Col:    col,
			Value:  value,
			Detail: positionDetail(row, col),
		})
		return
	}
	if value < MinValue || value > MaxValue {
		b.observe(Event{
			Op:     OpSet,
			Kind:   KindBadValue,
			Row:    row,
			Col:    col,
			Value:  value,
			Detail: fmt.Sprintf("value %d must be in range [%d, %d]", value, MinValue, MaxValue),
		})
		return
	}

	b.cells[row][col] = value
	b.observe(Event{Op: OpSet, Kind: KindApplied, Row: row, Col: col, Value: value})
}

// Rows yields the grid as Size formatted lines, top row first. Cells are
// space-separated; EmptyCell renders as '.'. The sequence is finite and
// can be ranged over any number of times.
func (b *Board) Rows() iter.Seq[string] {
	return func(yield func(string) bool) {
		for r := range Size {
			if !yield(b.renderRow(r)) {
				return
			}
		}
	}
}

// String renders the whole grid, rows joined with newlines.
func (b *Board) String() string {
	rows := make([]string, 0, Size)
	for row := range b.Rows() {
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func (b *Board) renderRow(r int) string {
	var sb strings.Builder
	for c := range Size {
		if c > 0 {
			sb.WriteByte(' ')
		}
		if v := b.cells[r][c]; v == EmptyCell {
			sb.WriteByte('.')
		} else {
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}

func (b *Board) observe(e Event) {
	if b.obs != nil {
		b.obs.Observe(e)
	}
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func positionDetail(row, col int) string {
	return fmt.Sprintf("position (%d, %d) must be in range [0, %d)", row, col, Size)
}
