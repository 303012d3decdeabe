// Package grid partitions an ordered list of items into fixed-width rows.
//
// Layout is a pure function: it never caches, so callers re-run it whenever the
// column count or the item list changes.
package grid

import (
	"fmt"

	"github.com/rileyhilliard/dash/internal/errors"
)

// Slot is one cell of a Row. It holds either an item or a placeholder.
type Slot[T any] struct {
	item   T
	filled bool
}

// Item returns a slot holding v.
func Item[T any](v T) Slot[T] {
	return Slot[T]{item: v, filled: true}
}

// Placeholder returns an empty slot used to pad a short final row.
func Placeholder[T any]() Slot[T] {
	return Slot[T]{}
}

// Empty reports whether the slot is a placeholder.
func (s Slot[T]) Empty() bool {
	return !s.filled
}

// Value returns the slot's item and true, or the zero value and false for a placeholder.
func (s Slot[T]) Value() (T, bool) {
	return s.item, s.filled
}

// Row is a fixed-length sequence of slots; its length always equals the column count.
type Row[T any] []Slot[T]

// Layout splits items into consecutive rows of exactly columns slots, preserving
// order. The last row is right-padded with placeholders when items doesn't divide
// evenly. columns must be at least 1.
func Layout[T any](items []T, columns int) ([]Row[T], error) {
	if columns < 1 {
		return nil, errors.InvalidArgument(
			fmt.Sprintf("Column count must be at least 1, got %d", columns),
			"Pass a positive column count to the grid layout")
	}

	rows := make([]Row[T], 0, RowCount(len(items), columns))
	for i := 0; i < len(items); i += columns {
		row := make(Row[T], columns)
		for c := 0; c < columns; c++ {
			if i+c < len(items) {
				row[c] = Item(items[i+c])
			} else {
				row[c] = Placeholder[T]()
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// RowCount returns how many rows Layout produces for n items; 0 when columns < 1.
func RowCount(n, columns int) int {
	if columns < 1 || n <= 0 {
		return 0
	}
	return (n + columns - 1) / columns
}

// Items concatenates the non-placeholder slots of rows in row-major order.
func Items[T any](rows []Row[T]) []T {
	var out []T
	for _, row := range rows {
		for _, slot := range row {
			if v, ok := slot.Value(); ok {
				out = append(out, v)
			}
		}
	}
	return out
}

// Position converts a flat item index to its row and column.
func Position(index, columns int) (row, col int) {
	if columns < 1 {
		return 0, 0
	}
	return index / columns, index % columns
}
