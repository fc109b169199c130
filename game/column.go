package game

import (
	"fmt"

	"connect4/utils"
)

// Column is a fixed-height stack of cells, index 0 at the bottom.
// Cells above the lowest empty cell are always empty.
type Column struct {
	cells []Cell // never written after construction
}

// NewColumn pads initial with empty cells up to height, keeping its bottom-up order.
func NewColumn(height int, initial ...Cell) (Column, error) {
	if height < 1 {
		return Column{}, fmt.Errorf("%w: column height must be positive, got %d", ErrInvalidArgument, height)
	}
	if len(initial) > height {
		return Column{}, fmt.Errorf("%w: %d cells do not fit a column of height %d", ErrInvalidArgument, len(initial), height)
	}

	cells := make([]Cell, height)
	gap := false
	for i, c := range initial {
		if !c.Valid() {
			return Column{}, fmt.Errorf("%w: row %d holds unknown cell %d", ErrInvalidArgument, i, uint8(c))
		}
		if c == Empty {
			gap = true
		} else if gap {
			return Column{}, fmt.Errorf("%w: row %d floats above an empty cell", ErrInvalidArgument, i)
		}
		cells[i] = c
	}
	return Column{cells: cells}, nil
}

func (col Column) Height() int {
	return len(col.cells)
}

// Count is the number of occupied cells.
func (col Column) Count() int {
	if i := utils.FindIndex(col.cells, Empty); i >= 0 {
		return i
	}
	return len(col.cells)
}

func (col Column) Full() bool {
	return col.Count() == len(col.cells)
}

func (col Column) Cell(row int) Cell {
	return col.cells[row]
}

// Cells returns a copy of the cells, bottom first.
func (col Column) Cells() []Cell {
	cells := make([]Cell, len(col.cells))
	copy(cells, col.cells)
	return cells
}

// Drop returns a new column with the lowest empty cell captured by owner.
func (col Column) Drop(owner Cell) (Column, error) {
	row := utils.FindIndex(col.cells, Empty)
	if row < 0 {
		return col, fmt.Errorf("%w: column is full", ErrIllegalMove)
	}
	captured, err := col.cells[row].Capture(owner)
	if err != nil {
		return col, err
	}

	cells := col.Cells()
	cells[row] = captured
	return Column{cells: cells}, nil
}

func (col Column) Equal(other Column) bool {
	if len(col.cells) != len(other.cells) {
		return false
	}
	for i := range col.cells {
		if col.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
