package game

import (
	"fmt"
	"strings"

	"connect4/meta"
)

// Board is the position of record: Width columns, index 0 leftmost.
// Boards are values; Drop returns a new Board and never touches the receiver.
type Board struct {
	rules   Rules
	columns []Column // shared between boards, never written after construction
}

// EmptyBoard returns a board with every column empty.
func EmptyBoard(rules Rules) Board {
	b, err := NewBoard(rules)
	if err != nil {
		panic(fmt.Sprintf("cannot build empty board: %v", err))
	}
	return b
}

// NewBoard builds a board from at most rules.Width column prefixes, leftmost first.
// Missing columns are empty.
func NewBoard(rules Rules, columns ...[]Cell) (Board, error) {
	if err := rules.Validate(); err != nil {
		return Board{}, err
	}
	if len(columns) > rules.Width {
		return Board{}, fmt.Errorf("%w: %d columns do not fit a board of width %d", ErrInvalidArgument, len(columns), rules.Width)
	}

	cols := make([]Column, rules.Width)
	for i := range cols {
		var prefix []Cell
		if i < len(columns) {
			prefix = columns[i]
		}
		col, err := NewColumn(rules.Height, prefix...)
		if err != nil {
			return Board{}, fmt.Errorf("column %d: %w", i, err)
		}
		cols[i] = col
	}
	return Board{rules: rules, columns: cols}, nil
}

func (b Board) Rules() Rules {
	return b.rules
}

func (b Board) Column(x int) Column {
	return b.columns[x]
}

// Cell returns the occupant of column x, row y (row 0 at the bottom).
func (b Board) Cell(x, y int) Cell {
	return b.columns[x].Cell(y)
}

func (b Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.rules.Width && y >= 0 && y < b.rules.Height
}

func (b Board) Full() bool {
	for _, col := range b.columns {
		if !col.Full() {
			return false
		}
	}
	return true
}

// Count is the number of tokens on the board.
func (b Board) Count() int {
	n := 0
	for _, col := range b.columns {
		n += col.Count()
	}
	return n
}

// Drop slides a token for owner into column x.
func (b Board) Drop(x int, owner Cell) (Board, error) {
	if x < 0 || x >= b.rules.Width {
		return b, fmt.Errorf("%w: column %d not in [0, %d)", ErrIndexOutOfRange, x, b.rules.Width)
	}
	col, err := b.columns[x].Drop(owner)
	if err != nil {
		return b, fmt.Errorf("column %d: %w", x, err)
	}

	// Untouched columns are shared; only the dropped column is new.
	cols := make([]Column, len(b.columns))
	copy(cols, b.columns)
	cols[x] = col
	return Board{rules: b.rules, columns: cols}, nil
}

func (b Board) Equal(other Board) bool {
	if b.rules != other.rules {
		return false
	}
	for i := range b.columns {
		if !b.columns[i].Equal(other.columns[i]) {
			return false
		}
	}
	return true
}

// Key is a canonical encoding of the board, one byte per cell in column-major
// order with '/' between columns.
func (b Board) Key() string {
	var sb strings.Builder
	sb.Grow(b.rules.Cells() + b.rules.Width)
	for i, col := range b.columns {
		if i > 0 {
			sb.WriteByte('/')
		}
		for _, c := range col.cells {
			switch c {
			case Player:
				sb.WriteByte('p')
			case Computer:
				sb.WriteByte('c')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Render draws the board as Height lines, top row first. Each line holds one
// symbol per column joined by "|" and ends with a newline.
//
//	 | | | | | |
//	 | | | | | |
//	 | | | | | |
//	 | | | | | |
//	 |%| | | | |
//	@|@|%| | | |
func (b Board) Render(symbols Symbols) string {
	var sb strings.Builder
	for y := b.rules.Height - 1; y >= 0; y-- {
		for x := 0; x < b.rules.Width; x++ {
			if x > 0 {
				sb.WriteString(meta.DELIMITER)
			}
			sb.WriteRune(symbols.Of(b.Cell(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b Board) String() string {
	return b.Render(DefaultSymbols())
}
