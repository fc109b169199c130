package game

import (
	"fmt"

	"connect4/meta"
)

// Cell is the occupant of a single board slot.
type Cell uint8

const (
	Empty Cell = iota
	Player
	Computer
)

func (c Cell) Valid() bool {
	return c == Empty || c == Player || c == Computer
}

func (c Cell) Occupied() bool {
	return c != Empty
}

// Capture returns the cell occupied by owner. The receiver is left untouched.
func (c Cell) Capture(owner Cell) (Cell, error) {
	if owner != Player && owner != Computer {
		return c, fmt.Errorf("%w: cannot capture for %v", ErrInvalidArgument, owner)
	}
	if c.Occupied() {
		return c, fmt.Errorf("%w: cell already belongs to %v", ErrIllegalMove, c)
	}
	return owner, nil
}

// Opponent returns the other owner. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case Player:
		return Computer
	case Computer:
		return Player
	default:
		return Empty
	}
}

// OwnerOf maps a turn flag to the owner who moves.
func OwnerOf(playerToMove bool) Cell {
	if playerToMove {
		return Player
	}
	return Computer
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Player:
		return "player"
	case Computer:
		return "computer"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// Symbols are the display characters used when rendering a board.
type Symbols struct {
	Player   rune
	Empty    rune
	Computer rune
}

func DefaultSymbols() Symbols {
	return Symbols{
		Player:   meta.PLAYER_SYMBOL,
		Empty:    meta.EMPTY_SYMBOL,
		Computer: meta.COMPUTER_SYMBOL,
	}
}

func (s Symbols) Of(c Cell) rune {
	switch c {
	case Player:
		return s.Player
	case Computer:
		return s.Computer
	case Empty:
		return s.Empty
	default:
		panic(fmt.Sprintf("unexpected cell %d", uint8(c)))
	}
}
