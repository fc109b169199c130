package game

import "fmt"

// Outcome classifies a board. Exactly one holds for any board.
type Outcome int

const (
	InProgress Outcome = iota
	PlayerWin
	ComputerWin
	Draw
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case PlayerWin:
		return "player win"
	case ComputerWin:
		return "computer win"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Finished reports whether no further moves are played.
func (o Outcome) Finished() bool {
	return o != InProgress
}

// (up-right, right, down-right, up, down, up-left, left, down-left)
var directions = [8][2]int{
	{1, 1}, {1, 0}, {1, -1},
	{0, 1}, {0, -1},
	{-1, 1}, {-1, 0}, {-1, -1},
}

// Evaluate classifies b. A player run wins over a computer run; a full board
// without a run is a draw.
func Evaluate(b Board) Outcome {
	switch {
	case Wins(b, Player):
		return PlayerWin
	case Wins(b, Computer):
		return ComputerWin
	case b.Full():
		return Draw
	default:
		return InProgress
	}
}

// Wins reports whether owner has RunLength aligned tokens anywhere on b.
func Wins(b Board, owner Cell) bool {
	if !owner.Occupied() {
		return false
	}
	for x := 0; x < b.rules.Width; x++ {
		for y := 0; y < b.rules.Height; y++ {
			if b.Cell(x, y) != owner {
				continue
			}
			for _, d := range directions {
				if b.run(x, y, d[0], d[1], owner) {
					return true
				}
			}
		}
	}
	return false
}

// run reports whether RunLength cells starting at (x, y) along (dx, dy) all
// belong to owner. Leaving the board fails the direction.
func (b Board) run(x, y, dx, dy int, owner Cell) bool {
	for i := 0; i < b.rules.RunLength; i++ {
		if !b.inBounds(x, y) || b.Cell(x, y) != owner {
			return false
		}
		x += dx
		y += dy
	}
	return true
}
