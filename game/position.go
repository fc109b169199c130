package game

import "fmt"

// Position is a board together with whose turn it is.
// Positions are immutable - Play always returns a new copy.
type Position struct {
	Board        Board
	PlayerToMove bool
}

func NewPosition(board Board, playerToMove bool) Position {
	return Position{Board: board, PlayerToMove: playerToMove}
}

// Owner is the side that moves next.
func (p Position) Owner() Cell {
	return OwnerOf(p.PlayerToMove)
}

func (p Position) Outcome() Outcome {
	return Evaluate(p.Board)
}

// LegalMoves lists the columns that accept a token, leftmost first.
// A finished position has no legal moves.
func (p Position) LegalMoves() []int {
	if p.Outcome().Finished() {
		return nil
	}
	moves := make([]int, 0, p.Board.rules.Width)
	for x, col := range p.Board.columns {
		if !col.Full() {
			moves = append(moves, x)
		}
	}
	return moves
}

// Play drops the mover's token into column x and passes the turn.
func (p Position) Play(x int) (Position, error) {
	board, err := p.Board.Drop(x, p.Owner())
	if err != nil {
		return p, err
	}
	return Position{Board: board, PlayerToMove: !p.PlayerToMove}, nil
}

// Key identifies the position for transposition lookup.
func (p Position) Key() string {
	turn := "c"
	if p.PlayerToMove {
		turn = "p"
	}
	return turn + ":" + p.Board.Key()
}

func (p Position) Equal(other Position) bool {
	return p.PlayerToMove == other.PlayerToMove && p.Board.Equal(other.Board)
}

func (p Position) String() string {
	return fmt.Sprintf("%v to move\n%s", p.Owner(), p.Board)
}
