package tree

import (
	"fmt"

	"connect4/game"
)

// Root holds the two trees of the empty board: one where the player opens and
// one where the computer opens.
type Root struct {
	player   *DecisionNode
	computer *DecisionNode
}

// NewRoot builds both trees. The two share options, so with transpositions
// they also share one table.
func NewRoot(options ...Option) *Root {
	b := newBuilder(options...)
	if err := b.rules.Validate(); err != nil {
		panic(fmt.Sprintf("cannot build root: %v", err))
	}
	board := game.EmptyBoard(b.rules)
	return &Root{
		player:   b.node(game.NewPosition(board, true)),
		computer: b.node(game.NewPosition(board, false)),
	}
}

// Traverse selects the tree for the chosen opening side.
func (r *Root) Traverse(playerFirst bool) *DecisionNode {
	if playerFirst {
		return r.player
	}
	return r.computer
}

func (r *Root) Equal(other *Root) bool {
	return r.player.Equal(other.player) && r.computer.Equal(other.computer)
}
