package tree

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"connect4/game"

	"github.com/rs/zerolog/log"
)

// DecisionNode is a position, its outcome, and one child per legal drop.
// Children are built on first use unless the tree was built WithEager; either
// way a node never changes what it reports once built.
type DecisionNode struct {
	mu       sync.Mutex
	position game.Position
	outcome  game.Outcome
	builder  *builder
	children map[int]*DecisionNode // nil until expanded
}

// NewDecisionNode builds the node for board with the given side to move.
func NewDecisionNode(board game.Board, playerToMove bool, options ...Option) *DecisionNode {
	b := newBuilder(options...)
	b.rules = board.Rules()
	return b.node(game.NewPosition(board, playerToMove))
}

func (n *DecisionNode) Board() game.Board {
	return n.position.Board
}

func (n *DecisionNode) PlayerToMove() bool {
	return n.position.PlayerToMove
}

func (n *DecisionNode) Position() game.Position {
	return n.position
}

func (n *DecisionNode) Outcome() game.Outcome {
	return n.outcome
}

// Terminal nodes have a finished outcome and no children.
func (n *DecisionNode) Terminal() bool {
	return n.outcome.Finished()
}

func (n *DecisionNode) expand() map[int]*DecisionNode {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.children != nil {
		return n.children
	}

	children := make(map[int]*DecisionNode)
	if !n.outcome.Finished() {
		for x := 0; x < n.position.Board.Rules().Width; x++ {
			next, err := n.position.Play(x)
			if errors.Is(err, game.ErrIllegalMove) { // Full column, no branch
				continue
			}
			if err != nil {
				panic(fmt.Sprintf("cannot expand column %d: %v", x, err))
			}
			children[x] = n.builder.node(next)
		}
	}
	n.builder.metrics.AddExpansion()
	n.children = children
	return children
}

// Children returns a copy of the column to child mapping.
func (n *DecisionNode) Children() map[int]*DecisionNode {
	children := n.expand()
	out := make(map[int]*DecisionNode, len(children))
	for x, child := range children {
		out[x] = child
	}
	return out
}

// Columns lists the columns that have a child, leftmost first.
func (n *DecisionNode) Columns() []int {
	children := n.expand()
	columns := make([]int, 0, len(children))
	for x := range children {
		columns = append(columns, x)
	}
	sort.Ints(columns)
	return columns
}

// Traverse returns the child reached by dropping into column x.
func (n *DecisionNode) Traverse(x int) (*DecisionNode, error) {
	child, ok := n.expand()[x]
	if !ok {
		return nil, fmt.Errorf("%w: no move in column %d from this position", game.ErrIndexOutOfRange, x)
	}
	return child, nil
}

// Walk follows a sequence of columns from n.
func (n *DecisionNode) Walk(columns ...int) (*DecisionNode, error) {
	node := n
	for i, x := range columns {
		child, err := node.Traverse(x)
		if err != nil {
			log.Debug().Msgf("walk stopped at step %d of %d: %v", i+1, len(columns), err)
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		node = child
	}
	return node, nil
}

// Equal compares board and turn; the children follow from both.
func (n *DecisionNode) Equal(other *DecisionNode) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.position.Equal(other.position)
}

func (n *DecisionNode) String() string {
	return fmt.Sprintf("%v (%v)\n%s", n.position.Owner(), n.outcome, n.position.Board)
}
