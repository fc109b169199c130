package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"connect4/game"
	"connect4/tree"

	"github.com/rs/zerolog/log"
)

var (
	ErrNotStarted  = errors.New("no game in progress")
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrNotYourTurn = errors.New("it is not the player's turn")
)

// Session is one front-end game: it walks a tree from the root the player
// chose, answering each player drop with the computer's move.
type Session struct {
	root     *tree.Root
	computer Agent
	out      io.Writer
	symbols  game.Symbols
	node     *tree.DecisionNode
	moves    []int
}

func NewSession(root *tree.Root, computer Agent, out io.Writer, symbols game.Symbols) *Session {
	if root == nil || computer == nil {
		panic("session needs a root and a computer agent")
	}
	return &Session{
		root:     root,
		computer: computer,
		out:      out,
		symbols:  symbols,
	}
}

// Node is the current position, nil before Start.
func (s *Session) Node() *tree.DecisionNode {
	return s.node
}

// Moves lists the columns played so far, in order.
func (s *Session) Moves() []int {
	moves := make([]int, len(s.moves))
	copy(moves, s.moves)
	return moves
}

func (s *Session) Finished() bool {
	return s.node != nil && s.node.Terminal()
}

// Start begins a new game. When the computer opens it moves immediately.
func (s *Session) Start(playerFirst bool) error {
	s.node = s.root.Traverse(playerFirst)
	s.moves = nil
	log.Info().Msgf("starting game, player first: %t", playerFirst)

	if !playerFirst {
		if err := s.computerMove(); err != nil {
			return err
		}
	}
	s.show()
	return nil
}

// Drop plays the player's column, then the computer's reply unless the game ended.
func (s *Session) Drop(column int) error {
	if err := s.ready(); err != nil {
		return err
	}
	if !s.node.PlayerToMove() {
		return ErrNotYourTurn
	}

	if err := s.advance(column); err != nil {
		return err
	}
	log.Debug().Msgf("player dropped into column %d", column)

	if !s.node.Terminal() {
		if err := s.computerMove(); err != nil {
			return err
		}
	}
	s.show()
	return nil
}

// Play alternates player and computer from the current node until the game
// ends, like an unattended match.
func (s *Session) Play(ctx context.Context, player Agent) (game.Outcome, error) {
	if s.node == nil {
		return game.InProgress, ErrNotStarted
	}

	for !s.node.Terminal() {
		if err := ctx.Err(); err != nil {
			return s.node.Outcome(), err
		}

		agent := s.computer
		if s.node.PlayerToMove() {
			agent = player
		}
		column, err := agent.FindMove(s.node)
		if err != nil {
			return s.node.Outcome(), err
		}
		if err := s.advance(column); err != nil {
			return s.node.Outcome(), err
		}
		log.Debug().Msgf("move %d: column %d", len(s.moves), column)
	}

	s.show()
	return s.node.Outcome(), nil
}

func (s *Session) ready() error {
	if s.node == nil {
		return ErrNotStarted
	}
	if s.node.Terminal() {
		return ErrGameOver
	}
	return nil
}

func (s *Session) advance(column int) error {
	child, err := s.node.Traverse(column)
	if err != nil {
		return err
	}
	s.node = child
	s.moves = append(s.moves, column)
	return nil
}

func (s *Session) computerMove() error {
	column, err := s.computer.FindMove(s.node)
	if err != nil {
		return fmt.Errorf("computer cannot move: %w", err)
	}
	if err := s.advance(column); err != nil {
		return fmt.Errorf("computer chose column %d: %w", column, err)
	}
	log.Debug().Msgf("computer dropped into column %d", column)
	fmt.Fprintf(s.out, "The computer drops a token into column %d.\n", column)
	return nil
}

func (s *Session) show() {
	fmt.Fprint(s.out, s.node.Board().Render(s.symbols))
	if s.node.Terminal() {
		fmt.Fprintln(s.out, Announcement(s.node.Outcome()))
	}
}

// Announcement is the line printed when a game ends.
func Announcement(outcome game.Outcome) string {
	switch outcome {
	case game.PlayerWin:
		return "You win!"
	case game.ComputerWin:
		return "The computer wins!"
	case game.Draw:
		return "It's a draw!"
	default:
		return ""
	}
}
