package tree

import (
	"context"
	"fmt"

	"connect4/game"
	"connect4/metrics"

	"github.com/rs/zerolog/log"
)

// checkEvery is how many visited positions pass between context checks.
const checkEvery = 1 << 12

type census struct {
	ctx     context.Context
	records []metrics.CensusRecord
	visits  int
}

// Census counts every move sequence from n down to depth plies, grouped by ply
// and outcome. It walks positions depth first and does not grow the tree.
func Census(ctx context.Context, n *DecisionNode, depth int) ([]metrics.CensusRecord, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: negative census depth %d", game.ErrInvalidArgument, depth)
	}

	c := &census{
		ctx:     ctx,
		records: make([]metrics.CensusRecord, depth+1),
	}
	for i := range c.records {
		c.records[i].Ply = i
	}

	log.Info().Msgf("starting census to depth %d...", depth)
	if err := c.visit(n.Position(), 0, depth); err != nil {
		return nil, err
	}
	log.Info().Msgf("completed census after %d positions", c.visits)

	return c.records, nil
}

func (c *census) visit(position game.Position, ply, depth int) error {
	if c.visits%checkEvery == 0 {
		if err := c.ctx.Err(); err != nil {
			return fmt.Errorf("census interrupted at ply %d: %w", ply, err)
		}
	}
	c.visits++

	outcome := position.Outcome()
	record := &c.records[ply]
	record.Lines++
	switch outcome {
	case game.InProgress:
		record.InProgress++
	case game.PlayerWin:
		record.PlayerWins++
	case game.ComputerWin:
		record.ComputerWins++
	case game.Draw:
		record.Draws++
	}

	if ply == depth || outcome.Finished() {
		return nil
	}
	for _, x := range position.LegalMoves() {
		next, err := position.Play(x)
		if err != nil {
			panic(fmt.Sprintf("legal move %d rejected: %v", x, err))
		}
		if err := c.visit(next, ply+1, depth); err != nil {
			return err
		}
	}
	return nil
}
