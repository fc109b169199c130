package tree

import (
	"connect4/game"
	"connect4/metrics"
)

type Option func(b *builder)

// builder is shared by every node of one tree.
type builder struct {
	rules   game.Rules
	eager   bool
	table   *table
	metrics metrics.Collector
}

func newBuilder(options ...Option) *builder {
	b := &builder{ // Default values
		rules:   game.StandardRules(),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// WithRules sets the board dimensions used by NewRoot.
func WithRules(rules game.Rules) Option {
	return func(b *builder) {
		b.rules = rules
	}
}

// WithEager expands the whole reachable subtree at construction.
// Only use it on small or nearly full boards: the standard empty board has
// trillions of reachable positions.
func WithEager() Option {
	return func(b *builder) {
		b.eager = true
	}
}

// WithTranspositions shares one node between move orders that reach the same position.
func WithTranspositions() Option {
	return func(b *builder) {
		if b.table == nil {
			b.table = newTable()
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(b *builder) {
		if collector != nil {
			b.metrics = collector
		}
	}
}

func (b *builder) node(position game.Position) *DecisionNode {
	var key string
	if b.table != nil {
		key = position.Key()
		if n, ok := b.table.lookup(key); ok {
			b.metrics.AddTranspositionHit()
			return n
		}
	}

	n := &DecisionNode{
		position: position,
		outcome:  position.Outcome(),
		builder:  b,
	}
	b.metrics.AddNode(n.outcome.Finished())
	if b.table != nil {
		n = b.table.store(key, n)
	}

	if b.eager {
		n.expand()
	}
	return n
}
