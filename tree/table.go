package tree

import "sync"

// table maps a position key to the single node built for it.
type table struct {
	sync.Mutex
	nodes map[string]*DecisionNode
}

func newTable() *table {
	return &table{nodes: make(map[string]*DecisionNode)}
}

func (t *table) lookup(key string) (*DecisionNode, bool) {
	t.Lock()
	defer t.Unlock()

	n, ok := t.nodes[key]
	return n, ok
}

// store keeps the first node stored under key and returns it.
func (t *table) store(key string, n *DecisionNode) *DecisionNode {
	t.Lock()
	defer t.Unlock()

	if existing, ok := t.nodes[key]; ok {
		return existing
	}
	t.nodes[key] = n
	return n
}

func (t *table) size() int {
	t.Lock()
	defer t.Unlock()

	return len(t.nodes)
}
