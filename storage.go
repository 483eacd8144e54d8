package trie

import "sort"

// Storage selects how a node holds its children.
type Storage int

const (
	// Dense gives every node with children a fixed-width slot array indexed by byte.
	// Lookups are a single index; memory grows with the number of branching nodes.
	Dense Storage = iota
	// Sparse keeps only the children that exist, in a map keyed by byte.
	Sparse
)

func (s Storage) String() string {
	switch s {
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	default:
		return "unknown"
	}
}

const (
	byteWidth  = 256
	asciiWidth = 128
)

// children is the set of outgoing edges of a node.
type children interface {
	child(b byte) *node
	setChild(b byte, n *node)
	removeChild(b byte)
	len() int
	// each calls fn for every child in ascending byte order until fn returns false.
	// It reports whether the iteration ran to completion.
	each(fn func(b byte, n *node) bool) bool
}

func (s Storage) factory(width int) func() children {
	if s == Sparse {
		return func() children { return &sparse{edges: make(map[byte]*node)} }
	}
	return func() children { return &dense{slots: make([]*node, width)} }
}

type dense struct {
	slots []*node
	count int
}

func (d *dense) child(b byte) *node {
	if int(b) >= len(d.slots) {
		return nil
	}
	return d.slots[b]
}

func (d *dense) setChild(b byte, n *node) {
	if d.slots[b] == nil {
		d.count++
	}
	d.slots[b] = n
}

func (d *dense) removeChild(b byte) {
	if int(b) < len(d.slots) && d.slots[b] != nil {
		d.slots[b] = nil
		d.count--
	}
}

func (d *dense) len() int { return d.count }

func (d *dense) each(fn func(b byte, n *node) bool) bool {
	for i, n := range d.slots {
		if n != nil && !fn(byte(i), n) {
			return false
		}
	}
	return true
}

type sparse struct {
	edges map[byte]*node
}

func (s *sparse) child(b byte) *node { return s.edges[b] }

func (s *sparse) setChild(b byte, n *node) { s.edges[b] = n }

func (s *sparse) removeChild(b byte) { delete(s.edges, b) }

func (s *sparse) len() int { return len(s.edges) }

func (s *sparse) each(fn func(b byte, n *node) bool) bool {
	labels := make([]byte, 0, len(s.edges))
	for b := range s.edges {
		labels = append(labels, b)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	for _, b := range labels {
		if !fn(b, s.edges[b]) {
			return false
		}
	}
	return true
}
