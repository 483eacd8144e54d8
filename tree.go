package trie

// node is a node in a tree. end marks that the path from the root to this node
// spells a stored key; kids is nil until the first child is added.
type node struct {
	kids children
	end  bool
}

// tree is the byte-labelled structure shared by Trie and ASCII. It knows nothing
// about how keys are produced.
type tree struct {
	root    *node
	size    int
	nodes   int
	prune   bool
	newKids func() children
}

// insert stores key and reports whether it was not already present.
func (t *tree) insert(key []byte) bool {
	if len(key) == 0 {
		return false
	}
	if t.root == nil {
		t.root = new(node)
		t.nodes++
	}
	current := t.root
	for _, b := range key {
		if current.kids == nil {
			current.kids = t.newKids()
		}
		next := current.kids.child(b)
		if next == nil {
			next = new(node)
			current.kids.setChild(b, next)
			t.nodes++
		}
		current = next
	}
	if current.end {
		return false
	}
	current.end = true
	t.size++
	return true
}

// find returns the node at the end of key, or nil if key is not a path in the tree.
func (t *tree) find(key []byte) *node {
	if t.root == nil || len(key) == 0 {
		return nil
	}
	current := t.root
	for _, b := range key {
		if current.kids == nil {
			return nil
		}
		if current = current.kids.child(b); current == nil {
			return nil
		}
	}
	return current
}

func (t *tree) has(key []byte) bool {
	n := t.find(key)
	return n != nil && n.end
}

// remove clears the end marker for key and reports whether it was set.
// Nodes along the path are kept unless pruning is enabled.
func (t *tree) remove(key []byte) bool {
	if t.root == nil || len(key) == 0 {
		return false
	}
	path := make([]*node, 0, len(key)+1)
	path = append(path, t.root)
	current := t.root
	for _, b := range key {
		if current.kids == nil {
			return false
		}
		if current = current.kids.child(b); current == nil {
			return false
		}
		path = append(path, current)
	}
	if !current.end {
		return false
	}
	current.end = false
	t.size--
	if t.prune {
		t.pruneBranch(path, key)
	}
	return true
}

// pruneBranch detaches nodes that neither end a key nor lead to one, walking
// back from the end of key. The root is never removed.
func (t *tree) pruneBranch(path []*node, key []byte) {
	for i := len(key); i > 0; i-- {
		child := path[i]
		if child.end || (child.kids != nil && child.kids.len() > 0) {
			return
		}
		path[i-1].kids.removeChild(key[i-1])
		t.nodes--
	}
}

// walk calls fn with the path of every stored key at or below prefix, in
// ascending byte order. The slice passed to fn is only valid during the call.
func (t *tree) walk(prefix []byte, fn func(key []byte) bool) {
	start := t.root
	if len(prefix) > 0 {
		start = t.find(prefix)
	}
	if start == nil {
		return
	}
	buf := make([]byte, len(prefix), len(prefix)+32)
	copy(buf, prefix)
	walkNode(start, buf, fn)
}

func walkNode(n *node, path []byte, fn func(key []byte) bool) bool {
	if n.end && !fn(path) {
		return false
	}
	if n.kids == nil {
		return true
	}
	return n.kids.each(func(b byte, child *node) bool {
		return walkNode(child, append(path, b), fn)
	})
}

func (t *tree) keys(prefix []byte) []string {
	keys := make([]string, 0, t.size)
	t.walk(prefix, func(key []byte) bool {
		keys = append(keys, string(key))
		return true
	})
	return keys
}
