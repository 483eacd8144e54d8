package trie

import "io"

// ASCII is a case-sensitive set of ASCII strings with one 128-way branch per
// character. Keys are stored as given, without normalisation.
type ASCII struct {
	tree
}

// NewASCII creates a new empty ASCII trie.
func NewASCII() *ASCII {
	return &ASCII{tree{newKids: Dense.factory(asciiWidth)}}
}

// WithPruning sets Remove to also detach nodes left without any stored key below them.
func (a *ASCII) WithPruning() *ASCII {
	a.prune = true
	return a
}

// WithoutPruning sets Remove to only clear the end-of-word marker.
func (a *ASCII) WithoutPruning() *ASCII {
	a.prune = false
	return a
}

// Add inserts key. An empty key is a no-op. A key containing a byte at or above
// 0x80 is rejected with an error wrapping ErrNonASCII and the trie is unchanged.
func (a *ASCII) Add(key string) error {
	path, err := asciiKey(key)
	if err != nil {
		return err
	}
	a.insert(path)
	return nil
}

// Contains reports whether key is stored as a complete key.
func (a *ASCII) Contains(key string) bool {
	path, err := asciiKey(key)
	if err != nil {
		return false
	}
	return a.has(path)
}

// ContainsPrefix reports whether key is a stored key or a prefix of one.
func (a *ASCII) ContainsPrefix(key string) bool {
	path, err := asciiKey(key)
	if err != nil {
		return false
	}
	return a.find(path) != nil
}

// Remove deletes key if it is stored.
func (a *ASCII) Remove(key string) {
	if path, err := asciiKey(key); err == nil {
		a.remove(path)
	}
}

// Len returns the number of stored keys.
func (a *ASCII) Len() int { return a.size }

// Nodes returns the number of allocated nodes, including the root.
func (a *ASCII) Nodes() int { return a.nodes }

// Walk calls fn for every stored key in ascending character order until fn returns false.
func (a *ASCII) Walk(fn func(key string) bool) {
	a.walk(nil, func(key []byte) bool { return fn(string(key)) })
}

// Keys returns every stored key in ascending character order.
func (a *ASCII) Keys() []string { return a.keys(nil) }

// KeysWithPrefix returns every stored key that starts with prefix.
func (a *ASCII) KeysWithPrefix(prefix string) []string {
	path, err := asciiKey(prefix)
	if err != nil || len(path) == 0 {
		return []string{}
	}
	return a.keys(path)
}

// WriteKeys writes every stored key to w, one per line.
func (a *ASCII) WriteKeys(w io.Writer) error {
	return writeKeys(w, &a.tree)
}
