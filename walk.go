package trie

import (
	"bufio"
	"io"
)

// Walk calls fn for every stored key in ascending order of its UTF-8 bytes,
// stopping early if fn returns false. Keys are returned in normalised form.
func (t *Trie) Walk(fn func(key string) bool) {
	t.walk(nil, func(key []byte) bool { return fn(string(key)) })
}

// WalkPrefix is like Walk, but only visits keys that start with prefix.
// An empty prefix visits nothing.
func (t *Trie) WalkPrefix(prefix string, fn func(key string) bool) {
	path, err := t.keyer.key(prefix)
	if err != nil || len(path) == 0 {
		return
	}
	t.walk(path, func(key []byte) bool { return fn(string(key)) })
}

// Keys returns every stored key in ascending byte order.
func (t *Trie) Keys() []string {
	return t.keys(nil)
}

// KeysWithPrefix returns every stored key that starts with prefix, in ascending
// byte order. The prefix itself is included if it is a stored key.
func (t *Trie) KeysWithPrefix(prefix string) []string {
	path, err := t.keyer.key(prefix)
	if err != nil || len(path) == 0 {
		return []string{}
	}
	return t.keys(path)
}

// WriteKeys writes every stored key to w, one per line, in the order of Walk.
func (t *Trie) WriteKeys(w io.Writer) error {
	return writeKeys(w, &t.tree)
}

func writeKeys(w io.Writer, t *tree) error {
	bw := bufio.NewWriter(w)
	var err error
	t.walk(nil, func(key []byte) bool {
		if _, err = bw.Write(key); err == nil {
			err = bw.WriteByte('\n')
		}
		return err == nil
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}
