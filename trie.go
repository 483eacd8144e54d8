package trie

// Trie is a set of normalised strings stored as a tree of UTF-8 bytes.
// The zero value is not usable; create one with New.
type Trie struct {
	tree
	keyer   keyer
	storage Storage
}

// New creates a new empty trie. By default keys are normalised to NFKC and
// lowercased, children are stored densely and removal does not prune.
func New() *Trie {
	t := &Trie{keyer: defaultKeyer()}
	t.WithDenseStorage()
	return t
}

// mustBeEmpty panics if keys have already been stored, since changing how keys
// are mapped or stored afterwards would leave existing paths unreachable.
func (t *Trie) mustBeEmpty(option string) {
	if t.root != nil {
		panic("trie: " + option + " must be set before the first Add")
	}
}

// WithNormalisation sets the Trie to convert keys to Unicode Normalization Form KC,
// so that for example the ligature "ﬀ" and "ff" are the same key.
func (t *Trie) WithNormalisation() *Trie {
	t.mustBeEmpty("normalisation")
	t.keyer.normalised = true
	t.keyer.build()
	return t
}

// WithoutNormalisation sets the Trie to store keys without NFKC conversion.
func (t *Trie) WithoutNormalisation() *Trie {
	t.mustBeEmpty("normalisation")
	t.keyer.normalised = false
	t.keyer.build()
	return t
}

// CaseSensitive sets the Trie to keep the case of keys.
func (t *Trie) CaseSensitive() *Trie {
	t.mustBeEmpty("case sensitivity")
	t.keyer.caseSensitive = true
	t.keyer.build()
	return t
}

// CaseInsensitive sets the Trie to lowercase keys.
func (t *Trie) CaseInsensitive() *Trie {
	t.mustBeEmpty("case sensitivity")
	t.keyer.caseSensitive = false
	t.keyer.build()
	return t
}

// WithAccentFolding sets the Trie to strip nonspacing marks from keys.
// For example, Jürgen and Jurgen are the same key. Accent folding implies
// compatibility normalisation.
func (t *Trie) WithAccentFolding() *Trie {
	t.mustBeEmpty("accent folding")
	t.keyer.accentFolding = true
	t.keyer.build()
	return t
}

// WithoutAccentFolding sets the Trie to keep nonspacing marks.
func (t *Trie) WithoutAccentFolding() *Trie {
	t.mustBeEmpty("accent folding")
	t.keyer.accentFolding = false
	t.keyer.build()
	return t
}

// WithDenseStorage gives each branching node a 256-slot child array.
func (t *Trie) WithDenseStorage() *Trie {
	return t.withStorage(Dense)
}

// WithSparseStorage keeps only existing children, in a map per node.
func (t *Trie) WithSparseStorage() *Trie {
	return t.withStorage(Sparse)
}

func (t *Trie) withStorage(s Storage) *Trie {
	t.mustBeEmpty("storage")
	t.storage = s
	t.newKids = s.factory(byteWidth)
	return t
}

// Storage returns the child storage strategy in use.
func (t *Trie) Storage() Storage { return t.storage }

// WithPruning sets Remove to also detach nodes left without any stored key below them.
func (t *Trie) WithPruning() *Trie {
	t.prune = true
	return t
}

// WithoutPruning sets Remove to only clear the end-of-word marker, leaving the path in place.
func (t *Trie) WithoutPruning() *Trie {
	t.prune = false
	return t
}

// Add inserts keys into the Trie. Empty keys, and keys that cannot be
// normalised, are skipped.
func (t *Trie) Add(keys ...string) {
	for _, key := range keys {
		path, err := t.keyer.key(key)
		if err != nil {
			continue
		}
		t.insert(path)
	}
}

// Contains reports whether key is stored as a complete key, and not just a prefix.
func (t *Trie) Contains(key string) bool {
	path, err := t.keyer.key(key)
	if err != nil {
		return false
	}
	return t.has(path)
}

// ContainsPrefix reports whether key is a stored key or a prefix of one.
// The empty string is never a prefix.
func (t *Trie) ContainsPrefix(key string) bool {
	path, err := t.keyer.key(key)
	if err != nil {
		return false
	}
	return t.find(path) != nil
}

// Remove deletes key from the Trie if it is stored. Unless pruning is enabled
// the nodes along its path are kept.
func (t *Trie) Remove(key string) {
	path, err := t.keyer.key(key)
	if err != nil {
		return
	}
	t.remove(path)
}

// Len returns the number of stored keys.
func (t *Trie) Len() int { return t.size }

// Nodes returns the number of allocated nodes, including the root.
func (t *Trie) Nodes() int { return t.nodes }
