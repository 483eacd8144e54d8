package trie

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrNonASCII is returned by the ASCII trie for keys containing a byte outside 0-127.
var ErrNonASCII = errors.New("trie: key is not ASCII")

// keyer turns input strings into the byte paths stored in a trie.
type keyer struct {
	normalised, caseSensitive, accentFolding bool
	transformer                              transform.Transformer
}

func defaultKeyer() keyer {
	k := keyer{normalised: true}
	k.build()
	return k
}

// build assembles the transform chain for the current settings. Ill-formed
// UTF-8 is replaced with U+FFFD first, so every stored path decodes cleanly.
func (k *keyer) build() {
	chain := []transform.Transformer{runes.ReplaceIllFormed()}
	switch {
	case k.accentFolding:
		chain = append(chain, norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFKC)
	case k.normalised:
		chain = append(chain, norm.NFKC)
	}
	if !k.caseSensitive {
		chain = append(chain, cases.Lower(language.Und))
	}
	if len(chain) == 1 {
		k.transformer = chain[0]
		return
	}
	k.transformer = transform.Chain(chain...)
}

// key returns the byte path for s. An empty s gives a nil path and no error.
func (k keyer) key(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, nil
	}
	out, _, err := transform.Bytes(k.transformer, []byte(s))
	if err != nil {
		return nil, fmt.Errorf("trie: normalising key: %w", err)
	}
	return out, nil
}

// Normalise returns the UTF-8 bytes a default Trie stores for s: the NFKC form
// of s, lowercased with the language-neutral case mapping. Ill-formed UTF-8 in s
// is replaced with U+FFFD. Normalise("") returns nil and no error.
func Normalise(s string) ([]byte, error) {
	return defaultKeyer().key(s)
}

func asciiKey(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return nil, fmt.Errorf("%w: %q has byte 0x%02x at offset %d", ErrNonASCII, s, s[i], i)
		}
	}
	if len(s) == 0 {
		return nil, nil
	}
	return []byte(s), nil
}
