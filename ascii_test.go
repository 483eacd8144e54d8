package trie

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestASCII(t *testing.T) {
	t.Run("contains prefix", func(t *testing.T) {
		s := NewASCII()
		require.NoError(t, s.Add("Office"))
		require.NoError(t, s.Add("Officer"))

		assert.True(t, s.ContainsPrefix("Off"))
		assert.True(t, s.ContainsPrefix("Office"))
		assert.True(t, s.ContainsPrefix("Officer"))

		assert.False(t, s.ContainsPrefix("Officers"))
		assert.False(t, s.ContainsPrefix("Offer"))
		assert.False(t, s.ContainsPrefix(""))
	})

	t.Run("contains", func(t *testing.T) {
		s := NewASCII()
		require.NoError(t, s.Add("Officer"))

		assert.True(t, s.Contains("Officer"))

		assert.False(t, s.Contains("Office"))
		assert.False(t, s.Contains("Officers"))
		assert.False(t, s.Contains("OFFICER"))
	})

	t.Run("remove", func(t *testing.T) {
		s := NewASCII()
		require.NoError(t, s.Add("Office"))
		require.NoError(t, s.Add("Officer"))
		require.Equal(t, 2, s.Len())

		s.Remove("Office")
		assert.False(t, s.Contains("Office"))
		assert.True(t, s.Contains("Officer"))
		assert.Equal(t, 8, s.Nodes())

		s.Remove("Officer")
		assert.False(t, s.Contains("Officer"))
		assert.Equal(t, 0, s.Len())
		assert.True(t, s.ContainsPrefix("Officer"))
	})

	t.Run("remove with pruning", func(t *testing.T) {
		s := NewASCII().WithPruning()
		require.NoError(t, s.Add("Office"))
		require.NoError(t, s.Add("Officer"))

		s.Remove("Officer")
		assert.Equal(t, 7, s.Nodes())
		s.WithoutPruning().Remove("Office")
		assert.Equal(t, 7, s.Nodes())
	})

	t.Run("empty key", func(t *testing.T) {
		s := NewASCII()
		assert.NoError(t, s.Add(""))
		s.Remove("")
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, 0, s.Nodes())
	})

	t.Run("non-ASCII is rejected", func(t *testing.T) {
		s := NewASCII()
		err := s.Add("café")
		assert.True(t, errors.Is(err, ErrNonASCII))
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, 0, s.Nodes())

		require.NoError(t, s.Add("caf"))
		assert.False(t, s.Contains("café"))
		assert.False(t, s.ContainsPrefix("café"))
		s.Remove("café")
		assert.Equal(t, 1, s.Len())
	})

	t.Run("full character range", func(t *testing.T) {
		s := NewASCII()
		require.NoError(t, s.Add("\x00"))
		require.NoError(t, s.Add("\x7f"))
		assert.True(t, s.Contains("\x00"))
		assert.Equal(t, []string{"\x00", "\x7f"}, s.Keys())
	})

	t.Run("keys", func(t *testing.T) {
		s := NewASCII()
		for _, key := range []string{"b", "ab", "a", "B"} {
			require.NoError(t, s.Add(key))
		}
		assert.Equal(t, []string{"B", "a", "ab", "b"}, s.Keys())
		assert.Equal(t, []string{"a", "ab"}, s.KeysWithPrefix("a"))
		assert.Equal(t, []string{}, s.KeysWithPrefix(""))
		assert.Equal(t, []string{}, s.KeysWithPrefix("é"))

		var seen []string
		s.Walk(func(key string) bool {
			seen = append(seen, key)
			return key != "a"
		})
		assert.Equal(t, []string{"B", "a"}, seen)
	})
}
