package radix

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewTree verifies that a fresh tree stores nothing, not even the empty string.
func TestNewTree(t *testing.T) {
	tree := New()
	assert.Equal(t, 0, tree.Len(), "a new tree should be empty")
	assert.False(t, tree.Contains(""), "a new tree should not contain the empty string")
	assert.False(t, tree.Contains("Rick"))
	assert.True(t, tree.isLeaf(rootID), "the root should have no edges")
}

func TestInsertAndContains(t *testing.T) {
	tree := New()
	assert.False(t, tree.Contains(""))

	tree.Insert("Rick")
	tree.Insert("Rodri")
	tree.Insert("Rickos")
	tree.Insert("")
	tree.Insert("Rick")

	assert.True(t, tree.Contains("Rickos"))
	assert.True(t, tree.Contains("Rick"))
	assert.True(t, tree.Contains("Rodri"))
	assert.False(t, tree.Contains("R"))
	assert.True(t, tree.Contains(""))
	assert.Equal(t, 4, tree.Len())
	assertInvariants(t, tree)
}

func TestRemoveEmptyString(t *testing.T) {
	tree := New()

	tree.Insert("")
	assert.True(t, tree.Contains(""))
	assert.True(t, tree.Remove(""))
	assert.False(t, tree.Contains(""))
	assert.Equal(t, 0, tree.Len())
	assert.False(t, tree.Remove(""), "removing twice should be a no-op")
}

func TestRemove(t *testing.T) {
	tree := New()
	tree.Insert("Rick")
	tree.Insert("Rodri")
	tree.Insert("Rickos")

	assert.False(t, tree.Remove("AAA"), "absent word should be a no-op")
	assert.False(t, tree.Remove("R"), "branching prefix should be a no-op")
	assert.Equal(t, 3, tree.Len())

	assert.True(t, tree.Remove("Rick"))
	assert.False(t, tree.Contains("Rick"))
	assert.True(t, tree.Contains("Rodri"))
	assert.True(t, tree.Contains("Rickos"))
	assertInvariants(t, tree)

	assert.True(t, tree.Remove("Rickos"))
	assert.False(t, tree.Contains("Rickos"))
	assert.True(t, tree.Contains("Rodri"))
	assert.Equal(t, 1, tree.Len())
	assertInvariants(t, tree)
}

// TestPrefixIsNotContained covers queries that run out in the middle of an edge label.
func TestPrefixIsNotContained(t *testing.T) {
	testCases := []struct {
		name    string
		stored  []string
		query   string
		present bool
	}{
		{"prefix of a single leaf edge", []string{"Rick"}, "Ri", false},
		{"prefix ending on a branching node", []string{"Rick", "Rodri"}, "R", false},
		{"prefix of a merged edge", []string{"Rick", "Rickos"}, "Ricko", false},
		{"extension of a stored word", []string{"Rick"}, "Ricky", false},
		{"stored prefix", []string{"Rick", "Ri"}, "Ri", true},
		{"empty query with words stored", []string{"Rick"}, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := New()
			for _, word := range tc.stored {
				tree.Insert(word)
			}
			assert.Equal(t, tc.present, tree.Contains(tc.query))
		})
	}
}

func TestInsertIsIdempotent(t *testing.T) {
	words := []string{"", "a", "ab", "abc", "abd", "b", "ba", "abc"}
	queries := []string{"", "a", "ab", "abc", "abd", "abe", "b", "ba", "bab", "c"}

	once := New()
	twice := New()
	for _, word := range words {
		once.Insert(word)
		twice.Insert(word)
		twice.Insert(word)
	}

	for _, query := range queries {
		assert.Equal(t, once.Contains(query), twice.Contains(query), "query %q", query)
	}
	assert.Equal(t, once.Len(), twice.Len())
	assert.Equal(t, once.shape(rootID), twice.shape(rootID))
}

// TestRemoveKeepsOthers inserts a word set, removes each word in turn from a fresh copy
// and checks only that word disappears.
func TestRemoveKeepsOthers(t *testing.T) {
	words := []string{"", "team", "tea", "ten", "to", "toast", "t", "inn", "in", "i"}

	for _, removed := range words {
		tree := New()
		for _, word := range words {
			tree.Insert(word)
		}

		require.True(t, tree.Remove(removed), "removing %q", removed)
		assert.False(t, tree.Contains(removed), "%q should be gone", removed)
		for _, word := range words {
			if word != removed {
				assert.True(t, tree.Contains(word), "%q should survive removing %q", word, removed)
			}
		}
		assertInvariants(t, tree)
	}
}

func TestDivergingInsideBranchingEdge(t *testing.T) {
	tree := New()
	tree.Insert("Rick")
	tree.Insert("Rickos")
	// "Rob" leaves the "Rick" label after one character while "Rick" already branches
	tree.Insert("Rob")

	assert.True(t, tree.Contains("Rick"))
	assert.True(t, tree.Contains("Rickos"))
	assert.True(t, tree.Contains("Rob"))
	assert.False(t, tree.Contains("Rickob"))
	assert.False(t, tree.Contains("R"))
	assertInvariants(t, tree)

	// a word ending inside a branching edge
	tree.Insert("Ric")
	assert.True(t, tree.Contains("Ric"))
	assert.True(t, tree.Contains("Rick"))
	assertInvariants(t, tree)
}

func TestNulCharacterIsNotATerminator(t *testing.T) {
	tree := New()
	tree.Insert("\x00")
	tree.Insert("a\x00b")

	assert.True(t, tree.Contains("\x00"))
	assert.False(t, tree.Contains(""), "a NUL byte must not mark the empty string")
	assert.True(t, tree.Contains("a\x00b"))
	assert.False(t, tree.Contains("a"))
	assert.False(t, tree.Contains("a\x00"))

	tree.Insert("")
	assert.True(t, tree.Remove("\x00"))
	assert.True(t, tree.Contains(""))
	assertInvariants(t, tree)
}

func TestLongWord(t *testing.T) {
	long := string(bytes.Repeat([]byte("ab"), 50_000))
	tree := New()
	tree.Insert(long)
	tree.Insert(long[:len(long)-1])

	assert.True(t, tree.Contains(long))
	assert.True(t, tree.Contains(long[:len(long)-1]))
	assert.False(t, tree.Contains(long[:len(long)-2]))
	assert.True(t, tree.Remove(long))
	assert.True(t, tree.Contains(long[:len(long)-1]))
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tree := New(WithLogger(logger), WithCapacity(16))
	tree.Insert("Rick")
	tree.Insert("Rodri")
	tree.Remove("Rick")

	assert.Contains(t, buf.String(), "split edge")
	assert.Contains(t, buf.String(), "merged edges")
	assert.Contains(t, buf.String(), "word removed")
}

// TestAgainstModel runs random operations over a tiny alphabet, so prefixes collide
// often, and compares every answer with a plain set.
func TestAgainstModel(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	candidates := allWords("abc", 4)

	tree := New()
	model := map[string]bool{}

	for i := 0; i < 5000; i++ {
		word := candidates[r.Intn(len(candidates))]
		if r.Intn(3) == 0 {
			assert.Equal(t, model[word], tree.Remove(word), "remove %q at step %d", word, i)
			delete(model, word)
		} else {
			tree.Insert(word)
			model[word] = true
		}

		if i%50 == 0 {
			for _, query := range candidates {
				require.Equal(t, model[query], tree.Contains(query), "contains %q at step %d", query, i)
			}
			require.Equal(t, len(model), tree.Len())
			assertInvariants(t, tree)
		}
	}
}

func BenchmarkInsert(b *testing.B) {
	words := generateRandomWords(b.N, 4, 16)
	tree := New(WithCapacity(b.N))
	b.ResetTimer()

	for _, word := range words {
		tree.Insert(word)
	}
}

func BenchmarkContains(b *testing.B) {
	words := generateRandomWords(100_000, 4, 16)
	tree := New()
	for _, word := range words {
		tree.Insert(word)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree.Contains(words[i%len(words)])
	}
}

func BenchmarkRemove(b *testing.B) {
	words := generateRandomWords(b.N, 4, 16)
	tree := New()
	for _, word := range words {
		tree.Insert(word)
	}
	b.ResetTimer()

	for _, word := range words {
		tree.Remove(word)
	}
}

// allWords returns every word over alphabet of length 0 to maxLen.
func allWords(alphabet string, maxLen int) []string {
	words := []string{""}
	level := []string{""}
	for l := 0; l < maxLen; l++ {
		next := []string{}
		for _, prefix := range level {
			for i := 0; i < len(alphabet); i++ {
				next = append(next, prefix+alphabet[i:i+1])
			}
		}
		words = append(words, next...)
		level = next
	}
	return words
}

func generateRandomWords(total int, minLen int, maxLen int) []string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	words := make([]string, 0, total)
	for i := 0; i < total; i++ {
		word := make([]byte, rand.Intn(maxLen-minLen+1)+minLen)
		for j := range word {
			word[j] = letters[rand.Intn(len(letters))]
		}
		words = append(words, string(word))
	}
	return words
}
