package scoring_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/scoring"

	"github.com/stretchr/testify/assert"
)

func TestKeywords(t *testing.T) {
	t.Run("Should extract long words without stop words", func(t *testing.T) {
		keywords := scoring.Keywords("The quick brown fox jumps over the lazy dog")

		assert.Subset(t, keywords, []string{"quick", "brown", "jumps", "over", "lazy"})
		assert.NotContains(t, keywords, "the", "stop words are removed")
		assert.NotContains(t, keywords, "fox", "three-letter words are too short")
		assert.NotContains(t, keywords, "dog")
	})

	t.Run("Should return a sorted list", func(t *testing.T) {
		keywords := scoring.Keywords("zebra apple mango banana")
		assert.True(t, sort.StringsAreSorted(keywords))
	})

	t.Run("Should lowercase and deduplicate", func(t *testing.T) {
		keywords := scoring.Keywords("Docker docker DOCKER kubernetes")
		assert.Equal(t, []string{"docker", "kubernetes"}, keywords)
	})

	t.Run("Should cap the list at ten entries", func(t *testing.T) {
		words := []string{
			"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
			"golf", "hotel", "india", "juliet", "kilo", "lima",
		}
		keywords := scoring.Keywords(strings.Join(words, " "))
		assert.Len(t, keywords, 10)
	})

	t.Run("Should return empty slice for empty text", func(t *testing.T) {
		assert.Empty(t, scoring.Keywords(""))
	})
}
