package scoring_test

import (
	"testing"

	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/scoring"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityIdenticalTexts(t *testing.T) {
	text := "Experienced backend engineer building scalable microservices with Python and PostgreSQL"
	sim := scoring.Similarity(text, text)
	assert.InDelta(t, 1.0, sim, 1e-9, "identical texts should have cosine similarity 1")
}

func TestSimilarityOrdering(t *testing.T) {
	resume := "Python developer with Django and PostgreSQL experience building web services"
	related := "Looking for a Python engineer familiar with Django and relational databases"
	unrelated := "Pastry chef needed for artisanal bakery, croissant expertise essential"

	simSelf := scoring.Similarity(resume, resume)
	simRelated := scoring.Similarity(resume, related)
	simUnrelated := scoring.Similarity(resume, unrelated)

	assert.GreaterOrEqual(t, simSelf, simRelated)
	assert.Greater(t, simRelated, simUnrelated)
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"short", "texts"},
		{"a b c", "d e f"},
		{"Python Python Python", "Python"},
		{"", ""},
		{"completely different words here", "nothing shared at all between"},
	}
	for _, pair := range pairs {
		sim := scoring.Similarity(pair[0], pair[1])
		assert.GreaterOrEqual(t, sim, 0.0)
		assert.LessOrEqual(t, sim, 1.0)
	}
}

func TestSimilarityFallback(t *testing.T) {
	t.Run("Should use word overlap when stop words leave nothing to weigh", func(t *testing.T) {
		// Every token is an English stop word, so the TF-IDF path has no
		// terms; the words themselves are >= 4 chars so Jaccard applies.
		a := "because through should"
		b := "because during would"
		sim := scoring.Similarity(a, b)
		// One shared word out of five distinct.
		assert.InDelta(t, 0.2, sim, 1e-9)
	})

	t.Run("Should return neutral score when no usable words exist", func(t *testing.T) {
		sim := scoring.Similarity("", "")
		assert.Equal(t, 0.5, sim)

		sim = scoring.Similarity("a an the", "of to in")
		assert.Equal(t, 0.5, sim)
	})

	t.Run("Should never fail on degenerate input", func(t *testing.T) {
		sim := scoring.Similarity("x", "!!!???")
		assert.GreaterOrEqual(t, sim, 0.0)
		assert.LessOrEqual(t, sim, 1.0)
	})
}
