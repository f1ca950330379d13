package bayes

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleTokenizer(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"Punctuation", "Hello, hello World! foo-bar_baz", []string{"HELLO", "WORLD", "BAR_BAZ"}},
		{"KeepsLastOccurrence", "alpha beta alpha", []string{"BETA", "ALPHA"}},
		{"DropsShortTokens", "a an the", []string{}},
		{"NonASCIISeparates", "naïve café", []string{}},
		{"Digits", "route 1234 66", []string{"ROUTE", "1234"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SimpleTokenizer(tt.text))
		})
	}
}

func trained() *Classifier {
	c := New()
	c.Train("spam", "buy cheap pills now")
	c.Train("spam", "cheap pills today")
	c.Train("ham", "meeting schedule tomorrow")
	return c
}

func TestPredictUntrained(t *testing.T) {
	_, err := New().Predict("anything")
	assert.ErrorIs(t, err, ErrUntrained)
}

func TestCounts(t *testing.T) {
	c := trained()

	assert.Equal(t, []string{"spam", "ham"}, c.Labels())
	assert.Equal(t, 3, c.DocumentCount(""))
	assert.Equal(t, 2, c.DocumentCount("spam"))
	assert.Equal(t, 0, c.DocumentCount("unknown"))
	assert.Equal(t, 2, c.TokenCount("CHEAP", "spam"))
	assert.Equal(t, 0, c.TokenCount("CHEAP", "ham"))
	assert.Equal(t, 2, c.TokenCount("PILLS", ""))
	assert.Equal(t, 0, c.TokenCount("BUY", ""))
}

func TestPredict(t *testing.T) {
	c := trained()

	p, err := c.Predict("Cheap pills!")
	require.NoError(t, err)

	// Each token scores (3·½ + 2·1) / (3 + 2) = 0.7 for spam, so the
	// combined probability is 1 / (1 + (3/7)²) = 49/58. Neither token
	// moves ham away from its prior.
	assert.Equal(t, "spam", p.Label)
	assert.InDelta(t, 49.0/58.0, p.Probability, 1e-12)
	require.Len(t, p.Probabilities, 2)
	assert.Equal(t, "ham", p.Probabilities[1].Label)
	assert.InDelta(t, 0.5, p.Probabilities[1].Probability, 1e-12)
}

func TestPredictNeutralKeepsTrainingOrder(t *testing.T) {
	c := trained()

	// A single occurrence only scores 0.625, inside the neutral band.
	p, err := c.Predict("meeting tomorrow")
	require.NoError(t, err)

	assert.Equal(t, "spam", p.Label)
	assert.InDelta(t, 0.5, p.Probability, 1e-12)
	assert.InDelta(t, 0.5, p.Probabilities[1].Probability, 1e-12)
}

func TestPredictSingleLabel(t *testing.T) {
	c := New()
	c.Train("only", "lonely document")

	p, err := c.Predict("lonely document")
	require.NoError(t, err)

	assert.Equal(t, "only", p.Label)
	assert.InDelta(t, 0.5, p.Probability, 1e-12)
}

func TestWithTokenizer(t *testing.T) {
	c := New(WithTokenizer(strings.Fields))
	c.Train("x", "a b")

	assert.Equal(t, 1, c.TokenCount("a", "x"))

	c = New(WithTokenizer(nil), WithLogger(nil))
	c.Train("x", "a b")
	assert.Equal(t, 0, c.TokenCount("a", "x"))
}

func TestConcurrentUse(t *testing.T) {
	c := trained()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				c.Train("ham", "weekly meeting agenda")
				return
			}
			_, err := c.Predict("cheap meeting")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 7, c.DocumentCount(""))
}
