package bayes

import (
	"errors"
	"log/slog"
	"math"
	"slices"
	"sync"
)

// ErrUntrained is returned by Predict before any document was trained.
var ErrUntrained = errors.New("bayes: classifier has no training data")

const (
	// rareTokenWeight is the strength of the prior for tokens seen only a few times.
	rareTokenWeight = 3.0
	// neutralBand drops token scores this close to the label prior.
	neutralBand = 0.15
)

// LabelProbability is the probability of a single label.
type LabelProbability struct {
	Label       string  `yaml:"label" json:"label"`
	Probability float64 `yaml:"probability" json:"probability"`
}

// Prediction is the outcome of Predict. Probabilities are sorted by
// descending probability; equal probabilities keep training order.
type Prediction struct {
	Label         string             `yaml:"label" json:"label"`
	Probability   float64            `yaml:"probability" json:"probability"`
	Probabilities []LabelProbability `yaml:"probabilities" json:"probabilities"`
}

type options struct {
	tokenizer Tokenizer
	logger    *slog.Logger
}

// Option configures a Classifier.
type Option func(*options)

// WithTokenizer sets the tokenizer. If nil is passed, SimpleTokenizer is used.
func WithTokenizer(t Tokenizer) Option {
	return func(o *options) {
		if t == nil {
			t = SimpleTokenizer
		}
		o.tokenizer = t
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}

// Classifier is a naive Bayes text classifier over document and token counts.
//
// It is safe for concurrent use.
type Classifier struct {
	mu sync.RWMutex

	labels    []string                  // training order
	docs      map[string]int            // documents per label
	tokens    map[string]map[string]int // token -> label -> count
	totalDocs int

	tokenizer Tokenizer
	logger    *slog.Logger
}

// New creates an empty Classifier.
func New(optFns ...Option) *Classifier {
	opts := options{
		tokenizer: SimpleTokenizer,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Classifier{
		docs:      make(map[string]int),
		tokens:    make(map[string]map[string]int),
		tokenizer: opts.tokenizer,
		logger:    opts.logger,
	}
}

// Train records text as a document of label.
func (c *Classifier) Train(label, text string) {
	tokens := c.tokenizer(text)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[label]; !ok {
		c.labels = append(c.labels, label)
	}
	c.docs[label]++
	c.totalDocs++

	for _, t := range tokens {
		counts, ok := c.tokens[t]
		if !ok {
			counts = make(map[string]int)
			c.tokens[t] = counts
		}
		counts[label]++
	}

	c.logger.Debug("bayes document trained", "label", label, "tokens", len(tokens))
}

// Labels returns the trained labels in training order.
func (c *Classifier) Labels() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.labels)
}

// DocumentCount returns the number of documents trained for label, or for
// all labels if label is empty.
func (c *Classifier) DocumentCount(label string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if label == "" {
		return c.totalDocs
	}
	return c.docs[label]
}

// TokenCount returns how often token occurred in documents of label, or in
// all documents if label is empty.
func (c *Classifier) TokenCount(token, label string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.tokenCount(token, label)
}

func (c *Classifier) tokenCount(token, label string) int {
	counts := c.tokens[token]
	if label != "" {
		return counts[label]
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}

// Predict returns the probability of every trained label for text.
func (c *Classifier) Predict(text string) (Prediction, error) {
	tokens := c.tokenizer(text)

	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.labels) == 0 {
		return Prediction{}, ErrUntrained
	}

	probs := make([]LabelProbability, len(c.labels))
	for i, label := range c.labels {
		probs[i] = LabelProbability{Label: label, Probability: c.labelProbability(label, tokens)}
	}

	slices.SortStableFunc(probs, func(a, b LabelProbability) int {
		switch {
		case a.Probability > b.Probability:
			return -1
		case a.Probability < b.Probability:
			return 1
		default:
			return 0
		}
	})

	c.logger.Debug("bayes prediction",
		"label", probs[0].Label,
		"probability", probs[0].Probability,
		"tokens", len(tokens),
	)

	return Prediction{
		Label:         probs[0].Label,
		Probability:   probs[0].Probability,
		Probabilities: probs,
	}, nil
}

// labelProbability combines the token scores that differ from the prior by
// more than neutralBand.
func (c *Classifier) labelProbability(label string, tokens []string) float64 {
	prior := 1 / float64(len(c.labels))

	logSum := 0.0
	for _, t := range tokens {
		s := c.tokenScore(t, label, prior)
		if math.Abs(prior-s) <= neutralBand {
			continue
		}
		logSum += math.Log(1-s) - math.Log(s)
	}

	return 1 / (1 + math.Exp(logSum))
}

// tokenScore is the probability of label given token, pulled towards the
// prior for rare tokens.
func (c *Classifier) tokenScore(token, label string, prior float64) float64 {
	labelDocs := float64(c.docs[label])
	otherDocs := float64(c.totalDocs) - labelDocs

	inLabel := float64(c.tokenCount(token, label))
	total := float64(c.tokenCount(token, ""))

	support := inLabel / labelDocs * prior
	otherSupport := (total - inLabel) / otherDocs * (1 - prior)

	raw := support / (support + otherSupport)
	if math.IsNaN(raw) || raw == 0 {
		raw = prior
	}

	return (rareTokenWeight*prior + total*raw) / (rareTokenWeight + total)
}
