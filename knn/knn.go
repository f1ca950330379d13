package knn

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hupe1980/clusterkit/dataset"
	"github.com/hupe1980/clusterkit/distance"
	"github.com/hupe1980/clusterkit/internal/queue"
)

// ErrInvalidK is returned when k is not positive.
var ErrInvalidK = errors.New("knn: k must be positive")

// Neighbor is a training point close to the query.
type Neighbor struct {
	Index    int     `yaml:"index" json:"index"`
	Distance float64 `yaml:"distance" json:"distance"`
	Label    string  `yaml:"label" json:"label"`
}

// Prediction is the result of a majority vote among the nearest neighbours.
type Prediction struct {
	Label      string         `yaml:"label" json:"label"`
	VoteCounts map[string]int `yaml:"vote_counts" json:"vote_counts"`
	Votes      []Neighbor     `yaml:"votes" json:"votes"`
}

type options struct {
	metric distance.Metric
	logger *slog.Logger
}

// Option configures a Classifier.
type Option func(*options)

// WithMetric sets the distance metric. Euclidean is the default.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
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

// Classifier is a brute-force k-nearest-neighbour classifier.
//
// It keeps references to the training points and labels, which must not be
// modified afterwards. A Classifier is safe for concurrent use.
type Classifier struct {
	k      int
	dim    int
	data   dataset.Labeled
	dist   distance.Func
	metric distance.Metric
	logger *slog.Logger
}

// New creates a Classifier voting among the k nearest training points.
// If k exceeds the number of training points, every point votes.
func New(k int, points [][]float64, labels []string, optFns ...Option) (*Classifier, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}

	data := dataset.Labeled{Points: points, Labels: labels}
	if err := data.Validate(); err != nil {
		return nil, err
	}

	opts := options{
		metric: distance.MetricEuclidean,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	dist, err := distance.Provider(opts.metric)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		k:      k,
		dim:    dataset.Dimension(points),
		data:   data,
		dist:   dist,
		metric: opts.metric,
		logger: opts.logger,
	}, nil
}

// K returns the number of voting neighbours.
func (c *Classifier) K() int { return c.k }

// Metric returns the distance metric in use.
func (c *Classifier) Metric() distance.Metric { return c.metric }

// Neighbors returns the k training points nearest to point, ordered by
// ascending distance. Equal distances are ordered by training index.
func (c *Classifier) Neighbors(point []float64) ([]Neighbor, error) {
	if len(point) != c.dim {
		return nil, &distance.ErrDimensionMismatch{Expected: c.dim, Actual: len(point)}
	}

	q := queue.NewBounded(c.k)
	for i, p := range c.data.Points {
		q.Offer(queue.Item{Index: i, Distance: c.dist(point, p)})
	}

	items := q.Sorted()
	out := make([]Neighbor, len(items))
	for i, it := range items {
		out[i] = Neighbor{Index: it.Index, Distance: it.Distance, Label: c.data.Labels[it.Index]}
	}

	return out, nil
}

// Predict classifies point by majority vote among its k nearest neighbours.
// A tie between labels goes to the label whose nearest vote is closest.
func (c *Classifier) Predict(point []float64) (Prediction, error) {
	votes, err := c.Neighbors(point)
	if err != nil {
		return Prediction{}, err
	}

	counts := make(map[string]int, len(votes))
	for _, v := range votes {
		counts[v.Label]++
	}

	// Votes are sorted by distance: the first label reaching the top count wins.
	var winner string
	best := 0
	for _, v := range votes {
		if n := counts[v.Label]; n > best {
			winner, best = v.Label, n
		}
	}

	c.logger.Debug("knn prediction",
		"k", c.k,
		"label", winner,
		"votes", counts[winner],
	)

	return Prediction{Label: winner, VoteCounts: counts, Votes: votes}, nil
}
