package dataset

import "fmt"

// Labeled is a dataset where every point carries a class label.
type Labeled struct {
	Points [][]float64 `yaml:"points" json:"points"`
	Labels []string    `yaml:"labels" json:"labels"`
}

// Validate checks the points and that there is exactly one label per point.
func (l Labeled) Validate() error {
	if err := Validate(l.Points); err != nil {
		return err
	}

	if len(l.Labels) != len(l.Points) {
		return fmt.Errorf("%w: %d labels for %d points", ErrInvalidDataset, len(l.Labels), len(l.Points))
	}

	return nil
}

// Len returns the number of labelled points.
func (l Labeled) Len() int { return len(l.Points) }
