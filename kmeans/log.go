package kmeans

import (
	"slices"

	"github.com/hupe1980/clusterkit/dataset"
)

// IterationLog is the snapshot recorded after each solver iteration.
//
// Centroids is an owned copy: later iterations never modify it.
// The last IterationLog of a completed solve is the solver's solution.
type IterationLog struct {
	Iteration           int         `yaml:"iteration" json:"iteration"`
	Centroids           [][]float64 `yaml:"centroids" json:"centroids"`
	Error               float64     `yaml:"error" json:"error"`
	DidReachSteadyState bool        `yaml:"did_reach_steady_state" json:"did_reach_steady_state"`
	// Reseeded lists the centroids that had no points in this iteration and
	// were moved according to the EmptyClusterPolicy.
	Reseeded []int `yaml:"reseeded,omitempty" json:"reseeded,omitempty"`
}

// Clone returns a deep copy of l.
func (l IterationLog) Clone() IterationLog {
	l.Centroids = dataset.Clone(l.Centroids)
	l.Reseeded = slices.Clone(l.Reseeded)
	return l
}

// TrialSolution is a solution produced by the AutoSolver, tagged with the
// cluster count and trial index that produced it.
type TrialSolution struct {
	IterationLog `yaml:",inline"`
	K            int `yaml:"k" json:"k"`
	Trial        int `yaml:"trial" json:"trial"`
}

// Clone returns a deep copy of t.
func (t TrialSolution) Clone() TrialSolution {
	t.IterationLog = t.IterationLog.Clone()
	return t
}

// TrialFailure records a trial skipped by an AutoSolver configured with
// WithSkipFailedTrials.
type TrialFailure struct {
	K     int
	Trial int
	Err   error
}
