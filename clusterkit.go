package clusterkit

import (
	"context"
	"time"

	"github.com/hupe1980/clusterkit/bayes"
	"github.com/hupe1980/clusterkit/dataset"
	"github.com/hupe1980/clusterkit/kmeans"
	"github.com/hupe1980/clusterkit/knn"
)

// Cluster partitions data into k clusters and returns the final iteration.
func Cluster(ctx context.Context, data [][]float64, k int, optFns ...Option) (kmeans.IterationLog, error) {
	o := applyOptions(optFns)
	logger := o.logger.WithK(k)

	sol, iterations, err := cluster(ctx, data, k, o)
	if err != nil {
		err = translateError(err)
	}

	logger.LogSolve(ctx, k, iterations, sol.Error, sol.DidReachSteadyState, err)

	return sol, err
}

func cluster(ctx context.Context, data [][]float64, k int, o options) (kmeans.IterationLog, int, error) {
	s, err := kmeans.New(k, data, o.kmeansOptions()...)
	if err != nil {
		return kmeans.IterationLog{}, 0, err
	}

	sol, err := s.Solve(ctx, o.maxIterations)
	if err != nil {
		return kmeans.IterationLog{}, s.Iterations(), err
	}

	return sol, s.Iterations(), nil
}

// AutoCluster runs trials solvers for every k in [kMin, kMax) and returns
// the lowest-error solution together with the log of every successful trial.
func AutoCluster(ctx context.Context, data [][]float64, kMin, kMax, trials int, optFns ...Option) (*kmeans.TrialSolution, []kmeans.TrialSolution, error) {
	o := applyOptions(optFns)

	a, err := kmeans.NewAutoSolver(kMin, kMax, trials, data, o.kmeansOptions()...)
	if err != nil {
		err = translateError(err)
		o.logger.LogSweep(ctx, kMin, kMax, 0, 0, err)
		return nil, nil, err
	}

	best, err := a.Solve(ctx, o.maxIterations)
	log := a.Log()
	if err != nil {
		err = translateError(err)
		o.logger.LogSweep(ctx, kMin, kMax, len(log), 0, err)
		return nil, log, err
	}

	o.logger.LogSweep(ctx, kMin, kMax, len(log), best.K, nil)

	return best, log, nil
}

// Classify predicts the label of point by majority vote among its k
// nearest neighbours in train.
func Classify(train dataset.Labeled, k int, point []float64, optFns ...Option) (knn.Prediction, error) {
	o := applyOptions(optFns)
	ctx := context.Background()
	start := time.Now()

	p, err := classify(train, k, point, o)
	if err != nil {
		err = translateError(err)
	}

	o.metricsCollector.RecordClassify(k, time.Since(start), err)
	o.logger.LogClassify(ctx, k, p.Label, err)

	return p, err
}

func classify(train dataset.Labeled, k int, point []float64, o options) (knn.Prediction, error) {
	c, err := knn.New(k, train.Points, train.Labels,
		knn.WithMetric(o.metric),
		knn.WithLogger(o.logger.Logger),
	)
	if err != nil {
		return knn.Prediction{}, err
	}

	return c.Predict(point)
}

// NewTextClassifier creates a naive Bayes text classifier that logs through
// the configured logger.
func NewTextClassifier(optFns ...Option) *bayes.Classifier {
	o := applyOptions(optFns)
	return bayes.New(bayes.WithLogger(o.logger.Logger))
}
