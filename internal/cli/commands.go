package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/clusterkit"
	"github.com/hupe1980/clusterkit/dataset"
	"github.com/hupe1980/clusterkit/distance"
	"github.com/hupe1980/clusterkit/kmeans"
	"github.com/hupe1980/clusterkit/resource"
)

type solveFlags struct {
	data          string
	seed          int64
	maxIterations int
	emptyCluster  string
	metrics       bool
}

func (f *solveFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.data, "data", "d", "", "dataset file (YAML or JSON)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (0 picks a time-based seed)")
	cmd.Flags().IntVar(&f.maxIterations, "max-iterations", kmeans.DefaultMaxIterations, "iteration cap per solve")
	cmd.Flags().StringVar(&f.emptyCluster, "empty-cluster", "farthest", "empty cluster policy (farthest, random, fail)")
	cmd.Flags().BoolVar(&f.metrics, "metrics", false, "print solver metrics after the result")
	_ = cmd.MarkFlagRequired("data")
}

func (f *solveFlags) options(cmd *cobra.Command, g *globalFlags, mc clusterkit.MetricsCollector) ([]clusterkit.Option, error) {
	logger, err := g.logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	policy, err := parseEmptyCluster(f.emptyCluster)
	if err != nil {
		return nil, err
	}

	opts := []clusterkit.Option{
		clusterkit.WithLogger(logger),
		clusterkit.WithMaxIterations(f.maxIterations),
		clusterkit.WithEmptyClusterPolicy(policy),
		clusterkit.WithMetricsCollector(mc),
	}
	if f.seed != 0 {
		opts = append(opts, clusterkit.WithSeed(f.seed))
	}

	return opts, nil
}

func parseEmptyCluster(s string) (kmeans.EmptyClusterPolicy, error) {
	switch strings.ToLower(s) {
	case "farthest", "farthest-point":
		return kmeans.EmptyClusterFarthestPoint, nil
	case "random":
		return kmeans.EmptyClusterRandom, nil
	case "fail":
		return kmeans.EmptyClusterFail, nil
	default:
		return 0, fmt.Errorf("invalid empty cluster policy %q", s)
	}
}

func parseMetric(s string) (distance.Metric, error) {
	switch strings.ToLower(s) {
	case "euclidean", "l2":
		return distance.MetricEuclidean, nil
	case "squared-euclidean", "sql2":
		return distance.MetricSquaredEuclidean, nil
	case "manhattan", "l1":
		return distance.MetricManhattan, nil
	default:
		return 0, fmt.Errorf("invalid metric %q", s)
	}
}

func newKMeansCommand(g *globalFlags) *cobra.Command {
	f := &solveFlags{}
	var k int

	cmd := &cobra.Command{
		Use:   "kmeans",
		Short: "Cluster a dataset into k clusters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			points, err := dataset.Load(f.data)
			if err != nil {
				return err
			}

			mc := &clusterkit.BasicMetricsCollector{}
			opts, err := f.options(cmd, g, mc)
			if err != nil {
				return err
			}

			sol, err := clusterkit.Cluster(cmd.Context(), points, k, opts...)
			if err != nil {
				return err
			}

			if err := writeYAML(cmd.OutOrStdout(), sol); err != nil {
				return err
			}
			if f.metrics {
				return writeYAML(cmd.OutOrStdout(), map[string]any{"metrics": mc.GetStats()})
			}
			return nil
		},
	}

	f.register(cmd)
	cmd.Flags().IntVarP(&k, "k", "k", 2, "number of clusters")

	return cmd
}

type autoResult struct {
	Best   *kmeans.TrialSolution  `yaml:"best"`
	Trials []kmeans.TrialSolution `yaml:"trials,omitempty"`
}

func newAutoCommand(g *globalFlags) *cobra.Command {
	f := &solveFlags{}
	var (
		kMin, kMax, trials, concurrency int
		trialRate                       float64
		skipFailed, showTrials          bool
	)

	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Search k over [k-min, k-max) and keep the lowest-error solution",
		RunE: func(cmd *cobra.Command, _ []string) error {
			points, err := dataset.Load(f.data)
			if err != nil {
				return err
			}

			mc := &clusterkit.BasicMetricsCollector{}
			opts, err := f.options(cmd, g, mc)
			if err != nil {
				return err
			}
			opts = append(opts,
				clusterkit.WithConcurrency(concurrency),
				clusterkit.WithSkipFailedTrials(skipFailed),
			)
			if trialRate > 0 {
				rc := resource.NewController(resource.Config{
					MaxWorkers:      int64(concurrency),
					TrialsPerSecond: trialRate,
				})
				opts = append(opts, clusterkit.WithResourceController(rc))
			}

			best, log, err := clusterkit.AutoCluster(cmd.Context(), points, kMin, kMax, trials, opts...)
			if err != nil {
				return err
			}

			res := autoResult{Best: best}
			if showTrials {
				res.Trials = log
			}

			if err := writeYAML(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			if f.metrics {
				return writeYAML(cmd.OutOrStdout(), map[string]any{"metrics": mc.GetStats()})
			}
			return nil
		},
	}

	f.register(cmd)
	cmd.Flags().IntVar(&kMin, "k-min", 1, "smallest k (inclusive)")
	cmd.Flags().IntVar(&kMax, "k-max", 5, "largest k (exclusive)")
	cmd.Flags().IntVar(&trials, "trials", 5, "random restarts per k")
	cmd.Flags().IntVar(&concurrency, "concurrency", 1, "trials run in parallel")
	cmd.Flags().Float64Var(&trialRate, "trials-per-second", 0, "pace trial starts (0 means unlimited)")
	cmd.Flags().BoolVar(&skipFailed, "skip-failed", false, "continue past failing trials")
	cmd.Flags().BoolVar(&showTrials, "show-trials", false, "print every trial, not only the best")

	return cmd
}

func newKNNCommand(g *globalFlags) *cobra.Command {
	var (
		data   string
		k      int
		metric string
		point  []float64
	)

	cmd := &cobra.Command{
		Use:   "knn",
		Short: "Classify a point by its k nearest labelled neighbours",
		RunE: func(cmd *cobra.Command, _ []string) error {
			train, err := dataset.LoadLabeled(data)
			if err != nil {
				return err
			}

			m, err := parseMetric(metric)
			if err != nil {
				return err
			}

			logger, err := g.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			p, err := clusterkit.Classify(train, k, point,
				clusterkit.WithMetric(m),
				clusterkit.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			return writeYAML(cmd.OutOrStdout(), p)
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "labelled dataset file (YAML or JSON)")
	cmd.Flags().IntVarP(&k, "k", "k", 3, "number of voting neighbours")
	cmd.Flags().StringVar(&metric, "metric", "euclidean", "distance metric (euclidean, squared-euclidean, manhattan)")
	cmd.Flags().Float64SliceVar(&point, "point", nil, "query point, comma separated")
	_ = cmd.MarkFlagRequired("data")
	_ = cmd.MarkFlagRequired("point")

	return cmd
}

// document is a labelled training text.
type document struct {
	Label string `yaml:"label"`
	Text  string `yaml:"text"`
}

func loadDocuments(path string) ([]document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var docs []document
	if err := yaml.Unmarshal(b, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("decode %s: no documents", path)
	}

	return docs, nil
}

func newBayesCommand(g *globalFlags) *cobra.Command {
	var data, text string

	cmd := &cobra.Command{
		Use:   "bayes",
		Short: "Train a naive Bayes model and classify a text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			docs, err := loadDocuments(data)
			if err != nil {
				return err
			}

			logger, err := g.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			c := clusterkit.NewTextClassifier(clusterkit.WithLogger(logger))
			for _, d := range docs {
				c.Train(d.Label, d.Text)
			}

			p, err := c.Predict(text)
			if err != nil {
				return err
			}

			return writeYAML(cmd.OutOrStdout(), p)
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "training documents file: a YAML list of {label, text}")
	cmd.Flags().StringVar(&text, "text", "", "text to classify")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}
