// Package cli implements the clusterkit command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/clusterkit"
)

const name = "clusterkit"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
)

type globalFlags struct {
	logLevel  string
	logFormat string
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   name,
		Short: "clusterkit - k-means clustering and baseline classifiers",
		Long: `clusterkit - k-means clustering and baseline classifiers

kmeans - cluster a dataset into k clusters
auto   - search k over a range with random restarts
knn    - classify a point by its nearest labelled neighbours
bayes  - classify a text with a naive Bayes model

Datasets are YAML or JSON: a sequence of points, or a mapping with
"points" and "labels".`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "text", "log format (text, json)")

	root.AddCommand(
		newKMeansCommand(g),
		newAutoCommand(g),
		newKNNCommand(g),
		newBayesCommand(g),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", name, version, commit)
			},
		},
	)

	return root
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (g *globalFlags) logger(w io.Writer) (*clusterkit.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", g.logLevel, err)
	}

	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(g.logFormat) {
	case "text":
		return clusterkit.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return clusterkit.NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", g.logFormat)
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
