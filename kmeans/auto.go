package kmeans

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// AutoSolver searches k in [kMin, kMax), running maxTrials independently
// initialized solvers per k, and keeps the solution with the lowest error.
//
// Error shrinks as k grows (it reaches zero once k equals the number of
// distinct points), so the result is the lowest-error (k, initialization)
// pair in the searched range. It is not an estimate of the true number of
// clusters.
type AutoSolver struct {
	kMin      int
	kMax      int
	maxTrials int
	data      prepared
	opts      options

	best     *TrialSolution
	log      []TrialSolution
	failures []TrialFailure
}

// NewAutoSolver creates an AutoSolver. kMax is exclusive; kMax <= kMin is
// accepted and makes Solve return ErrNoSolution without running any trial.
func NewAutoSolver(kMin, kMax, maxTrials int, data [][]float64, optFns ...Option) (*AutoSolver, error) {
	p, err := prepare(data)
	if err != nil {
		return nil, err
	}
	if kMin < 1 {
		return nil, fmt.Errorf("%w: kMin must be positive, got %d", ErrInvalidK, kMin)
	}
	if maxTrials < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, maxTrials)
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &AutoSolver{
		kMin:      kMin,
		kMax:      kMax,
		maxTrials: maxTrials,
		data:      p,
		opts:      opts,
	}, nil
}

// Reset discards the best solution, the log and the recorded failures.
func (a *AutoSolver) Reset() {
	a.best = nil
	a.log = nil
	a.failures = nil
}

type trialResult struct {
	sol TrialSolution
	err error
	ran bool
}

// Solve runs the sweep and returns the lowest-error solution. Ties keep the
// earlier trial (k-major, trial-minor order).
//
// By default the first failing trial aborts the sweep with a *TrialError.
// With WithSkipFailedTrials the failure is recorded and the sweep goes on.
// ErrNoSolution is returned when no trial produced a solution.
func (a *AutoSolver) Solve(ctx context.Context, maxIterations int) (*TrialSolution, error) {
	a.Reset()

	if maxIterations <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIterations, maxIterations)
	}

	start := time.Now()
	best, err := a.sweep(ctx, maxIterations)
	duration := time.Since(start)

	trials := len(a.log) + len(a.failures)
	a.opts.observer.OnSweep(trials, len(a.failures), duration, err)

	if err != nil {
		a.opts.logger.Warn("kmeans sweep failed",
			"k_min", a.kMin,
			"k_max", a.kMax,
			"trials", trials,
			"error", err,
		)
		return nil, err
	}

	a.opts.logger.Info("kmeans sweep completed",
		"k_min", a.kMin,
		"k_max", a.kMax,
		"trials", trials,
		"failed", len(a.failures),
		"best_k", best.K,
		"best_trial", best.Trial,
		"best_error", best.Error,
		"duration", duration,
	)

	return best, nil
}

func (a *AutoSolver) sweep(ctx context.Context, maxIterations int) (*TrialSolution, error) {
	if a.kMax <= a.kMin {
		return nil, fmt.Errorf("%w: empty k range [%d, %d)", ErrNoSolution, a.kMin, a.kMax)
	}

	newSource := trialSourceFunc(a.opts)
	results := make([]trialResult, (a.kMax-a.kMin)*a.maxTrials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.concurrency)

	for k := a.kMin; k < a.kMax; k++ {
		for trial := range a.maxTrials {
			slot := (k-a.kMin)*a.maxTrials + trial

			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}

				if err := a.opts.resources.AcquireWorker(gctx); err != nil {
					return err
				}
				defer a.opts.resources.ReleaseWorker()

				sol, err := a.runTrial(gctx, k, trial, newSource(k, trial), maxIterations)
				results[slot] = trialResult{sol: sol, err: err, ran: true}

				if err == nil {
					return nil
				}
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				if a.opts.skipFailed {
					return nil
				}
				return &TrialError{K: k, Trial: trial, Err: err}
			})
		}
	}

	werr := g.Wait()

	// Merge in slot order so the log and the tie-break never depend on scheduling.
	var failed []error
	for slot, r := range results {
		if !r.ran {
			continue
		}

		if r.err != nil {
			if a.opts.skipFailed {
				f := TrialFailure{K: a.kMin + slot/a.maxTrials, Trial: slot % a.maxTrials, Err: r.err}
				a.failures = append(a.failures, f)
				failed = append(failed, &TrialError{K: f.K, Trial: f.Trial, Err: f.Err})
				a.opts.logger.Warn("kmeans trial skipped", "k", f.K, "trial", f.Trial, "error", f.Err)
			}
			continue
		}

		a.log = append(a.log, r.sol)
		if a.best == nil || r.sol.Error < a.best.Error {
			b := r.sol.Clone()
			a.best = &b
		}
	}

	if werr != nil {
		a.best = nil
		return nil, werr
	}

	if a.best == nil {
		if len(failed) == 0 {
			return nil, ErrNoSolution
		}
		return nil, fmt.Errorf("%w: all %d trials failed: %w", ErrNoSolution, len(failed), errors.Join(failed...))
	}

	best := a.best.Clone()

	return &best, nil
}

func (a *AutoSolver) runTrial(ctx context.Context, k, trial int, src RandomSource, maxIterations int) (TrialSolution, error) {
	opts := a.opts
	opts.source = src
	opts.logger = a.opts.logger.With("k", k, "trial", trial)

	s, err := newSolver(k, a.data, opts)
	if err != nil {
		return TrialSolution{}, err
	}

	sol, err := s.Solve(ctx, maxIterations)
	if err != nil {
		return TrialSolution{}, err
	}

	opts.logger.Debug("kmeans trial completed",
		"iterations", s.Iterations(),
		"error", sol.Error,
		"converged", sol.DidReachSteadyState,
	)

	return TrialSolution{IterationLog: sol, K: k, Trial: trial}, nil
}

// Best returns a copy of the best solution of the last Solve.
func (a *AutoSolver) Best() (TrialSolution, bool) {
	if a.best == nil {
		return TrialSolution{}, false
	}
	return a.best.Clone(), true
}

// Log returns a copy of every successful trial of the last Solve, ordered
// by k and then trial index.
func (a *AutoSolver) Log() []TrialSolution {
	out := make([]TrialSolution, len(a.log))
	for i, t := range a.log {
		out[i] = t.Clone()
	}
	return out
}

// Failures returns the trials skipped during the last Solve.
func (a *AutoSolver) Failures() []TrialFailure {
	return append([]TrialFailure(nil), a.failures...)
}

// KRange returns the searched range [kMin, kMax).
func (a *AutoSolver) KRange() (int, int) { return a.kMin, a.kMax }

// MaxTrials returns the number of trials per k.
func (a *AutoSolver) MaxTrials() int { return a.maxTrials }
