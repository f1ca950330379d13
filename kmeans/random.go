package kmeans

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource yields uniform values in [0, 1).
// *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewSource returns a seeded *rand.Rand. It is not safe for concurrent use.
func NewSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed)) // nolint gosec
}

type lockedSource struct {
	mu  sync.Mutex
	src RandomSource
}

func (l *lockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

// trialSeed mixes (seed, k, trial) with the splitmix64 finalizer so
// neighbouring trials get unrelated streams.
func trialSeed(seed int64, k, trial int) int64 {
	x := uint64(seed) ^ uint64(k)<<32 ^ uint64(trial)
	x += 0x9e3779b97f4a7c15
	x = (x ^ x>>30) * 0xbf58476d1ce4e5b9
	x = (x ^ x>>27) * 0x94d049bb133111eb
	return int64(x ^ x>>31)
}

func solverSource(o options) RandomSource {
	switch {
	case o.source != nil:
		return o.source
	case o.seeded:
		return NewSource(o.seed)
	default:
		return NewSource(time.Now().UnixNano())
	}
}

// trialSourceFunc returns the per-trial source constructor of an AutoSolver.
func trialSourceFunc(o options) func(k, trial int) RandomSource {
	switch {
	case o.sourceFactory != nil:
		return o.sourceFactory
	case o.source != nil:
		src := o.source
		if o.concurrency > 1 {
			src = &lockedSource{src: src}
		}
		return func(int, int) RandomSource { return src }
	default:
		seed := o.seed
		if !o.seeded {
			seed = time.Now().UnixNano()
		}
		return func(k, trial int) RandomSource {
			return NewSource(trialSeed(seed, k, trial))
		}
	}
}
