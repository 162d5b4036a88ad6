package freq

import (
	"errors"
	"fmt"

	"streamest/window"
)

// Strategy names accepted by New.
const (
	StrategyMisraGries       = "MisraGries"
	StrategyCountMinSketches = "CountMinSketches"
)

// ErrTimedUnsupported is returned by AddAt on estimators that have no
// time-aware variant.
var ErrTimedUnsupported = errors.New("freq: timed adds are not supported by this estimator")

// ItemCount pairs a tracked key with its observed or estimated count.
type ItemCount struct {
	Key   string
	Count int64
}

// Estimator answers "which keys occur most often" under a fixed memory
// budget. Implementations are not safe for concurrent use; one logical
// producer drives all mutating calls.
type Estimator interface {
	// Add records one occurrence of value.
	Add(value string)
	// AddAt records one occurrence at the given logical timestamp.
	// Estimators without a timed mode return ErrTimedUnsupported.
	AddAt(value string, timestamp int64) error
	// Snapshot returns the tracked items ordered ascending by count.
	// Items tying on count keep their first-admission order; none are
	// dropped.
	Snapshot() []ItemCount
}

// Config selects and parameterizes an estimator.
type Config struct {
	// Strategy is one of StrategyMisraGries or StrategyCountMinSketches.
	Strategy string
	// MaxBucket bounds the number of tracked keys (Misra-Gries).
	MaxBucket int
	// ExpireWindow, when positive, attaches a timestamp expirer so timed
	// adds age out (Misra-Gries).
	ExpireWindow int64
	// ErrorLimit and ErrorProbLimit size the sketch (CountMinSketches).
	ErrorLimit     float64
	ErrorProbLimit float64
	// MostFrequentCount bounds the tracked top-K set (CountMinSketches).
	MostFrequentCount int
}

// New builds the estimator described by cfg. Unknown strategies and invalid
// parameters fail with an explicit error.
func New(cfg Config) (Estimator, error) {
	switch cfg.Strategy {
	case StrategyMisraGries:
		if cfg.MaxBucket <= 0 {
			return nil, fmt.Errorf("freq: MaxBucket must be positive, got %d", cfg.MaxBucket)
		}
		mg := NewMisraGries(cfg.MaxBucket)
		if cfg.ExpireWindow > 0 {
			mg.SetExpirer(window.NewExpirer(cfg.ExpireWindow))
		}
		return mg, nil
	case StrategyCountMinSketches:
		return NewCountMinTopK(cfg.ErrorLimit, cfg.ErrorProbLimit, cfg.MostFrequentCount)
	default:
		return nil, fmt.Errorf("freq: unknown strategy %q", cfg.Strategy)
	}
}
