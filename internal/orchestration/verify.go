package orchestration

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/billionfib/internal/bignum"
	apperrors "github.com/agbru/billionfib/internal/errors"
	"github.com/agbru/billionfib/internal/fibonacci"
	"github.com/agbru/billionfib/internal/karatsuba"
	"github.com/agbru/billionfib/internal/logging"
)

// CalculationResult is the outcome of computing F(n) with one base
// multiplier.
type CalculationResult struct {
	// Name is the base multiplier used (see karatsuba.Bases).
	Name string
	// Value is the computed number. It is zero if Err is set.
	Value bignum.BigInt
	// Duration is the time taken by the computation.
	Duration time.Duration
	// Err is set when the multiplier could not be built or the run was
	// cancelled before it started.
	Err error
}

// VerifyOptions configures ExecuteCalculations.
type VerifyOptions struct {
	Cutoff   int
	Observer karatsuba.Observer
	Logger   logging.Logger
}

// ExecuteCalculations computes F(n) once per named base, all concurrently,
// each through its own Karatsuba multiplier. Results come back in the order
// of bases.
func ExecuteCalculations(ctx context.Context, n uint64, bases []string, opts VerifyOptions) []CalculationResult {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	results := make([]CalculationResult, len(bases))
	g, ctx := errgroup.WithContext(ctx)

	for i, name := range bases {
		g.Go(func() error {
			results[i] = runOne(ctx, n, name, opts, logger)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func runOne(ctx context.Context, n uint64, name string, opts VerifyOptions, logger logging.Logger) CalculationResult {
	res := CalculationResult{Name: name}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	base, err := karatsuba.Base(name)
	if err != nil {
		res.Err = apperrors.NewConfigError("%v", err)
		return res
	}
	mul, err := karatsuba.New(
		karatsuba.WithCutoff(opts.Cutoff),
		karatsuba.WithBase(base),
		karatsuba.WithObserver(opts.Observer))
	if err != nil {
		res.Err = apperrors.NewConfigError("%v", err)
		return res
	}

	engine := fibonacci.NewEngine(mul, fibonacci.WithLogger(logger))
	start := time.Now()
	res.Value = engine.Compute(ctx, n)
	res.Duration = time.Since(start)
	logger.Debug("verification run finished",
		logging.String("base", name),
		logging.Duration("elapsed", res.Duration))
	return res
}

// AnalyzeComparisonResults sorts results by success then duration, and
// checks that every successful run agrees. Failed runs are ignored unless
// none succeeded, in which case the first error is returned. Disagreement
// yields a MismatchError.
func AnalyzeComparisonResults(n uint64, results []CalculationResult) error {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var first *CalculationResult
	var firstErr error
	for i := range results {
		if results[i].Err != nil {
			if firstErr == nil {
				firstErr = results[i].Err
			}
			continue
		}
		if first == nil {
			first = &results[i]
		}
	}
	if first == nil {
		if firstErr == nil {
			return apperrors.NewConfigError("no base multiplier to verify with")
		}
		return firstErr
	}

	agree := true
	for _, r := range results {
		if r.Err == nil && !r.Value.Equal(first.Value) {
			agree = false
			break
		}
	}
	if agree {
		return nil
	}

	mismatch := apperrors.MismatchError{N: n}
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		mismatch.Bases = append(mismatch.Bases, r.Name)
		mismatch.Digits = append(mismatch.Digits, len(r.Value.String()))
	}
	return mismatch
}
