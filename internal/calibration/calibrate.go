// Package calibration times the Fibonacci computation across Karatsuba
// cutoffs and reports the fastest one for this machine.
package calibration

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/billionfib/internal/bignum"
	apperrors "github.com/agbru/billionfib/internal/errors"
	"github.com/agbru/billionfib/internal/fibonacci"
	"github.com/agbru/billionfib/internal/karatsuba"
	"github.com/agbru/billionfib/internal/logging"
)

type calibrationResult struct {
	Cutoff   int
	Duration time.Duration
	Err      error
}

// Calibrator times F(N) once per candidate cutoff.
type Calibrator struct {
	N      uint64
	Base   string
	Logger logging.Logger
	// Observer, when set, sees every multiplication of every run.
	Observer karatsuba.Observer
}

// Run times each cutoff in turn and returns the fastest. Every run must
// produce the same value; a disagreement is reported as a MismatchError.
// Cutoffs the multiplier rejects are recorded as failed and skipped.
func (c Calibrator) Run(ctx context.Context, cutoffs []int) ([]calibrationResult, int, error) {
	logger := c.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	results := make([]calibrationResult, 0, len(cutoffs))
	var reference bignum.BigInt
	haveReference := false
	refCutoff := 0
	best, bestDur := 0, time.Duration(0)

	for _, cutoff := range cutoffs {
		if err := ctx.Err(); err != nil {
			return results, best, err
		}
		res := calibrationResult{Cutoff: cutoff}
		value, dur, err := c.timeOne(ctx, cutoff, logger)
		res.Duration, res.Err = dur, err
		results = append(results, res)
		if err != nil {
			logger.Error("calibration run failed", err, logging.Int("cutoff", cutoff))
			continue
		}

		if !haveReference {
			reference, haveReference, refCutoff = value, true, cutoff
		} else if !value.Equal(reference) {
			return results, best, apperrors.MismatchError{
				N:      c.N,
				Bases:  []string{fmt.Sprintf("%s@%d", c.Base, refCutoff), fmt.Sprintf("%s@%d", c.Base, cutoff)},
				Digits: []int{len(reference.String()), len(value.String())},
			}
		}
		if best == 0 || dur < bestDur {
			best, bestDur = cutoff, dur
		}
	}

	if best == 0 {
		return results, 0, apperrors.NewConfigError("no usable cutoff among %v", cutoffs)
	}
	logger.Info("calibration finished", logging.Int("best_cutoff", best), logging.Duration("elapsed", bestDur))
	return results, best, nil
}

func (c Calibrator) timeOne(ctx context.Context, cutoff int, logger logging.Logger) (bignum.BigInt, time.Duration, error) {
	base, err := karatsuba.Base(c.Base)
	if err != nil {
		return bignum.BigInt{}, 0, apperrors.NewConfigError("%v", err)
	}
	mul, err := karatsuba.New(karatsuba.WithCutoff(cutoff), karatsuba.WithBase(base), karatsuba.WithObserver(c.Observer))
	if err != nil {
		return bignum.BigInt{}, 0, err
	}
	engine := fibonacci.NewEngine(mul, fibonacci.WithLogger(logger))
	start := time.Now()
	v := engine.Compute(ctx, c.N)
	dur := time.Since(start)
	logger.Debug("calibration run", logging.Int("cutoff", cutoff), logging.Duration("elapsed", dur))
	return v, dur, nil
}

// RunCalibration runs a full calibration for F(n) with the given base and
// prints the summary table to out. It returns the fastest cutoff.
func RunCalibration(ctx context.Context, n uint64, base string, quick bool, out io.Writer, logger logging.Logger) (int, error) {
	cutoffs := GenerateCutoffs()
	if quick {
		cutoffs = GenerateQuickCutoffs()
	}
	fmt.Fprintf(out, "--- Calibration: F(%d), %s base, %d cutoffs ---\n", n, base, len(cutoffs))
	results, best, err := Calibrator{N: n, Base: base, Logger: logger}.Run(ctx, cutoffs)
	printCalibrationResults(out, results, best)
	if err != nil {
		return 0, err
	}
	printCalibrationOutput(out, best)
	return best, nil
}
