package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/agbru/billionfib/internal/cli"
	apperrors "github.com/agbru/billionfib/internal/errors"
	"github.com/agbru/billionfib/internal/fibonacci"
	"github.com/agbru/billionfib/internal/fibonacci/memory"
	"github.com/agbru/billionfib/internal/karatsuba"
	"github.com/agbru/billionfib/internal/logging"
	"github.com/agbru/billionfib/internal/metrics"
	"github.com/agbru/billionfib/internal/orchestration"
	"github.com/agbru/billionfib/internal/sysmon"
	"github.com/agbru/billionfib/internal/ui"
)

// workingSetFactor approximates peak memory as a multiple of the result size
// during the last doubling steps.
const workingSetFactor = 12

// runCalculate computes F(N), prints the timing line, writes the result
// file and prints the small sequence table.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) error {
	cfg := a.Config
	if !cfg.Quiet {
		cli.PrintExecutionConfig(cfg, out)
	}

	mul, err := a.newMultiplier(cfg.Base)
	if err != nil {
		return err
	}

	progress := cli.NewProgressDisplay(out, "Computing", !cfg.Quiet && isTerminal(out))
	engine := fibonacci.NewEngine(mul,
		fibonacci.WithLogger(a.logger),
		fibonacci.WithProgress(progress.Callback()))
	req, err := fibonacci.NewRequest(cfg.N,
		fibonacci.WithComputer(engine),
		fibonacci.WithRequestLogger(a.logger))
	if err != nil {
		return err
	}
	n := req.N()

	resultBytes := fibonacci.EstimateBits(n)/8 + 1
	if free := sysmon.Sample(); !free.Fits(resultBytes * workingSetFactor) {
		a.logger.Info("estimated working set exceeds available memory",
			logging.Uint64("estimate_bytes", resultBytes*workingSetFactor),
			logging.Uint64("available_bytes", free.MemFree))
	}

	if err := checkPhase(ctx, "compute", cfg.Timeout); err != nil {
		return err
	}
	mode, _ := memory.ParseGCMode(cfg.GCMode)
	gc := memory.NewGCController(mode, n, resultBytes)
	gc.SetLogger(a.logger.Zerolog())
	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	gc.Begin()
	progress.Start()
	start := time.Now()
	value := req.Resolve(ctx)
	elapsed := time.Since(start)
	progress.Stop()
	gc.End()
	memDelta := collector.Snapshot().Sub(before)

	a.recorder.ObserveComputation(elapsed, value.BitLen())
	a.logger.Info("computation finished",
		logging.Uint64("n", n),
		logging.Int("bits", value.BitLen()),
		logging.Duration("elapsed", elapsed))
	if !cfg.Quiet {
		cli.DisplayTiming(out, n, elapsed)
	}

	if err := checkPhase(ctx, "write", cfg.Timeout); err != nil {
		return err
	}
	path := cfg.OutputPath()
	if err := req.WriteFile(path); err != nil {
		return err
	}

	if err := checkPhase(ctx, "table", cfg.Timeout); err != nil {
		return err
	}
	if cfg.Table >= 0 {
		small, err := a.newMultiplier(cfg.Base)
		if err != nil {
			return err
		}
		values, err := orchestration.ComputeTable(ctx, fibonacci.NewEngine(small), cfg.Table, a.logger)
		if err != nil {
			return err
		}
		cli.DisplaySequence(out, values)
	}

	if cfg.Details && !cfg.Quiet {
		a.displayDetails(out, req, path, elapsed, memDelta)
	}
	return nil
}

func (a *Application) newMultiplier(baseName string) (*karatsuba.Karatsuba, error) {
	base, err := karatsuba.Base(baseName)
	if err != nil {
		return nil, apperrors.NewConfigError("%v", err)
	}
	mul, err := karatsuba.New(
		karatsuba.WithCutoff(a.Config.Cutoff),
		karatsuba.WithBase(base),
		karatsuba.WithObserver(a.recorder))
	if err != nil {
		return nil, apperrors.NewConfigError("%v", err)
	}
	return mul, nil
}

func (a *Application) displayDetails(out io.Writer, req *fibonacci.Request, path string, elapsed time.Duration, mem metrics.MemorySnapshot) {
	value := req.Value()
	fmt.Fprintln(out)
	cli.DisplaySummary(out, cli.Summary{
		N:        req.N(),
		Bits:     value.BitLen(),
		Digits:   req.String(),
		Path:     path,
		Duration: elapsed,
	})
	cli.DisplayHost(out, sysmon.DescribeHost(), sysmon.Sample())
	cli.DisplayMemoryStats(out, mem.HeapAlloc, mem.TotalAlloc, mem.NumGC, mem.PauseTotalNs)
	base, split := a.recorder.Multiplications()
	cli.DisplayMultiplications(out, base, split)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && ui.IsTerminal(f)
}
