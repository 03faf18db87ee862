package app

import (
	"context"
	"io"

	"github.com/agbru/billionfib/internal/cli"
	"github.com/agbru/billionfib/internal/fibonacci"
	"github.com/agbru/billionfib/internal/karatsuba"
	"github.com/agbru/billionfib/internal/orchestration"
)

// referenceLimit is the largest N also checked against the linear oracle.
const referenceLimit = 20_000

// runVerify computes F(N) with every registered base multiplier and fails
// with a MismatchError when any two disagree.
func (a *Application) runVerify(ctx context.Context, out io.Writer) error {
	if err := checkPhase(ctx, "verify", a.Config.Timeout); err != nil {
		return err
	}
	n := uint64(a.Config.N)
	results := orchestration.ExecuteCalculations(ctx, n, karatsuba.Bases(), orchestration.VerifyOptions{
		Cutoff:   a.Config.Cutoff,
		Observer: a.recorder,
		Logger:   a.logger,
	})
	if n <= referenceLimit {
		results = append(results, orchestration.CalculationResult{Name: "reference", Value: fibonacci.Reference(n)})
	}
	err := orchestration.AnalyzeComparisonResults(n, results)
	if !a.Config.Quiet {
		cli.DisplayVerification(out, n, results, err)
	}
	return err
}
