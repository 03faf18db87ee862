package orchestration

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/billionfib/internal/bignum"
	"github.com/agbru/billionfib/internal/fibonacci"
	"github.com/agbru/billionfib/internal/logging"
)

// ComputeTable returns F(0) through F(last), each resolved through its own
// Request so the values share nothing but the computer. A negative last
// yields an empty table.
func ComputeTable(ctx context.Context, computer fibonacci.Computer, last int, logger logging.Logger) ([]bignum.BigInt, error) {
	if last < 0 {
		return nil, nil
	}
	if logger == nil {
		logger = logging.Nop()
	}

	values := make([]bignum.BigInt, last+1)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i <= last; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			req, err := fibonacci.NewRequest(int64(i),
				fibonacci.WithComputer(computer),
				fibonacci.WithRequestLogger(logger))
			if err != nil {
				return err
			}
			values[i] = req.Resolve(ctx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Debug("sequence table computed", logging.Int("last", last))
	return values, nil
}
