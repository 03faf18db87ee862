//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks

package fibonacci

import (
	"context"
	"math/bits"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/billionfib/internal/bignum"
	"github.com/agbru/billionfib/internal/karatsuba"
	"github.com/agbru/billionfib/internal/logging"
)

const tracerName = "github.com/agbru/billionfib/internal/fibonacci"

// Computer computes Fibonacci numbers. Engine is the production
// implementation; tests substitute mocks.
type Computer interface {
	Compute(ctx context.Context, n uint64) bignum.BigInt
}

// Engine computes F(n) by fast doubling over a pluggable Multiplier.
//
// Starting from (F(0), F(1)), each bit of n from the most significant
// downward maps (F(k), F(k+1)) to (F(2k), F(2k+1)) using
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k)^2 + F(k+1)^2
//
// and advances one index when the bit is set. Each bit costs exactly three
// multiplications.
type Engine struct {
	mul      karatsuba.Multiplier
	logger   logging.Logger
	progress ProgressCallback
	tracer   trace.Tracer
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used for debug events.
func WithLogger(l logging.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithProgress sets a callback invoked as doubling steps complete.
func WithProgress(cb ProgressCallback) EngineOption {
	return func(e *Engine) { e.progress = cb }
}

// WithTracerProvider sets the OpenTelemetry provider for Compute spans.
// The global provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) EngineOption {
	return func(e *Engine) {
		if tp != nil {
			e.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewEngine returns an Engine multiplying with mul. A nil mul selects a
// Karatsuba multiplier with the default cutoff and native base.
func NewEngine(mul karatsuba.Multiplier, opts ...EngineOption) *Engine {
	if mul == nil {
		k, err := karatsuba.New()
		if err != nil {
			panic(err) // defaults are always valid
		}
		mul = k
	}
	e := &Engine{
		mul:    mul,
		logger: logging.Nop(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compute returns F(n). The context carries tracing only; a started
// computation always runs to completion.
func (e *Engine) Compute(ctx context.Context, n uint64) bignum.BigInt {
	_, span := e.tracer.Start(ctx, "fibonacci.Compute",
		trace.WithAttributes(attribute.String("fib.n", strconv.FormatUint(n, 10))))
	defer span.End()

	start := time.Now()
	numBits := bits.Len64(n)
	reporter := newProgressReporter(e.progress, numBits)
	e.logger.Debug("fast doubling started", logging.Uint64("n", n), logging.Int("steps", numBits))

	a, b := bignum.BigInt{}, bignum.FromUint64(1)
	for i := numBits - 1; i >= 0; i-- {
		t := b.Lsh(1).MustSub(a)
		f2k := e.mul.Multiply(a, t)
		f2k1 := e.mul.Multiply(a, a).Add(e.mul.Multiply(b, b))
		a, b = f2k, f2k1
		if (n>>uint(i))&1 == 1 {
			a, b = b, a.Add(b)
		}
		reporter.step(numBits - 1 - i)
	}
	if numBits == 0 && e.progress != nil {
		e.progress(1)
	}

	span.SetAttributes(attribute.Int("fib.result_bits", a.BitLen()))
	e.logger.Debug("fast doubling finished",
		logging.Uint64("n", n),
		logging.Int("bits", a.BitLen()),
		logging.Duration("elapsed", time.Since(start)))
	return a
}

// Reference returns F(n) by linear iteration. It is slow and independent of
// any Multiplier, which makes it the oracle for tests and verification.
func Reference(n uint64) bignum.BigInt {
	a, b := bignum.BigInt{}, bignum.FromUint64(1)
	for i := uint64(0); i < n; i++ {
		a, b = b, a.Add(b)
	}
	return a
}
