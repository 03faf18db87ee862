package fibonacci

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/billionfib/internal/bignum"
	apperrors "github.com/agbru/billionfib/internal/errors"
	"github.com/agbru/billionfib/internal/logging"
)

// Request binds a Fibonacci index to its lazily computed value. The value is
// computed at most once, on first access, even under concurrent access; the
// decimal rendering is likewise produced once and cached.
type Request struct {
	n        uint64
	computer Computer
	logger   logging.Logger

	once     sync.Once
	value    bignum.BigInt
	elapsed  time.Duration
	computed atomic.Bool

	decimalOnce sync.Once
	decimal     string
}

// RequestOption configures a Request.
type RequestOption func(*Request)

// WithComputer sets the Computer used to produce the value.
func WithComputer(c Computer) RequestOption {
	return func(r *Request) {
		if c != nil {
			r.computer = c
		}
	}
}

// WithRequestLogger sets the logger for computation and output events.
func WithRequestLogger(l logging.Logger) RequestOption {
	return func(r *Request) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRequest returns a Request for F(n). A negative n is rejected with a
// ValidationError matching apperrors.ErrInvalidArgument.
func NewRequest(n int64, opts ...RequestOption) (*Request, error) {
	if n < 0 {
		return nil, apperrors.ValidationError{
			Field:   "n",
			Message: fmt.Sprintf("must be non-negative, got %d", n),
		}
	}
	r := &Request{n: uint64(n), logger: logging.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	if r.computer == nil {
		r.computer = NewEngine(nil, WithLogger(r.logger))
	}
	return r, nil
}

// N returns the requested index.
func (r *Request) N() uint64 { return r.n }

// Resolve computes the value if needed and returns it. Only the first call
// computes; its ctx is the one that carries the trace.
func (r *Request) Resolve(ctx context.Context) bignum.BigInt {
	r.once.Do(func() {
		span := trace.SpanFromContext(ctx)
		span.AddEvent("fibonacci.request.compute", trace.WithAttributes(attribute.Int64("fib.n", int64(r.n))))

		start := time.Now()
		r.value = r.computer.Compute(ctx, r.n)
		r.elapsed = time.Since(start)
		r.computed.Store(true)
		r.logger.Debug("request computed",
			logging.Uint64("n", r.n),
			logging.Int("bits", r.value.BitLen()),
			logging.Duration("elapsed", r.elapsed))
	})
	return r.value
}

// Value returns F(N), computing it on first use.
func (r *Request) Value() bignum.BigInt { return r.Resolve(context.Background()) }

// Big returns F(N) as a fresh *big.Int the caller may modify.
func (r *Request) Big() *big.Int { return r.Value().Big() }

// String returns the decimal digits of F(N) with no sign, separators or
// trailing newline.
func (r *Request) String() string {
	r.decimalOnce.Do(func() {
		r.decimal = r.Value().String()
	})
	return r.decimal
}

// Computed reports whether the value has been computed.
func (r *Request) Computed() bool { return r.computed.Load() }

// Elapsed returns the wall-clock time of the computation, or zero before it
// has run.
func (r *Request) Elapsed() time.Duration {
	if !r.Computed() {
		return 0
	}
	return r.elapsed
}

// WriteTo writes the decimal digits of F(N) to w. It implements io.WriterTo.
func (r *Request) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	if err != nil {
		return int64(n), apperrors.IOError{Op: "write", Cause: err}
	}
	return int64(n), nil
}

// WriteFile creates path, or truncates it if it exists, and writes the
// decimal digits of F(N) to it.
func (r *Request) WriteFile(path string) error {
	digits := r.String()

	f, err := os.Create(path)
	if err != nil {
		return apperrors.IOError{Op: "create", Path: path, Cause: err}
	}
	if _, err := io.WriteString(f, digits); err != nil {
		f.Close()
		return apperrors.IOError{Op: "write", Path: path, Cause: err}
	}
	if err := f.Close(); err != nil {
		return apperrors.IOError{Op: "close", Path: path, Cause: err}
	}
	r.logger.Info("result written", logging.String("path", path), logging.Int("digits", len(digits)))
	return nil
}
