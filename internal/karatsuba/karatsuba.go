// Package karatsuba implements divide-and-conquer multiplication of
// bignum.BigInt values with a configurable base-case multiplier.
package karatsuba

//go:generate mockgen -source=karatsuba.go -destination=mocks/mock_karatsuba.go -package=mocks

import (
	"errors"
	"fmt"

	"github.com/agbru/billionfib/internal/bignum"
)

const (
	// DefaultCutoff is the operand size, in bits, at or below which the
	// recursion hands over to the base multiplier. Tuned empirically; see
	// the calibration mode for finding a better value on a given machine.
	DefaultCutoff = 1536

	// MinCutoff is the smallest accepted cutoff. Below 64 bits the split
	// point can fail to shrink the operands and the recursion never ends.
	MinCutoff = 64
)

// ErrCutoffTooSmall is returned by New when the cutoff is below MinCutoff.
var ErrCutoffTooSmall = errors.New("karatsuba: cutoff below minimum")

// Multiplier multiplies two non-negative integers.
type Multiplier interface {
	Multiply(x, y bignum.BigInt) bignum.BigInt
}

// MultiplierFunc adapts a function to the Multiplier interface.
type MultiplierFunc func(x, y bignum.BigInt) bignum.BigInt

// Multiply calls f(x, y).
func (f MultiplierFunc) Multiply(x, y bignum.BigInt) bignum.BigInt { return f(x, y) }

// Observer receives one event per multiplier invocation. Implementations
// must be safe for concurrent use when a Karatsuba value is shared.
type Observer interface {
	// OnBase is called when an operand pair is delegated to the base
	// multiplier. bits is the larger operand's bit length.
	OnBase(bits int)
	// OnSplit is called when an operand pair is split in halves.
	OnSplit(bits int)
}

type nopObserver struct{}

func (nopObserver) OnBase(int)  {}
func (nopObserver) OnSplit(int) {}

// Karatsuba is a Multiplier that recursively splits operands larger than
// its cutoff into three half-size products.
type Karatsuba struct {
	cutoff   int
	base     Multiplier
	observer Observer
}

// Option configures a Karatsuba multiplier.
type Option func(*Karatsuba)

// WithCutoff sets the base-case cutoff in bits.
func WithCutoff(bits int) Option {
	return func(k *Karatsuba) { k.cutoff = bits }
}

// WithBase sets the multiplier used at and below the cutoff.
func WithBase(m Multiplier) Option {
	return func(k *Karatsuba) { k.base = m }
}

// WithObserver attaches an observer notified on every recursion step.
func WithObserver(o Observer) Option {
	return func(k *Karatsuba) { k.observer = o }
}

// New returns a Karatsuba multiplier. Without options it uses DefaultCutoff
// and the native base multiplier.
func New(opts ...Option) (*Karatsuba, error) {
	k := &Karatsuba{cutoff: DefaultCutoff}
	for _, opt := range opts {
		opt(k)
	}
	if k.cutoff < MinCutoff {
		return nil, fmt.Errorf("%w: %d < %d", ErrCutoffTooSmall, k.cutoff, MinCutoff)
	}
	if k.base == nil {
		k.base = Native{}
	}
	if k.observer == nil {
		k.observer = nopObserver{}
	}
	return k, nil
}

// Cutoff returns the configured base-case cutoff in bits.
func (k *Karatsuba) Cutoff() int { return k.cutoff }

// Multiply returns x * y.
func (k *Karatsuba) Multiply(x, y bignum.BigInt) bignum.BigInt {
	xbits, ybits := x.BitLen(), y.BitLen()
	n := max(xbits, ybits)
	if xbits <= k.cutoff || ybits <= k.cutoff {
		k.observer.OnBase(n)
		return k.base.Multiply(x, y)
	}
	k.observer.OnSplit(n)

	// half is a multiple of 32 and at least n/2.
	half := uint((n + 32) / 64 * 32)

	xlow, xhigh := x.LowBits(half), x.Rsh(int(half))
	ylow, yhigh := y.LowBits(half), y.Rsh(int(half))

	a := k.Multiply(xhigh, yhigh)
	b := k.Multiply(xlow.Add(xhigh), ylow.Add(yhigh))
	c := k.Multiply(xlow, ylow)

	// (xl+xh)(yl+yh) = xh*yh + xl*yl + cross terms, so b >= a + c.
	d := b.MustSub(a).MustSub(c)

	return a.Lsh(half).Add(d).Lsh(half).Add(c)
}
