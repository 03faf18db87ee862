//go:build gmp

// This file provides a GMP-backed base multiplier, compiled only with the
// "gmp" build tag so the default build stays free of cgo and libgmp:
//
//	go build -tags=gmp ./...
//
// System requirements: libgmp-dev (Debian/Ubuntu) or `brew install gmp`.

package karatsuba

import (
	"math/big"

	"github.com/agbru/billionfib/internal/bignum"
	"github.com/ncw/gmp"
)

func init() {
	RegisterBase("gmp", func() Multiplier { return GMP{} })
}

// GMP multiplies through libgmp's assembly-optimized routines. Operands are
// converted via their big-endian byte form, which is cheap next to the
// product for sizes around the cutoff.
type GMP struct{}

// Multiply returns x * y.
func (GMP) Multiply(x, y bignum.BigInt) bignum.BigInt {
	if x.IsZero() || y.IsZero() {
		return bignum.BigInt{}
	}
	gx := new(gmp.Int).SetBytes(x.Big().Bytes())
	gy := new(gmp.Int).SetBytes(y.Big().Bytes())
	gz := new(gmp.Int).Mul(gx, gy)
	p, _ := bignum.Adopt(new(big.Int).SetBytes(gz.Bytes()))
	return p
}
