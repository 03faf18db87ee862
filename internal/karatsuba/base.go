package karatsuba

import (
	"fmt"
	"math/big"
	"math/bits"
	"sort"
	"sync"

	"github.com/agbru/billionfib/internal/bignum"
)

// Native multiplies with math/big. It is the default base multiplier.
type Native struct{}

// Multiply returns x * y.
func (Native) Multiply(x, y bignum.BigInt) bignum.BigInt {
	if x.IsZero() || y.IsZero() {
		return bignum.BigInt{}
	}
	p, _ := bignum.Adopt(new(big.Int).Mul(x.Big(), y.Big()))
	return p
}

// Schoolbook is the quadratic limb-by-limb multiplication. It is slow but
// simple enough to serve as a trusted reference.
type Schoolbook struct{}

// Multiply returns x * y.
func (Schoolbook) Multiply(x, y bignum.BigInt) bignum.BigInt {
	xw, yw := x.Words(), y.Words()
	if len(xw) == 0 || len(yw) == 0 {
		return bignum.BigInt{}
	}
	z := make([]big.Word, len(xw)+len(yw))
	for i, xi := range xw {
		var carry uint
		for j, yj := range yw {
			hi, lo := bits.Mul(uint(xi), uint(yj))
			var c uint
			lo, c = bits.Add(lo, uint(z[i+j]), 0)
			hi += c
			lo, c = bits.Add(lo, carry, 0)
			hi += c
			z[i+j] = big.Word(lo)
			carry = hi
		}
		z[i+len(yw)] = big.Word(carry)
	}
	return bignum.FromWords(z)
}

// BaseFactory creates a base-case multiplier.
type BaseFactory func() Multiplier

var (
	basesMu sync.RWMutex
	bases   = map[string]BaseFactory{
		"native":     func() Multiplier { return Native{} },
		"schoolbook": func() Multiplier { return Schoolbook{} },
	}
)

// RegisterBase makes a base multiplier available under name. Registering
// the same name twice replaces the previous factory.
func RegisterBase(name string, f BaseFactory) {
	basesMu.Lock()
	defer basesMu.Unlock()
	bases[name] = f
}

// Base returns a new base multiplier registered under name.
func Base(name string) (Multiplier, error) {
	basesMu.RLock()
	f, ok := bases[name]
	basesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown base multiplier %q (available: %v)", name, Bases())
	}
	return f(), nil
}

// Bases returns the registered base multiplier names in sorted order.
func Bases() []string {
	basesMu.RLock()
	defer basesMu.RUnlock()
	names := make([]string, 0, len(bases))
	for name := range bases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
