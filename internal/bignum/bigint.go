package bignum

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
)

// WordBits is the width of one limb in bits (32 or 64 depending on GOARCH).
const WordBits = bits.UintSize

var (
	// ErrInvalidOperation is returned when an operation would leave the
	// non-negative domain, e.g. subtracting a larger value from a smaller one.
	ErrInvalidOperation = errors.New("bignum: invalid operation")

	// ErrInvalidSyntax is returned by ParseDecimal for malformed input.
	ErrInvalidSyntax = errors.New("bignum: invalid decimal syntax")
)

// zero backs the zero value of BigInt. It is never written to.
var zero = new(big.Int)

// BigInt is an immutable arbitrary-precision non-negative integer.
//
// The magnitude is stored as little-endian big.Word limbs inside a *big.Int
// that is owned exclusively by the BigInt and never modified after
// construction, so values may be shared freely between goroutines and
// recursive calls. The zero value represents 0.
//
// Use Equal, not ==, to compare two values.
type BigInt struct {
	v *big.Int
}

// wrap takes ownership of v. Callers must not retain or mutate v afterwards.
func wrap(v *big.Int) BigInt {
	if v.Sign() == 0 {
		return BigInt{}
	}
	return BigInt{v: v}
}

func (x BigInt) get() *big.Int {
	if x.v == nil {
		return zero
	}
	return x.v
}

// FromUint64 returns the BigInt with value v.
func FromUint64(v uint64) BigInt {
	return wrap(new(big.Int).SetUint64(v))
}

// FromInt64 returns the BigInt with value v. Negative values are rejected.
func FromInt64(v int64) (BigInt, error) {
	if v < 0 {
		return BigInt{}, fmt.Errorf("%w: negative value %d", ErrInvalidOperation, v)
	}
	return wrap(big.NewInt(v)), nil
}

// FromBig returns a BigInt holding a copy of v's magnitude. A negative v is
// rejected.
func FromBig(v *big.Int) (BigInt, error) {
	if v == nil {
		return BigInt{}, nil
	}
	if v.Sign() < 0 {
		return BigInt{}, fmt.Errorf("%w: negative value", ErrInvalidOperation)
	}
	return wrap(new(big.Int).Set(v)), nil
}

// Adopt wraps v without copying it. The caller hands over ownership and
// must not read or modify v afterwards. A negative v is rejected.
func Adopt(v *big.Int) (BigInt, error) {
	if v == nil {
		return BigInt{}, nil
	}
	if v.Sign() < 0 {
		return BigInt{}, fmt.Errorf("%w: negative value", ErrInvalidOperation)
	}
	return wrap(v), nil
}

// FromWords builds a BigInt from little-endian limbs. The slice is copied
// and superfluous leading zero limbs are dropped.
func FromWords(words []big.Word) BigInt {
	buf := make([]big.Word, len(words))
	copy(buf, words)
	return wrap(new(big.Int).SetBits(buf))
}

// ParseDecimal parses an unsigned base-10 string.
func ParseDecimal(s string) (BigInt, error) {
	if s == "" || s[0] == '-' || s[0] == '+' {
		return BigInt{}, fmt.Errorf("%w: %q", ErrInvalidSyntax, s)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigInt{}, fmt.Errorf("%w: %q", ErrInvalidSyntax, s)
	}
	return wrap(v), nil
}

// Add returns x + y.
func (x BigInt) Add(y BigInt) BigInt {
	if x.IsZero() {
		return y
	}
	if y.IsZero() {
		return x
	}
	return wrap(new(big.Int).Add(x.v, y.v))
}

// Sub returns x - y, or ErrInvalidOperation if y > x.
func (x BigInt) Sub(y BigInt) (BigInt, error) {
	if x.Cmp(y) < 0 {
		return BigInt{}, fmt.Errorf("%w: subtrahend (%d bits) exceeds minuend (%d bits)",
			ErrInvalidOperation, y.BitLen(), x.BitLen())
	}
	if y.IsZero() {
		return x, nil
	}
	return wrap(new(big.Int).Sub(x.v, y.v)), nil
}

// MustSub is like Sub but panics if y > x. It is meant for call sites where
// y <= x holds by construction; reaching the panic is a bug.
func (x BigInt) MustSub(y BigInt) BigInt {
	d, err := x.Sub(y)
	if err != nil {
		panic(err)
	}
	return d
}

// Lsh returns x << n.
func (x BigInt) Lsh(n uint) BigInt {
	if x.IsZero() || n == 0 {
		return x
	}
	return wrap(new(big.Int).Lsh(x.v, n))
}

// Rsh returns x >> n. It panics if n is negative.
func (x BigInt) Rsh(n int) BigInt {
	if n < 0 {
		panic(fmt.Sprintf("bignum: negative shift count %d", n))
	}
	if n == 0 || x.IsZero() {
		return x
	}
	if n >= x.BitLen() {
		return BigInt{}
	}
	return wrap(new(big.Int).Rsh(x.v, uint(n)))
}

// And returns the bitwise AND of x and y.
func (x BigInt) And(y BigInt) BigInt {
	if x.IsZero() || y.IsZero() {
		return BigInt{}
	}
	return wrap(new(big.Int).And(x.v, y.v))
}

// Mask returns 2^n - 1.
func Mask(n uint) BigInt {
	if n == 0 {
		return BigInt{}
	}
	one := big.NewInt(1)
	m := new(big.Int).Lsh(one, n)
	return wrap(m.Sub(m, one))
}

// LowBits returns x AND (2^n - 1) without materializing the mask. It only
// copies the limbs that survive the mask.
func (x BigInt) LowBits(n uint) BigInt {
	if x.IsZero() || n == 0 {
		return BigInt{}
	}
	if uint(x.BitLen()) <= n {
		return x
	}
	words := x.v.Bits()
	full := n / WordBits
	rem := n % WordBits
	size := full
	if rem != 0 {
		size++
	}
	buf := make([]big.Word, size)
	copy(buf, words[:size])
	if rem != 0 {
		buf[size-1] &= big.Word(1)<<rem - 1
	}
	return wrap(new(big.Int).SetBits(buf))
}

// BitLen returns the minimal number of bits needed to represent x.
// BitLen of 0 is 0.
func (x BigInt) BitLen() int {
	return x.get().BitLen()
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x BigInt) Cmp(y BigInt) int {
	return x.get().Cmp(y.get())
}

// Equal reports whether x and y hold the same value.
func (x BigInt) Equal(y BigInt) bool {
	return x.Cmp(y) == 0
}

// IsZero reports whether x == 0.
func (x BigInt) IsZero() bool {
	return x.v == nil || x.v.Sign() == 0
}

// Sign returns 0 if x is zero and +1 otherwise.
func (x BigInt) Sign() int {
	return x.get().Sign()
}

// Words returns a copy of x's little-endian limbs. Zero has no limbs.
func (x BigInt) Words() []big.Word {
	src := x.get().Bits()
	out := make([]big.Word, len(src))
	copy(out, src)
	return out
}

// Uint64 returns the low 64 bits of x and whether x fits in a uint64.
func (x BigInt) Uint64() (uint64, bool) {
	v := x.get()
	return v.Uint64(), v.IsUint64()
}

// Big returns a mutable copy of x as a *big.Int.
func (x BigInt) Big() *big.Int {
	return new(big.Int).Set(x.get())
}

// String returns the base-10 representation of x, without sign or leading
// zeros ("0" for zero).
func (x BigInt) String() string {
	return x.get().String()
}

// Format implements fmt.Formatter by delegating to big.Int.
func (x BigInt) Format(s fmt.State, ch rune) {
	x.get().Format(s, ch)
}
