package bignum

import (
	"errors"
	"fmt"
	"math/big"
	"testing"
)

func mustParse(t *testing.T, s string) BigInt {
	t.Helper()
	v, err := ParseDecimal(s)
	if err != nil {
		t.Fatalf("ParseDecimal(%q) failed: %v", s, err)
	}
	return v
}

func TestZeroValue(t *testing.T) {
	t.Parallel()
	var z BigInt
	if !z.IsZero() {
		t.Error("zero value should be zero")
	}
	if z.BitLen() != 0 {
		t.Errorf("BitLen() = %d, want 0", z.BitLen())
	}
	if z.String() != "0" {
		t.Errorf("String() = %q, want %q", z.String(), "0")
	}
	if len(z.Words()) != 0 {
		t.Errorf("Words() should be empty, got %v", z.Words())
	}
	if !z.Equal(FromUint64(0)) {
		t.Error("zero value should equal FromUint64(0)")
	}
}

func TestConstruction(t *testing.T) {
	t.Parallel()

	t.Run("FromInt64 rejects negatives", func(t *testing.T) {
		t.Parallel()
		if _, err := FromInt64(-1); !errors.Is(err, ErrInvalidOperation) {
			t.Errorf("FromInt64(-1) error = %v, want ErrInvalidOperation", err)
		}
		v, err := FromInt64(42)
		if err != nil {
			t.Fatalf("FromInt64(42) failed: %v", err)
		}
		if v.String() != "42" {
			t.Errorf("FromInt64(42) = %s", v)
		}
	})

	t.Run("FromBig copies", func(t *testing.T) {
		t.Parallel()
		src := big.NewInt(7)
		v, err := FromBig(src)
		if err != nil {
			t.Fatalf("FromBig failed: %v", err)
		}
		src.SetInt64(99)
		if v.String() != "7" {
			t.Errorf("FromBig did not copy: got %s", v)
		}
		if _, err := FromBig(big.NewInt(-3)); !errors.Is(err, ErrInvalidOperation) {
			t.Errorf("FromBig(-3) error = %v, want ErrInvalidOperation", err)
		}
	})

	t.Run("FromWords normalizes", func(t *testing.T) {
		t.Parallel()
		v := FromWords([]big.Word{5, 0, 0})
		if len(v.Words()) != 1 {
			t.Errorf("FromWords kept leading zero limbs: %v", v.Words())
		}
		if v.String() != "5" {
			t.Errorf("FromWords = %s, want 5", v)
		}
	})

	t.Run("ParseDecimal", func(t *testing.T) {
		t.Parallel()
		for _, bad := range []string{"", "-1", "+1", "12a", "0x10"} {
			if _, err := ParseDecimal(bad); !errors.Is(err, ErrInvalidSyntax) {
				t.Errorf("ParseDecimal(%q) error = %v, want ErrInvalidSyntax", bad, err)
			}
		}
		s := "354224848179261915075"
		if got := mustParse(t, s).String(); got != s {
			t.Errorf("round trip = %s, want %s", got, s)
		}
	})
}

func TestAddSub(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		x, y string
		sum  string
	}{
		{"zeros", "0", "0", "0"},
		{"zero left", "0", "17", "17"},
		{"carry across limb", "18446744073709551615", "1", "18446744073709551616"},
		{"large", "123456789012345678901234567890", "987654321098765432109876543210", "1111111110111111111011111111100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			x, y := mustParse(t, tt.x), mustParse(t, tt.y)
			sum := x.Add(y)
			if sum.String() != tt.sum {
				t.Fatalf("%s + %s = %s, want %s", tt.x, tt.y, sum, tt.sum)
			}
			back, err := sum.Sub(y)
			if err != nil {
				t.Fatalf("Sub failed: %v", err)
			}
			if !back.Equal(x) {
				t.Errorf("(%s + %s) - %s = %s, want %s", tt.x, tt.y, tt.y, back, tt.x)
			}
		})
	}
}

func TestSubUnderflow(t *testing.T) {
	t.Parallel()
	_, err := FromUint64(3).Sub(FromUint64(4))
	if !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("3 - 4 error = %v, want ErrInvalidOperation", err)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustSub should panic on underflow")
		}
	}()
	FromUint64(3).MustSub(FromUint64(4))
}

func TestShifts(t *testing.T) {
	t.Parallel()
	one := FromUint64(1)

	if got := one.Lsh(100).BitLen(); got != 101 {
		t.Errorf("(1<<100).BitLen() = %d, want 101", got)
	}
	if got := one.Lsh(100).Rsh(100); !got.Equal(one) {
		t.Errorf("(1<<100)>>100 = %s, want 1", got)
	}
	if got := one.Lsh(64).Rsh(200); !got.IsZero() {
		t.Errorf("(1<<64)>>200 = %s, want 0", got)
	}
	if got := FromUint64(0).Lsh(10); !got.IsZero() {
		t.Errorf("0<<10 = %s, want 0", got)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Rsh with a negative count should panic")
		}
	}()
	one.Rsh(-1)
}

func TestMaskAndLowBits(t *testing.T) {
	t.Parallel()
	x := mustParse(t, "340282366920938463463374607431768211455") // 2^128 - 1

	for _, n := range []uint{0, 1, 31, 32, 33, 63, 64, 65, 100, 128, 200} {
		want := x.And(Mask(n))
		got := x.LowBits(n)
		if !got.Equal(want) {
			t.Errorf("LowBits(%d) = %s, want %s", n, got, want)
		}
		expectedLen := int(n)
		if expectedLen > 128 {
			expectedLen = 128
		}
		if got.BitLen() != expectedLen {
			t.Errorf("LowBits(%d).BitLen() = %d, want %d", n, got.BitLen(), expectedLen)
		}
	}

	if Mask(0).BitLen() != 0 {
		t.Error("Mask(0) should be zero")
	}
	if Mask(70).BitLen() != 70 {
		t.Errorf("Mask(70).BitLen() = %d, want 70", Mask(70).BitLen())
	}
}

func TestImmutability(t *testing.T) {
	t.Parallel()
	x := mustParse(t, "99999999999999999999999999")
	y := mustParse(t, "11111111111111111111111111")
	before := x.String()

	_ = x.Add(y)
	_, _ = x.Sub(y)
	_ = x.Lsh(17)
	_ = x.Rsh(5)
	_ = x.And(y)
	_ = x.LowBits(40)
	b := x.Big()
	b.SetInt64(1)
	w := x.Words()
	w[0] = 0

	if x.String() != before {
		t.Errorf("operations mutated operand: %s -> %s", before, x.String())
	}
}

func TestCmpAndFormat(t *testing.T) {
	t.Parallel()
	a, b := FromUint64(10), FromUint64(20)
	if a.Cmp(b) != -1 || b.Cmp(a) != 1 || a.Cmp(FromUint64(10)) != 0 {
		t.Error("Cmp returned inconsistent ordering")
	}
	if v, ok := FromUint64(12345).Uint64(); !ok || v != 12345 {
		t.Errorf("Uint64() = %d, %v", v, ok)
	}
	if _, ok := FromUint64(1).Lsh(64).Uint64(); ok {
		t.Error("2^64 should not fit in uint64")
	}

	if got := fmt.Sprintf("%d|%v|%s", FromUint64(6765), FromUint64(55), BigInt{}); got != "6765|55|0" {
		t.Errorf("formatted = %q", got)
	}
}
