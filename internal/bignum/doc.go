// Package bignum provides BigInt, an immutable arbitrary-precision
// non-negative integer, together with the primitive operations the
// Karatsuba multiplier and the fast-doubling engine are built from
// (addition, subtraction, shifts, masking, bit length and comparison).
//
// Multiplication is deliberately absent: it is supplied by package
// karatsuba so that the base-case strategy can be swapped independently
// of the value type.
package bignum
