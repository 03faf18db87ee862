// Package orchestration runs Fibonacci computations concurrently: the
// small sequence table printed after the main result, and cross-checking a
// result across every base multiplier.
package orchestration
