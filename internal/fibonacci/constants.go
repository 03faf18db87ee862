package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Performance Tuning Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultN is the index computed by the demo when none is given.
	// F(1,000,000,000) has approximately 208,987,640 decimal digits.
	DefaultN = 1_000_000_000

	// CalibrationN is the standard Fibonacci index used for cutoff
	// calibration runs. It is large enough for the recursion to dominate
	// and small enough to time several cutoffs in a few seconds.
	//
	// F(2,000,000) has approximately 417,975 decimal digits.
	CalibrationN = 2_000_000

	// TableSize is the default number of trailing terms printed after the
	// main result, F(0) through F(TableSize).
	TableSize = 15
)

// ─────────────────────────────────────────────────────────────────────────────
// Progress Reporting Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// FibonacciGrowthFactor is log2(phi), where phi ≈ 1.618 (golden ratio).
	// Used to estimate bit length of F(n).
	FibonacciGrowthFactor = 0.69424

	// DigitsPerBit is log10(2), used to estimate decimal digits from bits.
	DigitsPerBit = 0.30103

	// ProgressReportThreshold is the minimum progress delta between two
	// callback invocations.
	ProgressReportThreshold = 0.01
)

// EstimateBits returns the approximate bit length of F(n).
func EstimateBits(n uint64) uint64 {
	return uint64(float64(n)*FibonacciGrowthFactor) + 1
}

// EstimateDigits returns the approximate number of decimal digits of F(n).
func EstimateDigits(n uint64) uint64 {
	return uint64(float64(n)*FibonacciGrowthFactor*DigitsPerBit) + 1
}
