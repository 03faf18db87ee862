// Package cli renders billionfib's terminal output: the timing line, the
// table of small Fibonacci numbers, progress and the --details report.
//
// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayTiming], [DisplaySequence], [DisplaySummary].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatTiming], [FormatSequence], [FormatPreview].
package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agbru/billionfib/internal/bignum"
	"github.com/agbru/billionfib/internal/format"
	"github.com/agbru/billionfib/internal/ui"
)

const (
	// TruncationLimit is the digit count from which a result preview is
	// truncated.
	TruncationLimit = 100
	// DisplayEdges is the number of digits kept at each end of a truncated
	// preview.
	DisplayEdges = 25
)

// FormatTiming returns the elapsed-time line printed after the main
// computation. Seconds are whole seconds, truncated.
func FormatTiming(n uint64, d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("Time taken to compute %dth fibonacci number: %d ms. or %d s.", n, ms, ms/1000)
}

// DisplayTiming writes the timing line.
func DisplayTiming(out io.Writer, n uint64, d time.Duration) {
	fmt.Fprintln(out, FormatTiming(n, d))
}

// FormatSequence joins values with single spaces.
func FormatSequence(values []bignum.BigInt) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

// DisplaySequence writes the sequence on one line.
func DisplaySequence(out io.Writer, values []bignum.BigInt) {
	fmt.Fprintln(out, FormatSequence(values))
}

// FormatPreview shortens a long decimal string to its first and last
// DisplayEdges digits.
func FormatPreview(digits string) string {
	if len(digits) <= TruncationLimit {
		return digits
	}
	return digits[:DisplayEdges] + "..." + digits[len(digits)-DisplayEdges:]
}

// Summary describes a finished computation for DisplaySummary.
type Summary struct {
	N        uint64
	Bits     int
	Digits   string
	Path     string
	Duration time.Duration
}

// DisplaySummary writes a short styled report of the result.
func DisplaySummary(out io.Writer, s Summary) {
	st := ui.CurrentStyles()
	fmt.Fprintln(out, st.Title.Render(fmt.Sprintf("F(%s)", format.FormatNumber(s.N))))
	fmt.Fprintln(out, st.KeyValue("Computation time", format.FormatExecutionDuration(s.Duration)))
	fmt.Fprintln(out, st.KeyValue("Binary size", format.FormatNumber(uint64(s.Bits))+" bits"))
	fmt.Fprintln(out, st.KeyValue("Decimal digits", format.FormatNumber(uint64(len(s.Digits)))))
	fmt.Fprintln(out, st.KeyValue("Value", FormatPreview(s.Digits)))
	if s.Path != "" {
		fmt.Fprintf(out, "%s✓ Result saved to: %s%s%s\n", ui.ColorGreen(), ui.ColorCyan(), s.Path, ui.ColorReset())
	}
}

// DisplayMemoryStats shows memory statistics after a calculation.
func DisplayMemoryStats(out io.Writer, heapAlloc, totalAlloc uint64, numGC uint32, pauseTotalNs uint64) {
	st := ui.CurrentStyles()
	fmt.Fprintln(out, st.Section.Render("Memory"))
	fmt.Fprintln(out, st.KeyValue("Heap in use", format.FormatBytes(heapAlloc)))
	fmt.Fprintln(out, st.KeyValue("Total allocated", format.FormatBytes(totalAlloc)))
	fmt.Fprintln(out, st.KeyValue("GC cycles", fmt.Sprint(numGC)))
	if pauseTotalNs > 0 {
		fmt.Fprintln(out, st.KeyValue("GC pause total", fmt.Sprintf("%.2fms", float64(pauseTotalNs)/1e6)))
	} else {
		fmt.Fprintln(out, st.KeyValue("GC pause total", "0ms (GC disabled)"))
	}
}

// DisplayMultiplications shows the Karatsuba recursion counts.
func DisplayMultiplications(out io.Writer, base, split uint64) {
	st := ui.CurrentStyles()
	fmt.Fprintln(out, st.Section.Render("Multiplications"))
	fmt.Fprintln(out, st.KeyValue("Base-case products", format.FormatNumber(base)))
	fmt.Fprintln(out, st.KeyValue("Karatsuba splits", format.FormatNumber(split)))
}
