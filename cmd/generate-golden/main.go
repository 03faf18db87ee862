// Command generate-golden regenerates internal/fibonacci/testdata with
// values from a linear math/big oracle that shares no code with the engine.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
)

// GoldenData is one entry of the golden file.
type GoldenData struct {
	N      uint64 `json:"n"`
	Result string `json:"result"`
}

// defaultTargets covers the first terms, the uint64 overflow boundary and
// a handful of multi-word results.
var defaultTargets = []uint64{0, 1, 2, 3, 4, 5, 10, 15, 20, 50, 92, 93, 94, 100, 1000}

func main() {
	outputDir := flag.String("out", "internal/fibonacci/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := run(*outputDir, defaultTargets, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dir string, targets []uint64, log io.Writer) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	filename := filepath.Join(dir, "fibonacci_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := writeGolden(file, targets); err != nil {
		return err
	}
	fmt.Fprintf(log, "Wrote %d entries to %s\n", len(targets), filename)
	return nil
}

// writeGolden encodes F(n) for every target as an indented JSON array.
func writeGolden(w io.Writer, targets []uint64) error {
	data := make([]GoldenData, 0, len(targets))
	for _, n := range targets {
		data = append(data, GoldenData{N: n, Result: fibBig(n).String()})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// fibBig returns F(n) by plain iteration.
func fibBig(n uint64) *big.Int {
	a, b := big.NewInt(0), big.NewInt(1)
	for i := uint64(0); i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a
}
