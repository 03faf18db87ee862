package config

import "math/bits"

// Cutoff resolution chain (highest priority first):
//   1. CLI flag (--cutoff)
//   2. Environment variable (BILLIONFIB_CUTOFF)
//   3. Adaptive word-size estimation (this file), when the value is 0
//
// --calibrate measures the best value empirically for the current machine.

// ApplyAdaptiveCutoff replaces a zero cutoff with a word-size estimate,
// preserving any explicit value.
func ApplyAdaptiveCutoff(cfg AppConfig) AppConfig {
	if cfg.Cutoff == 0 {
		cfg.Cutoff = EstimateOptimalCutoff()
	}
	return cfg
}

// EstimateOptimalCutoff returns a heuristic cutoff without running
// benchmarks. The crossover sits around 24 machine words on both 32 and
// 64-bit targets.
func EstimateOptimalCutoff() int {
	return 24 * bits.UintSize
}
