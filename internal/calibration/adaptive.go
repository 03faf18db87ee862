package calibration

import (
	"math/bits"
	"sort"

	"github.com/agbru/billionfib/internal/config"
	"github.com/agbru/billionfib/internal/karatsuba"
)

// GenerateCutoffs returns the Karatsuba cutoffs, in bits, tried by a full
// calibration. The list always contains the current adaptive estimate.
func GenerateCutoffs() []int {
	cutoffs := []int{karatsuba.MinCutoff, 128, 256, 512, 768, 1024, karatsuba.DefaultCutoff, 2048, 3072, 4096}
	if bits.UintSize == 32 {
		cutoffs = cutoffs[:len(cutoffs)-2]
	}
	return withEstimate(cutoffs)
}

// GenerateQuickCutoffs returns a smaller set for quick runs.
func GenerateQuickCutoffs() []int {
	return withEstimate([]int{512, karatsuba.DefaultCutoff, 3072})
}

func withEstimate(cutoffs []int) []int {
	est := config.EstimateOptimalCutoff()
	for _, c := range cutoffs {
		if c == est {
			return cutoffs
		}
	}
	cutoffs = append(cutoffs, est)
	sort.Ints(cutoffs)
	return cutoffs
}
