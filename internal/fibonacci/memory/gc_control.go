// Package memory controls the Go garbage collector around very large
// computations.
package memory

import (
	"fmt"
	"math"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// GCMode controls the garbage collector behavior during calculation.
type GCMode string

const (
	GCModeAuto       GCMode = "auto"
	GCModeAggressive GCMode = "aggressive"
	GCModeDisabled   GCMode = "disabled"
)

// GCAutoThreshold is the minimum N for auto GC control to activate. Below it
// the live set is small and collection pauses are negligible.
const GCAutoThreshold uint64 = 10_000_000

// liveOperands approximates how many result-sized values are alive at once
// during a doubling step: a, b, 2b-a, three products and the Karatsuba
// temporaries of the largest one.
const liveOperands = 12

// ParseGCMode validates a mode name.
func ParseGCMode(s string) (GCMode, error) {
	switch m := GCMode(s); m {
	case GCModeAuto, GCModeAggressive, GCModeDisabled:
		return m, nil
	}
	return "", fmt.Errorf("unknown gc mode %q (want auto, aggressive or disabled)", s)
}

// GCController suspends garbage collection while F(n) is computed and
// restores it afterward, trading peak memory for fewer pauses. A soft memory
// limit stays in place as an OOM safety net.
type GCController struct {
	mode              GCMode
	active            bool
	resultBytes       uint64
	originalGCPercent int
	logger            zerolog.Logger
	startStats        runtime.MemStats
	endStats          runtime.MemStats
}

// GCStats holds GC statistics for a calculation.
type GCStats struct {
	HeapAlloc    uint64
	TotalAlloc   uint64
	NumGC        uint32
	PauseTotalNs uint64
}

// NewGCController creates a controller for computing F(n) whose result is
// expected to occupy resultBytes.
func NewGCController(mode GCMode, n, resultBytes uint64) *GCController {
	gc := &GCController{mode: mode, resultBytes: resultBytes, logger: zerolog.Nop()}
	switch mode {
	case GCModeAggressive:
		gc.active = true
	case GCModeAuto:
		gc.active = n >= GCAutoThreshold
	}
	return gc
}

// SetLogger configures the logger for GC control events.
func (gc *GCController) SetLogger(l zerolog.Logger) {
	gc.logger = l
}

// Active reports whether Begin will change collector settings.
func (gc *GCController) Active() bool { return gc.active }

// Begin disables GC if the controller is active.
func (gc *GCController) Begin() {
	if !gc.active {
		return
	}
	runtime.ReadMemStats(&gc.startStats)
	gc.originalGCPercent = debug.SetGCPercent(-1)
	limit := gc.memoryLimit()
	debug.SetMemoryLimit(limit)
	gc.logger.Debug().
		Str("mode", string(gc.mode)).
		Uint64("heap_alloc_bytes", gc.startStats.HeapAlloc).
		Int64("memory_limit_bytes", limit).
		Msg("gc disabled")
}

// End restores original GC settings and triggers a collection.
func (gc *GCController) End() {
	if !gc.active {
		return
	}
	runtime.ReadMemStats(&gc.endStats)
	debug.SetGCPercent(gc.originalGCPercent)
	debug.SetMemoryLimit(math.MaxInt64)
	runtime.GC()
	stats := gc.Stats()
	gc.logger.Debug().
		Str("mode", string(gc.mode)).
		Uint64("heap_alloc_bytes", stats.HeapAlloc).
		Uint64("total_alloc_bytes", stats.TotalAlloc).
		Uint32("gc_cycles", stats.NumGC).
		Msg("gc re-enabled")
}

// Stats returns GC statistics delta between Begin and End.
func (gc *GCController) Stats() GCStats {
	return GCStats{
		HeapAlloc:    gc.endStats.HeapAlloc,
		TotalAlloc:   gc.endStats.TotalAlloc - gc.startStats.TotalAlloc,
		NumGC:        gc.endStats.NumGC - gc.startStats.NumGC,
		PauseTotalNs: gc.endStats.PauseTotalNs - gc.startStats.PauseTotalNs,
	}
}

// memoryLimit is the larger of three times the current footprint and the
// estimated working set of the doubling loop.
func (gc *GCController) memoryLimit() int64 {
	limit := gc.startStats.Sys * 3
	if ws := gc.resultBytes * liveOperands; ws > limit {
		limit = ws
	}
	if limit > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(limit)
}
