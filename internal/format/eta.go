package format

import (
	"fmt"
	"strings"
	"time"
)

// etaSmoothing weights the newest rate sample in the moving average.
const etaSmoothing = 0.3

// ETA estimates the remaining time of a single computation from successive
// progress readings. It is not safe for concurrent use.
type ETA struct {
	now       func() time.Time
	lastTime  time.Time
	progress  float64
	rate      float64 // progress per second, smoothed
	hasSample bool
}

// NewETA starts an estimator at the current time.
func NewETA() *ETA {
	return newETA(time.Now)
}

func newETA(now func() time.Time) *ETA {
	return &ETA{now: now, lastTime: now()}
}

// Update records a progress reading in [0, 1] and returns the clamped
// progress with the new estimate.
func (e *ETA) Update(progress float64) (float64, time.Duration) {
	progress = min(max(progress, 0), 1)
	t := e.now()
	if dt := t.Sub(e.lastTime).Seconds(); dt > 0 && progress > e.progress {
		sample := (progress - e.progress) / dt
		if e.hasSample {
			e.rate = etaSmoothing*sample + (1-etaSmoothing)*e.rate
		} else {
			e.rate = sample
			e.hasSample = true
		}
		e.lastTime = t
	}
	e.progress = progress
	return progress, e.Remaining()
}

// Remaining returns the current estimate, zero when unknown or done.
func (e *ETA) Remaining() time.Duration {
	if e.rate <= 0 || e.progress >= 1 {
		return 0
	}
	return time.Duration((1 - e.progress) / e.rate * float64(time.Second))
}

// FormatProgressBarWithETA renders "[####----]  50.0% ETA: 30s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	progress = min(max(progress, 0), 1)
	width = max(width, 1)
	filled := int(progress * float64(width))
	bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
	label := FormatETA(eta)
	if progress >= 1 {
		label = "done"
	}
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", bar, progress*100, label)
}
