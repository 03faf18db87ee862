package sysmon

import (
	"runtime"
	"testing"
)

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
	if s.MemFree > s.MemTotal {
		t.Errorf("MemFree %d exceeds MemTotal %d", s.MemFree, s.MemTotal)
	}
}

func TestSample_MemPercentNonZero(t *testing.T) {
	s := Sample()
	if s.MemPercent == 0 {
		t.Error("expected non-zero MemPercent on a running system")
	}
}

func TestDescribeHost(t *testing.T) {
	h := DescribeHost()
	if h.GOOS != runtime.GOOS || h.GOARCH != runtime.GOARCH {
		t.Errorf("platform = %s/%s, want %s/%s", h.GOOS, h.GOARCH, runtime.GOOS, runtime.GOARCH)
	}
	if h.LogicalCores < 1 || h.PhysicalCores < 1 {
		t.Errorf("core counts should be positive: %+v", h)
	}
	if h.CPUModel == "" {
		t.Error("CPUModel should never be empty")
	}
}

func TestStatsFits(t *testing.T) {
	tests := []struct {
		name string
		s    Stats
		need uint64
		want bool
	}{
		{"unknown", Stats{}, 1 << 40, true},
		{"enough", Stats{MemFree: 1 << 30}, 1 << 20, true},
		{"too little", Stats{MemFree: 1 << 20}, 1 << 30, false},
	}
	for _, tt := range tests {
		if got := tt.s.Fits(tt.need); got != tt.want {
			t.Errorf("%s: Fits(%d) = %v, want %v", tt.name, tt.need, got, tt.want)
		}
	}
}
