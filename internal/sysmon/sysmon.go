// Package sysmon provides system-wide CPU and memory information for the
// --details report.
package sysmon

import (
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	MemTotal   uint64  // bytes
	MemFree    uint64  // bytes available without swapping
}

// Host describes the machine a computation runs on.
type Host struct {
	CPUModel      string
	PhysicalCores int
	LogicalCores  int
	GOOS          string
	GOARCH        string
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.MemTotal = vmem.Total
		s.MemFree = vmem.Available
	}
	return s
}

// DescribeHost returns CPU and platform information. Fields gopsutil cannot
// read fall back to the Go runtime's view.
func DescribeHost() Host {
	h := Host{
		LogicalCores: runtime.NumCPU(),
		GOOS:         runtime.GOOS,
		GOARCH:       runtime.GOARCH,
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		h.CPUModel = infos[0].ModelName
	}
	if n, err := cpu.Counts(false); err == nil && n > 0 {
		h.PhysicalCores = n
	} else {
		h.PhysicalCores = h.LogicalCores
	}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		h.LogicalCores = n
	}
	if h.CPUModel == "" {
		h.CPUModel = "unknown"
	}
	return h
}

// Fits reports whether roughly need bytes are available, using the
// snapshot's free memory. An unknown reading always fits.
func (s Stats) Fits(need uint64) bool {
	return s.MemFree == 0 || need <= s.MemFree
}
