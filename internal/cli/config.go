package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/agbru/billionfib/internal/config"
	"github.com/agbru/billionfib/internal/format"
	"github.com/agbru/billionfib/internal/sysmon"
	"github.com/agbru/billionfib/internal/ui"
)

// PrintExecutionConfig displays the execution configuration: target index,
// multiplier settings, output path and environment.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Computing %sF(%s)%s", ui.ColorMagenta(), format.FormatNumber(uint64(cfg.N)), ui.ColorReset())
	if cfg.Timeout > 0 {
		fmt.Fprintf(out, " with a timeout of %s%s%s", ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	}
	fmt.Fprintf(out, ".\n")
	fmt.Fprintf(out, "Multiplier: Karatsuba, cutoff %s%d%s bits, %s%s%s base.\n",
		ui.ColorCyan(), cfg.Cutoff, ui.ColorReset(), ui.ColorCyan(), cfg.Base, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s, %s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset(), FormatCPUFeatures())
	fmt.Fprintf(out, "Output: %s\n", cfg.OutputPath())
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}

// FormatCPUFeatures lists the instruction-set extensions relevant to
// multi-precision arithmetic that the CPU supports.
func FormatCPUFeatures() string {
	var feats []string
	switch runtime.GOARCH {
	case "amd64", "386":
		for _, f := range []struct {
			name string
			ok   bool
		}{
			{"ADX", cpu.X86.HasADX},
			{"BMI2", cpu.X86.HasBMI2},
			{"AVX2", cpu.X86.HasAVX2},
			{"AVX512F", cpu.X86.HasAVX512F},
		} {
			if f.ok {
				feats = append(feats, f.name)
			}
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			feats = append(feats, "ASIMD")
		}
		if cpu.ARM64.HasSVE {
			feats = append(feats, "SVE")
		}
	}
	if len(feats) == 0 {
		return "no extended arithmetic features"
	}
	return "CPU features " + strings.Join(feats, " ")
}

// DisplayHost shows the machine description and a resource snapshot.
func DisplayHost(out io.Writer, host sysmon.Host, stats sysmon.Stats) {
	st := ui.CurrentStyles()
	fmt.Fprintln(out, st.Section.Render("System"))
	fmt.Fprintln(out, st.KeyValue("CPU", host.CPUModel))
	fmt.Fprintln(out, st.KeyValue("Cores", fmt.Sprintf("%d physical, %d logical", host.PhysicalCores, host.LogicalCores)))
	fmt.Fprintln(out, st.KeyValue("Platform", host.GOOS+"/"+host.GOARCH))
	fmt.Fprintln(out, st.KeyValue("CPU usage", fmt.Sprintf("%.1f%%", stats.CPUPercent)))
	if stats.MemTotal > 0 {
		fmt.Fprintln(out, st.KeyValue("Memory", fmt.Sprintf("%s free of %s (%.1f%% used)",
			format.FormatBytes(stats.MemFree), format.FormatBytes(stats.MemTotal), stats.MemPercent)))
	}
}
