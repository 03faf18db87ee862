package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/agbru/billionfib/internal/format"
	"github.com/agbru/billionfib/internal/orchestration"
	"github.com/agbru/billionfib/internal/ui"
)

// DisplayVerification prints one row per base multiplier with its duration
// and status, followed by the global verdict.
func DisplayVerification(out io.Writer, n uint64, results []orchestration.CalculationResult, err error) {
	fmt.Fprintf(out, "\n--- Verification of F(%s) ---\n", format.FormatNumber(n))
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%sBase%s\t%sDuration%s\t%sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())
	for _, r := range results {
		status := fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		duration := format.FormatExecutionDuration(r.Duration)
		if r.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), r.Err, ui.ColorReset())
			duration = "N/A"
		}
		fmt.Fprintf(tw, "%s%s%s\t%s%s%s\t%s\n", ui.ColorBlue(), r.Name, ui.ColorReset(), ui.ColorYellow(), duration, ui.ColorReset(), status)
	}
	tw.Flush()

	if err != nil {
		fmt.Fprintf(out, "\nGlobal Status: %sFailure%s. %v\n", ui.ColorRed(), ui.ColorReset(), err)
		return
	}
	fmt.Fprintf(out, "\nGlobal Status: %sSuccess%s. All results are consistent.\n", ui.ColorGreen(), ui.ColorReset())
}
