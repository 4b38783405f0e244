package calibration

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/agbru/limbcalc/internal/format"
	"github.com/agbru/limbcalc/internal/ui"
)

// printCalibrationResults formats and prints the per-strategy timing table.
func printCalibrationResults(out io.Writer, results []calibrationResult, best string) {
	fmt.Fprintf(out, "\n--- Calibration Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sStrategy%s    │ %sTotal Time%s │ %sPer Op%s\n",
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset())
	fmt.Fprintf(tw, "  %s┼%s\n", strings.Repeat("─", 13), strings.Repeat("─", 24))
	for _, res := range results {
		durationStr := fmt.Sprintf("%sN/A%s", ui.ColorRed(), ui.ColorReset())
		perOpStr := durationStr
		if res.Err == nil {
			durationStr = format.FormatExecutionDuration(res.Duration)
			if res.Duration == 0 {
				durationStr = "< 1µs"
			}
			perOpStr = fmt.Sprintf("%.1f ns", res.NanosPerOp())
		}
		highlight := ""
		if res.Strategy == best && res.Err == nil {
			highlight = fmt.Sprintf(" %s(Optimal)%s", ui.ColorGreen(), ui.ColorReset())
		}
		fmt.Fprintf(tw, "  %s%-11s%s │ %s%s%s │ %s%s%s%s\n",
			ui.ColorCyan(), res.Strategy, ui.ColorReset(),
			ui.ColorYellow(), durationStr, ui.ColorReset(),
			ui.ColorYellow(), perOpStr, ui.ColorReset(), highlight)
	}
	tw.Flush()
}

// printCalibrationOutput prints the one-line calibration summary after a
// full run, including where the profile was saved.
func printCalibrationOutput(profile *CalibrationProfile, path string, out io.Writer) {
	strategy := "branchy"
	if profile.PreferBranchless {
		strategy = "branchless"
	}
	fmt.Fprintf(out, "%sCalibration%s: strategy=%s%s%s (branchy %s%.1f ns%s, branchless %s%.1f ns%s), profile saved to %s\n",
		ui.ColorGreen(), ui.ColorReset(),
		ui.ColorYellow(), strategy, ui.ColorReset(),
		ui.ColorYellow(), profile.BranchyNanos, ui.ColorReset(),
		ui.ColorYellow(), profile.BranchlessNanos, ui.ColorReset(),
		path)
}

// printAutoCalibrationOutput prints the strategy applied by the quick
// auto-calibration pass.
func printAutoCalibrationOutput(profile *CalibrationProfile, out io.Writer) {
	strategy := "branchy"
	if profile.PreferBranchless {
		strategy = "branchless"
	}
	fmt.Fprintf(out, "%sAuto-calibration%s: strategy=%s%s%s\n",
		ui.ColorGreen(), ui.ColorReset(),
		ui.ColorYellow(), strategy, ui.ColorReset())
}
