package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/limbcalc/internal/config"
	"github.com/agbru/limbcalc/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the user.
// It shows the operation, destination width, signedness, branch strategy,
// timeout, and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Operation %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.Op, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Operands: left %s%s%s, right %s%s%s, destination %s%s%s limbs, strategy %s%s%s.\n",
		ui.ColorCyan(), signednessLabel(cfg.LeftSigned), ui.ColorReset(),
		ui.ColorCyan(), signednessLabel(cfg.RightSigned), ui.ColorReset(),
		ui.ColorCyan(), destLabel(cfg.DestLen), ui.ColorReset(),
		ui.ColorCyan(), strategyLabel(cfg.Branchless), ui.ColorReset())
}

func signednessLabel(signed bool) string {
	if signed {
		return "signed"
	}
	return "unsigned"
}

func strategyLabel(branchless bool) string {
	if branchless {
		return "branchless"
	}
	return "branchy"
}

func destLabel(n int) string {
	if n <= 0 {
		return "auto"
	}
	return fmt.Sprintf("%d", n)
}

// PrintExecutionMode displays the execution mode (single operation vs
// differential verification).
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionMode(cfg config.AppConfig, out io.Writer) {
	var modeDesc string
	if cfg.Verify {
		modeDesc = fmt.Sprintf("Differential verification with %s%d%s workers over %s%s%s cases",
			ui.ColorGreen(), cfg.Workers, ui.ColorReset(),
			ui.ColorGreen(), FormatNumberString(fmt.Sprintf("%d", cfg.Iterations)), ui.ColorReset())
	} else {
		modeDesc = fmt.Sprintf("Single evaluation of the %s%s%s operation",
			ui.ColorGreen(), cfg.Op, ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
