// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult], [FormatExecutionDuration].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/limbcalc/internal/format"
	"github.com/agbru/limbcalc/internal/limb"
	"github.com/agbru/limbcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows the full result value.
	Verbose bool
	// ShowValue enables the calculated value display when true.
	ShowValue bool
}

// WriteResultToFile writes an operation result to a file.
//
// Parameters:
//   - result: The result limbs, least significant first.
//   - op: The operation name.
//   - duration: The calculation duration.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(result []limb.Limb, op string, duration time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	// Write header
	fmt.Fprintf(file, "# Limb Operation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Operation: %s\n", op)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Limbs: %d\n", len(result))
	fmt.Fprintf(file, "\n")

	// Write result, least significant limb first
	fmt.Fprintf(file, "%s =\n%s\n", op, format.FormatLimbs(result))

	return nil
}

// FormatQuietResult formats a result for quiet mode output.
// Returns a single-line comma-separated hex limb list suitable for
// scripting and for feeding back into --left/--right.
func FormatQuietResult(result []limb.Limb) string {
	return format.FormatLimbs(result)
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, result []limb.Limb) {
	fmt.Fprintln(out, FormatQuietResult(result))
}

// DisplayResult displays an operation result with optional details and
// value output. Long limb lists are truncated unless verbose is set.
func DisplayResult(result []limb.Limb, op string, duration time.Duration, verbose, details, showValue bool, out io.Writer) {
	if details {
		fmt.Fprintf(out, "\n--- Detailed result analysis ---\n")
		fmt.Fprintf(out, "Result binary size: %s%d%s bits\n",
			ui.ColorCyan(), len(result)*64, ui.ColorReset())
		fmt.Fprintf(out, "Calculation time:   %s%s%s\n",
			ui.ColorGreen(), FormatExecutionDuration(duration), ui.ColorReset())
		fmt.Fprintf(out, "Number of limbs:    %s%s%s\n",
			ui.ColorCyan(), FormatNumberString(fmt.Sprintf("%d", len(result))), ui.ColorReset())
	}

	if !showValue {
		return
	}

	fmt.Fprintf(out, "\n%sCalculated value:%s\n", ui.ColorBold(), ui.ColorReset())
	if !verbose && len(result) > TruncationLimit {
		head := format.FormatLimbs(result[:DisplayEdges])
		tail := format.FormatLimbs(result[len(result)-DisplayEdges:])
		fmt.Fprintf(out, "%s = %s%s,...,%s%s (truncated)\n",
			op, ui.ColorGreen(), head, tail, ui.ColorReset())
		fmt.Fprintf(out, "Tip: use %s-v%s to display all %d limbs.\n",
			ui.ColorYellow(), ui.ColorReset(), len(result))
		return
	}
	fmt.Fprintf(out, "%s = %s%s%s\n", op, ui.ColorGreen(), format.FormatLimbs(result), ui.ColorReset())
}

// DisplayComparisonResult displays the outcome of a comparison operation.
func DisplayComparisonResult(out io.Writer, rel int, infinite bool, duration time.Duration, quiet bool) {
	if quiet {
		fmt.Fprintln(out, rel)
		return
	}
	kind := "promoted"
	if infinite {
		kind = "infinite"
	}
	fmt.Fprintf(out, "Comparison (%s): left %s%s%s right (%s%d%s) in %s%s%s\n",
		kind,
		ui.ColorGreen(), format.FormatComparison(rel), ui.ColorReset(),
		ui.ColorCyan(), rel, ui.ColorReset(),
		ui.ColorYellow(), FormatExecutionDuration(duration), ui.ColorReset())
}

// DisplayResultWithConfig displays a result with the given output
// configuration. This is a unified function that handles all output modes.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, result []limb.Limb, op string, duration time.Duration, config OutputConfig) error {
	// Handle quiet mode
	if config.Quiet {
		DisplayQuietResult(out, result)
	} else {
		DisplayResult(result, op, duration, config.Verbose, true, config.ShowValue, out)
	}

	// Save to file if requested
	if config.OutputFile != "" {
		if err := WriteResultToFile(result, op, duration, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}
