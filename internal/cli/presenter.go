package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/limbcalc/internal/errors"
	"github.com/agbru/limbcalc/internal/format"
	"github.com/agbru/limbcalc/internal/metrics"
	"github.com/agbru/limbcalc/internal/ui"
	"github.com/agbru/limbcalc/internal/verify"
)

// PresentVerifyReport displays the verification summary table with case
// count, seed, duration, and throughput. Uses manual padding to
// correctly handle ANSI color codes.
func PresentVerifyReport(report verify.Report, out io.Writer) {
	fmt.Fprintf(out, "\n--- Verification Summary ---\n")

	duration := format.FormatExecutionDuration(report.Duration)
	if report.Duration == 0 {
		duration = "< 1µs"
	}
	throughput := "n/a"
	if report.Duration > 0 {
		perSec := float64(report.Cases) / report.Duration.Seconds()
		throughput = fmt.Sprintf("%s cases/s", format.FormatNumberString(fmt.Sprintf("%.0f", perSec)))
	}

	rows := []struct {
		label string
		value string
	}{
		{"Cases", format.FormatNumberString(fmt.Sprintf("%d", report.Cases))},
		{"Seed", fmt.Sprintf("%d", report.Seed)},
		{"Duration", duration},
		{"Throughput", throughput},
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s%-10s%s   %s%s%s\n",
			ui.ColorUnderline(), row.label, ui.ColorReset(),
			ui.ColorYellow(), row.value, ui.ColorReset())
	}
	fmt.Fprintf(out, "\n%s✅ No divergence between arithmetic paths%s\n",
		ui.ColorGreen(), ui.ColorReset())
}

// HandleVerifyError reports a verification failure and returns the
// process exit code for it.
func HandleVerifyError(err error, duration time.Duration, out io.Writer) int {
	var mismatch apperrors.MismatchError
	switch {
	case errors.As(err, &mismatch):
		fmt.Fprintf(out, "\n%s❌ Divergence detected after %s%s\n",
			ui.ColorRed(), format.FormatExecutionDuration(duration), ui.ColorReset())
		fmt.Fprintf(out, "%s%v%s\n", ui.ColorRed(), mismatch, ui.ColorReset())
		fmt.Fprintf(out, "Re-run with %s--seed %d%s to reproduce.\n",
			ui.ColorYellow(), mismatch.Seed, ui.ColorReset())
		return apperrors.ExitErrorMismatch
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "\n%s⏱ Verification timed out after %s%s\n",
			ui.ColorRed(), format.FormatExecutionDuration(duration), ui.ColorReset())
		return apperrors.ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "\n%sVerification canceled after %s%s\n",
			ui.ColorYellow(), format.FormatExecutionDuration(duration), ui.ColorReset())
		return apperrors.ExitErrorCanceled
	default:
		fmt.Fprintf(out, "\n%s❌ Verification failed: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return apperrors.ExitErrorGeneric
	}
}

// DisplayMemoryStats shows runtime memory statistics after a run.
func DisplayMemoryStats(before, after metrics.MemorySnapshot, out io.Writer) {
	delta := after.Delta(before)
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", metrics.FormatBytes(after.HeapAlloc))
	fmt.Fprintf(out, "  Total from OS:   %s\n", metrics.FormatBytes(after.Sys))
	fmt.Fprintf(out, "  GC cycles:       %d\n", delta.GCCycles)
	if delta.PauseNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(delta.PauseNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms\n")
	}
}
