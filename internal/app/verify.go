package app

import (
	"context"
	"io"
	"os/signal"
	"sync"
	"syscall"

	"github.com/agbru/limbcalc/internal/cli"
	apperrors "github.com/agbru/limbcalc/internal/errors"
	"github.com/agbru/limbcalc/internal/metrics"
	"github.com/agbru/limbcalc/internal/verify"
)

// lifecycleContext derives the run context: timeout plus SIGINT/SIGTERM.
func (a *Application) lifecycleContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// runVerify executes a differential verification run and reports the
// outcome.
func (a *Application) runVerify(ctx context.Context, out io.Writer) int {
	ctx, cancel := a.lifecycleContext(ctx)
	defer cancel()

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(a.Config, out)
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	var progressChan chan verify.ProgressUpdate
	var wg sync.WaitGroup
	if !a.Config.Quiet {
		progressChan = make(chan verify.ProgressUpdate, 64)
		wg.Add(1)
		go cli.DisplayProgress(&wg, progressChan, a.Config.Workers, out)
	}

	runner := verify.NewRunner(verify.Config{
		Iterations: a.Config.Iterations,
		MaxLimbs:   a.Config.MaxLimbs,
		Seed:       a.Config.Seed,
		Workers:    a.Config.Workers,
	}, a.Logger)

	report, err := runner.Run(ctx, progressChan)
	wg.Wait()

	if a.metrics != nil {
		a.metrics.AddVerificationCases(report.Cases)
		a.metrics.ObserveOperation("verify", report.Duration.Seconds())
	}

	if err != nil {
		return cli.HandleVerifyError(err, report.Duration, out)
	}

	if a.Config.Quiet {
		return apperrors.ExitSuccess
	}

	cli.PresentVerifyReport(report, out)
	if a.Config.Verbose {
		cli.DisplayMemoryStats(before, collector.Snapshot(), out)
	}
	return apperrors.ExitSuccess
}
