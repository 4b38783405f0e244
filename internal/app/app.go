package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/limbcalc/internal/calibration"
	"github.com/agbru/limbcalc/internal/cli"
	"github.com/agbru/limbcalc/internal/config"
	apperrors "github.com/agbru/limbcalc/internal/errors"
	"github.com/agbru/limbcalc/internal/logging"
	"github.com/agbru/limbcalc/internal/server"
	"github.com/agbru/limbcalc/internal/tui"
	"github.com/agbru/limbcalc/internal/ui"
)

// Version is the build version, overridden at link time.
var Version = "dev"

// Application represents the limbcalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger

	metrics *server.Metrics
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	var cmdArgs []string
	if len(args) > 0 {
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		ErrWriter: errWriter,
		Logger:    logging.NewLogger(errWriter, "limbcalc"),
	}, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}
	if a.Config.ShowVersion {
		fmt.Fprintf(out, "limbcalc %s (%s)\n", Version, runtime.Version())
		return apperrors.ExitSuccess
	}

	switch {
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(false)

	if a.Config.Calibrate {
		return a.runCalibration(ctx, out)
	}

	if a.Config.AutoCalibrate {
		if err := calibration.MaybeAutoCalibrate(ctx, &a.Config, out, a.Logger); err != nil {
			fmt.Fprintf(a.ErrWriter, "Auto-calibration failed: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	}

	shutdown := a.startMetricsServer()
	defer shutdown()

	switch {
	case a.Config.Interactive:
		return a.runInteractive(out)
	case a.Config.TUI:
		return a.runTUI(ctx)
	case a.Config.Verify:
		return a.runVerify(ctx, out)
	default:
		return a.runEvaluate(out)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, cli.Operations()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runCalibration runs the full calibration mode.
func (a *Application) runCalibration(ctx context.Context, out io.Writer) int {
	ctx, cancel := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancel()

	if _, err := calibration.RunCalibration(ctx, a.Config, out, a.Logger); err != nil {
		fmt.Fprintf(a.ErrWriter, "Calibration failed: %v\n", err)
		if apperrors.IsContextError(err) {
			return apperrors.ExitErrorTimeout
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// startMetricsServer starts the Prometheus endpoint when configured.
// The returned function shuts the server down and is safe to call when
// no server was started.
func (a *Application) startMetricsServer() func() {
	if a.Config.MetricsAddr == "" {
		return func() {}
	}

	srv := server.New(a.Config.MetricsAddr, server.NewMetrics(), a.Logger)
	a.metrics = srv.Metrics()

	go func() {
		if err := srv.Start(); err != nil {
			a.Logger.Error("metrics server stopped", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			a.Logger.Error("metrics server shutdown failed", err)
		}
	}
}

// runInteractive starts the read-eval-print session.
func (a *Application) runInteractive(out io.Writer) int {
	r := cli.NewREPL(cli.REPLConfig{
		LeftSigned:  a.Config.LeftSigned,
		RightSigned: a.Config.RightSigned,
		Branchless:  a.Config.Branchless,
		DestLen:     a.Config.DestLen,
	})
	r.SetOutput(out)
	r.Start()
	return apperrors.ExitSuccess
}

// runTUI launches the interactive TUI dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancel := a.lifecycleContext(ctx)
	defer cancel()
	return tui.Run(ctx, a.Config, Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
