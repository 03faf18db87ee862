// Package app wires configuration, logging, metrics and the computation
// modes of the billionfib command together.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/billionfib/internal/calibration"
	"github.com/agbru/billionfib/internal/config"
	apperrors "github.com/agbru/billionfib/internal/errors"
	"github.com/agbru/billionfib/internal/fibonacci"
	"github.com/agbru/billionfib/internal/karatsuba"
	"github.com/agbru/billionfib/internal/logging"
	"github.com/agbru/billionfib/internal/metrics"
	"github.com/agbru/billionfib/internal/server"
	"github.com/agbru/billionfib/internal/ui"
)

const programName = "billionfib"

// metricsShutdownTimeout bounds the metrics server's graceful shutdown.
const metricsShutdownTimeout = 5 * time.Second

// Application represents the billionfib application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer

	logger   *logging.ZerologAdapter
	recorder *metrics.Recorder
}

// New creates an Application by parsing command-line arguments. args[0] is
// the program name. flag.ErrHelp is returned unchanged for -h.
func New(args []string, errWriter io.Writer) (*Application, error) {
	name := programName
	var cmdArgs []string
	if len(args) > 0 {
		name = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(name, cmdArgs, errWriter, karatsuba.Bases())
	if err != nil {
		return nil, err
	}
	return &Application{Config: cfg, ErrWriter: errWriter}, nil
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	a.logger = a.newLogger()
	a.recorder = metrics.NewRecorder()

	if a.Config.MetricsAddr != "" {
		srv := server.New(a.Config.MetricsAddr, a.recorder.Handler(), a.logger)
		if err := srv.Start(); err != nil {
			return apperrors.HandleError(apperrors.NewConfigError("metrics server: %v", err), 0, a.ErrWriter, ui.Colors{})
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				a.logger.Error("metrics server shutdown failed", err)
			}
		}()
	}

	ctx, cleanup := SetupLifecycle(ctx, a.Config.Timeout)
	defer cleanup()

	start := time.Now()
	var err error
	switch {
	case a.Config.Calibrate:
		err = a.runCalibration(ctx, out)
	case a.Config.Verify:
		err = a.runVerify(ctx, out)
	default:
		err = a.runCalculate(ctx, out)
	}
	if err != nil {
		a.logger.Debug("run failed", logging.Err(err))
	}
	return apperrors.HandleError(err, time.Since(start), a.ErrWriter, ui.Colors{})
}

// newLogger builds the console logger: debug with --verbose, errors only
// with --quiet.
func (a *Application) newLogger() *logging.ZerologAdapter {
	l := logging.NewConsoleLogger(a.ErrWriter, programName, a.Config.Verbose)
	if a.Config.Quiet {
		return logging.NewZerologAdapter(l.Zerolog().Level(zerolog.ErrorLevel))
	}
	return l
}

func (a *Application) runCalibration(ctx context.Context, out io.Writer) error {
	best, err := calibration.RunCalibration(ctx, fibonacci.CalibrationN, a.Config.Base, false, out, a.logger)
	if err != nil {
		return err
	}
	a.logger.Debug("calibration result", logging.Int("cutoff", best))
	return nil
}

// IsHelpError reports whether err comes from -h or --help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
