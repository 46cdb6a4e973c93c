package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/genricoloni/hyprarrange/internal/arranger"
	"github.com/genricoloni/hyprarrange/internal/clipboard"
	"github.com/genricoloni/hyprarrange/internal/config"
	"github.com/genricoloni/hyprarrange/internal/domain"
	"github.com/genricoloni/hyprarrange/internal/executor"
	"github.com/genricoloni/hyprarrange/internal/notify"
	"github.com/genricoloni/hyprarrange/internal/render"
	"github.com/genricoloni/hyprarrange/internal/source"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logLevelEnv = "HYPRARRANGE_LOG_LEVEL"

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// AppOptions is the dependency graph shared by every command
func AppOptions(configPath string) fx.Option {
	return fx.Options(
		// Logger configuration
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			l := &fxevent.ZapLogger{Logger: log}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),

		fx.Supply(config.FilePath(configPath)),

		// Provide dependencies
		fx.Provide(
			newLogger,
			fx.Annotate(
				config.NewAppConfig,
				fx.As(new(domain.Config)),
			),
			fx.Annotate(
				executor.NewExecRunner,
				fx.As(new(domain.CommandRunner)),
			),
			source.NewMonitorSource,
			fx.Annotate(
				executor.NewApplier,
				fx.As(new(domain.Applier)),
			),
			fx.Annotate(
				clipboard.NewSystemClipboard,
				fx.As(new(domain.Clipboard)),
			),
			notify.NewNotifier,
			render.NewPreviewRenderer,
			arranger.NewArranger,
		),

		// Lifecycle hooks
		fx.Invoke(registerHooks),
	)
}

// newLogger creates a production logger on stderr. The level can be
// overridden with HYPRARRANGE_LOG_LEVEL.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if lvl := os.Getenv(logLevelEnv); lvl != "" {
		level, err := zap.ParseAtomicLevel(lvl)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", logLevelEnv, err)
		}
		cfg.Level = level
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// registerHooks sets up application lifecycle hooks
func registerHooks(lc fx.Lifecycle, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Debug("hyprarrange started", zap.String("version", version))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Debug("Shutting down")
			// stderr cannot always be synced; nothing to report
			_ = logger.Sync()
			return nil
		},
	})
}

// withArranger builds the graph, runs fn with the resolved arranger and
// stops the graph again
func withArranger(cmd *cobra.Command, configPath string, fn func(context.Context, *arranger.Arranger) error) error {
	var a *arranger.Arranger
	app := fx.New(
		AppOptions(configPath),
		fx.Populate(&a),
	)
	if err := app.Err(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := app.Start(ctx); err != nil {
		return err
	}

	runErr := fn(ctx, a)
	return multierr.Append(runErr, app.Stop(context.Background()))
}
