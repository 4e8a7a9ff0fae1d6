package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kickview/internal/config"
	"kickview/internal/format"
	"kickview/internal/loader"
	"kickview/internal/logging"
	"kickview/internal/trace"
	"kickview/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli holds state shared by the commands for one invocation.
type cli struct {
	cfg       config.Config
	logger    *zap.Logger
	tracing   *trace.Provider
	formatter *format.Formatter

	// Flag values; empty means "use the environment".
	endpoint string
	logFile  string
	debug    bool
}

// newRootCmd builds the command tree. The caller must call teardown on the
// returned cli once the command has finished.
func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}

	root := &cobra.Command{
		Use:   "kickview",
		Short: "Browse Kickstarter projects five at a time",
		Long: `kickview fetches the Kickstarter project feed once and shows it as a
paginated table. If the fetch fails, press r to reload from scratch.

Environment:
  KICKVIEW_ENDPOINT   feed URL (default: the public assignment feed)
  KICKVIEW_LOG_FILE   log file path (default: $TMPDIR/kickview.log)
  KICKVIEW_DEBUG      debug logging
  KICKVIEW_LOCALE     number formatting locale (default: en-US)`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runViewer(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&c.endpoint, "endpoint", "", "feed URL (overrides KICKVIEW_ENDPOINT)")
	root.PersistentFlags().StringVar(&c.logFile, "log-file", "", "log file path (overrides KICKVIEW_LOG_FILE)")
	root.PersistentFlags().BoolVar(&c.debug, "debug", false, "enable debug logging")

	root.AddCommand(c.newPrintCmd())
	return root, c
}

// setup loads configuration, then builds the logger, tracer and formatter.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.endpoint != "" {
		cfg.Endpoint = c.endpoint
	}
	if c.logFile != "" {
		cfg.LogFile = c.logFile
	}
	if c.debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	c.logger, err = logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}

	c.formatter, err = format.New(cfg.Locale)
	if err != nil {
		return err
	}

	c.tracing, err = trace.Setup(cmd.Context())
	if err != nil {
		// Tracing is optional; keep going without it.
		c.logger.Warn("tracing disabled", zap.Error(err))
		c.tracing = nil
	}

	c.logger.Debug("config",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("log_file", cfg.LogFile),
		zap.String("locale", cfg.Locale),
		zap.Bool("tracing", c.tracing.Enabled()))
	return nil
}

func (c *cli) teardown() {
	if c.tracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.tracing.Shutdown(ctx); err != nil && c.logger != nil {
			c.logger.Warn("trace shutdown", zap.Error(err))
		}
	}
	if c.logger != nil {
		_ = c.logger.Sync()
	}
}

func (c *cli) newClient() *loader.Client {
	return loader.New(c.cfg.Endpoint,
		loader.WithLogger(c.logger),
		loader.WithTracer(c.tracing.Tracer(loader.TracerName)),
	)
}

// runViewer runs the interactive viewer. A retry after a failed load ends
// the program with a reload request; the loop then starts a new program with
// fresh state, which fetches again.
func (c *cli) runViewer(ctx context.Context) error {
	client := c.newClient()
	for run := 1; ; run++ {
		model := ui.NewAppModel(client,
			ui.WithLogger(c.logger),
			ui.WithFormatter(c.formatter),
		)
		c.logger.Info("starting viewer", zap.Int("run", run), zap.Uint64("session", model.Session()))

		p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
		_, err := p.Run()
		model.Close()
		if err != nil {
			if stoppedBySignal(ctx, err) {
				c.logger.Info("viewer stopped", zap.Error(ctx.Err()))
				return nil
			}
			return fmt.Errorf("run viewer: %w", err)
		}
		if !model.ReloadRequested() {
			return nil
		}
	}
}

// stoppedBySignal reports whether the program ended because ctx was
// cancelled, which tea reports as ErrProgramKilled.
func stoppedBySignal(ctx context.Context, err error) bool {
	return ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled)
}
