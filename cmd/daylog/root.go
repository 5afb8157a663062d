// ABOUTME: Root Cobra command for daylog CLI.
// ABOUTME: Builds the logger, config, store, and tracker in PersistentPreRunE.
package main

import (
	"fmt"

	"github.com/harperreed/daylog/internal/config"
	"github.com/harperreed/daylog/internal/daykey"
	"github.com/harperreed/daylog/internal/storage"
	"github.com/harperreed/daylog/internal/tracker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// noStore marks commands that manage their own storage (or need none).
const noStore = "daylog/no-store"

var (
	cfgFile     string
	backendFlag string
	verbose     bool

	logger = zap.NewNop()
	days   = daykey.New()
	cfg    *config.Config
	store  *storage.RecordStore
	trk    *tracker.Tracker
)

var rootCmd = &cobra.Command{
	Use:   "daylog",
	Short: "Personal daily tracker",
	Long: `Daylog tracks the small things you do every day.

WHAT IT TRACKS:

  Habits      named daily habits you tick off
  Workouts    exercises with sets, reps and rest
  Wellbeing   water, sleep and mood per weekday or date
  Notes       free-text notes, newest first

QUICK START:

  $ daylog habit add Meditate               # Add a habit
  $ daylog habit toggle 1                   # Mark it done
  $ daylog workout add squat --sets 5 --reps 5 --rest 120
  $ daylog wellbeing log today --water 6 --sleep 7.5 --mood 3
  $ daylog note add "Felt great after the run"
  $ daylog summary                          # Averages and today's progress

Numbers shown by list commands are what toggle/rm take.

MCP INTEGRATION:

  Run 'daylog mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "daylog": { "command": "daylog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in ~/.local/share/daylog (daylog.db for sqlite, badger/ for
  badger). Settings are read from ~/.config/daylog/config.json.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err = newLogger(cfg)
		if err != nil {
			return err
		}

		if cfg.EnsureDeviceID() {
			if err := saveConfig(cfg); err != nil {
				logger.Warn("could not persist device id", zap.Error(err))
			}
		}
		if backendFlag != "" {
			cfg.Backend = backendFlag
		}

		if cmd.Annotations[noStore] != "" {
			return nil
		}

		store, err = cfg.OpenStorage(logger)
		if err != nil {
			return fmt.Errorf("failed to open %s storage: %w", cfg.GetBackend(), err)
		}
		trk = tracker.New(store, days, cfg.TrackerOptions())
		logger.Debug("storage ready",
			zap.String("backend", cfg.GetBackend()),
			zap.String("data_dir", cfg.GetDataDir()))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

// Execute runs the root command and always releases the store.
func Execute() error {
	defer func() { _ = closeStore() }()
	return rootCmd.Execute()
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFrom(cfgFile)
	}
	return config.Load()
}

func saveConfig(c *config.Config) error {
	if cfgFile != "" {
		return c.SaveTo(cfgFile)
	}
	return c.Save()
}

// newLogger builds a production logger on stderr. --verbose forces debug.
func newLogger(c *config.Config) (*zap.Logger, error) {
	level, err := c.GetLogLevel()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	l, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return l, nil
}

func closeStore() error {
	_ = logger.Sync()
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	trk = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/daylog/config.json)")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "storage backend: sqlite, badger or memory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
