package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phanxgames/tweener"
)

// Environment variables supplying flag defaults.
const (
	envCapacity  = "TWEENER_CAPACITY"
	envDebug     = "TWEENER_DEBUG"
	envLogFormat = "TWEENER_LOG_FORMAT"
)

// settings are the resolved global options shared by every subcommand.
type settings struct {
	capacity  int
	debug     bool
	logFormat string
	logger    *zap.Logger
}

var global settings

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tweener",
	Short: "Replay tween scripts and stress the tween scheduler.",
	Long: `tweener drives the tween scheduler outside a game loop. ` +
		`replay runs a JSON script and prints every callback it produced; ` +
		`bench runs many random tweens for a number of frames and reports timings.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
		s, err := resolveSettings(cmd)
		if err != nil {
			return err
		}
		s.logger, err = newLogger(s.logFormat, s.debug)
		if err != nil {
			return err
		}
		global = s
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if global.logger != nil {
			_ = global.logger.Sync()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("env-file", ".env", "dotenv file to load before reading the environment")
	flags.Int("capacity", 0, "scheduler slot capacity (env "+envCapacity+")")
	flags.Bool("debug", false, "enable debug logging and contract panics (env "+envDebug+")")
	flags.String("log-format", "", "console or json (env "+envLogFormat+")")
}

// resolveSettings reads each option from its flag when set, else from the
// environment, else the default.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	flags := cmd.Flags()
	s := settings{capacity: tweener.DefaultCapacity, logFormat: "console"}

	if flags.Changed("capacity") {
		s.capacity, _ = flags.GetInt("capacity")
	} else if v, ok := os.LookupEnv(envCapacity); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return s, fmt.Errorf("%s: %w", envCapacity, err)
		}
		s.capacity = n
	}
	if s.capacity <= 0 {
		return s, fmt.Errorf("capacity must be positive, got %d", s.capacity)
	}

	if flags.Changed("debug") {
		s.debug, _ = flags.GetBool("debug")
	} else if v, ok := os.LookupEnv(envDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("%s: %w", envDebug, err)
		}
		s.debug = b
	}

	if flags.Changed("log-format") {
		s.logFormat, _ = flags.GetString("log-format")
	} else if v, ok := os.LookupEnv(envLogFormat); ok && v != "" {
		s.logFormat = v
	}
	return s, nil
}

func newLogger(format string, debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

// newScheduler builds a scheduler from the global settings.
func newScheduler(obs tweener.Observer) *tweener.Scheduler {
	return tweener.NewScheduler(tweener.Config{
		Capacity: global.capacity,
		Logger:   global.logger,
		Observer: obs,
		Debug:    global.debug,
	})
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
