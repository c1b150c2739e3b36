// Package cli implements the command-line interface for cuberobot.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cuberobot/internal/config"
	"github.com/SeamusWaldron/cuberobot/internal/logging"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	portName   string
	verbose    bool
)

var (
	cfg       *config.Config
	logger    = slog.New(slog.DiscardHandler)
	logCloser io.Closer
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cuberobot",
	Short: "Rubik's Cube Solver Robot",
	Long: `Rubik's Cube Solver Robot - enter the colors of a scrambled cube, get a
solution from the solver and send it to the Arduino-driven solving rig.

Typical workflow:
  cuberobot input            enter the six faces
  cuberobot solve            convert the colors and solve
  cuberobot send             run the solution on the rig
  cuberobot send --reversed  scramble the cube back`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cuberobot/config.json)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cuberobot/cuberobot.db)")
	rootCmd.PersistentFlags().StringVar(&portName, "port", "", "Serial port of the rig (overrides the config file)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// setup loads the config and builds the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	cfg, err = config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if portName != "" {
		cfg.Serial.Port = portName
	}

	logDir, err := cfg.LogDirectory()
	if err != nil {
		return err
	}
	l, closer, err := logging.New(logging.Options{Dir: logDir, Verbose: verbose})
	if err != nil {
		return fmt.Errorf("failed to start logging: %w", err)
	}
	logger = l.With("command", cmd.Name())
	logCloser = closer

	logger.Debug("config loaded", "path", path, "port", cfg.Serial.Port, "algorithm", cfg.Algorithm)
	return nil
}

// getConfigPath returns the config path from flag or default.
func getConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}
