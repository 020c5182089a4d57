package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/signalnine/artbench/internal/config"
)

const defaultConfigFile = "artbench.yaml"

var (
	cfgFile    string
	resultsDir string
	colorMode  string
	debug      bool
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "artbench",
		Short:        "Compare LLM runs of the artwork import benchmark",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigFile, "config file path")
	root.PersistentFlags().StringVar(&resultsDir, "results-dir", "", "directory holding run records (overrides config)")
	root.PersistentFlags().StringVar(&colorMode, "color", "auto", "colorize output: auto, always or never")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.AddCommand(newReportCmd())
	root.AddCommand(newListCmd())
	return root
}

// loadConfig reads the config file. Without an explicit --config a missing
// file falls back to the defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadOrDefault(cfgFile)
	}
	if err != nil {
		return nil, err
	}
	if resultsDir != "" {
		cfg.Results.Dir = resultsDir
	}
	slog.Debug("config loaded", "path", cfgFile, "results_dir", cfg.Results.Dir)
	return cfg, nil
}

func usageError(cmd *cobra.Command, err error) error {
	if herr := cmd.Help(); herr != nil {
		return herr
	}
	return fmt.Errorf("usage: %w", err)
}
