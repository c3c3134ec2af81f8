package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Hakkology/MuginCAD-sub000/internal/cli"
	"github.com/Hakkology/MuginCAD-sub000/internal/config"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/session"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mugincad",
	Short: "MuginCAD is a command-driven 2D drafting engine",
	Long: `MuginCAD draws lines, circles, arcs, rectangles, text, axes, columns and beams
from typed commands and clicks, and keeps drawings as JSON projects.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default "+config.DefaultPath+")")
	rootCmd.PersistentFlags().StringArray("set", nil, "Override a config value, e.g. --set store.backend=memory")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

// loadConfig resolves the configuration for cmd from its persistent flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	sets, _ := cmd.Flags().GetStringArray("set")
	cfg, err := cli.LoadConfig(path, sets)
	if err != nil {
		return cfg, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// environment is what most subcommands need: config, logger and an open
// store.
type environment struct {
	cfg     config.Config
	logger  *slog.Logger
	backend *cli.Backend
	debug   bool
}

func setup(cmd *cobra.Command) (*environment, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	debug, _ := cmd.Flags().GetBool("debug")
	logger, err := cli.NewLogger(cfg, debug)
	if err != nil {
		return nil, err
	}
	backend, err := cli.OpenBackend(cfg.Store, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return &environment{cfg: cfg, logger: logger, backend: backend, debug: debug}, nil
}

func (e *environment) manager(hooks domain.LifecycleHooks) *session.Manager {
	return cli.NewManager(e.backend, e.cfg, e.logger, hooks)
}

func (e *environment) Close() {
	if err := e.backend.Close(); err != nil {
		e.logger.Warn("Failed to close store", "error", err)
	}
}
