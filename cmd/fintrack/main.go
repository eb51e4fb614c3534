package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/DioVale2002/finance-tracker/internal/common"
	"github.com/DioVale2002/finance-tracker/internal/config"
	"github.com/DioVale2002/finance-tracker/internal/ledger"
	"github.com/DioVale2002/finance-tracker/internal/session"
	"github.com/DioVale2002/finance-tracker/internal/tui"
	"github.com/DioVale2002/finance-tracker/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "fintrack",
		Short: "💰 Personal finance tracker for your terminal",
		Long: `fintrack keeps a single-user ledger of income and expenses in a plain
JSON file and shows it in the terminal: a searchable transaction table,
a running balance chart, and an expense breakdown by category.

Run without arguments to open the interactive interface.`,
		PersistentPreRunE: initConfig,
		RunE:              runRoot,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/fintrack/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("data-file", "", "ledger file (default: $XDG_DATA_HOME/fintrack/finance_data.json)")
	rootCmd.PersistentFlags().String("theme", "", "color theme (default, catppuccin-mocha)")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("data.file", rootCmd.PersistentFlags().Lookup("data-file"))
	_ = viper.BindPFlag("ui.theme", rootCmd.PersistentFlags().Lookup("theme"))

	// Add commands
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel() // Always cleanup

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in standard locations
		viper.AddConfigPath(config.DefaultConfigDir())
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("FINTRACK")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	// Set up logging
	if err := setupLogging(os.Stderr); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setupLogging(output io.Writer) error {
	level := viper.GetString("logging.level")
	format := viper.GetString("logging.format")

	switch level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", common.ErrInvalidConfig, level)
	}

	switch format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, format)
	}

	return common.SetupLogger(common.ParseLevel(level), format, output)
}

// openLedger loads the data file. A missing or unreadable file starts an
// empty ledger; the application never refuses to run over bad data.
func openLedger() *ledger.Store {
	store := ledger.New(config.DataFilePath(viper.GetString("data.file")))
	if err := store.Restore(); err != nil {
		slog.Warn("Starting with an empty ledger", "error", err)
	}
	return store
}

// runRoot opens the interactive interface on the configured ledger.
func runRoot(cmd *cobra.Command, _ []string) error {
	// The TUI owns the terminal, so logs go to a file instead
	logPath := viper.GetString("logging.file")
	if logPath == "" {
		logPath = config.DefaultLogFile()
	}
	var output io.Writer = io.Discard
	if f, err := openLogFile(logPath); err == nil {
		defer func() { _ = f.Close() }()
		output = f
	}
	if err := setupLogging(output); err != nil {
		return err
	}

	store := openLedger()
	sess := session.New(store)
	theme := themes.GetTheme(viper.GetString("ui.theme"))

	if err := tui.Run(cmd.Context(),
		tui.WithSession(sess),
		tui.WithTheme(theme),
	); err != nil {
		return err
	}

	// Mutations save as they happen; this catches anything in flight
	if err := store.Persist(); err != nil {
		slog.Warn("Failed to save ledger on exit", "error", err)
	}
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			slog.Info("fintrack version", "version", version)
		},
	}
}
