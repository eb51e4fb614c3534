package main

import (
	"log/slog"
	"os"

	"github.com/DioVale2002/finance-tracker/internal/common"
	"github.com/DioVale2002/finance-tracker/internal/config"
	"github.com/DioVale2002/finance-tracker/internal/export"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger to CSV, JSON, or YAML",
		Long: `Export every transaction in ledger order.

Examples:
  # CSV to stdout, ready for a spreadsheet
  fintrack export

  # JSON in the data file's own schema
  fintrack export --format json --output backup.json`,
		RunE: runExport,
	}

	cmd.Flags().StringP("format", "f", "csv", "Output format (csv, json, yaml)")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	format, err := export.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	store := openLedger()

	w := cmd.OutOrStdout()
	if outputPath != "" {
		f, createErr := os.Create(config.ExpandPath(outputPath))
		if createErr != nil {
			return common.NewUserError("failed to create output file", createErr)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := export.Write(w, format, store.Snapshot()); err != nil {
		return err
	}

	if outputPath != "" {
		slog.Info("Exported ledger",
			"format", string(format),
			"file", outputPath,
			"transactions", store.Len())
	}

	return nil
}
