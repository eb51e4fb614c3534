package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DioVale2002/finance-tracker/internal/cli"
	"github.com/DioVale2002/finance-tracker/internal/common"
	"github.com/DioVale2002/finance-tracker/internal/model"
	"github.com/DioVale2002/finance-tracker/internal/ofx"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX (Quicken) files exported from your bank.

Examples:
  # Import a single file
  fintrack import ~/Downloads/checking_jan_2024.qfx

  # Import everything a bank export produced
  fintrack import ~/Downloads/*.qfx

  # Preview without touching the ledger
  fintrack import --dry-run ~/Downloads/statement.ofx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file
			if _, statErr := os.Stat(pattern); statErr == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	out := cmd.OutOrStdout()

	// Nothing is written until every file is read, so an interrupt can
	// abandon the whole run
	handler := cli.NewInterruptHandler(out)
	ctx := handler.HandleInterrupts(cmd.Context())

	store := openLedger()
	seen := make(map[string]bool, store.Len())
	for _, txn := range store.Snapshot() {
		seen[importKey(txn)] = true
	}

	slog.Info("Importing OFX files",
		"file_count", len(allFiles),
		"dry_run", dryRun)

	bar := progressbar.NewOptions(len(allFiles),
		progressbar.OptionSetWriter(out),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Importing transactions...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	parser := ofx.NewParser()
	var added, duplicates, failed int

	for _, filePath := range allFiles {
		if ctx.Err() != nil {
			break
		}

		f, err := os.Open(filePath)
		if err != nil {
			slog.Error("Failed to open file", "file", filePath, "error", err)
			failed++
			_ = bar.Add(1)
			continue
		}

		transactions, err := parser.ParseFile(ctx, f)
		_ = f.Close()
		if err != nil {
			slog.Error("Failed to parse OFX file", "file", filePath, "error", err)
			failed++
			_ = bar.Add(1)
			continue
		}

		for _, txn := range transactions {
			key := importKey(txn)
			if seen[key] {
				duplicates++
				continue
			}
			seen[key] = true
			store.Add(txn)
			added++
		}

		slog.Debug("Processed file",
			"file", filepath.Base(filePath),
			"transactions", len(transactions))
		_ = bar.Add(1)
	}
	fmt.Fprintln(out)

	if handler.WasInterrupted() {
		return nil
	}

	if dryRun {
		fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf(
			"Dry run: would add %d transactions (%d duplicates skipped)", added, duplicates)))
		return nil
	}

	if added > 0 {
		if err := store.Persist(); err != nil {
			return common.NewUserError("failed to save imported transactions", err)
		}
	}

	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf(
		"Imported %d transactions (%d duplicates skipped)", added, duplicates)))
	if failed > 0 {
		fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("%d file(s) could not be read", failed)))
	}

	return nil
}

// importKey builds the identity used to skip transactions the ledger already
// holds. Bank exports overlap between statements, so imports must be safe to
// re-run.
func importKey(txn model.Transaction) string {
	return fmt.Sprintf("%d|%s|%s|%.2f", txn.Date.Unix(), txn.Type, txn.Description, txn.Amount)
}
