package main

import (
	"fmt"
	"strings"

	"github.com/DioVale2002/finance-tracker/internal/analysis"
	"github.com/DioVale2002/finance-tracker/internal/cli"
	"github.com/DioVale2002/finance-tracker/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print a summary of the ledger",
		Long:  `Print the total balance and the expense breakdown by category.`,
		RunE:  runReport,
	}
}

func runReport(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	store := openLedger()
	snapshot := store.Snapshot()

	fmt.Fprintln(out, cli.FormatTitle("Finance Report"))
	fmt.Fprintln(out)

	var income, expenses float64
	for _, txn := range snapshot {
		if txn.Type == model.TypeIncome {
			income += txn.Amount
		} else {
			expenses += txn.Amount
		}
	}

	summary := strings.Join([]string{
		fmt.Sprintf("Transactions  %d", len(snapshot)),
		fmt.Sprintf("Income        %s", cli.IncomeStyle.Render(cli.FormatAmount(income))),
		fmt.Sprintf("Expenses      %s", cli.ExpenseStyle.Render(cli.FormatAmount(expenses))),
		fmt.Sprintf("Balance       %s", cli.FormatBalance(store.TotalBalance())),
	}, "\n")
	fmt.Fprintln(out, cli.RenderBox("Summary", summary))

	breakdown := analysis.BuildBreakdown(snapshot)
	if breakdown.Empty() {
		fmt.Fprintln(out, cli.FormatInfo("No expenses to show."))
		return nil
	}

	lines := make([]string, 0, len(breakdown.Totals))
	for _, row := range breakdown.Totals {
		color := lipgloss.Color(row.Category.Color().Hex())
		swatch := lipgloss.NewStyle().Foreground(color).Render("●")
		bar := cli.RenderBar(row.Total/breakdown.GrandTotal, 24, color)
		lines = append(lines, fmt.Sprintf("%s %-14s %10s  %5.1f%%  %s",
			swatch, row.Category, cli.FormatAmount(row.Total), row.Percent, bar))
	}
	fmt.Fprintln(out, cli.RenderBox("Expenses by Category", strings.Join(lines, "\n")))

	return nil
}
