package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/yurifrl/rampboard/pkg/config"
	"github.com/yurifrl/rampboard/pkg/models"
	"github.com/yurifrl/rampboard/pkg/service"
)

var (
	cliFilters filters
	cfgFile    string
)

var rootCmd = &cobra.Command{
	Use:   "rampboard-cli",
	Short: "Expense dashboard command-line interface",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "List transactions matching the filter flags",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dashboard, err := buildDashboard(cmd)
		if err != nil {
			return err
		}

		result, err := dashboard.Transactions(context.Background(), cliFilters.toFilterOptions(), 1, 1000)
		if err != nil {
			return err
		}

		dump, _ := cmd.Flags().GetBool("dump")
		if dump {
			pp.Println(result.Data)
			return nil
		}

		compliantStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))     // gray
		violationStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))     // red
		for _, tx := range result.Data {
			line := fmt.Sprintf("%s | %-20s | %-30s | %8.2f %s | %s",
				tx.Date, tx.EmployeeName, tx.MerchantName, tx.Amount, tx.Currency, tx.Status)
			if tx.IsCompliant {
				fmt.Println(compliantStyle.Render("  " + line))
			} else {
				fmt.Println(violationStyle.Render("! " + line))
			}
		}
		fmt.Printf("\n%d transaction(s)\n", result.TotalCount)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard statistics for the filtered collection",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dashboard, err := buildDashboard(cmd)
		if err != nil {
			return err
		}

		stats, err := dashboard.Stats(context.Background(), cliFilters.toFilterOptions())
		if err != nil {
			return err
		}
		printStats(stats, dashboard.Mode())
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered collection as CSV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dashboard, err := buildDashboard(cmd)
		if err != nil {
			return err
		}

		outputPath, _ := cmd.Flags().GetString("output")
		out := os.Stdout
		if outputPath != "" {
			f, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		if _, err := dashboard.Export(context.Background(), cliFilters.toFilterOptions(), "csv", out); err != nil {
			return err
		}
		return nil
	},
}

func buildDashboard(cmd *cobra.Command) (*service.Dashboard, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rampboard-cli",
	})
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Build(cfgFile, nil)
	if err != nil {
		return nil, err
	}
	return service.New(cfg, logger)
}

func printStats(s models.DashboardStats, mode service.Mode) {
	titleStyle := lipgloss.NewStyle().Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("Dashboard (%s mode)", mode)))
	row := func(label, value string) {
		fmt.Printf("%s %s\n", labelStyle.Render(fmt.Sprintf("%-22s", label)), value)
	}
	row("Transactions", fmt.Sprintf("%d", s.TotalTransactions))
	row("Total amount", fmt.Sprintf("%.2f", s.TotalAmount))
	row("YTD spend", fmt.Sprintf("%.2f", s.YTDSpend))
	row("This month", fmt.Sprintf("%.2f", s.ThisMonthSpend))
	row("Pending", fmt.Sprintf("%d (%.2f)", s.PendingTransactions, s.PendingAmount))
	row("Approved", fmt.Sprintf("%d (%.2f)", s.ApprovedTransactions, s.ApprovedAmount))
	row("Reimbursed", fmt.Sprintf("%d (%.2f)", s.ReimbursementsCount, s.ReimbursementsAmount))
	row("With receipts", fmt.Sprintf("%d", s.ReceiptsCount))
	row("Missing receipts", fmt.Sprintf("%d", s.MissingReceiptsCount))
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	// Server-pushable filter flags
	rootCmd.PersistentFlags().StringVar(&cliFilters.employee, "employee", "", "Filter by employee id")
	rootCmd.PersistentFlags().StringVar(&cliFilters.category, "category", "", "Filter by category id")
	rootCmd.PersistentFlags().StringVar(&cliFilters.status, "status", "", "Filter by status (pending|approved|declined|reimbursed)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.dateFrom, "from", "", "Start date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.dateTo, "to", "", "End date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().Float64Var(&cliFilters.minAmount, "min", 0, "Minimum amount")
	rootCmd.PersistentFlags().Float64Var(&cliFilters.maxAmount, "max", 0, "Maximum amount")
	rootCmd.PersistentFlags().StringVar(&cliFilters.department, "department", "", "Filter by department id")

	// Client-only filter flags
	rootCmd.PersistentFlags().StringSliceVar(&cliFilters.departments, "departments", nil, "Keep only these departments")
	rootCmd.PersistentFlags().StringSliceVar(&cliFilters.categories, "categories", nil, "Keep only these categories")
	rootCmd.PersistentFlags().StringSliceVar(&cliFilters.merchants, "merchants", nil, "Keep only these merchants")
	rootCmd.PersistentFlags().StringSliceVar(&cliFilters.spendPrograms, "spend-programs", nil, "Keep only these spend programs")
	rootCmd.PersistentFlags().StringVar(&cliFilters.compliance, "compliance", "", "Policy compliance (compliant|non-compliant)")

	transactionsCmd.Flags().Bool("dump", false, "Pretty-print raw records")
	exportCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(transactionsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
