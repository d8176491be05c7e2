package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

var (
	exportRunID  int64
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate a bank export file for a completed run",
	Long:  `Generate a bank export file for a completed payroll run and write it to the configured output directory`,
	Run: func(cmd *cobra.Command, args []string) {
		generateExport()
	},
}

func init() {
	exportCmd.Flags().Int64Var(&exportRunID, "run", 0, "payroll run id")
	exportCmd.Flags().StringVar(&exportFormat, "format", "ach", "export format: ach or csv")
	exportCmd.MarkFlagRequired("run")
}

func generateExport() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}
	defer deps.DB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	file, err := deps.BankExportService.Generate(ctx, exportRunID, exportFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}

	outputDir := deps.Config.Export.OutputDir
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	outputPath := filepath.Join(outputDir, file.Batch.FileName)
	if err := os.WriteFile(outputPath, file.Data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write export file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Export written to %s\n", outputPath)
	fmt.Printf("  transactions: %d\n", file.Batch.TotalTransactions)
	fmt.Printf("  total amount: %d cents\n", file.Batch.TotalAmountCents)
	for _, skip := range file.Skipped {
		fmt.Printf("  skipped employee %d: %s\n", skip.EmployeeID, skip.Reason)
	}
}
