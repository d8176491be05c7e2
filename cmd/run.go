package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/frahmantamala/payroll-engine/internal/payroll"
	"github.com/spf13/cobra"
)

var (
	runNumber      string
	runPeriodStart string
	runPeriodEnd   string
	runPayDate     string
	runDepartment  int64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start a payroll run from the command line",
	Long:  `Start a payroll run and process it to completion without going through the HTTP API`,
	Run: func(cmd *cobra.Command, args []string) {
		startPayrollRun()
	},
}

func init() {
	runCmd.Flags().StringVar(&runNumber, "number", "", "unique run number, e.g. 2026-08-A")
	runCmd.Flags().StringVar(&runPeriodStart, "start", "", "pay period start date (YYYY-MM-DD)")
	runCmd.Flags().StringVar(&runPeriodEnd, "end", "", "pay period end date (YYYY-MM-DD)")
	runCmd.Flags().StringVar(&runPayDate, "pay-date", "", "pay date (YYYY-MM-DD)")
	runCmd.Flags().Int64Var(&runDepartment, "department", 0, "restrict run to one department id")
	runCmd.MarkFlagRequired("number")
	runCmd.MarkFlagRequired("start")
	runCmd.MarkFlagRequired("end")
	runCmd.MarkFlagRequired("pay-date")
}

func startPayrollRun() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}
	defer deps.DB.Close()

	periodStart, err := time.Parse("2006-01-02", runPeriodStart)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid start date: %v\n", err)
		os.Exit(1)
	}
	periodEnd, err := time.Parse("2006-01-02", runPeriodEnd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid end date: %v\n", err)
		os.Exit(1)
	}
	payDate, err := time.Parse("2006-01-02", runPayDate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid pay date: %v\n", err)
		os.Exit(1)
	}

	dto := payroll.CreateRunDTO{
		RunNumber:      runNumber,
		PayPeriodStart: periodStart,
		PayPeriodEnd:   periodEnd,
		PayDate:        payDate,
	}
	if runDepartment > 0 {
		dto.DepartmentID = &runDepartment
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	run, err := deps.PayrollService.StartRun(ctx, dto)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Payroll run failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run %s finished with status %s\n", run.RunNumber, run.Status)
	fmt.Printf("  employees: %d\n", run.TotalEmployees)
	fmt.Printf("  gross:     %d cents\n", run.TotalGrossCents)
	fmt.Printf("  deductions:%d cents\n", run.TotalDeductionsCents)
	fmt.Printf("  net:       %d cents\n", run.TotalNetCents)
	for _, skip := range run.Skips {
		fmt.Printf("  skipped employee %d: %s\n", skip.EmployeeID, skip.Reason)
	}
}
