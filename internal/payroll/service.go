package payroll

import (
	"context"
	"log/slog"
	"sync"
	"time"

	errors "github.com/frahmantamala/payroll-engine/internal"
	"github.com/frahmantamala/payroll-engine/internal/compensation"
	payrollDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/payroll"
	"github.com/frahmantamala/payroll-engine/internal/core/events"
	"github.com/frahmantamala/payroll-engine/internal/employee"
)

type RunRepositoryAPI interface {
	Create(run *payrollDatamodel.PayrollRun) error
	GetByID(id int64) (*payrollDatamodel.PayrollRun, error)
	GetByRunNumber(runNumber string) (*payrollDatamodel.PayrollRun, error)
	HasProcessing() (bool, error)
	Transition(runID int64, from, to string, totals *RunTotals, failureReason *string) (bool, error)
	List(limit, offset int) ([]*payrollDatamodel.PayrollRun, error)
}

type PayslipRepositoryAPI interface {
	InsertIfAbsent(payslip *payrollDatamodel.Payslip) (bool, error)
	ListForRun(runID int64) ([]*payrollDatamodel.Payslip, error)
	ListForEmployeeInYear(employeeID int64, year int) ([]*payrollDatamodel.Payslip, error)
}

type EmployeeDirectoryAPI interface {
	ListActive(departmentID *int64, limit, offset int) ([]*employee.Employee, error)
}

type CompensationResolverAPI interface {
	Resolve(ctx context.Context, employeeID int64, asOf time.Time) (*compensation.CompensationRecord, error)
}

type Service struct {
	runRepo       RunRepositoryAPI
	payslipRepo   PayslipRepositoryAPI
	employees     EmployeeDirectoryAPI
	compensations CompensationResolverAPI
	eventBus      *events.EventBus
	workerCount   int
	logger        *slog.Logger
}

func NewService(
	runRepo RunRepositoryAPI,
	payslipRepo PayslipRepositoryAPI,
	employees EmployeeDirectoryAPI,
	compensations CompensationResolverAPI,
	eventBus *events.EventBus,
	workerCount int,
	logger *slog.Logger,
) *Service {
	if workerCount < 1 {
		workerCount = 4
	}
	return &Service{
		runRepo:       runRepo,
		payslipRepo:   payslipRepo,
		employees:     employees,
		compensations: compensations,
		eventBus:      eventBus,
		workerCount:   workerCount,
		logger:        logger,
	}
}

// employeeOutcome is what one worker reports back for one employee.
type employeeOutcome struct {
	skip     *EmployeeSkip
	warnings []RunWarning
	fatal    error
}

// StartRun validates preconditions, creates the run, and processes it to a
// terminal state before returning.
func (s *Service) StartRun(ctx context.Context, dto CreateRunDTO) (*Run, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.runRepo.GetByRunNumber(dto.RunNumber)
	if err != nil {
		return nil, errors.NewPersistenceError("failed to check run number", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("run number already used", errors.ErrCodeDuplicateRunNumber)
	}

	processing, err := s.runRepo.HasProcessing()
	if err != nil {
		return nil, errors.NewPersistenceError("failed to check for active runs", err)
	}
	if processing {
		return nil, errors.NewConflictError("another payroll run is processing", errors.ErrCodeRunAlreadyProcessing)
	}

	run := &payrollDatamodel.PayrollRun{
		RunNumber:      dto.RunNumber,
		PayPeriodStart: dto.PayPeriodStart,
		PayPeriodEnd:   dto.PayPeriodEnd,
		PayDate:        dto.PayDate,
		Status:         RunStatusDraft,
	}
	if err := s.runRepo.Create(run); err != nil {
		return nil, errors.NewPersistenceError("failed to create payroll run", err)
	}

	// The processing transition is persisted before any per-employee work so
	// a crash mid-run is observable, never silently lost. The transition
	// itself refuses when another run is processing, which closes the gap
	// between the HasProcessing check and this write.
	ok, err := s.runRepo.Transition(run.ID, RunStatusDraft, RunStatusProcessing, nil, nil)
	if err != nil {
		return nil, errors.NewPersistenceError("failed to start payroll run", err)
	}
	if !ok {
		return nil, errors.NewConflictError("another payroll run is processing", errors.ErrCodeRunAlreadyProcessing)
	}

	s.logger.Info("payroll run started",
		"run_id", run.ID,
		"run_number", run.RunNumber,
		"pay_date", run.PayDate.Format("2006-01-02"))

	skips, warnings, fatalErr := s.processEmployees(ctx, run, dto.DepartmentID)

	if fatalErr != nil {
		return nil, s.failRun(ctx, run, fatalErr)
	}

	return s.completeRun(ctx, run, skips, warnings)
}

// processEmployees fans per-employee work out over a bounded worker pool.
// Payslip inserts are insert-if-absent so retries never double-count; the
// returned fatal error, if any, is the first store failure observed.
func (s *Service) processEmployees(ctx context.Context, run *payrollDatamodel.PayrollRun, departmentID *int64) ([]EmployeeSkip, []RunWarning, error) {
	activeEmployees, err := s.employees.ListActive(departmentID, 0, 0)
	if err != nil {
		return nil, nil, err
	}

	jobs := make(chan *employee.Employee)
	outcomes := make(chan employeeOutcome, len(activeEmployees))

	var wg sync.WaitGroup
	for i := 0; i < s.workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for emp := range jobs {
				outcome := s.processEmployee(ctx, run, emp)
				s.logger.Debug("worker processed employee",
					"worker_id", workerID,
					"run_id", run.ID,
					"employee_id", emp.ID)
				outcomes <- outcome
			}
		}(i)
	}

	for _, emp := range activeEmployees {
		jobs <- emp
	}
	close(jobs)

	// Barrier: totals are computed only after every worker has finished.
	wg.Wait()
	close(outcomes)

	var skips []EmployeeSkip
	var warnings []RunWarning
	var fatalErr error
	for outcome := range outcomes {
		if outcome.fatal != nil && fatalErr == nil {
			fatalErr = outcome.fatal
		}
		if outcome.skip != nil {
			skips = append(skips, *outcome.skip)
		}
		warnings = append(warnings, outcome.warnings...)
	}

	return skips, warnings, fatalErr
}

func (s *Service) processEmployee(ctx context.Context, run *payrollDatamodel.PayrollRun, emp *employee.Employee) employeeOutcome {
	comp, err := s.compensations.Resolve(ctx, emp.ID, run.PayDate)
	if err != nil {
		if appErr, ok := errors.IsAppError(err); ok && appErr.Code == errors.ErrCodeNoCompensation {
			s.logger.Info("employee skipped: no compensation record",
				"run_id", run.ID,
				"employee_id", emp.ID)
			return employeeOutcome{skip: &EmployeeSkip{
				EmployeeID: emp.ID,
				Reason:     SkipReasonNoCompensation,
			}}
		}
		return employeeOutcome{fatal: err}
	}

	input := CalculationInput{
		BasePayCents:         comp.BasePayCents,
		HourlyRateCents:      comp.HourlyRateCents,
		OvertimeRateCents:    comp.OvertimeRateCents,
		FederalTaxPct:        comp.FederalTaxPct,
		StateTaxPct:          comp.StateTaxPct,
		SocialSecurityPct:    comp.SocialSecurityPct,
		MedicarePct:          comp.MedicarePct,
		HealthInsuranceCents: comp.HealthInsuranceCents,
		RetirementPct:        comp.RetirementPct,
	}

	if err := input.ValidatePercentages(); err != nil {
		s.logger.Warn("employee skipped: calculation error",
			"run_id", run.ID,
			"employee_id", emp.ID,
			"error", err)
		return employeeOutcome{skip: &EmployeeSkip{
			EmployeeID: emp.ID,
			Reason:     SkipReasonCalculationError,
			Detail:     err.Error(),
		}}
	}

	calc := Calculate(input)
	var warnings []RunWarning
	for _, warning := range calc.Warnings {
		s.logger.Warn("payroll calculation warning",
			"run_id", run.ID,
			"employee_id", emp.ID,
			"warning", warning)
		warnings = append(warnings, RunWarning{EmployeeID: emp.ID, Message: warning})
	}

	prior, err := s.payslipRepo.ListForEmployeeInYear(emp.ID, run.PayDate.Year())
	if err != nil {
		return employeeOutcome{fatal: errors.NewPersistenceError("failed to load payslip history", err)}
	}
	ytd := AccumulateYTD(prior, calc)

	payslip := &payrollDatamodel.Payslip{
		PayrollRunID:   run.ID,
		EmployeeID:     emp.ID,
		EmployeeName:   emp.Name,
		EmployeeEmail:  emp.Email,
		PayPeriodStart: run.PayPeriodStart,
		PayPeriodEnd:   run.PayPeriodEnd,
		PayDate:        run.PayDate,

		BasePayCents:  comp.BasePayCents,
		GrossPayCents: calc.GrossPayCents,

		FederalTaxCents:      calc.FederalTaxCents,
		StateTaxCents:        calc.StateTaxCents,
		SocialSecurityCents:  calc.SocialSecurityCents,
		MedicareCents:        calc.MedicareCents,
		HealthInsuranceCents: calc.HealthInsuranceCents,
		RetirementCents:      calc.RetirementCents,
		OtherDeductionsCents: calc.OtherDeductionsCents,
		TotalDeductionsCents: calc.TotalDeductionsCents,
		NetPayCents:          calc.NetPayCents,

		YTDGrossCents:      ytd.GrossCents,
		YTDDeductionsCents: ytd.DeductionsCents,
		YTDNetCents:        ytd.NetCents,
	}

	inserted, err := s.payslipRepo.InsertIfAbsent(payslip)
	if err != nil {
		return employeeOutcome{fatal: errors.NewPersistenceError("failed to insert payslip", err)}
	}
	if !inserted {
		// Benign on retry: the payslip from an earlier attempt stands.
		s.logger.Info("payslip already exists, skipping insert",
			"run_id", run.ID,
			"employee_id", emp.ID)
	}

	return employeeOutcome{warnings: warnings}
}

func (s *Service) completeRun(ctx context.Context, run *payrollDatamodel.PayrollRun, skips []EmployeeSkip, warnings []RunWarning) (*Run, error) {
	payslips, err := s.payslipRepo.ListForRun(run.ID)
	if err != nil {
		return nil, s.failRun(ctx, run, errors.NewPersistenceError("failed to load run payslips", err))
	}

	totals := RunTotals{TotalEmployees: len(payslips)}
	for _, slip := range payslips {
		totals.TotalGrossCents += slip.GrossPayCents
		totals.TotalDeductionsCents += slip.TotalDeductionsCents
		totals.TotalNetCents += slip.NetPayCents
	}

	ok, err := s.runRepo.Transition(run.ID, RunStatusProcessing, RunStatusCompleted, &totals, nil)
	if err != nil {
		return nil, s.failRun(ctx, run, errors.NewPersistenceError("failed to complete payroll run", err))
	}
	if !ok {
		// Another writer reached the terminal state first; the conditional
		// update keeps this attempt from overwriting it.
		s.logger.Warn("run already transitioned by another writer", "run_id", run.ID)
		return s.GetRun(ctx, run.ID)
	}

	s.logger.Info("payroll run completed",
		"run_id", run.ID,
		"run_number", run.RunNumber,
		"total_employees", totals.TotalEmployees,
		"total_net_cents", totals.TotalNetCents,
		"skipped", len(skips),
		"warnings", len(warnings))

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.NewPayrollRunCompletedEvent(
			run.ID, run.RunNumber, totals.TotalEmployees, totals.TotalNetCents, len(skips)))
	}

	result, err := s.GetRun(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	result.Skips = skips
	result.Warnings = warnings
	return result, nil
}

func (s *Service) failRun(ctx context.Context, run *payrollDatamodel.PayrollRun, cause error) error {
	reason := cause.Error()
	ok, err := s.runRepo.Transition(run.ID, RunStatusProcessing, RunStatusFailed, nil, &reason)
	if err != nil {
		s.logger.Error("failed to mark run as failed",
			"run_id", run.ID,
			"transition_error", err,
			"cause", cause)
	} else if !ok {
		s.logger.Warn("run already in terminal state while failing", "run_id", run.ID)
	}

	s.logger.Error("payroll run failed",
		"run_id", run.ID,
		"run_number", run.RunNumber,
		"error", cause)

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.NewPayrollRunFailedEvent(run.ID, run.RunNumber, reason))
	}

	return cause
}

func (s *Service) GetRun(ctx context.Context, runID int64) (*Run, error) {
	dataRun, err := s.runRepo.GetByID(runID)
	if err != nil {
		return nil, errors.NewPersistenceError("failed to get payroll run", err)
	}
	if dataRun == nil {
		return nil, errors.NewNotFoundError("payroll run not found", errors.ErrCodeRunNotFound)
	}
	return RunFromDataModel(dataRun), nil
}

func (s *Service) ListRuns(ctx context.Context, limit, offset int) ([]*Run, error) {
	dataRuns, err := s.runRepo.List(limit, offset)
	if err != nil {
		return nil, errors.NewPersistenceError("failed to list payroll runs", err)
	}

	runs := make([]*Run, 0, len(dataRuns))
	for _, dataRun := range dataRuns {
		runs = append(runs, RunFromDataModel(dataRun))
	}
	return runs, nil
}

func (s *Service) ListPayslipsForRun(ctx context.Context, runID int64) ([]*payrollDatamodel.Payslip, error) {
	if _, err := s.GetRun(ctx, runID); err != nil {
		return nil, err
	}

	payslips, err := s.payslipRepo.ListForRun(runID)
	if err != nil {
		return nil, errors.NewPersistenceError("failed to list payslips", err)
	}
	return payslips, nil
}

func (s *Service) ListPayslipsForEmployee(ctx context.Context, employeeID int64, year int) ([]*payrollDatamodel.Payslip, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	payslips, err := s.payslipRepo.ListForEmployeeInYear(employeeID, year)
	if err != nil {
		return nil, errors.NewPersistenceError("failed to list payslips", err)
	}
	return payslips, nil
}
