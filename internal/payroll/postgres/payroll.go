package postgres

import (
	"time"

	payrollDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/payroll"
	"github.com/frahmantamala/payroll-engine/internal/payroll"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RunRepository struct {
	db *gorm.DB
}

func NewRunRepository(db *gorm.DB) payroll.RunRepositoryAPI {
	return &RunRepository{db: db}
}

func (r *RunRepository) Create(run *payrollDatamodel.PayrollRun) error {
	return r.db.Create(run).Error
}

func (r *RunRepository) GetByID(id int64) (*payrollDatamodel.PayrollRun, error) {
	var run payrollDatamodel.PayrollRun
	err := r.db.Where("id = ?", id).First(&run).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

func (r *RunRepository) GetByRunNumber(runNumber string) (*payrollDatamodel.PayrollRun, error) {
	var run payrollDatamodel.PayrollRun
	err := r.db.Where("run_number = ?", runNumber).First(&run).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

func (r *RunRepository) HasProcessing() (bool, error) {
	var count int64
	err := r.db.Model(&payrollDatamodel.PayrollRun{}).
		Where("status = ?", payroll.RunStatusProcessing).
		Count(&count).Error
	return count > 0, err
}

// Transition performs the conditional status update. The WHERE on the
// current status makes it an optimistic write: only one caller can move a
// run into a terminal state, everyone else sees RowsAffected == 0. Moving
// into processing additionally requires that no other run is processing,
// in the same statement, so two concurrent starts cannot both get through.
func (r *RunRepository) Transition(runID int64, from, to string, totals *payroll.RunTotals, failureReason *string) (bool, error) {
	if !payroll.CanTransition(from, to) {
		return false, nil
	}

	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	if payroll.IsTerminalStatus(to) {
		updates["processed_at"] = time.Now()
	}
	if totals != nil {
		updates["total_employees"] = totals.TotalEmployees
		updates["total_gross_cents"] = totals.TotalGrossCents
		updates["total_deductions_cents"] = totals.TotalDeductionsCents
		updates["total_net_cents"] = totals.TotalNetCents
	}
	if failureReason != nil {
		updates["failure_reason"] = *failureReason
	}

	query := r.db.Model(&payrollDatamodel.PayrollRun{}).
		Where("id = ? AND status = ?", runID, from)
	if to == payroll.RunStatusProcessing {
		query = query.Where(
			"NOT EXISTS (SELECT 1 FROM payroll_runs other WHERE other.status = ? AND other.id <> ?)",
			payroll.RunStatusProcessing, runID)
	}

	result := query.Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *RunRepository) List(limit, offset int) ([]*payrollDatamodel.PayrollRun, error) {
	var runs []*payrollDatamodel.PayrollRun
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Find(&runs).Error
	return runs, err
}

type PayslipRepository struct {
	db *gorm.DB
}

func NewPayslipRepository(db *gorm.DB) payroll.PayslipRepositoryAPI {
	return &PayslipRepository{db: db}
}

// InsertIfAbsent writes the payslip unless one already exists for the same
// (run, employee) pair. The conflict target rides on the unique index, so
// the check and the insert are one atomic statement.
func (r *PayslipRepository) InsertIfAbsent(payslip *payrollDatamodel.Payslip) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "payroll_run_id"}, {Name: "employee_id"}},
		DoNothing: true,
	}).Create(payslip)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PayslipRepository) ListForRun(runID int64) ([]*payrollDatamodel.Payslip, error) {
	var payslips []*payrollDatamodel.Payslip
	err := r.db.
		Where("payroll_run_id = ?", runID).
		Order("employee_id ASC").
		Find(&payslips).Error
	return payslips, err
}

func (r *PayslipRepository) ListForEmployeeInYear(employeeID int64, year int) ([]*payrollDatamodel.Payslip, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	var payslips []*payrollDatamodel.Payslip
	err := r.db.
		Where("employee_id = ? AND pay_date >= ? AND pay_date < ?", employeeID, yearStart, yearEnd).
		Find(&payslips).Error
	return payslips, err
}
