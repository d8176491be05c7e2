package compensation

import (
	"context"
	"log/slog"
	"time"

	errors "github.com/frahmantamala/payroll-engine/internal"
	compensationDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/compensation"
)

type RepositoryAPI interface {
	ListForEmployee(employeeID int64) ([]*compensationDatamodel.CompensationRecord, error)
	Create(record *compensationDatamodel.CompensationRecord) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Resolve picks the compensation record with the latest effective date not
// after asOf. A missing record is a NO_COMPENSATION error the run engine
// treats as a per-employee skip, never a run failure.
func (s *Service) Resolve(ctx context.Context, employeeID int64, asOf time.Time) (*CompensationRecord, error) {
	dataRecords, err := s.repo.ListForEmployee(employeeID)
	if err != nil {
		s.logger.Error("failed to list compensation records", "employee_id", employeeID, "error", err)
		return nil, errors.NewPersistenceError("failed to list compensation records", err)
	}

	var best *compensationDatamodel.CompensationRecord
	for _, record := range dataRecords {
		if record.EffectiveDate.After(asOf) {
			continue
		}
		if best == nil || record.EffectiveDate.After(best.EffectiveDate) {
			best = record
		}
	}

	if best == nil {
		return nil, errors.NewNotFoundError("no compensation record in effect", errors.ErrCodeNoCompensation)
	}

	return FromDataModel(best), nil
}

func (s *Service) ListForEmployee(ctx context.Context, employeeID int64) ([]*CompensationRecord, error) {
	dataRecords, err := s.repo.ListForEmployee(employeeID)
	if err != nil {
		s.logger.Error("failed to list compensation records", "employee_id", employeeID, "error", err)
		return nil, errors.NewPersistenceError("failed to list compensation records", err)
	}

	records := make([]*CompensationRecord, 0, len(dataRecords))
	for _, dataRecord := range dataRecords {
		records = append(records, FromDataModel(dataRecord))
	}
	return records, nil
}

func (s *Service) Create(ctx context.Context, employeeID int64, dto CreateCompensationDTO) (*CompensationRecord, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record := &compensationDatamodel.CompensationRecord{
		EmployeeID:           employeeID,
		EffectiveDate:        dto.EffectiveDate,
		BasePayCents:         dto.BasePayCents,
		HourlyRateCents:      dto.HourlyRateCents,
		OvertimeRateCents:    dto.OvertimeRateCents,
		FederalTaxPct:        dto.FederalTaxPct,
		StateTaxPct:          dto.StateTaxPct,
		SocialSecurityPct:    dto.SocialSecurityPct,
		MedicarePct:          dto.MedicarePct,
		HealthInsuranceCents: dto.HealthInsuranceCents,
		RetirementPct:        dto.RetirementPct,
		BankAccountNumber:    dto.BankAccountNumber,
		BankRoutingNumber:    dto.BankRoutingNumber,
		BankName:             dto.BankName,
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create compensation record", "employee_id", employeeID, "error", err)
		return nil, errors.NewPersistenceError("failed to create compensation record", err)
	}

	s.logger.Info("compensation record created",
		"employee_id", employeeID,
		"effective_date", dto.EffectiveDate.Format("2006-01-02"))
	return FromDataModel(record), nil
}
