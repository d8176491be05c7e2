package employee

import (
	"log/slog"

	errors "github.com/frahmantamala/payroll-engine/internal"
	employeeDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/employee"
)

type RepositoryAPI interface {
	ListActive(departmentID *int64, limit, offset int) ([]*employeeDatamodel.Employee, error)
	GetByID(id int64) (*employeeDatamodel.Employee, error)
	Create(emp *employeeDatamodel.Employee) error
	Update(emp *employeeDatamodel.Employee) error
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

// ListActive returns active employees, optionally scoped to a department.
// The run engine calls this with no pagination bound to enumerate a run's
// population; the HTTP handler passes limit/offset.
func (s *Service) ListActive(departmentID *int64, limit, offset int) ([]*Employee, error) {
	dataEmployees, err := s.repo.ListActive(departmentID, limit, offset)
	if err != nil {
		s.logger.Error("failed to list active employees", "error", err)
		return nil, errors.NewPersistenceError("failed to list active employees", err)
	}

	employees := make([]*Employee, 0, len(dataEmployees))
	for _, dataEmp := range dataEmployees {
		employees = append(employees, FromDataModel(dataEmp))
	}
	return employees, nil
}

func (s *Service) GetByID(id int64) (*Employee, error) {
	dataEmp, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get employee", "employee_id", id, "error", err)
		return nil, errors.NewPersistenceError("failed to get employee", err)
	}
	if dataEmp == nil {
		return nil, errors.NewNotFoundError("employee not found", errors.ErrCodeEmployeeNotFound)
	}
	return FromDataModel(dataEmp), nil
}
