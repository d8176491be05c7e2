package employee

import (
	"time"

	employeeDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/employee"
)

type Employee struct {
	ID             int64     `json:"id"`
	EmployeeNumber string    `json:"employee_number"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	DepartmentID   *int64    `json:"department_id,omitempty"`
	Status         string    `json:"status"`
	HireDate       time.Time `json:"hire_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (e *Employee) IsActive() bool {
	return e.Status == employeeDatamodel.StatusActive
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:             e.ID,
		EmployeeNumber: e.EmployeeNumber,
		Name:           e.Name,
		Email:          e.Email,
		DepartmentID:   e.DepartmentID,
		Status:         e.Status,
		HireDate:       e.HireDate,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:             e.ID,
		EmployeeNumber: e.EmployeeNumber,
		Name:           e.Name,
		Email:          e.Email,
		DepartmentID:   e.DepartmentID,
		Status:         e.Status,
		HireDate:       e.HireDate,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
