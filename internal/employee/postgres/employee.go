package postgres

import (
	employeeDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/employee"
	"github.com/frahmantamala/payroll-engine/internal/employee"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) ListActive(departmentID *int64, limit, offset int) ([]*employeeDatamodel.Employee, error) {
	var employees []*employeeDatamodel.Employee

	query := r.db.Where("status = ?", employeeDatamodel.StatusActive)
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	err := query.Order("id ASC").Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) GetByID(id int64) (*employeeDatamodel.Employee, error) {
	var emp employeeDatamodel.Employee
	err := r.db.Where("id = ?", id).First(&emp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) Create(emp *employeeDatamodel.Employee) error {
	return r.db.Create(emp).Error
}

func (r *EmployeeRepository) Update(emp *employeeDatamodel.Employee) error {
	return r.db.Save(emp).Error
}
