package employee

import "time"

type EmployeeResponse struct {
	ID             int64     `json:"id"`
	EmployeeNumber string    `json:"employee_number"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	DepartmentID   *int64    `json:"department_id,omitempty"`
	Status         string    `json:"status"`
	HireDate       time.Time `json:"hire_date"`
}

type EmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int                `json:"total"`
}

func (e *Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		EmployeeNumber: e.EmployeeNumber,
		Name:           e.Name,
		Email:          e.Email,
		DepartmentID:   e.DepartmentID,
		Status:         e.Status,
		HireDate:       e.HireDate,
	}
}
