package employee

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID             int64     `gorm:"primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number;uniqueIndex;not null"`
	Name           string    `gorm:"column:name;not null"`
	Email          string    `gorm:"column:email;uniqueIndex;not null"`
	DepartmentID   *int64    `gorm:"column:department_id"`
	Status         string    `gorm:"column:status;default:active"`
	HireDate       time.Time `gorm:"column:hire_date;type:date"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
