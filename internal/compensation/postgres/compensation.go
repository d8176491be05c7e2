package postgres

import (
	"github.com/frahmantamala/payroll-engine/internal/compensation"
	compensationDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/compensation"
	"gorm.io/gorm"
)

type CompensationRepository struct {
	db *gorm.DB
}

func NewCompensationRepository(db *gorm.DB) compensation.RepositoryAPI {
	return &CompensationRepository{db: db}
}

func (r *CompensationRepository) ListForEmployee(employeeID int64) ([]*compensationDatamodel.CompensationRecord, error) {
	var records []*compensationDatamodel.CompensationRecord
	err := r.db.
		Where("employee_id = ?", employeeID).
		Order("effective_date DESC").
		Find(&records).Error
	return records, err
}

func (r *CompensationRepository) Create(record *compensationDatamodel.CompensationRecord) error {
	return r.db.Create(record).Error
}
