package postgres

import (
	"github.com/frahmantamala/payroll-engine/internal/bankexport"
	bankexportDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/bankexport"
	"gorm.io/gorm"
)

type BankExportRepository struct {
	db *gorm.DB
}

func NewBankExportRepository(db *gorm.DB) bankexport.RepositoryAPI {
	return &BankExportRepository{db: db}
}

func (r *BankExportRepository) Create(batch *bankexportDatamodel.BankExportBatch) error {
	return r.db.Create(batch).Error
}

func (r *BankExportRepository) ListForRun(runID int64) ([]*bankexportDatamodel.BankExportBatch, error) {
	var batches []*bankexportDatamodel.BankExportBatch
	err := r.db.
		Where("payroll_run_id = ?", runID).
		Order("export_date DESC").
		Find(&batches).Error
	return batches, err
}
