package compensation

import "time"

// CompensationRecord is effective-dated: several may exist per employee,
// only the one with the latest effective_date not after the pay date applies.
// Monetary columns are integer cents; percentage columns are plain percent.
type CompensationRecord struct {
	ID                   int64     `gorm:"primaryKey"`
	EmployeeID           int64     `gorm:"column:employee_id;not null;index"`
	EffectiveDate        time.Time `gorm:"column:effective_date;type:date;not null"`
	BasePayCents         int64     `gorm:"column:base_pay_cents;not null"`
	HourlyRateCents      int64     `gorm:"column:hourly_rate_cents;default:0"`
	OvertimeRateCents    int64     `gorm:"column:overtime_rate_cents;default:0"`
	FederalTaxPct        float64   `gorm:"column:federal_tax_pct;not null"`
	StateTaxPct          float64   `gorm:"column:state_tax_pct;not null"`
	SocialSecurityPct    float64   `gorm:"column:social_security_pct;not null"`
	MedicarePct          float64   `gorm:"column:medicare_pct;not null"`
	HealthInsuranceCents int64     `gorm:"column:health_insurance_cents;default:0"`
	RetirementPct        float64   `gorm:"column:retirement_pct;default:0"`
	BankAccountNumber    *string   `gorm:"column:bank_account_number"`
	BankRoutingNumber    *string   `gorm:"column:bank_routing_number"`
	BankName             *string   `gorm:"column:bank_name"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
