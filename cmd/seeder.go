package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{
				"bank_export_batches", "payslips", "payroll_runs",
				"compensation_records", "employees", "departments",
				"user_permissions", "permissions", "users",
			} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), cfg.Security.BCryptCost)

		seedUser(db, "clerk@mail.com", "Payroll Clerk", string(hash))
		seedUser(db, "admin@mail.com", "Payroll Admin", string(hash))

		permissions := []struct {
			Name string
			Desc string
		}{
			{"admin", "full administrator"},
			{"process_payroll", "Can start and process payroll runs"},
			{"export_payroll", "Can generate bank export files"},
			{"manage_compensation", "Can create compensation records"},
		}

		for _, p := range permissions {
			var pid int64
			row := db.Raw("SELECT id FROM permissions WHERE name = ?", p.Name).Row()
			if err := row.Scan(&pid); err != nil {
				if err := db.Exec("INSERT INTO permissions (name, description, created_at) VALUES (?, ?, now())", p.Name, p.Desc).Error; err != nil {
					log.Fatalf("failed to insert permission %s: %v", p.Name, err)
				}
			}
		}

		grantPermissions(db, "admin@mail.com", []string{"admin", "process_payroll", "export_payroll", "manage_compensation"})
		grantPermissions(db, "clerk@mail.com", []string{"process_payroll"})

		seedDepartments(db)
		seedEmployees(db)

		fmt.Println("Seeding complete")
	},
}

func seedUser(db *gorm.DB, email, name, passwordHash string) {
	var exists int
	if err := db.Raw("SELECT 1 FROM users WHERE email = ?", email).Row().Scan(&exists); err == nil {
		fmt.Println("user already exists:", email)
		return
	}
	if err := db.Exec("INSERT INTO users (email, name, password_hash, is_active, created_at, updated_at) VALUES (?, ?, ?, true, now(), now())", email, name, passwordHash).Error; err != nil {
		log.Fatalf("failed to insert user %s: %v", email, err)
	}
	fmt.Println("Seeded user:", email)
}

func grantPermissions(db *gorm.DB, email string, permNames []string) {
	var userID int64
	if err := db.Raw("SELECT id FROM users WHERE email = ?", email).Row().Scan(&userID); err != nil {
		log.Fatalf("failed to lookup user id for %s: %v", email, err)
	}

	for _, permName := range permNames {
		var pid int64
		if err := db.Raw("SELECT id FROM permissions WHERE name = ?", permName).Row().Scan(&pid); err != nil {
			log.Fatalf("permission not found %s: %v", permName, err)
		}

		var exists int
		if err := db.Raw("SELECT 1 FROM user_permissions WHERE user_id = ? AND permission_id = ?", userID, pid).Row().Scan(&exists); err == nil {
			continue
		}

		if err := db.Exec("INSERT INTO user_permissions (user_id, permission_id, granted_by, created_at) VALUES (?, ?, NULL, now())", userID, pid).Error; err != nil {
			log.Fatalf("failed to grant permission %s to %s: %v", permName, email, err)
		}
	}

	fmt.Println("Granted permissions to:", email)
}

func seedDepartments(db *gorm.DB) {
	departments := []struct {
		Name string
		Code string
		Desc string
	}{
		{"Engineering", "ENG", "Product engineering"},
		{"Finance", "FIN", "Finance and accounting"},
		{"Operations", "OPS", "Business operations"},
	}

	for _, d := range departments {
		var id int64
		if err := db.Raw("SELECT id FROM departments WHERE code = ?", d.Code).Row().Scan(&id); err == nil {
			continue
		}
		if err := db.Exec("INSERT INTO departments (name, code, description, is_active, created_at, updated_at) VALUES (?, ?, ?, true, now(), now())", d.Name, d.Code, d.Desc).Error; err != nil {
			log.Fatalf("failed to insert department %s: %v", d.Code, err)
		}
		fmt.Println("Seeded department:", d.Code)
	}
}

func seedEmployees(db *gorm.DB) {
	var engDeptID int64
	if err := db.Raw("SELECT id FROM departments WHERE code = ?", "ENG").Row().Scan(&engDeptID); err != nil {
		log.Fatalf("failed to lookup department: %v", err)
	}

	employees := []struct {
		Number  string
		Name    string
		Email   string
		BasePay int64
		Account string
		Routing string
	}{
		{"EMP-0001", "Alice Johnson", "alice@mail.com", 500000, "000123456789", "021000021"},
		{"EMP-0002", "Bob Smith", "bob@mail.com", 420000, "000987654321", "021000021"},
		{"EMP-0003", "Carol Davis", "carol@mail.com", 610000, "", ""},
	}

	for _, e := range employees {
		var id int64
		if err := db.Raw("SELECT id FROM employees WHERE employee_number = ?", e.Number).Row().Scan(&id); err == nil {
			continue
		}
		if err := db.Exec("INSERT INTO employees (employee_number, name, email, department_id, status, hire_date, created_at, updated_at) VALUES (?, ?, ?, ?, 'active', '2024-01-15', now(), now())", e.Number, e.Name, e.Email, engDeptID).Error; err != nil {
			log.Fatalf("failed to insert employee %s: %v", e.Number, err)
		}

		if err := db.Raw("SELECT id FROM employees WHERE employee_number = ?", e.Number).Row().Scan(&id); err != nil {
			log.Fatalf("failed to lookup employee %s: %v", e.Number, err)
		}

		var account, routing interface{}
		if e.Account != "" {
			account = e.Account
			routing = e.Routing
		}
		if err := db.Exec(`INSERT INTO compensation_records
			(employee_id, effective_date, base_pay_cents, federal_tax_pct, state_tax_pct, social_security_pct, medicare_pct, health_insurance_cents, retirement_pct, bank_account_number, bank_routing_number, created_at, updated_at)
			VALUES (?, '2025-01-01', ?, 15.0, 5.0, 6.2, 1.45, 10000, 3.0, ?, ?, now(), now())`,
			id, e.BasePay, account, routing).Error; err != nil {
			log.Fatalf("failed to insert compensation for %s: %v", e.Number, err)
		}
		fmt.Println("Seeded employee:", e.Number)
	}
}
