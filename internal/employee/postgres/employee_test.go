package postgres

import (
	"testing"
	"time"

	employeeDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/employee"
	"github.com/frahmantamala/payroll-engine/internal/employee"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestEmployeeRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "EmployeeRepository Suite")
}

var _ = Describe("EmployeeRepository", func() {
	var (
		db   *gorm.DB
		repo employee.RepositoryAPI
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&employeeDatamodel.Employee{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewEmployeeRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	newEmployee := func(number, email, status string, departmentID *int64) *employeeDatamodel.Employee {
		return &employeeDatamodel.Employee{
			EmployeeNumber: number,
			Name:           "Test Employee",
			Email:          email,
			DepartmentID:   departmentID,
			Status:         status,
			HireDate:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		}
	}

	Describe("ListActive", func() {
		var engineering, finance int64

		BeforeEach(func() {
			engineering, finance = 1, 2
			Expect(repo.Create(newEmployee("EMP-0001", "a@mail.com", employeeDatamodel.StatusActive, &engineering))).To(Succeed())
			Expect(repo.Create(newEmployee("EMP-0002", "b@mail.com", employeeDatamodel.StatusActive, &finance))).To(Succeed())
			Expect(repo.Create(newEmployee("EMP-0003", "c@mail.com", employeeDatamodel.StatusInactive, &engineering))).To(Succeed())
		})

		It("should exclude inactive employees", func() {
			employees, err := repo.ListActive(nil, 0, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(employees).To(HaveLen(2))
			for _, emp := range employees {
				Expect(emp.Status).To(Equal(employeeDatamodel.StatusActive))
			}
		})

		It("should filter by department", func() {
			employees, err := repo.ListActive(&engineering, 0, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(employees).To(HaveLen(1))
			Expect(employees[0].EmployeeNumber).To(Equal("EMP-0001"))
		})

		It("should return everything when limit is zero", func() {
			employees, err := repo.ListActive(nil, 0, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(employees).To(HaveLen(2))
		})

		It("should page results when a limit is set", func() {
			employees, err := repo.ListActive(nil, 1, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(employees).To(HaveLen(1))

			rest, err := repo.ListActive(nil, 1, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(rest).To(HaveLen(1))
			Expect(rest[0].ID).NotTo(Equal(employees[0].ID))
		})

		It("should order employees by id", func() {
			employees, err := repo.ListActive(nil, 0, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(employees[0].ID).To(BeNumerically("<", employees[1].ID))
		})
	})

	Describe("GetByID", func() {
		It("should fetch an employee that exists", func() {
			emp := newEmployee("EMP-0001", "a@mail.com", employeeDatamodel.StatusActive, nil)
			Expect(repo.Create(emp)).To(Succeed())

			found, err := repo.GetByID(emp.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).NotTo(BeNil())
			Expect(found.EmployeeNumber).To(Equal("EMP-0001"))
		})

		It("should return nil without error when missing", func() {
			found, err := repo.GetByID(999)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})
	})
})
