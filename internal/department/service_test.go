package department_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	departmentDatamodel "github.com/frahmantamala/payroll-engine/internal/core/datamodel/department"
	"github.com/frahmantamala/payroll-engine/internal/department"
)

func TestDepartmentService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Department Service Suite")
}

// MockRepository implements department.RepositoryAPI for testing
type MockRepository struct {
	departments map[string]*departmentDatamodel.Department
	shouldFail  bool
	failError   error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		departments: make(map[string]*departmentDatamodel.Department),
	}
}

func (m *MockRepository) GetAll() ([]*departmentDatamodel.Department, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []*departmentDatamodel.Department
	for _, dept := range m.departments {
		result = append(result, dept)
	}
	return result, nil
}

func (m *MockRepository) GetByID(id int64) (*departmentDatamodel.Department, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	for _, dept := range m.departments {
		if dept.ID == id {
			return dept, nil
		}
	}
	return nil, nil
}

func (m *MockRepository) GetByCode(code string) (*departmentDatamodel.Department, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	dept, exists := m.departments[code]
	if !exists {
		return nil, nil
	}
	return dept, nil
}

func (m *MockRepository) Create(dept *departmentDatamodel.Department) error {
	if m.shouldFail {
		return m.failError
	}
	m.departments[dept.Code] = dept
	return nil
}

func (m *MockRepository) Update(dept *departmentDatamodel.Department) error {
	if m.shouldFail {
		return m.failError
	}
	m.departments[dept.Code] = dept
	return nil
}

func (m *MockRepository) Delete(id int64) error {
	if m.shouldFail {
		return m.failError
	}
	for _, dept := range m.departments {
		if dept.ID == id {
			dept.IsActive = false
		}
	}
	return nil
}

var _ = Describe("DepartmentService", func() {
	var (
		service  *department.Service
		mockRepo *MockRepository
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = department.NewService(mockRepo, logger)
	})

	Describe("GetAllDepartments", func() {
		It("should return only active departments", func() {
			mockRepo.departments["ENG"] = &departmentDatamodel.Department{ID: 1, Name: "Engineering", Code: "ENG", IsActive: true}
			mockRepo.departments["FIN"] = &departmentDatamodel.Department{ID: 2, Name: "Finance", Code: "FIN", IsActive: true}
			mockRepo.departments["OLD"] = &departmentDatamodel.Department{ID: 3, Name: "Disbanded", Code: "OLD", IsActive: false}

			departments, err := service.GetAllDepartments()
			Expect(err).ToNot(HaveOccurred())
			Expect(departments).To(HaveLen(2))
			for _, dept := range departments {
				Expect(dept.Code).ToNot(Equal("OLD"))
			}
		})

		It("should propagate repository errors", func() {
			mockRepo.shouldFail = true
			mockRepo.failError = errors.New("connection refused")

			_, err := service.GetAllDepartments()
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetDepartmentByCode", func() {
		It("should find an active department by code", func() {
			mockRepo.departments["ENG"] = &departmentDatamodel.Department{ID: 1, Name: "Engineering", Code: "ENG", IsActive: true}

			dept, err := service.GetDepartmentByCode("ENG")
			Expect(err).ToNot(HaveOccurred())
			Expect(dept).ToNot(BeNil())
			Expect(dept.Name).To(Equal("Engineering"))
		})

		It("should treat an inactive department as missing", func() {
			mockRepo.departments["OLD"] = &departmentDatamodel.Department{ID: 3, Name: "Disbanded", Code: "OLD", IsActive: false}

			dept, err := service.GetDepartmentByCode("OLD")
			Expect(err).ToNot(HaveOccurred())
			Expect(dept).To(BeNil())
		})

		It("should return nil for an unknown code", func() {
			dept, err := service.GetDepartmentByCode("NOPE")
			Expect(err).ToNot(HaveOccurred())
			Expect(dept).To(BeNil())
		})
	})

	Describe("IsValidDepartment", func() {
		It("should accept an active department", func() {
			mockRepo.departments["ENG"] = &departmentDatamodel.Department{ID: 1, Name: "Engineering", Code: "ENG", IsActive: true}
			Expect(service.IsValidDepartment("ENG")).To(BeTrue())
		})

		It("should reject unknown and inactive departments", func() {
			mockRepo.departments["OLD"] = &departmentDatamodel.Department{ID: 3, Name: "Disbanded", Code: "OLD", IsActive: false}
			Expect(service.IsValidDepartment("OLD")).To(BeFalse())
			Expect(service.IsValidDepartment("NOPE")).To(BeFalse())
		})

		It("should report false when the repository fails", func() {
			mockRepo.shouldFail = true
			mockRepo.failError = errors.New("connection refused")
			Expect(service.IsValidDepartment("ENG")).To(BeFalse())
		})
	})
})
