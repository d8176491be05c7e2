package department

type DepartmentResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

type DepartmentsResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}
