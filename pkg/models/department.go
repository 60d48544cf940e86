package models

// Department is a top-level administrative geographic unit.
type Department struct {
	ID             int64  `json:"id"`
	DepartmentName string `json:"departmentName"`
}
