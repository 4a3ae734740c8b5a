package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("Department not found")
)
