package salary

import "errors"

var (
	ErrSalaryNotFound = errors.New("Salary record not found")
)
