package salary

import "context"

// SalaryRepository - interface for the salaries table
type SalaryRepository interface {
	Create(ctx context.Context, sal Salary) (Salary, error)
	GetByID(ctx context.Context, id int64) (Salary, error)
}
