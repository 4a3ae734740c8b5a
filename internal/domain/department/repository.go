package department

import "context"

// DepartmentRepository - interface for the departments table
type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id int64) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
