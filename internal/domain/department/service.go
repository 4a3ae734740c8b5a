package department

import "context"

type DepartmentService interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (Department, error)
	// Get returns the department with its employees populated.
	Get(ctx context.Context, id int64) (Department, error)
	List(ctx context.Context) ([]Department, error)
}
