package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req EmployeeRequest) (Employee, error)
	Get(ctx context.Context, id int64) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	// Update fully replaces the employee with the given id.
	Update(ctx context.Context, id int64, req EmployeeRequest) error
	Delete(ctx context.Context, id int64) error
}
