package salary

import "context"

type SalaryService interface {
	Create(ctx context.Context, req CreateSalaryRequest) (Salary, error)
	Get(ctx context.Context, id int64) (Salary, error)
}
