package salary

import (
	"context"
	"fmt"

	"github.com/notch-hr/notch-backend-go/internal/domain/salary"
)

type SalaryServiceImpl struct {
	salaryRepo salary.SalaryRepository
}

func NewSalaryService(salaryRepo salary.SalaryRepository) *SalaryServiceImpl {
	return &SalaryServiceImpl{salaryRepo: salaryRepo}
}

// Create implements salary.SalaryService. The net amount is derived here,
// once; later edits never recompute it.
func (s *SalaryServiceImpl) Create(ctx context.Context, req salary.CreateSalaryRequest) (salary.Salary, error) {
	sal := salary.Salary{
		EmployeeID:  req.EmployeeID,
		Month:       req.Month,
		BasicSalary: req.BasicSalary,
		Deductions:  req.Deductions,
		Bonuses:     req.Bonuses,
		NetSalary:   req.BasicSalary + req.Bonuses - req.Deductions,
	}

	created, err := s.salaryRepo.Create(ctx, sal)
	if err != nil {
		return salary.Salary{}, fmt.Errorf("failed to create salary: %w", err)
	}

	return created, nil
}

// Get implements salary.SalaryService.
func (s *SalaryServiceImpl) Get(ctx context.Context, id int64) (salary.Salary, error) {
	return s.salaryRepo.GetByID(ctx, id)
}
