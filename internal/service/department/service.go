package department

import (
	"context"
	"fmt"

	"github.com/notch-hr/notch-backend-go/internal/domain/department"
	"github.com/notch-hr/notch-backend-go/internal/domain/employee"
)

type DepartmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewDepartmentService(
	departmentRepo department.DepartmentRepository,
	employeeRepo employee.EmployeeRepository,
) *DepartmentServiceImpl {
	return &DepartmentServiceImpl{
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
	}
}

// Create implements department.DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:      req.Name,
		ManagerID: req.ManagerID,
	})
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return created, nil
}

// Get implements department.DepartmentService. Employees are joined at read
// time; the department row itself stores no back-references.
func (s *DepartmentServiceImpl) Get(ctx context.Context, id int64) (department.Department, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.Department{}, err
	}

	employees, err := s.employeeRepo.ListByDepartment(ctx, id)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to list department employees: %w", err)
	}
	dept.Employees = employees

	return dept, nil
}

// List implements department.DepartmentService.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.Department, error) {
	return s.departmentRepo.List(ctx)
}
