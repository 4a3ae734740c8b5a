package employee

import (
	"context"
	"fmt"

	"github.com/notch-hr/notch-backend-go/internal/domain/department"
	"github.com/notch-hr/notch-backend-go/internal/domain/employee"
	"github.com/notch-hr/notch-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.EmployeeRequest) (employee.Employee, error) {
	emp, err := s.buildEmployee(ctx, req)
	if err != nil {
		return employee.Employee{}, err
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id int64) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.List(ctx)
}

// Update implements employee.EmployeeService. The replacement is full; a
// missing row surfaces as ErrEmployeeNotFound so the handler can answer 404
// when the employee vanished between read and write.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id int64, req employee.EmployeeRequest) error {
	emp, err := s.buildEmployee(ctx, req)
	if err != nil {
		return err
	}
	emp.ID = id

	return s.employeeRepo.Update(ctx, emp)
}

// Delete implements employee.EmployeeService. Dependent attendance and leave
// rows are left in place.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.employeeRepo.Delete(ctx, id)
}

// buildEmployee validates the payload and resolves it into an entity. An
// unknown department is reported as a field error, matching the required-FK
// data model.
func (s *EmployeeServiceImpl) buildEmployee(ctx context.Context, req employee.EmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	exists, err := s.departmentRepo.Exists(ctx, req.DepartmentID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to check department existence: %w", err)
	}
	if !exists {
		return employee.Employee{}, validator.ValidationErrors{{
			Field:   "departmentId",
			Message: "Department does not exist.",
		}}
	}

	dateOfJoining, _ := validator.IsValidDate(req.DateOfJoining)

	return employee.Employee{
		Name:          req.Name,
		Position:      req.Position,
		DepartmentID:  req.DepartmentID,
		DateOfJoining: dateOfJoining,
		EmailAddress:  req.EmailAddress,
		PhoneNumber:   req.PhoneNumber,
	}, nil
}
