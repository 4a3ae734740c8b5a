package department

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notch-hr/notch-backend-go/internal/domain/department"
	"github.com/notch-hr/notch-backend-go/internal/domain/employee"
	"github.com/notch-hr/notch-backend-go/internal/pkg/validator"
)

type fakeDepartmentRepo struct {
	departments map[int64]department.Department
	nextID      int64
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{departments: make(map[int64]department.Department), nextID: 1}
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	dept.ID = f.nextID
	f.nextID++
	f.departments[dept.ID] = dept
	return dept, nil
}

func (f *fakeDepartmentRepo) GetByID(ctx context.Context, id int64) (department.Department, error) {
	dept, ok := f.departments[id]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return dept, nil
}

func (f *fakeDepartmentRepo) List(ctx context.Context) ([]department.Department, error) {
	var out []department.Department
	for _, dept := range f.departments {
		out = append(out, dept)
	}
	return out, nil
}

func (f *fakeDepartmentRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := f.departments[id]
	return ok, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) ListByDepartment(ctx context.Context, departmentID int64) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.DepartmentID == departmentID {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeEmployeeRepo) Exists(ctx context.Context, id int64) (bool, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateDepartment(t *testing.T) {
	svc := NewDepartmentService(newFakeDepartmentRepo(), &fakeEmployeeRepo{})

	created, err := svc.Create(context.Background(), department.CreateDepartmentRequest{
		Name:      "Engineering",
		ManagerID: 3,
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "Engineering", created.Name)
	assert.Equal(t, int64(3), created.ManagerID)
}

func TestCreateDepartmentValidation(t *testing.T) {
	svc := NewDepartmentService(newFakeDepartmentRepo(), &fakeEmployeeRepo{})

	_, err := svc.Create(context.Background(), department.CreateDepartmentRequest{Name: ""})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "name")
	assert.Contains(t, errs.ToMap(), "managerId")
}

func TestGetDepartmentJoinsEmployees(t *testing.T) {
	ctx := context.Background()
	deptRepo := newFakeDepartmentRepo()
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: 1, Name: "Jane", DepartmentID: 1},
		{ID: 2, Name: "John", DepartmentID: 2},
	}}
	svc := NewDepartmentService(deptRepo, empRepo)

	created, err := svc.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering", ManagerID: 1})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Employees, 1)
	assert.Equal(t, "Jane", got.Employees[0].Name)
}

func TestGetDepartmentNotFound(t *testing.T) {
	svc := NewDepartmentService(newFakeDepartmentRepo(), &fakeEmployeeRepo{})

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}
