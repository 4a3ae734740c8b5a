package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notch-hr/notch-backend-go/internal/domain/department"
	"github.com/notch-hr/notch-backend-go/internal/domain/employee"
	"github.com/notch-hr/notch-backend-go/internal/pkg/validator"
)

type fakeEmployeeRepo struct {
	employees map[int64]employee.Employee
	nextID    int64
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[int64]employee.Employee), nextID: 1}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = f.nextID
	f.nextID++
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
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

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := f.employees[id]
	return ok, nil
}

type fakeDepartmentRepo struct {
	departments map[int64]department.Department
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, dept department.Department) (department.Department, error) {
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

func testService(departmentIDs ...int64) (*EmployeeServiceImpl, *fakeEmployeeRepo) {
	deptRepo := &fakeDepartmentRepo{departments: make(map[int64]department.Department)}
	for _, id := range departmentIDs {
		deptRepo.departments[id] = department.Department{ID: id, Name: "Engineering"}
	}
	empRepo := newFakeEmployeeRepo()
	return NewEmployeeService(empRepo, deptRepo), empRepo
}

func validRequest() employee.EmployeeRequest {
	return employee.EmployeeRequest{
		Name:          "Jane Smith",
		Position:      "Engineer",
		DepartmentID:  1,
		DateOfJoining: "2024-03-01",
		EmailAddress:  "jane.smith@example.com",
		PhoneNumber:   "+628123456789",
	}
}

func TestCreateEmployee(t *testing.T) {
	svc, repo := testService(1)

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "Jane Smith", created.Name)
	assert.Equal(t, int64(1), created.DepartmentID)
	assert.Equal(t, "2024-03-01", created.DateOfJoining.Format("2006-01-02"))
	assert.Len(t, repo.employees, 1)
}

func TestCreateEmployeeUnknownDepartment(t *testing.T) {
	svc, repo := testService()

	_, err := svc.Create(context.Background(), validRequest())

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "departmentId")
	assert.Empty(t, repo.employees)
}

func TestCreateEmployeeValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*employee.EmployeeRequest)
		field  string
	}{
		{"missing name", func(r *employee.EmployeeRequest) { r.Name = "" }, "name"},
		{"invalid email", func(r *employee.EmployeeRequest) { r.EmailAddress = "not-an-email" }, "emailAddress"},
		{"invalid phone", func(r *employee.EmployeeRequest) { r.PhoneNumber = "abc" }, "phoneNumber"},
		{"malformed joining date", func(r *employee.EmployeeRequest) { r.DateOfJoining = "01-03-2024" }, "dateOfJoining"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc, _ := testService(1)
			req := validRequest()
			c.mutate(&req)

			_, err := svc.Create(context.Background(), req)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.field)
		})
	}
}

func TestUpdateEmployeeReplacesRecord(t *testing.T) {
	ctx := context.Background()
	svc, repo := testService(1)

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Position = "Senior Engineer"
	require.NoError(t, svc.Update(ctx, created.ID, req))

	stored := repo.employees[created.ID]
	assert.Equal(t, "Senior Engineer", stored.Position)
	assert.Equal(t, created.ID, stored.ID)
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	svc, _ := testService(1)

	err := svc.Update(context.Background(), 99, validRequest())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteEmployeeNotFound(t *testing.T) {
	svc, _ := testService(1)

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
