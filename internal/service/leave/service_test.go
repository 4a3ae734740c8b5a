package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notch-hr/notch-backend-go/internal/domain/employee"
	"github.com/notch-hr/notch-backend-go/internal/domain/leave"
	"github.com/notch-hr/notch-backend-go/internal/pkg/clock"
	"github.com/notch-hr/notch-backend-go/internal/pkg/validator"
)

type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEmployeeRepo struct {
	employees map[int64]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
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
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id int64) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := f.employees[id]
	return ok, nil
}

type fakeLeaveRepo struct {
	requests map[int64]leave.LeaveRequest
	nextID   int64
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[int64]leave.LeaveRequest), nextID: 1}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	req.ID = f.nextID
	f.nextID++
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (f *fakeLeaveRepo) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		out = append(out, req)
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByStatus(ctx context.Context, status leave.LeaveStatus) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) HasOverlapping(ctx context.Context, employeeID int64, startDate, endDate time.Time) (bool, error) {
	for _, req := range f.requests {
		if req.EmployeeID == employeeID && req.StartDate.Before(endDate) && req.EndDate.After(startDate) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id int64, status leave.LeaveStatus) error {
	req, ok := f.requests[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	req.Status = status
	f.requests[id] = req
	return nil
}

var testNow = time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

func testService(employeeIDs ...int64) (*LeaveServiceImpl, *fakeLeaveRepo) {
	empRepo := &fakeEmployeeRepo{employees: make(map[int64]employee.Employee)}
	for _, id := range employeeIDs {
		empRepo.employees[id] = employee.Employee{ID: id, Name: "Employee"}
	}
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(passthroughTx{}, leaveRepo, empRepo, clock.Fixed(testNow))
	return svc, leaveRepo
}

// day returns today plus the given offset, formatted for the request payload.
func day(offset int) string {
	return testNow.AddDate(0, 0, offset).Format("2006-01-02")
}

func validRequest(employeeID int64, start, end string) leave.CreateLeaveRequestRequest {
	return leave.CreateLeaveRequestRequest{
		EmployeeID: employeeID,
		StartDate:  start,
		EndDate:    end,
		Reason:     "Family visit",
		LeaveType:  "Vacation",
	}
}

func TestRequestLeaveForcesPendingStatus(t *testing.T) {
	svc, repo := testService(1)

	created, err := svc.RequestLeave(context.Background(), validRequest(1, day(1), day(3)))
	require.NoError(t, err)

	assert.Equal(t, leave.LeaveStatusPending, created.Status)
	assert.Equal(t, leave.LeaveTypeVacation, created.LeaveType)
	assert.Len(t, repo.requests, 1)
}

func TestRequestLeaveOverlapRejected(t *testing.T) {
	ctx := context.Background()
	svc, repo := testService(1)

	_, err := svc.RequestLeave(ctx, validRequest(1, day(1), day(3)))
	require.NoError(t, err)

	_, err = svc.RequestLeave(ctx, validRequest(1, day(2), day(4)))
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
	assert.Len(t, repo.requests, 1)
}

func TestRequestLeaveBackToBackAllowed(t *testing.T) {
	ctx := context.Background()
	svc, repo := testService(1)

	_, err := svc.RequestLeave(ctx, validRequest(1, day(1), day(3)))
	require.NoError(t, err)

	// Intervals compare open-ended: a request starting on the previous
	// end date does not overlap.
	_, err = svc.RequestLeave(ctx, validRequest(1, day(3), day(5)))
	require.NoError(t, err)
	assert.Len(t, repo.requests, 2)
}

func TestRequestLeaveOverlapIgnoresStatus(t *testing.T) {
	ctx := context.Background()
	svc, repo := testService(1)

	first, err := svc.RequestLeave(ctx, validRequest(1, day(1), day(3)))
	require.NoError(t, err)
	require.NoError(t, svc.Reject(ctx, first.ID))

	// A rejected request still blocks the dates.
	_, err = svc.RequestLeave(ctx, validRequest(1, day(2), day(4)))
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
	assert.Len(t, repo.requests, 1)
}

func TestRequestLeaveOtherEmployeeUnaffected(t *testing.T) {
	ctx := context.Background()
	svc, _ := testService(1, 2)

	_, err := svc.RequestLeave(ctx, validRequest(1, day(1), day(3)))
	require.NoError(t, err)

	_, err = svc.RequestLeave(ctx, validRequest(2, day(2), day(4)))
	assert.NoError(t, err)
}

func TestRequestLeaveUnknownEmployee(t *testing.T) {
	svc, repo := testService()

	_, err := svc.RequestLeave(context.Background(), validRequest(42, day(1), day(3)))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, repo.requests)
}

func TestRequestLeaveValidation(t *testing.T) {
	cases := []struct {
		name  string
		req   leave.CreateLeaveRequestRequest
		field string
	}{
		{"start date in the past", validRequest(1, day(-1), day(3)), "startDate"},
		{"start after end", validRequest(1, day(4), day(2)), "startDate"},
		{"malformed date", validRequest(1, "16-06-2025", day(3)), "startDate"},
		{"unknown leave type", func() leave.CreateLeaveRequestRequest {
			r := validRequest(1, day(1), day(3))
			r.LeaveType = "Sabbatical"
			return r
		}(), "leaveType"},
		{"missing reason", func() leave.CreateLeaveRequestRequest {
			r := validRequest(1, day(1), day(3))
			r.Reason = ""
			return r
		}(), "reason"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc, repo := testService(1)

			_, err := svc.RequestLeave(context.Background(), c.req)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.field)
			assert.Empty(t, repo.requests)
		})
	}
}

func TestApproveAndReject(t *testing.T) {
	ctx := context.Background()
	svc, repo := testService(1)

	created, err := svc.RequestLeave(ctx, validRequest(1, day(1), day(3)))
	require.NoError(t, err)

	require.NoError(t, svc.Approve(ctx, created.ID))
	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveStatusApproved, stored.Status)

	// No state-machine guard: flipping an approved request is allowed.
	require.NoError(t, svc.Reject(ctx, created.ID))
	stored, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveStatusRejected, stored.Status)

	// Re-applying the same decision is a no-op, not an error.
	require.NoError(t, svc.Reject(ctx, created.ID))
}

func TestApproveMissingRequest(t *testing.T) {
	svc, _ := testService(1)

	err := svc.Approve(context.Background(), 99)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestListByStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := testService(1, 2)

	first, err := svc.RequestLeave(ctx, validRequest(1, day(1), day(3)))
	require.NoError(t, err)
	_, err = svc.RequestLeave(ctx, validRequest(2, day(1), day(3)))
	require.NoError(t, err)

	require.NoError(t, svc.Approve(ctx, first.ID))

	approved, err := svc.ListByStatus(ctx, leave.LeaveStatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, first.ID, approved[0].ID)

	pending, err := svc.ListByStatus(ctx, leave.LeaveStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
