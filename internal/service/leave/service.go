package leave

import (
	"context"
	"fmt"

	"github.com/notch-hr/notch-backend-go/internal/domain/employee"
	"github.com/notch-hr/notch-backend-go/internal/domain/leave"
	"github.com/notch-hr/notch-backend-go/internal/pkg/clock"
	"github.com/notch-hr/notch-backend-go/internal/pkg/database"
	"github.com/notch-hr/notch-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	tx           database.TxManager
	leaveRepo    leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository
	clock        clock.Clock
}

func NewLeaveService(
	tx database.TxManager,
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		tx:           tx,
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		clock:        clk,
	}
}

// RequestLeave implements leave.LeaveService. The overlap check deliberately
// ignores request status: a Rejected request still blocks the dates, matching
// the long-standing behavior clients rely on.
func (s *LeaveServiceImpl) RequestLeave(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(s.clock.Now()); err != nil {
		return leave.LeaveRequest{}, err
	}

	exists, err := s.employeeRepo.Exists(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to check employee existence: %w", err)
	}
	if !exists {
		return leave.LeaveRequest{}, employee.ErrEmployeeNotFound
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	var created leave.LeaveRequest
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		hasOverlap, err := s.leaveRepo.HasOverlapping(txCtx, req.EmployeeID, startDate, endDate)
		if err != nil {
			return fmt.Errorf("failed to check overlapping leave requests: %w", err)
		}
		if hasOverlap {
			return leave.ErrOverlappingLeave
		}

		request := leave.LeaveRequest{
			EmployeeID: req.EmployeeID,
			StartDate:  startDate,
			EndDate:    endDate,
			Reason:     req.Reason,
			LeaveType:  leave.LeaveType(req.LeaveType),
			// Status is forced regardless of what the caller sent.
			Status: leave.LeaveStatusPending,
		}

		created, err = s.leaveRepo.Create(txCtx, request)
		return err
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return created, nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	return s.leaveRepo.GetByID(ctx, id)
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	return s.leaveRepo.List(ctx)
}

// ListByStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByStatus(ctx context.Context, status leave.LeaveStatus) ([]leave.LeaveRequest, error) {
	return s.leaveRepo.ListByStatus(ctx, status)
}

// Approve implements leave.LeaveService. There is no state-machine guard;
// re-approving an already processed request is allowed and idempotent.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, leave.LeaveStatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, leave.LeaveStatusRejected)
}

func (s *LeaveServiceImpl) setStatus(ctx context.Context, id int64, status leave.LeaveStatus) error {
	if _, err := s.leaveRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.leaveRepo.UpdateStatus(ctx, id, status)
}
