package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for the leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id int64) (LeaveRequest, error)
	List(ctx context.Context) ([]LeaveRequest, error)
	ListByStatus(ctx context.Context, status LeaveStatus) ([]LeaveRequest, error)
	// HasOverlapping reports whether any request of the employee satisfies
	// existing.start < end AND existing.end > start, regardless of status.
	HasOverlapping(ctx context.Context, employeeID int64, start, end time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status LeaveStatus) error
}
