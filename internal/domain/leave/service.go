package leave

import "context"

type LeaveService interface {
	// RequestLeave admits a new request: the employee must exist and no other
	// request of the same employee may overlap the date range. The created
	// request always starts out Pending.
	RequestLeave(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequest, error)
	Get(ctx context.Context, id int64) (LeaveRequest, error)
	List(ctx context.Context) ([]LeaveRequest, error)
	ListByStatus(ctx context.Context, status LeaveStatus) ([]LeaveRequest, error)
	Approve(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64) error
}
