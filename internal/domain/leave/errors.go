package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("Leave request not found")
	ErrOverlappingLeave     = errors.New("A leave request already exists for this employee during the specified dates.")
)
