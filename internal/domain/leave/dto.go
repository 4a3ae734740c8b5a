package leave

import (
	"time"

	"github.com/notch-hr/notch-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	EmployeeID int64  `json:"employeeId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason"`
	LeaveType  string `json:"leaveType"`
}

// Validate checks the payload fields. today anchors the not-in-the-past rule
// so callers control the effective date.
func (r *CreateLeaveRequestRequest) Validate(today time.Time) error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "EmployeeId must be greater than 0.",
		})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "StartDate must be a valid date (YYYY-MM-DD).",
		})
	}

	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "EndDate must be a valid date (YYYY-MM-DD).",
		})
	}

	if startOK && endOK && startDate.After(endDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "StartDate must be less than or equal to EndDate.",
		})
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if startOK && startDate.Before(day) {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "StartDate cannot be in the past.",
		})
	}
	if endOK && endDate.Before(day) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "EndDate cannot be in the past.",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "Reason is required.",
		})
	}
	if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "Reason cannot exceed 500 characters.",
		})
	}

	if !validator.IsInSlice(r.LeaveType, ValidLeaveTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveType",
			Message: "Invalid leave type.",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
