package attendance

import (
	"time"

	"github.com/notch-hr/notch-backend-go/internal/pkg/validator"
)

// SetStatusRequest marks an employee's attendance for the current day.
// InTime and OutTime are optional; when omitted the service fills them in
// (now, and in-time plus eight hours).
type SetStatusRequest struct {
	EmployeeID int64      `json:"employeeId"`
	Status     string     `json:"status"`
	InTime     *time.Time `json:"inTime,omitempty"`
	OutTime    *time.Time `json:"outTime,omitempty"`
}

func (r *SetStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "Employee ID must be greater than zero.",
		})
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "Status is required.",
		})
	} else if !validator.IsInSlice(r.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "Status must be one of the following values: Present, Not Present, Need to Attend.",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
