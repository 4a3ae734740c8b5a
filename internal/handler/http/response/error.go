package response

import (
	"errors"
	"net/http"

	"github.com/notch-hr/notch-backend-go/internal/domain/attendance"
	"github.com/notch-hr/notch-backend-go/internal/domain/department"
	"github.com/notch-hr/notch-backend-go/internal/domain/employee"
	"github.com/notch-hr/notch-backend-go/internal/domain/leave"
	"github.com/notch-hr/notch-backend-go/internal/domain/salary"
	"github.com/notch-hr/notch-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee / department
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Attendance
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyMarkedPresent):
		// Double check-in answers 400, not 409.
		BadRequest(w, attendance.ErrAlreadyMarkedPresent.Error(), nil)

	// Leave
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, leave.ErrOverlappingLeave.Error())

	// Salary
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
