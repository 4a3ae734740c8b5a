package employee

import "github.com/notch-hr/notch-backend-go/internal/pkg/validator"

// EmployeeRequest is the create/replace payload. ID is only meaningful on
// update, where it must match the path id.
type EmployeeRequest struct {
	ID            int64  `json:"id,omitempty"`
	Name          string `json:"name"`
	Position      string `json:"position"`
	DepartmentID  int64  `json:"departmentId"`
	DateOfJoining string `json:"dateOfJoining"`
	EmailAddress  string `json:"emailAddress"`
	PhoneNumber   string `json:"phoneNumber"`
}

func (r *EmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "Employee name is required.",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "Name cannot exceed 100 characters.",
		})
	}

	// Position
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "Position is required.",
		})
	}
	if len(r.Position) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "Position cannot exceed 50 characters.",
		})
	}

	// Department
	if r.DepartmentID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "departmentId",
			Message: "Department ID is required.",
		})
	}

	// Date of joining
	if validator.IsEmpty(r.DateOfJoining) {
		errs = append(errs, validator.ValidationError{
			Field:   "dateOfJoining",
			Message: "Date of joining is required.",
		})
	} else if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "dateOfJoining",
			Message: "Date of joining must be a valid date (YYYY-MM-DD).",
		})
	}

	// Email
	if validator.IsEmpty(r.EmailAddress) {
		errs = append(errs, validator.ValidationError{
			Field:   "emailAddress",
			Message: "Email address is required.",
		})
	} else if !validator.IsValidEmail(r.EmailAddress) {
		errs = append(errs, validator.ValidationError{
			Field:   "emailAddress",
			Message: "Invalid email address.",
		})
	}

	// Phone
	if validator.IsEmpty(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phoneNumber",
			Message: "Phone number is required.",
		})
	} else if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phoneNumber",
			Message: "Invalid phone number.",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
