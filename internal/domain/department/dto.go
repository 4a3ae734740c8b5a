package department

import "github.com/notch-hr/notch-backend-go/internal/pkg/validator"

type CreateDepartmentRequest struct {
	Name      string `json:"name"`
	ManagerID int64  `json:"managerId"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "Department name is required.",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "Department name cannot exceed 100 characters.",
		})
	}

	if r.ManagerID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "managerId",
			Message: "Manager ID must be a positive number.",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
