package employee

import "time"

// Employee entity. DepartmentName is a read-side projection from the
// departments table, never stored.
type Employee struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Position       string    `json:"position"`
	DepartmentID   int64     `json:"departmentId"`
	DateOfJoining  time.Time `json:"dateOfJoining"`
	EmailAddress   string    `json:"emailAddress"`
	PhoneNumber    string    `json:"phoneNumber"`
	DepartmentName *string   `json:"departmentName,omitempty"`
}
