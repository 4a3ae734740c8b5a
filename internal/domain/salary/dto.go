package salary

// CreateSalaryRequest carries the raw components; the service computes the
// net amount.
type CreateSalaryRequest struct {
	EmployeeID  int64   `json:"employeeId"`
	Month       string  `json:"month"`
	BasicSalary float64 `json:"basicSalary"`
	Deductions  float64 `json:"deductions"`
	Bonuses     float64 `json:"bonuses"`
}
