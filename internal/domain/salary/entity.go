package salary

// Salary for one employee and month label. NetSalary is derived once at
// creation (basic + bonuses - deductions) and never recomputed.
type Salary struct {
	ID          int64   `json:"id"`
	EmployeeID  int64   `json:"employeeId"`
	Month       string  `json:"month"`
	BasicSalary float64 `json:"basicSalary"`
	Deductions  float64 `json:"deductions"`
	Bonuses     float64 `json:"bonuses"`
	NetSalary   float64 `json:"netSalary"`
}
