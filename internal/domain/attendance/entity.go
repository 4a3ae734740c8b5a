package attendance

import "time"

// Status is the closed set of daily attendance states.
type Status string

const (
	StatusPresent      Status = "Present"
	StatusNotPresent   Status = "Not Present"
	StatusNeedToAttend Status = "Need to Attend"
)

// ValidStatuses lists every accepted incoming status value.
var ValidStatuses = []string{
	string(StatusPresent),
	string(StatusNotPresent),
	string(StatusNeedToAttend),
}

// Attendance is the daily record for one employee. At most one row exists per
// (employee, date). In Today/ByDate listings employees without a row get a
// synthesized entry with ID 0, status "Need to Attend" and nil times.
type Attendance struct {
	ID         int64      `json:"id"`
	EmployeeID int64      `json:"employeeId"`
	Date       time.Time  `json:"date"`
	InTime     *time.Time `json:"inTime"`
	OutTime    *time.Time `json:"outTime"`
	Status     Status     `json:"status"`
	IsLate     bool       `json:"isLate"`
}
