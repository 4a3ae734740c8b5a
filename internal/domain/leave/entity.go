package leave

import "time"

type LeaveType string

const (
	LeaveTypeSick      LeaveType = "Sick"
	LeaveTypeVacation  LeaveType = "Vacation"
	LeaveTypePersonal  LeaveType = "Personal"
	LeaveTypeMaternity LeaveType = "Maternity"
	LeaveTypePaternity LeaveType = "Paternity"
)

// ValidLeaveTypes lists every accepted leave type value.
var ValidLeaveTypes = []string{
	string(LeaveTypeSick),
	string(LeaveTypeVacation),
	string(LeaveTypePersonal),
	string(LeaveTypeMaternity),
	string(LeaveTypePaternity),
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

// LeaveRequest entity. EmployeeName is a read-side projection joined from the
// employees table.
type LeaveRequest struct {
	ID           int64       `json:"id"`
	EmployeeID   int64       `json:"employeeId"`
	StartDate    time.Time   `json:"startDate"`
	EndDate      time.Time   `json:"endDate"`
	Reason       string      `json:"reason"`
	LeaveType    LeaveType   `json:"leaveType"`
	Status       LeaveStatus `json:"status"`
	EmployeeName *string     `json:"employeeName,omitempty"`
}
