package attendance

import "errors"

var (
	ErrAttendanceNotFound   = errors.New("Attendance record not found")
	ErrAlreadyMarkedPresent = errors.New("Employee has already been marked as 'Present' today.")
)
