package attendance

import (
	"context"
	"time"
)

// AttendanceRepository - interface for the attendances table
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id int64) (Attendance, error)
	// GetByEmployeeAndDate returns nil, nil when no record exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
	Update(ctx context.Context, att Attendance) error
}
