package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	// SetStatus creates or mutates the employee's record for the current day.
	SetStatus(ctx context.Context, req SetStatusRequest) (Attendance, error)
	Get(ctx context.Context, id int64) (Attendance, error)
	Today(ctx context.Context) ([]Attendance, error)
	ByDate(ctx context.Context, date time.Time) ([]Attendance, error)
	// CalculateHours returns the elapsed hours between in-time and out-time.
	CalculateHours(ctx context.Context, id int64) (float64, error)
}
