package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/notch-hr/notch-backend-go/internal/domain/attendance"
	"github.com/notch-hr/notch-backend-go/internal/domain/employee"
	"github.com/notch-hr/notch-backend-go/internal/pkg/clock"
	"github.com/notch-hr/notch-backend-go/internal/pkg/database"
)

// Office opens at 08:00; arriving strictly later marks the record late, and a
// missing out-time defaults to in-time plus a standard working day.
const (
	officeStartHour   = 8
	standardWorkHours = 8 * time.Hour
)

type AttendanceServiceImpl struct {
	tx             database.TxManager
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	clock          clock.Clock
}

func NewAttendanceService(
	tx database.TxManager,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		tx:             tx,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clock:          clk,
	}
}

// SetStatus implements attendance.AttendanceService. The effective date is
// always the current calendar day; past or future days are read-only through
// ByDate.
func (s *AttendanceServiceImpl) SetStatus(ctx context.Context, req attendance.SetStatusRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	exists, err := s.employeeRepo.Exists(ctx, req.EmployeeID)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to check employee existence: %w", err)
	}
	if !exists {
		return attendance.Attendance{}, employee.ErrEmployeeNotFound
	}

	now := s.clock.Now()
	today := truncateToDay(now)

	var result attendance.Attendance
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.attendanceRepo.GetByEmployeeAndDate(txCtx, req.EmployeeID, today)
		if err != nil {
			return fmt.Errorf("failed to get attendance for today: %w", err)
		}

		incoming := attendance.Status(req.Status)
		if existing != nil && existing.Status == attendance.StatusPresent && incoming == attendance.StatusPresent {
			return attendance.ErrAlreadyMarkedPresent
		}

		record := attendance.Attendance{EmployeeID: req.EmployeeID, Date: today}
		if existing != nil {
			record = *existing
		}
		record.Status = incoming

		if incoming == attendance.StatusPresent {
			if record.InTime == nil {
				in := now
				if req.InTime != nil && !req.InTime.IsZero() {
					in = *req.InTime
				}
				record.InTime = &in
			}

			officeStart := time.Date(now.Year(), now.Month(), now.Day(), officeStartHour, 0, 0, 0, now.Location())
			record.IsLate = record.InTime.After(officeStart)

			if record.OutTime == nil {
				out := record.InTime.Add(standardWorkHours)
				record.OutTime = &out
			}
		}

		// An explicitly supplied out-time always wins over the default.
		if req.OutTime != nil && !req.OutTime.IsZero() {
			record.OutTime = req.OutTime
		}

		if existing == nil {
			result, err = s.attendanceRepo.Create(txCtx, record)
			return err
		}
		if err := s.attendanceRepo.Update(txCtx, record); err != nil {
			return err
		}
		result = record
		return nil
	})
	if err != nil {
		return attendance.Attendance{}, err
	}

	return result, nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id int64) (attendance.Attendance, error) {
	return s.attendanceRepo.GetByID(ctx, id)
}

// Today implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Today(ctx context.Context) ([]attendance.Attendance, error) {
	return s.ByDate(ctx, truncateToDay(s.clock.Now()))
}

// ByDate implements attendance.AttendanceService. Every employee appears in
// the result; those without a record for the day get a synthesized
// "Need to Attend" entry with nil times.
func (s *AttendanceServiceImpl) ByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	day := truncateToDay(date)

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := s.attendanceRepo.ListByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}

	byEmployee := make(map[int64]attendance.Attendance, len(records))
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = rec
	}

	result := make([]attendance.Attendance, 0, len(employees))
	for _, emp := range employees {
		if rec, ok := byEmployee[emp.ID]; ok {
			result = append(result, rec)
			continue
		}
		result = append(result, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       day,
			Status:     attendance.StatusNeedToAttend,
		})
	}

	return result, nil
}

// CalculateHours implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CalculateHours(ctx context.Context, id int64) (float64, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	if record.InTime == nil || record.OutTime == nil {
		return 0, nil
	}

	return record.OutTime.Sub(*record.InTime).Hours(), nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
