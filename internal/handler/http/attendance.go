package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/notch-hr/notch-backend-go/internal/domain/attendance"
	"github.com/notch-hr/notch-backend-go/internal/handler/http/response"
	"github.com/notch-hr/notch-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	SetStatus(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	ByDate(w http.ResponseWriter, r *http.Request)
	CalculateHours(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// SetStatus implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req attendance.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("attendance set status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.SetStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, fmt.Sprintf("/Attendance/%d", record.ID), record)
}

// Get implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	record, err := h.attendanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, record)
}

// Today implements AttendanceHandler. Employees without a record for the day
// appear with a synthesized "Need to Attend" entry.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.Today(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if records == nil {
		records = []attendance.Attendance{}
	}

	response.OK(w, records)
}

// ByDate implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ByDate(w http.ResponseWriter, r *http.Request) {
	date, ok := validator.IsValidDate(chi.URLParam(r, "date"))
	if !ok {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	records, err := h.attendanceService.ByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if records == nil {
		records = []attendance.Attendance{}
	}

	response.OK(w, records)
}

// CalculateHours implements AttendanceHandler. The body is a bare JSON
// number.
func (h *AttendanceHandlerImpl) CalculateHours(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	hours, err := h.attendanceService.CalculateHours(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, hours)
}
