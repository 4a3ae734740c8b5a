package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/notch-hr/notch-backend-go/internal/domain/leave"
	"github.com/notch-hr/notch-backend-go/internal/handler/http/response"
)

type LeaveRequestHandler interface {
	RequestLeave(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	ListApproved(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ListRejected(w http.ResponseWriter, r *http.Request)
}

type LeaveRequestHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveRequestHandler(leaveService leave.LeaveService) LeaveRequestHandler {
	return &LeaveRequestHandlerImpl{leaveService: leaveService}
}

// RequestLeave implements LeaveRequestHandler.
func (h *LeaveRequestHandlerImpl) RequestLeave(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("leave request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.RequestLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, fmt.Sprintf("/LeaveRequest/%d", created.ID), created)
}

// Get implements LeaveRequestHandler.
func (h *LeaveRequestHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	request, err := h.leaveService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, request)
}

// List implements LeaveRequestHandler.
func (h *LeaveRequestHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if requests == nil {
		requests = []leave.LeaveRequest{}
	}

	response.OK(w, requests)
}

// Approve implements LeaveRequestHandler.
func (h *LeaveRequestHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.leaveService.Approve(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}

// Reject implements LeaveRequestHandler.
func (h *LeaveRequestHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.leaveService.Reject(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}

// ListApproved implements LeaveRequestHandler.
func (h *LeaveRequestHandlerImpl) ListApproved(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, leave.LeaveStatusApproved)
}

// ListPending implements LeaveRequestHandler.
func (h *LeaveRequestHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, leave.LeaveStatusPending)
}

// ListRejected implements LeaveRequestHandler.
func (h *LeaveRequestHandlerImpl) ListRejected(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, leave.LeaveStatusRejected)
}

func (h *LeaveRequestHandlerImpl) listByStatus(w http.ResponseWriter, r *http.Request, status leave.LeaveStatus) {
	requests, err := h.leaveService.ListByStatus(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if requests == nil {
		requests = []leave.LeaveRequest{}
	}

	response.OK(w, requests)
}
