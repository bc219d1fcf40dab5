package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/paydesk/paydesk-backend-go/internal/domain/leave"
	"github.com/paydesk/paydesk-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	SubmitLeaveRequest(w http.ResponseWriter, r *http.Request)
	ListMyLeaveRequests(w http.ResponseWriter, r *http.Request)
	ListLeaveRequests(w http.ResponseWriter, r *http.Request)
	DecideLeaveRequest(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// SubmitLeaveRequest implements LeaveHandler
func (h *leaveHandlerImpl) SubmitLeaveRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitLeaveRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Submit(r.Context(), req)
	if err != nil {
		slog.Error("SubmitLeaveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request submitted", "leave_request_id", result.ID)
	response.Created(w, "Leave request submitted successfully", result)
}

// ListMyLeaveRequests implements LeaveHandler
func (h *leaveHandlerImpl) ListMyLeaveRequests(w http.ResponseWriter, r *http.Request) {
	results, err := h.leaveService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListLeaveRequests implements LeaveHandler
func (h *leaveHandlerImpl) ListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	results, err := h.leaveService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DecideLeaveRequest implements LeaveHandler
func (h *leaveHandlerImpl) DecideLeaveRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	var req leave.DecideLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("DecideLeaveRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Decide(r.Context(), id, req)
	if err != nil {
		slog.Error("DecideLeaveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request decided", "leave_request_id", id, "status", result.Status)
	response.SuccessWithMessage(w, "Leave request processed successfully", result)
}
