package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/paydesk/paydesk-backend-go/internal/domain/attendance"
	"github.com/paydesk/paydesk-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	MarkAttendance(w http.ResponseWriter, r *http.Request)
	MarkAttendanceBulk(w http.ResponseWriter, r *http.Request)
	GetAttendanceByDate(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// MarkAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("MarkAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Mark(r.Context(), req)
	if err != nil {
		slog.Error("MarkAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked successfully", result)
}

// MarkAttendanceBulk implements AttendanceHandler
func (h *attendanceHandlerImpl) MarkAttendanceBulk(w http.ResponseWriter, r *http.Request) {
	var req attendance.BulkMarkAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("MarkAttendanceBulk decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.MarkBulk(r.Context(), req)
	if err != nil {
		slog.Error("MarkAttendanceBulk service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Bulk attendance processed", "marked", result.Marked, "failed", result.Failed)
	response.SuccessWithMessage(w, "Bulk attendance processed", result)
}

// GetAttendanceByDate implements AttendanceHandler
func (h *attendanceHandlerImpl) GetAttendanceByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	results, err := h.attendanceService.GetByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetMyAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	month, year, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, "Query parameters month and year are required", nil)
		return
	}

	result, err := h.attendanceService.GetMyMonth(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func periodFromQuery(r *http.Request) (month, year int, err error) {
	month, err = strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, err
	}
	year, err = strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, err
	}
	return month, year, nil
}
