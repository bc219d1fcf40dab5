package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydesk/paydesk-backend-go/internal/domain/attendance"
	"github.com/paydesk/paydesk-backend-go/internal/domain/leave"
	"github.com/paydesk/paydesk-backend-go/internal/domain/payslip"
)

type stubAttendanceService struct {
	markFn     func(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error)
	markBulkFn func(ctx context.Context, req attendance.BulkMarkAttendanceRequest) (attendance.BulkMarkAttendanceResponse, error)
	byDateFn   func(ctx context.Context, dateStr string) ([]attendance.AttendanceResponse, error)
	myMonthFn  func(ctx context.Context, month, year int) (attendance.MonthViewResponse, error)
}

func (s *stubAttendanceService) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	return s.markFn(ctx, req)
}

func (s *stubAttendanceService) MarkBulk(ctx context.Context, req attendance.BulkMarkAttendanceRequest) (attendance.BulkMarkAttendanceResponse, error) {
	return s.markBulkFn(ctx, req)
}

func (s *stubAttendanceService) GetByDate(ctx context.Context, dateStr string) ([]attendance.AttendanceResponse, error) {
	return s.byDateFn(ctx, dateStr)
}

func (s *stubAttendanceService) GetMyMonth(ctx context.Context, month, year int) (attendance.MonthViewResponse, error) {
	return s.myMonthFn(ctx, month, year)
}

type stubLeaveService struct {
	submitFn   func(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error)
	listAllFn  func(ctx context.Context) ([]leave.LeaveRequestResponse, error)
	listMineFn func(ctx context.Context) ([]leave.LeaveRequestResponse, error)
	decideFn   func(ctx context.Context, requestID string, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error)
}

func (s *stubLeaveService) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	return s.submitFn(ctx, req)
}

func (s *stubLeaveService) ListAll(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	return s.listAllFn(ctx)
}

func (s *stubLeaveService) ListMine(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	return s.listMineFn(ctx)
}

func (s *stubLeaveService) Decide(ctx context.Context, requestID string, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	return s.decideFn(ctx, requestID, req)
}

type stubPayslipService struct {
	generateFn      func(ctx context.Context, employeeID string, month, year int) (payslip.PayslipResponse, error)
	generateBatchFn func(ctx context.Context, req payslip.GeneratePayslipsRequest) (payslip.GeneratePayslipsResponse, error)
	approveFn       func(ctx context.Context, req payslip.ApprovePayslipRequest) (payslip.PayslipResponse, error)
	listByPeriodFn  func(ctx context.Context, month, year int) ([]payslip.PayslipResponse, error)
	listMineFn      func(ctx context.Context) ([]payslip.PayslipResponse, error)
	downloadFn      func(ctx context.Context, employeeID string, month, year int) ([]byte, string, error)
}

func (s *stubPayslipService) Generate(ctx context.Context, employeeID string, month, year int) (payslip.PayslipResponse, error) {
	return s.generateFn(ctx, employeeID, month, year)
}

func (s *stubPayslipService) GenerateBatch(ctx context.Context, req payslip.GeneratePayslipsRequest) (payslip.GeneratePayslipsResponse, error) {
	return s.generateBatchFn(ctx, req)
}

func (s *stubPayslipService) Approve(ctx context.Context, req payslip.ApprovePayslipRequest) (payslip.PayslipResponse, error) {
	return s.approveFn(ctx, req)
}

func (s *stubPayslipService) ListByPeriod(ctx context.Context, month, year int) ([]payslip.PayslipResponse, error) {
	return s.listByPeriodFn(ctx, month, year)
}

func (s *stubPayslipService) ListMine(ctx context.Context) ([]payslip.PayslipResponse, error) {
	return s.listMineFn(ctx)
}

func (s *stubPayslipService) Download(ctx context.Context, employeeID string, month, year int) ([]byte, string, error) {
	return s.downloadFn(ctx, employeeID, month, year)
}

// serveRoute dispatches through a chi router so URL params resolve.
func serveRoute(handler http.HandlerFunc, method, pattern, target string, body []byte) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, handler)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	return rec
}

func serve(handler http.HandlerFunc, method, target string, body []byte) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	handler(rec, req)
	return rec
}

func TestGetAttendanceByDate_EmptyDay(t *testing.T) {
	svc := &stubAttendanceService{
		byDateFn: func(ctx context.Context, dateStr string) ([]attendance.AttendanceResponse, error) {
			return []attendance.AttendanceResponse{}, nil
		},
	}
	handler := NewAttendanceHandler(svc)

	rec := serveRoute(handler.GetAttendanceByDate, http.MethodGet,
		"/admin/attendance/{date}", "/admin/attendance/2026-08-03", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                            `json:"success"`
		Data    []attendance.AttendanceResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	// An empty day is an empty list, not an error.
	assert.NotNil(t, envelope.Data)
	assert.Empty(t, envelope.Data)
}

func TestMarkAttendance_InvalidJSON(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{})

	rec := serve(handler.MarkAttendance, http.MethodPost, "/admin/attendance", []byte("{not json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecideLeaveRequest_AlreadyProcessed(t *testing.T) {
	svc := &stubLeaveService{
		decideFn: func(ctx context.Context, requestID string, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
		},
	}
	handler := NewLeaveHandler(svc)

	body, _ := json.Marshal(leave.DecideLeaveRequest{Status: "approved"})
	rec := serveRoute(handler.DecideLeaveRequest, http.MethodPatch,
		"/admin/leave-requests/{id}", "/admin/leave-requests/req-1", body)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSubmitLeaveRequest_RuleViolation(t *testing.T) {
	svc := &stubLeaveService{
		submitFn: func(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRunTooLong
		},
	}
	handler := NewLeaveHandler(svc)

	body, _ := json.Marshal(leave.SubmitLeaveRequest{
		SelectedDates: []string{"2026-08-10", "2026-08-11", "2026-08-12", "2026-08-13"},
		Reason:        "vacation",
		LeaveType:     "annual",
	})
	rec := serve(handler.SubmitLeaveRequest, http.MethodPost, "/leave-requests", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadPayslip(t *testing.T) {
	svc := &stubPayslipService{
		downloadFn: func(ctx context.Context, employeeID string, month, year int) ([]byte, string, error) {
			assert.Equal(t, "emp-1", employeeID)
			assert.Equal(t, 8, month)
			assert.Equal(t, 2026, year)
			return []byte("%PDF-1.4 fake"), "payslip-ENG-001-2026-08.pdf", nil
		},
	}
	handler := NewPayslipHandler(svc)

	rec := serve(handler.DownloadPayslip, http.MethodGet,
		"/payslips/download?employee_id=emp-1&month=8&year=2026", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "payslip-ENG-001-2026-08.pdf")
	assert.Equal(t, "%PDF-1.4 fake", rec.Body.String())
}

func TestDownloadPayslip_Forbidden(t *testing.T) {
	svc := &stubPayslipService{
		downloadFn: func(ctx context.Context, employeeID string, month, year int) ([]byte, string, error) {
			return nil, "", payslip.ErrPayslipAccessDenied
		},
	}
	handler := NewPayslipHandler(svc)

	rec := serve(handler.DownloadPayslip, http.MethodGet,
		"/payslips/download?employee_id=emp-2&month=8&year=2026", nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDownloadPayslip_MissingPeriod(t *testing.T) {
	handler := NewPayslipHandler(&stubPayslipService{})

	rec := serve(handler.DownloadPayslip, http.MethodGet,
		"/payslips/download?employee_id=emp-1", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
