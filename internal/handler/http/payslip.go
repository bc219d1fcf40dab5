package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/paydesk/paydesk-backend-go/internal/domain/payslip"
	"github.com/paydesk/paydesk-backend-go/internal/handler/http/response"
)

type PayslipHandler interface {
	GeneratePayslips(w http.ResponseWriter, r *http.Request)
	ListPayslips(w http.ResponseWriter, r *http.Request)
	ApprovePayslip(w http.ResponseWriter, r *http.Request)
	ListMyPayslips(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &payslipHandlerImpl{
		payslipService: payslipService,
	}
}

// GeneratePayslips implements PayslipHandler
func (h *payslipHandlerImpl) GeneratePayslips(w http.ResponseWriter, r *http.Request) {
	var req payslip.GeneratePayslipsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("GeneratePayslips decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payslipService.GenerateBatch(r.Context(), req)
	if err != nil {
		slog.Error("GeneratePayslips service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payslip batch generated",
		"month", result.Month, "year", result.Year,
		"generated", result.Generated, "failed", result.Failed)
	response.SuccessWithMessage(w, "Payslip generation completed", result)
}

// ListPayslips implements PayslipHandler
func (h *payslipHandlerImpl) ListPayslips(w http.ResponseWriter, r *http.Request) {
	month, year, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, "Query parameters month and year are required", nil)
		return
	}

	results, err := h.payslipService.ListByPeriod(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ApprovePayslip implements PayslipHandler
func (h *payslipHandlerImpl) ApprovePayslip(w http.ResponseWriter, r *http.Request) {
	var req payslip.ApprovePayslipRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ApprovePayslip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payslipService.Approve(r.Context(), req)
	if err != nil {
		slog.Error("ApprovePayslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip approval updated", result)
}

// ListMyPayslips implements PayslipHandler
func (h *payslipHandlerImpl) ListMyPayslips(w http.ResponseWriter, r *http.Request) {
	results, err := h.payslipService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DownloadPayslip implements PayslipHandler. Streams the rendered PDF
// as an attachment.
func (h *payslipHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "Query parameter employee_id is required", nil)
		return
	}

	month, year, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, "Query parameters month and year are required", nil)
		return
	}

	document, filename, err := h.payslipService.Download(r.Context(), employeeID, month, year)
	if err != nil {
		slog.Error("DownloadPayslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(document)))
	if _, err := w.Write(document); err != nil {
		slog.Error("DownloadPayslip write error", "error", err)
	}
}
