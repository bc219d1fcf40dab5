package payslip

import (
	"github.com/paydesk/paydesk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GeneratePayslipsRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *GeneratePayslipsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApprovePayslipRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
	IsApproved bool   `json:"is_approved"`
}

func (r *ApprovePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    *string         `json:"employee_name,omitempty"`
	EmployeeCode    *string         `json:"employee_code,omitempty"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	GrossEarnings   decimal.Decimal `json:"gross_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPayable      decimal.Decimal `json:"net_payable"`
	PaidDays        int             `json:"paid_days"`
	LOPDays         int             `json:"lop_days"`
	IsApproved      bool            `json:"is_approved"`
	ApprovedBy      *string         `json:"approved_by,omitempty"`
	PayDate         string          `json:"pay_date"`
}

func ToResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		ID:              p.ID,
		EmployeeID:      p.EmployeeID,
		EmployeeName:    p.EmployeeName,
		EmployeeCode:    p.EmployeeCode,
		Month:           p.Month,
		Year:            p.Year,
		BasicSalary:     p.BasicSalary,
		GrossEarnings:   p.GrossEarnings,
		TotalDeductions: p.TotalDeductions,
		NetPayable:      p.NetPayable,
		PaidDays:        p.PaidDays,
		LOPDays:         p.LOPDays,
		IsApproved:      p.IsApproved,
		ApprovedBy:      p.ApprovedBy,
		PayDate:         p.PayDate.UTC().Format("2006-01-02"),
	}
}

type BatchResult struct {
	EmployeeID string           `json:"employee_id"`
	Payslip    *PayslipResponse `json:"payslip,omitempty"`
	Error      string           `json:"error,omitempty"`
}

type GeneratePayslipsResponse struct {
	Month     int           `json:"month"`
	Year      int           `json:"year"`
	Generated int           `json:"generated"`
	Failed    int           `json:"failed"`
	Results   []BatchResult `json:"results"`
}
