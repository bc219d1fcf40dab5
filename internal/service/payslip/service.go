package payslip

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paydesk/paydesk-backend-go/internal/domain/attendance"
	"github.com/paydesk/paydesk-backend-go/internal/domain/employee"
	"github.com/paydesk/paydesk-backend-go/internal/domain/payslip"
	"github.com/paydesk/paydesk-backend-go/internal/domain/user"
	"github.com/paydesk/paydesk-backend-go/internal/pkg/database"
	"github.com/paydesk/paydesk-backend-go/internal/pkg/pdf"
	"github.com/paydesk/paydesk-backend-go/internal/pkg/validator"
)

type PayslipServiceImpl struct {
	db             *database.DB
	payslipRepo    payslip.PayslipRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	renderer       *pdf.PayslipRenderer
}

func NewPayslipService(
	db *database.DB,
	payslipRepo payslip.PayslipRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	renderer *pdf.PayslipRenderer,
) payslip.PayslipService {
	return &PayslipServiceImpl{
		db:             db,
		payslipRepo:    payslipRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		renderer:       renderer,
	}
}

// Generate implements payslip.PayslipService. Paid days come from the
// attendance ledger; the computed snapshot is upserted keyed by
// (employee, month, year), so regeneration after attendance edits
// retroactively updates the stored payslip.
func (s *PayslipServiceImpl) Generate(ctx context.Context, employeeID string, month, year int) (payslip.PayslipResponse, error) {
	if !validator.IsValidMonth(month) || !validator.IsValidYear(year) {
		return payslip.PayslipResponse{}, payslip.ErrInvalidPeriod
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	start, end := attendance.MonthRange(month, year)
	paidDays, err := s.attendanceRepo.CountPresentDays(ctx, employeeID, start, end)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	comp := payslip.Calculate(emp.BaseSalary, month, year, paidDays)

	stored, err := s.payslipRepo.Upsert(ctx, payslip.Payslip{
		EmployeeID:      employeeID,
		Month:           month,
		Year:            year,
		BasicSalary:     comp.BasicSalary,
		GrossEarnings:   comp.GrossEarnings,
		TotalDeductions: comp.TotalDeductions,
		NetPayable:      comp.NetPayable,
		PaidDays:        comp.PaidDays,
		LOPDays:         comp.LOPDays,
		PayDate:         time.Now().UTC(),
	})
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	stored.EmployeeName = &emp.FullName
	stored.EmployeeCode = &emp.EmployeeCode
	return payslip.ToResponse(stored), nil
}

// GenerateBatch implements payslip.PayslipService. The fan-out is
// independent per employee: one employee's failure lands in its result
// entry and the rest of the batch continues. There is no cross-employee
// atomicity; per-statement timeouts come from the pool configuration.
func (s *PayslipServiceImpl) GenerateBatch(ctx context.Context, req payslip.GeneratePayslipsRequest) (payslip.GeneratePayslipsResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.GeneratePayslipsResponse{}, err
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return payslip.GeneratePayslipsResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := payslip.GeneratePayslipsResponse{
		Month:   req.Month,
		Year:    req.Year,
		Results: []payslip.BatchResult{},
	}
	for _, emp := range employees {
		result := payslip.BatchResult{EmployeeID: emp.ID}

		generated, err := s.Generate(ctx, emp.ID, req.Month, req.Year)
		if err != nil {
			result.Error = "failed to generate payslip"
			resp.Failed++
		} else {
			result.Payslip = &generated
			resp.Generated++
		}
		resp.Results = append(resp.Results, result)
	}

	return resp, nil
}

// Approve implements payslip.PayslipService.
func (s *PayslipServiceImpl) Approve(ctx context.Context, req payslip.ApprovePayslipRequest) (payslip.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.PayslipResponse{}, err
	}

	approverID, err := userIDFromContext(ctx)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	if err := s.payslipRepo.SetApproval(ctx, req.EmployeeID, req.Month, req.Year, req.IsApproved, approverID); err != nil {
		return payslip.PayslipResponse{}, err
	}

	stored, err := s.payslipRepo.GetByEmployeePeriod(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	return payslip.ToResponse(stored), nil
}

// ListByPeriod implements payslip.PayslipService.
func (s *PayslipServiceImpl) ListByPeriod(ctx context.Context, month, year int) ([]payslip.PayslipResponse, error) {
	if !validator.IsValidMonth(month) || !validator.IsValidYear(year) {
		return nil, payslip.ErrInvalidPeriod
	}

	slips, err := s.payslipRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}
	return toResponses(slips), nil
}

// ListMine implements payslip.PayslipService.
func (s *PayslipServiceImpl) ListMine(ctx context.Context) ([]payslip.PayslipResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	slips, err := s.payslipRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(slips), nil
}

// Download implements payslip.PayslipService. It renders the STORED
// row; numbers are never re-derived from attendance at render time.
// Employees can only download their own payslips.
func (s *PayslipServiceImpl) Download(ctx context.Context, employeeID string, month, year int) ([]byte, string, error) {
	if !validator.IsValidMonth(month) || !validator.IsValidYear(year) {
		return nil, "", payslip.ErrInvalidPeriod
	}

	role, ownEmployeeID, err := identityFromContext(ctx)
	if err != nil {
		return nil, "", err
	}
	if role != user.RoleAdmin && ownEmployeeID != employeeID {
		return nil, "", payslip.ErrPayslipAccessDenied
	}

	stored, err := s.payslipRepo.GetByEmployeePeriod(ctx, employeeID, month, year)
	if err != nil {
		return nil, "", err
	}

	document, err := s.renderer.Render(stored)
	if err != nil {
		return nil, "", err
	}

	code := employeeID
	if stored.EmployeeCode != nil {
		code = *stored.EmployeeCode
	}
	filename := fmt.Sprintf("payslip-%s-%04d-%02d.pdf", code, year, month)

	return document, filename, nil
}

func toResponses(slips []payslip.Payslip) []payslip.PayslipResponse {
	responses := []payslip.PayslipResponse{}
	for _, slip := range slips {
		responses = append(responses, payslip.ToResponse(slip))
	}
	return responses
}

func identityFromContext(ctx context.Context) (user.Role, string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	role, _ := claims["role"].(string)
	employeeID, _ := claims["employee_id"].(string)
	return user.Role(role), employeeID, nil
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", employee.ErrEmployeeNotFound
	}

	return employeeID, nil
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}
