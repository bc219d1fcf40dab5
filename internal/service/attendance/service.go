package attendance

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paydesk/paydesk-backend-go/internal/domain/attendance"
	"github.com/paydesk/paydesk-backend-go/internal/domain/employee"
	"github.com/paydesk/paydesk-backend-go/internal/pkg/database"
	"github.com/paydesk/paydesk-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.ParseDate(req.Date)
	status, _ := attendance.ParseStatus(req.Status)

	// Pre-check so an unknown employee surfaces as NotFound instead of
	// a foreign key violation.
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := s.attendanceRepo.Upsert(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     status,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(rec), nil
}

// MarkBulk implements attendance.AttendanceService. Upserts are
// independent per employee: one failure is recorded in the result
// list and the rest proceed.
func (s *AttendanceServiceImpl) MarkBulk(ctx context.Context, req attendance.BulkMarkAttendanceRequest) (attendance.BulkMarkAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BulkMarkAttendanceResponse{}, err
	}

	date, _ := validator.ParseDate(req.Date)
	status, _ := attendance.ParseStatus(req.Status)

	resp := attendance.BulkMarkAttendanceResponse{
		Date:    date.Format("2006-01-02"),
		Status:  string(status),
		Results: []attendance.BulkMarkResult{},
	}

	for _, employeeID := range req.EmployeeIDs {
		_, err := s.attendanceRepo.Upsert(ctx, attendance.Attendance{
			EmployeeID: employeeID,
			Date:       date,
			Status:     status,
		})

		result := attendance.BulkMarkResult{EmployeeID: employeeID, Success: err == nil}
		if err != nil {
			result.Error = "failed to mark attendance"
			resp.Failed++
		} else {
			resp.Marked++
		}
		resp.Results = append(resp.Results, result)
	}

	return resp, nil
}

// GetByDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetByDate(ctx context.Context, dateStr string) ([]attendance.AttendanceResponse, error) {
	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "date", Message: "must be a valid YYYY-MM-DD date"}}
	}

	records, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	responses := []attendance.AttendanceResponse{}
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}
	return responses, nil
}

// GetMyMonth implements attendance.AttendanceService. Days without a
// ledger row come back as "unmarked"; the status is never stored.
func (s *AttendanceServiceImpl) GetMyMonth(ctx context.Context, month, year int) (attendance.MonthViewResponse, error) {
	var errs validator.ValidationErrors
	if !validator.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}
	if len(errs) > 0 {
		return attendance.MonthViewResponse{}, errs
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.MonthViewResponse{}, err
	}

	start, end := attendance.MonthRange(month, year)
	records, err := s.attendanceRepo.ListByEmployeeRange(ctx, employeeID, start, end)
	if err != nil {
		return attendance.MonthViewResponse{}, err
	}

	byDate := make(map[string]attendance.Status, len(records))
	for _, rec := range records {
		byDate[rec.Date.Format("2006-01-02")] = rec.Status
	}

	resp := attendance.MonthViewResponse{
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		status, marked := byDate[key]

		day := attendance.DayView{Date: key}
		switch {
		case !marked:
			day.Status = attendance.StatusUnmarked
			resp.UnmarkedDays++
		case status == attendance.StatusPresent:
			day.Status = string(status)
			resp.PresentDays++
		case status == attendance.StatusAbsent:
			day.Status = string(status)
			resp.AbsentDays++
		default:
			day.Status = string(status)
			resp.LeaveDays++
		}
		resp.Days = append(resp.Days, day)
	}

	return resp, nil
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
