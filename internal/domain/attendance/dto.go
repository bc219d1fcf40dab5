package attendance

import (
	"time"

	"github.com/paydesk/paydesk-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
	}
	if _, ok := ParseStatus(r.Status); !ok {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, absent, on_leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkMarkAttendanceRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
	Date        string   `json:"date"`
	Status      string   `json:"status"`
}

func (r *BulkMarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "at least one employee is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
	}
	if _, ok := ParseStatus(r.Status); !ok {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, absent, on_leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	EmployeeCode   *string `json:"employee_code,omitempty"`
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	LeaveRequestID *string `json:"leave_request_id,omitempty"`
}

func ToResponse(rec Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:             rec.ID,
		EmployeeID:     rec.EmployeeID,
		EmployeeName:   rec.EmployeeName,
		EmployeeCode:   rec.EmployeeCode,
		Date:           rec.Date.Format("2006-01-02"),
		Status:         string(rec.Status),
		LeaveRequestID: rec.LeaveRequestID,
	}
}

type BulkMarkResult struct {
	EmployeeID string `json:"employee_id"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

type BulkMarkAttendanceResponse struct {
	Date    string           `json:"date"`
	Status  string           `json:"status"`
	Marked  int              `json:"marked"`
	Failed  int              `json:"failed"`
	Results []BulkMarkResult `json:"results"`
}

// DayView is one calendar day in an employee's month view. Status is
// "unmarked" when no ledger row exists for that day.
type DayView struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type MonthViewResponse struct {
	EmployeeID   string    `json:"employee_id"`
	Month        int       `json:"month"`
	Year         int       `json:"year"`
	Days         []DayView `json:"days"`
	PresentDays  int       `json:"present_days"`
	AbsentDays   int       `json:"absent_days"`
	LeaveDays    int       `json:"leave_days"`
	UnmarkedDays int       `json:"unmarked_days"`
}

// MonthRange returns the UTC-midnight first and last days of a month.
func MonthRange(month, year int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}
