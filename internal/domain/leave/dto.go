package leave

import "github.com/paydesk/paydesk-backend-go/internal/pkg/validator"

type SubmitLeaveRequest struct {
	SelectedDates []string `json:"selected_dates"`
	Reason        string   `json:"reason"`
	LeaveType     string   `json:"leave_type"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.SelectedDates) == 0 {
		errs = append(errs, validator.ValidationError{Field: "selected_dates", Message: "at least one date is required"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	switch LeaveType(r.LeaveType) {
	case LeaveTypeAnnual, LeaveTypeSick, LeaveTypeUnpaid:
	default:
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "must be one of annual, sick, unpaid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideLeaveRequest struct {
	Status string `json:"status"`
}

func (r *DecideLeaveRequest) Validate() error {
	switch LeaveRequestStatus(r.Status) {
	case LeaveRequestStatusApproved, LeaveRequestStatusRejected:
		return nil
	}
	return validator.ValidationErrors{{Field: "status", Message: "must be approved or rejected"}}
}

type LeaveRequestResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	EmployeeCode *string  `json:"employee_code,omitempty"`
	LeaveType    string   `json:"leave_type"`
	Reason       string   `json:"reason"`
	Status       string   `json:"status"`
	Dates        []string `json:"dates"`
	DecidedBy    *string  `json:"decided_by,omitempty"`
	DecidedAt    *string  `json:"decided_at,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

func ToResponse(req LeaveRequest) LeaveRequestResponse {
	dates := make([]string, 0, len(req.Dates))
	for _, d := range req.Dates {
		dates = append(dates, d.Format("2006-01-02"))
	}

	var decidedAt *string
	if req.DecidedAt != nil {
		s := req.DecidedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
		decidedAt = &s
	}

	return LeaveRequestResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		EmployeeCode: req.EmployeeCode,
		LeaveType:    string(req.LeaveType),
		Reason:       req.Reason,
		Status:       string(req.Status),
		Dates:        dates,
		DecidedBy:    req.DecidedBy,
		DecidedAt:    decidedAt,
		CreatedAt:    req.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
