package response

import (
	"errors"
	"net/http"

	"github.com/paydesk/paydesk-backend-go/internal/domain/auth"
	"github.com/paydesk/paydesk-backend-go/internal/domain/employee"
	"github.com/paydesk/paydesk-backend-go/internal/domain/leave"
	"github.com/paydesk/paydesk-backend-go/internal/domain/payslip"
	"github.com/paydesk/paydesk-backend-go/internal/domain/user"
	"github.com/paydesk/paydesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNoLeaveDates):
		BadRequest(w, "Leave request must contain at least one date", nil)
	case errors.Is(err, leave.ErrLeaveDateTooSoon):
		BadRequest(w, "Leave dates must be requested at least 3 days in advance", nil)
	case errors.Is(err, leave.ErrLeaveRunTooLong):
		BadRequest(w, "Leave may not cover more than 3 consecutive days", nil)

	// Payslip domain errors
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payslip.ErrInvalidPeriod):
		BadRequest(w, "Invalid payslip period", nil)
	case errors.Is(err, payslip.ErrPayslipAccessDenied):
		Forbidden(w, "Not allowed to access this payslip")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
