package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/paydesk/paydesk-backend-go/internal/domain/attendance"
	"github.com/paydesk/paydesk-backend-go/internal/domain/employee"
	"github.com/paydesk/paydesk-backend-go/internal/domain/leave"
	"github.com/paydesk/paydesk-backend-go/internal/pkg/database"
	"github.com/paydesk/paydesk-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db               *database.DB
	leaveRequestRepo leave.LeaveRequestRepository
	attendanceRepo   attendance.AttendanceRepository
	employeeRepo     employee.EmployeeRepository

	// now is swappable for tests of the submission date rules.
	now func() time.Time
}

func NewLeaveService(
	db *database.DB,
	leaveRequestRepo leave.LeaveRequestRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:               db,
		leaveRequestRepo: leaveRequestRepo,
		attendanceRepo:   attendanceRepo,
		employeeRepo:     employeeRepo,
		now:              time.Now,
	}
}

// Submit implements leave.LeaveService. The date rules that the old
// system left to the client are enforced here.
func (l *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	dates, err := leave.NormalizeDates(req.SelectedDates)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if err := leave.ValidateDates(dates, l.now()); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var created leave.LeaveRequest
	err = postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = l.leaveRequestRepo.Create(txCtx, leave.LeaveRequest{
			EmployeeID: employeeID,
			Reason:     req.Reason,
			LeaveType:  leave.LeaveType(req.LeaveType),
			Status:     leave.LeaveRequestStatusPending,
			Dates:      dates,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// ListAll implements leave.LeaveService.
func (l *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.leaveRequestRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// ListMine implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMine(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := l.leaveRequestRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list my leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// Decide implements leave.LeaveService. A request is decided exactly
// once. On approval the status change and the per-date attendance
// upserts commit together or not at all; an interrupt mid-way leaves
// no partial attendance writes. On rejection only the status changes.
func (l *LeaveServiceImpl) Decide(ctx context.Context, requestID string, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	newStatus := leave.LeaveRequestStatus(req.Status)

	deciderID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := l.leaveRequestRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	err = postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := l.leaveRequestRepo.UpdateStatus(txCtx, requestID, newStatus, deciderID); err != nil {
			return err
		}

		if newStatus != leave.LeaveRequestStatusApproved {
			return nil
		}

		for _, d := range request.Dates {
			_, err := l.attendanceRepo.Upsert(txCtx, attendance.Attendance{
				EmployeeID:     request.EmployeeID,
				Date:           d,
				Status:         attendance.StatusOnLeave,
				LeaveRequestID: &request.ID,
			})
			if err != nil {
				return fmt.Errorf("failed to write attendance for leave date: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	updated, err := l.leaveRequestRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.ToResponse(updated), nil
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := []leave.LeaveRequestResponse{}
	for _, req := range requests {
		responses = append(responses, leave.ToResponse(req))
	}
	return responses
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
