package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paydesk/paydesk-backend-go/internal/domain/leave"
	"github.com/paydesk/paydesk-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leave_requests (id, employee_id, reason, leave_type, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.Reason,
		req.LeaveType,
		req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	for _, d := range req.Dates {
		_, err := q.Exec(ctx,
			`INSERT INTO leave_dates (leave_request_id, date) VALUES ($1, $2)`,
			req.ID, d,
		)
		if err != nil {
			return leave.LeaveRequest{}, fmt.Errorf("failed to create leave date: %w", err)
		}
	}

	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT r.id, r.employee_id, r.reason, r.leave_type, r.status,
		       r.decided_by, r.decided_at, r.created_at, r.updated_at,
		       e.full_name, e.employee_code
		FROM leave_requests r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Reason, &req.LeaveType, &req.Status,
		&req.DecidedBy, &req.DecidedAt, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName, &req.EmployeeCode,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	dates, err := l.datesFor(ctx, q, req.ID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	req.Dates = dates

	return req, nil
}

// ListAll implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	return l.list(ctx, "", nil)
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return l.list(ctx, "WHERE r.employee_id = $1", []interface{}{employeeID})
}

func (l *leaveRequestRepository) list(ctx context.Context, where string, args []interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := fmt.Sprintf(`
		SELECT r.id, r.employee_id, r.reason, r.leave_type, r.status,
		       r.decided_by, r.decided_at, r.created_at, r.updated_at,
		       e.full_name, e.employee_code
		FROM leave_requests r
		JOIN employees e ON e.id = r.employee_id
		%s
		ORDER BY r.created_at DESC
	`, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Reason, &req.LeaveType, &req.Status,
			&req.DecidedBy, &req.DecidedAt, &req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName, &req.EmployeeCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range requests {
		dates, err := l.datesFor(ctx, q, requests[i].ID)
		if err != nil {
			return nil, err
		}
		requests[i].Dates = dates
	}

	return requests, nil
}

func (l *leaveRequestRepository) datesFor(ctx context.Context, q database.Querier, requestID string) ([]time.Time, error) {
	rows, err := q.Query(ctx,
		`SELECT date FROM leave_dates WHERE leave_request_id = $1 ORDER BY date`,
		requestID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan leave date: %w", err)
		}
		dates = append(dates, d)
	}

	return dates, rows.Err()
}

// UpdateStatus implements leave.LeaveRequestRepository. The WHERE
// status = 'pending' guard makes the transition single-shot even when
// two admins decide concurrently: the second update matches no row.
func (l *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus, decidedBy string) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET status = $2, decided_by = $3, decided_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, status, decidedBy)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Row exists but is no longer pending, or it never existed.
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM leave_requests WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check leave request: %w", err)
		}
		if !exists {
			return leave.ErrLeaveRequestNotFound
		}
		return leave.ErrLeaveRequestAlreadyProcessed
	}

	return nil
}

// DeleteByEmployee implements leave.LeaveRequestRepository. leave_dates
// rows go with their requests via the FK cascade.
func (l *leaveRequestRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, l.db)

	if _, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete leave requests: %w", err)
	}

	return nil
}
