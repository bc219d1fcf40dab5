package leave

import "context"

// LeaveRequestRepository accesses leave_requests and leave_dates.
// Create and UpdateStatus run inside the caller's transaction when one
// is present on the context.
type LeaveRequestRepository interface {
	// Create inserts the request plus one leave_dates row per date.
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID returns the request with its dates attached.
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListAll returns every request, newest first, employee joined.
	ListAll(ctx context.Context) ([]LeaveRequest, error)

	// ListByEmployee returns one employee's requests, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// UpdateStatus records the single pending -> decided transition.
	// Returns ErrLeaveRequestAlreadyProcessed when the row is no longer
	// pending, so re-decision can never happen, even under races.
	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus, decidedBy string) error

	// DeleteByEmployee removes an employee's requests and their dates.
	// Used by the employee deletion cascade.
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
