package leave

import "context"

type LeaveService interface {
	// Submit creates a pending request for the authenticated employee.
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveRequestResponse, error)

	// ListAll is the admin view, newest first.
	ListAll(ctx context.Context) ([]LeaveRequestResponse, error)

	// ListMine returns the authenticated employee's requests.
	ListMine(ctx context.Context) ([]LeaveRequestResponse, error)

	// Decide approves or rejects a pending request. Approval writes one
	// on-leave attendance record per requested date in the same
	// transaction as the status change.
	Decide(ctx context.Context, requestID string, req DecideLeaveRequest) (LeaveRequestResponse, error)
}
