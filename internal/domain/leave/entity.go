package leave

import "time"

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

type LeaveType string

const (
	LeaveTypeAnnual LeaveType = "annual"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeUnpaid LeaveType = "unpaid"
)

// LeaveRequest owns a set of requested calendar dates. A request is
// decided exactly once: pending transitions to approved or rejected
// and stays there.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Reason     string
	LeaveType  LeaveType
	Status     LeaveRequestStatus
	DecidedBy  *string
	DecidedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Dates are UTC midnights, one per requested calendar day.
	Dates []time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
