package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrNoLeaveDates                 = errors.New("leave request must contain at least one date")
	ErrLeaveDateTooSoon             = errors.New("leave dates must be at least 3 days in the future")
	ErrLeaveRunTooLong              = errors.New("leave request may not cover more than 3 consecutive days")
)
