package attendance

import (
	"strings"
	"time"
)

// Status is the canonical attendance status. The source systems this
// replaces compared raw strings case-insensitively; here every write
// goes through ParseStatus so reads can compare enum values directly.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusOnLeave Status = "on_leave"
)

// StatusUnmarked is a presentation-only value. It is never stored:
// an unmarked day is the absence of an attendance row.
const StatusUnmarked = "unmarked"

// ParseStatus normalizes a user-supplied status string to the canonical
// enum. Accepts any casing and both "on leave" and "on_leave".
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "present":
		return StatusPresent, true
	case "absent":
		return StatusAbsent, true
	case "on_leave", "on leave", "leave":
		return StatusOnLeave, true
	}
	return "", false
}

type Attendance struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	Status         Status
	LeaveRequestID *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
