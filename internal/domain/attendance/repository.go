package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for the attendance
// ledger. Dates must already be normalized to UTC midnight.
type AttendanceRepository interface {
	// Upsert inserts or updates the record keyed by (employee_id, date).
	// The uniqueness constraint linearizes concurrent writes; the last
	// committed write wins.
	Upsert(ctx context.Context, rec Attendance) (Attendance, error)

	// ListByDate returns all records for a calendar date with employee
	// identity joined. No records is an empty slice, not an error.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// ListByEmployeeRange returns an employee's records in [start, end].
	ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	// CountPresentDays counts distinct calendar dates in [start, end]
	// with status present.
	CountPresentDays(ctx context.Context, employeeID string, start, end time.Time) (int, error)

	// DeleteByEmployee removes every record for an employee. Used by the
	// employee deletion cascade.
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
