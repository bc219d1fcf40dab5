package attendance

import "context"

type AttendanceService interface {
	// Mark upserts one attendance record (admin operation).
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// MarkBulk upserts one record per employee for a single date. Each
	// employee's upsert stands alone: a failure is reported in the
	// result and does not roll back the others.
	MarkBulk(ctx context.Context, req BulkMarkAttendanceRequest) (BulkMarkAttendanceResponse, error)

	// GetByDate returns the full ledger for one calendar date.
	GetByDate(ctx context.Context, dateStr string) ([]AttendanceResponse, error)

	// GetMyMonth returns the authenticated employee's month view with
	// one entry per calendar day, unmarked days included.
	GetMyMonth(ctx context.Context, month, year int) (MonthViewResponse, error)
}
