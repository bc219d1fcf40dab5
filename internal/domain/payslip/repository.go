package payslip

import "context"

// PayslipRepository defines data access methods for payslips.
type PayslipRepository interface {
	// Upsert inserts or overwrites the payslip keyed by
	// (employee_id, month, year). The approval columns are left
	// untouched on conflict; only computed fields and pay_date change.
	Upsert(ctx context.Context, p Payslip) (Payslip, error)

	// GetByEmployeePeriod returns the payslip with employee joined.
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (Payslip, error)

	// ListByPeriod returns every payslip for a period, employee joined.
	ListByPeriod(ctx context.Context, month, year int) ([]Payslip, error)

	// ListByEmployee returns an employee's payslips, newest period first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)

	// SetApproval flips the approval flag and stamps who/when.
	SetApproval(ctx context.Context, employeeID string, month, year int, isApproved bool, approvedBy string) error

	// DeleteByEmployee removes an employee's payslips. Used by the
	// employee deletion cascade.
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
