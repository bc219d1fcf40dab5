package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payslip is the stored snapshot of one employee's payroll for one
// (month, year) period. Unique per (employee_id, month, year);
// regeneration overwrites every computed field.
type Payslip struct {
	ID              string
	EmployeeID      string
	Month           int
	Year            int
	BasicSalary     decimal.Decimal
	GrossEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPayable      decimal.Decimal
	PaidDays        int
	LOPDays         int
	IsApproved      bool
	ApprovedBy      *string
	ApprovedAt      *time.Time
	PayDate         time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	Department   *string
	Position     *string
	BaseSalary   *decimal.Decimal
}
