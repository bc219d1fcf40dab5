package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// Computation is the output of the payroll calculation, before it is
// persisted as a Payslip.
type Computation struct {
	DaysInMonth     int
	PaidDays        int
	LOPDays         int
	PerDaySalary    decimal.Decimal
	BasicSalary     decimal.Decimal
	GrossEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPayable      decimal.Decimal
}

// DaysInMonth returns the number of calendar days in (month, year),
// using the day-zero-of-next-month idiom.
func DaysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Calculate pro-rates baseSalary by days present. Deduction rules are
// not implemented; TotalDeductions is a reserved zero. No rounding is
// applied here: two-decimal formatting is a presentation concern.
func Calculate(baseSalary decimal.Decimal, month, year, paidDays int) Computation {
	daysInMonth := DaysInMonth(month, year)

	perDay := baseSalary.Div(decimal.NewFromInt(int64(daysInMonth)))
	basic := perDay.Mul(decimal.NewFromInt(int64(paidDays)))
	gross := basic
	deductions := decimal.Zero

	return Computation{
		DaysInMonth:     daysInMonth,
		PaidDays:        paidDays,
		LOPDays:         daysInMonth - paidDays,
		PerDaySalary:    perDay,
		BasicSalary:     basic,
		GrossEarnings:   gross,
		TotalDeductions: deductions,
		NetPayable:      gross.Sub(deductions),
	}
}
