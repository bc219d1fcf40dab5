package payslip

import "errors"

var (
	ErrPayslipNotFound     = errors.New("payslip not found")
	ErrInvalidPeriod       = errors.New("invalid payslip period")
	ErrPayslipAccessDenied = errors.New("not allowed to access this payslip")
)
