package payslip

import "context"

type PayslipService interface {
	// Generate recomputes and upserts one employee's payslip for a
	// period from the attendance ledger.
	Generate(ctx context.Context, employeeID string, month, year int) (PayslipResponse, error)

	// GenerateBatch fans out Generate over every employee. Failures are
	// reported per employee; the batch itself never aborts.
	GenerateBatch(ctx context.Context, req GeneratePayslipsRequest) (GeneratePayslipsResponse, error)

	// Approve flips the approval flag for a stored payslip. Independent
	// of generation and regeneration.
	Approve(ctx context.Context, req ApprovePayslipRequest) (PayslipResponse, error)

	// ListByPeriod is the admin period view.
	ListByPeriod(ctx context.Context, month, year int) ([]PayslipResponse, error)

	// ListMine returns the authenticated employee's payslips.
	ListMine(ctx context.Context) ([]PayslipResponse, error)

	// Download renders the stored payslip as a PDF document. It never
	// re-derives numbers from attendance.
	Download(ctx context.Context, employeeID string, month, year int) (pdf []byte, filename string, err error)
}
