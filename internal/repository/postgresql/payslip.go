package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paydesk/paydesk-backend-go/internal/domain/payslip"
	"github.com/paydesk/paydesk-backend-go/internal/pkg/database"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payslip.PayslipRepository {
	return &payslipRepository{db: db}
}

// Upsert implements payslip.PayslipRepository. Regeneration overwrites
// every computed field and pay_date but leaves the approval columns
// alone: approval is an independent admin action.
func (p *payslipRepository) Upsert(ctx context.Context, slip payslip.Payslip) (payslip.Payslip, error) {
	q := GetQuerier(ctx, p.db)

	if slip.ID == "" {
		slip.ID = uuid.NewString()
	}

	query := `
		INSERT INTO payslips (
			id, employee_id, month, year,
			basic_salary, gross_earnings, total_deductions, net_payable,
			paid_days, lop_days, pay_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			basic_salary = EXCLUDED.basic_salary,
			gross_earnings = EXCLUDED.gross_earnings,
			total_deductions = EXCLUDED.total_deductions,
			net_payable = EXCLUDED.net_payable,
			paid_days = EXCLUDED.paid_days,
			lop_days = EXCLUDED.lop_days,
			pay_date = EXCLUDED.pay_date,
			updated_at = NOW()
		RETURNING id, is_approved, approved_by, approved_at, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		slip.ID,
		slip.EmployeeID,
		slip.Month,
		slip.Year,
		slip.BasicSalary,
		slip.GrossEarnings,
		slip.TotalDeductions,
		slip.NetPayable,
		slip.PaidDays,
		slip.LOPDays,
		slip.PayDate,
	).Scan(&slip.ID, &slip.IsApproved, &slip.ApprovedBy, &slip.ApprovedAt, &slip.CreatedAt, &slip.UpdatedAt)

	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to upsert payslip: %w", err)
	}

	return slip, nil
}

const payslipColumns = `
	p.id, p.employee_id, p.month, p.year,
	p.basic_salary, p.gross_earnings, p.total_deductions, p.net_payable,
	p.paid_days, p.lop_days, p.is_approved, p.approved_by, p.approved_at,
	p.pay_date, p.created_at, p.updated_at,
	e.full_name, e.employee_code, e.department, e.position, e.base_salary
`

func scanPayslip(row pgx.Row) (payslip.Payslip, error) {
	var slip payslip.Payslip
	err := row.Scan(
		&slip.ID, &slip.EmployeeID, &slip.Month, &slip.Year,
		&slip.BasicSalary, &slip.GrossEarnings, &slip.TotalDeductions, &slip.NetPayable,
		&slip.PaidDays, &slip.LOPDays, &slip.IsApproved, &slip.ApprovedBy, &slip.ApprovedAt,
		&slip.PayDate, &slip.CreatedAt, &slip.UpdatedAt,
		&slip.EmployeeName, &slip.EmployeeCode, &slip.Department, &slip.Position, &slip.BaseSalary,
	)
	return slip, err
}

// GetByEmployeePeriod implements payslip.PayslipRepository.
func (p *payslipRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payslip.Payslip, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.month = $2 AND p.year = $3
	`

	slip, err := scanPayslip(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return slip, nil
}

// ListByPeriod implements payslip.PayslipRepository.
func (p *payslipRepository) ListByPeriod(ctx context.Context, month, year int) ([]payslip.Payslip, error) {
	query := `
		SELECT ` + payslipColumns + `
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.month = $1 AND p.year = $2
		ORDER BY e.employee_code
	`
	return p.list(ctx, query, month, year)
}

// ListByEmployee implements payslip.PayslipRepository.
func (p *payslipRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payslip.Payslip, error) {
	query := `
		SELECT ` + payslipColumns + `
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		ORDER BY p.year DESC, p.month DESC
	`
	return p.list(ctx, query, employeeID)
}

func (p *payslipRepository) list(ctx context.Context, query string, args ...interface{}) ([]payslip.Payslip, error) {
	q := GetQuerier(ctx, p.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	slips := []payslip.Payslip{}
	for rows.Next() {
		slip, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		slips = append(slips, slip)
	}

	return slips, rows.Err()
}

// SetApproval implements payslip.PayslipRepository.
func (p *payslipRepository) SetApproval(ctx context.Context, employeeID string, month, year int, isApproved bool, approvedBy string) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE payslips
		SET is_approved = $4,
		    approved_by = CASE WHEN $4 THEN $5 ELSE NULL END,
		    approved_at = CASE WHEN $4 THEN NOW() ELSE NULL END,
		    updated_at = NOW()
		WHERE employee_id = $1 AND month = $2 AND year = $3
	`

	tag, err := q.Exec(ctx, query, employeeID, month, year, isApproved, approvedBy)
	if err != nil {
		return fmt.Errorf("failed to set payslip approval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payslip.ErrPayslipNotFound
	}

	return nil
}

// DeleteByEmployee implements payslip.PayslipRepository.
func (p *payslipRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, p.db)

	if _, err := q.Exec(ctx, `DELETE FROM payslips WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete payslips: %w", err)
	}

	return nil
}
