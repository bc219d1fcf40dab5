package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/paydesk/paydesk-backend-go/internal/domain/payslip"
)

// PayslipRenderer renders stored payslips into fixed-layout PDF
// documents. It places fields only; it never recomputes amounts.
type PayslipRenderer struct {
	companyName string
}

func NewPayslipRenderer(companyName string) *PayslipRenderer {
	return &PayslipRenderer{companyName: companyName}
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// Render produces the payslip document: company header, employee
// identity block, salary block, attendance block.
func (r *PayslipRenderer) Render(p payslip.Payslip) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	period := fmt.Sprintf("%s %d", time.Month(p.Month).String(), p.Year)

	// Company header
	doc.SetFont("Arial", "B", 16)
	doc.Cell(120, 10, r.companyName)
	doc.Ln(8)
	doc.SetFont("Arial", "", 12)
	doc.Cell(120, 8, fmt.Sprintf("Payslip for %s", period))
	doc.Ln(12)

	// Employee identity block
	doc.SetFont("Arial", "B", 12)
	doc.Cell(90, 8, "Employee")
	doc.Ln(8)
	doc.SetFont("Arial", "", 11)
	identity := []struct{ label, value string }{
		{"Name", deref(p.EmployeeName)},
		{"Employee Code", deref(p.EmployeeCode)},
		{"Department", deref(p.Department)},
		{"Position", deref(p.Position)},
	}
	for _, row := range identity {
		doc.Cell(60, 7, row.label)
		doc.Cell(120, 7, row.value)
		doc.Ln(7)
	}
	doc.Ln(6)

	// Salary block
	doc.SetFont("Arial", "B", 12)
	doc.Cell(90, 8, "Earnings & Deductions")
	doc.Ln(8)
	doc.SetFont("Arial", "", 11)
	salary := []struct{ label, value string }{
		{"Basic Salary", p.BasicSalary.StringFixed(2)},
		{"Gross Earnings", p.GrossEarnings.StringFixed(2)},
		{"Total Deductions", p.TotalDeductions.StringFixed(2)},
	}
	for _, row := range salary {
		doc.Cell(60, 7, row.label)
		doc.Cell(120, 7, row.value)
		doc.Ln(7)
	}
	doc.SetFont("Arial", "B", 11)
	doc.Cell(60, 7, "Net Payable")
	doc.Cell(120, 7, p.NetPayable.StringFixed(2))
	doc.Ln(13)

	// Attendance block
	doc.SetFont("Arial", "B", 12)
	doc.Cell(90, 8, "Attendance")
	doc.Ln(8)
	doc.SetFont("Arial", "", 11)
	attendance := []struct{ label, value string }{
		{"Paid Days", fmt.Sprintf("%d", p.PaidDays)},
		{"Loss of Pay Days", fmt.Sprintf("%d", p.LOPDays)},
		{"Pay Date", p.PayDate.UTC().Format("2006-01-02")},
	}
	for _, row := range attendance {
		doc.Cell(60, 7, row.label)
		doc.Cell(120, 7, row.value)
		doc.Ln(7)
	}

	if p.IsApproved {
		doc.Ln(6)
		doc.SetFont("Arial", "I", 10)
		doc.Cell(120, 6, fmt.Sprintf("Approved by %s", deref(p.ApprovedBy)))
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}
