package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydesk/paydesk-backend-go/internal/domain/payslip"
)

func testPayslip() payslip.Payslip {
	name := "Jane Roe"
	code := "ENG-001"
	return payslip.Payslip{
		ID:              "ps-1",
		EmployeeID:      "emp-1",
		EmployeeName:    &name,
		EmployeeCode:    &code,
		Month:           8,
		Year:            2026,
		BasicSalary:     decimal.NewFromInt(25000),
		GrossEarnings:   decimal.NewFromInt(25000),
		TotalDeductions: decimal.Zero,
		NetPayable:      decimal.NewFromInt(25000),
		PaidDays:        25,
		LOPDays:         6,
		PayDate:         time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRender(t *testing.T) {
	renderer := NewPayslipRenderer("Paydesk Inc")

	document, err := renderer.Render(testPayslip())
	require.NoError(t, err)

	require.NotEmpty(t, document)
	assert.Equal(t, "%PDF", string(document[:4]))
}

func TestRender_MissingOptionalFields(t *testing.T) {
	renderer := NewPayslipRenderer("Paydesk Inc")

	p := testPayslip()
	p.EmployeeName = nil
	p.EmployeeCode = nil

	document, err := renderer.Render(p)
	require.NoError(t, err)
	assert.NotEmpty(t, document)
}
