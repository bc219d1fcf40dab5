package employee

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/paydesk/paydesk-backend-go/internal/domain/attendance"
	"github.com/paydesk/paydesk-backend-go/internal/domain/employee"
	"github.com/paydesk/paydesk-backend-go/internal/domain/leave"
	"github.com/paydesk/paydesk-backend-go/internal/domain/payslip"
	"github.com/paydesk/paydesk-backend-go/internal/domain/user"
	"github.com/paydesk/paydesk-backend-go/internal/repository/postgresql"
	"github.com/paydesk/paydesk-backend-go/internal/repository/postgresql/postgresql_test"
)

func setupTest(t *testing.T) *postgresql_test.TestDatabaseSetup {
	t.Helper()

	setup, err := postgresql_test.NewTestDatabase()
	require.NoError(t, err)
	if setup == nil {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	require.NoError(t, setup.TruncateAllTables(context.Background()))
	t.Cleanup(setup.Close)
	return setup
}

func countRows(t *testing.T, setup *postgresql_test.TestDatabaseSetup, table string) int {
	t.Helper()

	var n int
	err := setup.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestDelete_CascadeRemovesAllDependentRows(t *testing.T) {
	setup := setupTest(t)
	ctx := context.Background()

	employeeRepo := postgresql.NewEmployeeRepository(setup.DB)
	userRepo := postgresql.NewUserRepository(setup.DB)
	attendanceRepo := postgresql.NewAttendanceRepository(setup.DB)
	leaveRepo := postgresql.NewLeaveRequestRepository(setup.DB)
	payslipRepo := postgresql.NewPayslipRepository(setup.DB)

	svc := NewEmployeeService(setup.DB, employeeRepo, userRepo, attendanceRepo, leaveRepo, payslipRepo)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	account, err := userRepo.Create(ctx, user.User{
		Email:        "leaver@paydesk.test",
		PasswordHash: string(hashed),
		Role:         user.RoleEmployee,
	})
	require.NoError(t, err)

	emp, err := employeeRepo.Create(ctx, employee.Employee{
		UserID:       &account.ID,
		EmployeeCode: "ENG-020",
		FullName:     "Leaving Employee",
		Department:   "Engineering",
		Position:     "Engineer",
		BaseSalary:   decimal.NewFromInt(30000),
	})
	require.NoError(t, err)

	_, err = attendanceRepo.Upsert(ctx, attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	_, err = leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: emp.ID,
		Reason:     "vacation",
		LeaveType:  leave.LeaveTypeAnnual,
		Status:     leave.LeaveRequestStatusPending,
		Dates: []time.Time{
			time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)

	_, err = payslipRepo.Upsert(ctx, payslip.Payslip{
		EmployeeID:      emp.ID,
		Month:           8,
		Year:            2026,
		BasicSalary:     decimal.NewFromInt(30000),
		GrossEarnings:   decimal.NewFromInt(30000),
		TotalDeductions: decimal.Zero,
		NetPayable:      decimal.NewFromInt(30000),
		PaidDays:        31,
		LOPDays:         0,
		PayDate:         time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, emp.ID))

	for _, table := range []string{
		"attendance_records",
		"leave_dates",
		"leave_requests",
		"payslips",
		"employees",
		"users",
	} {
		assert.Zero(t, countRows(t, setup, table), "expected %s to be empty", table)
	}

	_, err = employeeRepo.GetByID(ctx, emp.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
