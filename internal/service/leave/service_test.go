package leave

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/paydesk/paydesk-backend-go/internal/domain/attendance"
	"github.com/paydesk/paydesk-backend-go/internal/domain/employee"
	"github.com/paydesk/paydesk-backend-go/internal/domain/leave"
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

func createTestAdmin(t *testing.T, setup *postgresql_test.TestDatabaseSetup) user.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	admin, err := postgresql.NewUserRepository(setup.DB).Create(context.Background(), user.User{
		Email:        "admin@paydesk.test",
		PasswordHash: string(hashed),
		Role:         user.RoleAdmin,
	})
	require.NoError(t, err)
	return admin
}

func createTestEmployee(t *testing.T, setup *postgresql_test.TestDatabaseSetup) employee.Employee {
	t.Helper()

	emp, err := postgresql.NewEmployeeRepository(setup.DB).Create(context.Background(), employee.Employee{
		EmployeeCode: "ENG-010",
		FullName:     "Test Employee",
		Department:   "Engineering",
		Position:     "Engineer",
		BaseSalary:   decimal.NewFromInt(30000),
	})
	require.NoError(t, err)
	return emp
}

// deciderContext carries the user_id claim the way the auth middleware
// would after verifying an admin's access token.
func deciderContext(t *testing.T, userID string) context.Context {
	t.Helper()

	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{"user_id": userID})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestDecide_ApprovalWritesAttendanceForEveryDate(t *testing.T) {
	setup := setupTest(t)
	ctx := context.Background()

	admin := createTestAdmin(t, setup)
	emp := createTestEmployee(t, setup)

	leaveRepo := postgresql.NewLeaveRequestRepository(setup.DB)
	attendanceRepo := postgresql.NewAttendanceRepository(setup.DB)
	svc := NewLeaveService(setup.DB, leaveRepo, attendanceRepo, postgresql.NewEmployeeRepository(setup.DB))

	dates := []time.Time{
		time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.September, 3, 0, 0, 0, 0, time.UTC),
	}
	request, err := leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: emp.ID,
		Reason:     "family event",
		LeaveType:  leave.LeaveTypeAnnual,
		Status:     leave.LeaveRequestStatusPending,
		Dates:      dates,
	})
	require.NoError(t, err)

	decided, err := svc.Decide(deciderContext(t, admin.ID), request.ID, leave.DecideLeaveRequest{
		Status: string(leave.LeaveRequestStatusApproved),
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveRequestStatusApproved), decided.Status)

	records, err := attendanceRepo.ListByEmployeeRange(ctx, emp.ID, dates[0], dates[2])
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, rec := range records {
		assert.Equal(t, attendance.StatusOnLeave, rec.Status)
		require.NotNil(t, rec.LeaveRequestID)
		assert.Equal(t, request.ID, *rec.LeaveRequestID)
	}
}

func TestDecide_SecondDecisionIsRejected(t *testing.T) {
	setup := setupTest(t)
	ctx := context.Background()

	admin := createTestAdmin(t, setup)
	emp := createTestEmployee(t, setup)

	leaveRepo := postgresql.NewLeaveRequestRepository(setup.DB)
	svc := NewLeaveService(setup.DB, leaveRepo, postgresql.NewAttendanceRepository(setup.DB), postgresql.NewEmployeeRepository(setup.DB))

	request, err := leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: emp.ID,
		Reason:     "medical appointment",
		LeaveType:  leave.LeaveTypeSick,
		Status:     leave.LeaveRequestStatusPending,
		Dates:      []time.Time{time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)

	decCtx := deciderContext(t, admin.ID)
	_, err = svc.Decide(decCtx, request.ID, leave.DecideLeaveRequest{Status: string(leave.LeaveRequestStatusApproved)})
	require.NoError(t, err)

	_, err = svc.Decide(decCtx, request.ID, leave.DecideLeaveRequest{Status: string(leave.LeaveRequestStatusRejected)})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestDecide_RejectionWritesNoAttendance(t *testing.T) {
	setup := setupTest(t)
	ctx := context.Background()

	admin := createTestAdmin(t, setup)
	emp := createTestEmployee(t, setup)

	leaveRepo := postgresql.NewLeaveRequestRepository(setup.DB)
	attendanceRepo := postgresql.NewAttendanceRepository(setup.DB)
	svc := NewLeaveService(setup.DB, leaveRepo, attendanceRepo, postgresql.NewEmployeeRepository(setup.DB))

	date := time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)
	request, err := leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: emp.ID,
		Reason:     "moving house",
		LeaveType:  leave.LeaveTypeUnpaid,
		Status:     leave.LeaveRequestStatusPending,
		Dates:      []time.Time{date},
	})
	require.NoError(t, err)

	decided, err := svc.Decide(deciderContext(t, admin.ID), request.ID, leave.DecideLeaveRequest{
		Status: string(leave.LeaveRequestStatusRejected),
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveRequestStatusRejected), decided.Status)

	records, err := attendanceRepo.ListByEmployeeRange(ctx, emp.ID, date, date)
	require.NoError(t, err)
	assert.Empty(t, records)
}
