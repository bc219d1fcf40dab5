package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/paydesk/paydesk-backend-go/internal/domain/attendance"
	"github.com/paydesk/paydesk-backend-go/internal/domain/employee"
	"github.com/paydesk/paydesk-backend-go/internal/domain/leave"
	"github.com/paydesk/paydesk-backend-go/internal/domain/payslip"
	"github.com/paydesk/paydesk-backend-go/internal/domain/user"
	"github.com/paydesk/paydesk-backend-go/internal/pkg/database"
	"github.com/paydesk/paydesk-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	userRepo       user.UserRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	payslipRepo    payslip.PayslipRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	payslipRepo payslip.PayslipRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:             db,
		employeeRepo:   employeeRepo,
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		payslipRepo:    payslipRepo,
	}
}

// Create implements employee.EmployeeService. When a login account is
// requested, user and employee rows are created in one transaction.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByCode(ctx, req.EmployeeCode)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var userID *string
		if req.Email != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			usr, err := s.userRepo.Create(txCtx, user.User{
				Email:        *req.Email,
				PasswordHash: string(hash),
				Role:         user.RoleEmployee,
			})
			if err != nil {
				return err
			}
			userID = &usr.ID
		}

		var err error
		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			UserID:       userID,
			EmployeeCode: req.EmployeeCode,
			FullName:     req.FullName,
			Department:   req.Department,
			Position:     req.Position,
			BaseSalary:   req.BaseSalary,
		})
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	created.Email = req.Email
	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// GetMyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetMyProfile(ctx context.Context) (employee.EmployeeResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.Get(ctx, employeeID)
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := []employee.EmployeeResponse{}
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.employeeRepo.Update(ctx, req.ID, req)
}

// Delete implements employee.EmployeeService. The cascade is one
// all-or-nothing transaction: attendance, leave requests (dates go via
// FK), payslips, the employee row and any linked login account.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.attendanceRepo.DeleteByEmployee(txCtx, id); err != nil {
			return err
		}
		if err := s.leaveRepo.DeleteByEmployee(txCtx, id); err != nil {
			return err
		}
		if err := s.payslipRepo.DeleteByEmployee(txCtx, id); err != nil {
			return err
		}
		if err := s.employeeRepo.Delete(txCtx, id); err != nil {
			return err
		}
		if emp.UserID != nil {
			if err := s.userRepo.Delete(txCtx, *emp.UserID); err != nil && !errors.Is(err, user.ErrUserNotFound) {
				return err
			}
		}
		return nil
	})
}

// employeeIDFromContext reads the employee_id claim set at login.
func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", employee.ErrEmployeeNotFound
	}

	return employeeID, nil
}
