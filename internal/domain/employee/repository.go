package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	ExistsByCode(ctx context.Context, employeeCode string) (bool, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error

	// Delete removes the employee row only. Dependent rows are removed
	// by the service inside one transaction before this is called.
	Delete(ctx context.Context, id string) error
}
