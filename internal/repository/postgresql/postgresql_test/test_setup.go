package postgresql_test

import (
	"context"
	"fmt"
	"os"

	"github.com/paydesk/paydesk-backend-go/internal/pkg/database"
)

// TestDatabaseSetup wraps the connection used by the repository
// integration tests. Tests are skipped unless TEST_DATABASE_URL is set.
type TestDatabaseSetup struct {
	DB *database.DB
}

func NewTestDatabase() (*TestDatabaseSetup, error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, nil
	}

	db, err := database.NewPostgreSQLDB(dsn, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	return &TestDatabaseSetup{DB: db}, nil
}

// TruncateAllTables clears every table between test cases.
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"payslips",
		"attendance_records",
		"leave_dates",
		"leave_requests",
		"employees",
		"users",
	}

	for _, table := range tables {
		if _, err := tx.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
