package postgresql_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentbase/hr-backend-go/internal/domain/employee"
	"github.com/talentbase/hr-backend-go/internal/domain/vacation"
	"github.com/talentbase/hr-backend-go/internal/pkg/database"
	"github.com/talentbase/hr-backend-go/internal/repository/postgresql"
)

var (
	connectOnce sync.Once
	testDB      *database.DB
	connectErr  error
)

// openTestDB connects once per test binary. Tests are skipped when
// TEST_DATABASE_URL is not set so the suite stays runnable without Postgres.
func openTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	connectOnce.Do(func() {
		testDB, connectErr = database.NewPostgreSQLDB(context.Background(), dsn)
	})
	require.NoError(t, connectErr, "connect to test database")
	return testDB
}

func cleanupTestData(t *testing.T, db *database.DB) {
	ctx := context.Background()
	for _, table := range []string{"vacation_requests", "vacation_balances", "employees", "users"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB, email string) string {
	t.Helper()
	var employeeID string
	err := db.QueryRow(ctx, `
		INSERT INTO employees (id, first_name, last_name, email, created_at, updated_at)
		VALUES (gen_random_uuid(), 'Test', 'Employee', $1, NOW(), NOW())
		RETURNING id
	`, email).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

func createPendingRequest(t *testing.T, ctx context.Context, repo vacation.RequestRepository, employeeID string, days int) vacation.VacationRequest {
	t.Helper()
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, vacation.VacationRequest{
		EmployeeID:    employeeID,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, days-1),
		DaysRequested: days,
		Type:          vacation.DefaultRequestType,
		Status:        vacation.RequestStatusPending,
	})
	require.NoError(t, err)
	return created
}

// ===== BALANCE REPOSITORY =====

func TestBalanceRepository_GetOrCreate_Defaults(t *testing.T) {
	db := openTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, db, "balance@example.com")
	balanceRepo := postgresql.NewBalanceRepository(db)

	created, err := balanceRepo.GetOrCreate(ctx, employeeID, 2025)

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, vacation.DefaultAnnualAllotment, created.TotalDays)
	assert.Equal(t, 0, created.UsedDays)
	assert.Equal(t, vacation.DefaultAnnualAllotment, created.RemainingDays)

	// Second call returns the same row.
	again, err := balanceRepo.GetOrCreate(ctx, employeeID, 2025)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
}

func TestBalanceRepository_GetOrCreate_Concurrent(t *testing.T) {
	db := openTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, db, "race@example.com")
	balanceRepo := postgresql.NewBalanceRepository(db)

	const workers = 10
	ids := make(chan string, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := balanceRepo.GetOrCreate(ctx, employeeID, 2025)
			if err != nil {
				errs <- err
				return
			}
			ids <- b.ID
		}()
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent GetOrCreate failed: %v", err)
	}

	seen := make(map[string]bool)
	for id := range ids {
		seen[id] = true
	}
	assert.Len(t, seen, 1, "every caller must observe the same balance row")

	var count int
	err := db.QueryRow(ctx, `SELECT COUNT(*) FROM vacation_balances WHERE employee_id = $1 AND year = 2025`, employeeID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBalanceRepository_SettleApproval(t *testing.T) {
	db := openTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, db, "settle@example.com")
	balanceRepo := postgresql.NewBalanceRepository(db)

	_, err := balanceRepo.GetOrCreate(ctx, employeeID, 2025)
	require.NoError(t, err)

	require.NoError(t, balanceRepo.SettleApproval(ctx, employeeID, 2025, 5))

	b, err := balanceRepo.GetOrCreate(ctx, employeeID, 2025)
	require.NoError(t, err)
	assert.Equal(t, 5, b.UsedDays)
	assert.Equal(t, 20, b.RemainingDays)
	assert.Equal(t, b.TotalDays-b.UsedDays, b.RemainingDays)
}

func TestBalanceRepository_SettleApproval_Insufficient(t *testing.T) {
	db := openTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, db, "insufficient@example.com")
	balanceRepo := postgresql.NewBalanceRepository(db)

	_, err := balanceRepo.GetOrCreate(ctx, employeeID, 2025)
	require.NoError(t, err)
	require.NoError(t, balanceRepo.SettleApproval(ctx, employeeID, 2025, 23))

	err = balanceRepo.SettleApproval(ctx, employeeID, 2025, 3)

	var insufficientErr *vacation.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 2, insufficientErr.RemainingDays)

	// The guarded update must not have gone through partially.
	b, err := balanceRepo.GetOrCreate(ctx, employeeID, 2025)
	require.NoError(t, err)
	assert.Equal(t, 23, b.UsedDays)
	assert.Equal(t, 2, b.RemainingDays)
}

// ===== REQUEST REPOSITORY =====

func TestRequestRepository_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, db, "request@example.com")
	requestRepo := postgresql.NewRequestRepository(db)

	created := createPendingRequest(t, ctx, requestRepo, employeeID, 5)
	assert.NotEmpty(t, created.ID)

	retrieved, err := requestRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, retrieved.ID)
	assert.Equal(t, vacation.RequestStatusPending, retrieved.Status)
	assert.Equal(t, 5, retrieved.DaysRequested)
	require.NotNil(t, retrieved.EmployeeFirstName)
	assert.Equal(t, "Test", *retrieved.EmployeeFirstName)
	assert.Nil(t, retrieved.ApprovedBy)
}

func TestRequestRepository_GetByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	requestRepo := postgresql.NewRequestRepository(db)

	_, err := requestRepo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, vacation.ErrRequestNotFound)
}

func TestRequestRepository_ListByEmployee_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, db, "list@example.com")
	otherID := createTestEmployee(t, ctx, db, "other@example.com")
	requestRepo := postgresql.NewRequestRepository(db)

	first := createPendingRequest(t, ctx, requestRepo, employeeID, 1)
	second := createPendingRequest(t, ctx, requestRepo, employeeID, 2)
	createPendingRequest(t, ctx, requestRepo, otherID, 3)

	mine, err := requestRepo.ListByEmployee(ctx, employeeID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)

	all, err := requestRepo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRequestRepository_ApplyDecision_PendingGuard(t *testing.T) {
	db := openTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, db, "decide@example.com")
	adminID := createTestEmployee(t, ctx, db, "admin@example.com")
	requestRepo := postgresql.NewRequestRepository(db)

	created := createPendingRequest(t, ctx, requestRepo, employeeID, 5)

	notes := "approved in test"
	require.NoError(t, requestRepo.ApplyDecision(ctx, created.ID, vacation.RequestStatusApproved, adminID, &notes))

	decided, err := requestRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, vacation.RequestStatusApproved, decided.Status)
	require.NotNil(t, decided.ApprovedBy)
	assert.Equal(t, adminID, *decided.ApprovedBy)
	assert.NotNil(t, decided.ApprovedAt)

	// A second decision matches no pending row.
	err = requestRepo.ApplyDecision(ctx, created.ID, vacation.RequestStatusDenied, adminID, nil)
	assert.ErrorIs(t, err, vacation.ErrRequestAlreadyDecided)

	err = requestRepo.ApplyDecision(ctx, "00000000-0000-0000-0000-000000000000", vacation.RequestStatusDenied, adminID, nil)
	assert.ErrorIs(t, err, vacation.ErrRequestNotFound)
}

func TestRequestRepository_Stats(t *testing.T) {
	db := openTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, db, "stats@example.com")
	adminID := createTestEmployee(t, ctx, db, "statsadmin@example.com")
	requestRepo := postgresql.NewRequestRepository(db)

	approved := createPendingRequest(t, ctx, requestRepo, employeeID, 5)
	denied := createPendingRequest(t, ctx, requestRepo, employeeID, 2)
	createPendingRequest(t, ctx, requestRepo, employeeID, 1)

	require.NoError(t, requestRepo.ApplyDecision(ctx, approved.ID, vacation.RequestStatusApproved, adminID, nil))
	require.NoError(t, requestRepo.ApplyDecision(ctx, denied.ID, vacation.RequestStatusDenied, adminID, nil))

	stats, err := requestRepo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(1), stats.Approved)
	assert.Equal(t, int64(1), stats.Denied)
	assert.Equal(t, int64(5), stats.TotalDaysRequested)
}

// ===== TRANSACTION MANAGER =====

func TestTxManager_RollbackUndoesSettlement(t *testing.T) {
	db := openTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, db, "rollback@example.com")
	balanceRepo := postgresql.NewBalanceRepository(db)
	txManager := postgresql.NewTxManager(db)

	_, err := balanceRepo.GetOrCreate(ctx, employeeID, 2025)
	require.NoError(t, err)

	sentinel := errors.New("decision failed after settlement")
	err = txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := balanceRepo.SettleApproval(txCtx, employeeID, 2025, 5); err != nil {
			return fmt.Errorf("settle inside transaction: %w", err)
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	// The settlement rolled back with the transaction.
	b, err := balanceRepo.GetOrCreate(ctx, employeeID, 2025)
	require.NoError(t, err)
	assert.Equal(t, 0, b.UsedDays)
	assert.Equal(t, vacation.DefaultAnnualAllotment, b.RemainingDays)
}

// ===== EMPLOYEE REPOSITORY =====

func TestEmployeeRepository_CreateAndUpdate(t *testing.T) {
	db := openTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	employeeRepo := postgresql.NewEmployeeRepository(db)

	department := "Engineering"
	created, err := employeeRepo.Create(ctx, employee.Employee{
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane@example.com",
		Department: &department,
		Status:     employee.StatusActive,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	// Duplicate email maps to the domain error.
	_, err = employeeRepo.Create(ctx, employee.Employee{
		FirstName: "Jane",
		LastName:  "Clone",
		Email:     "jane@example.com",
		Status:    employee.StatusActive,
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	position := "Staff Engineer"
	salary := "95000.50"
	err = employeeRepo.Update(ctx, created.ID, employee.UpdateEmployeeRequest{
		Position: &position,
		Salary:   &salary,
	})
	require.NoError(t, err)

	updated, err := employeeRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.Position)
	assert.Equal(t, "Staff Engineer", *updated.Position)
	require.NotNil(t, updated.Salary)
	assert.Equal(t, "95000.50", updated.Salary.StringFixed(2))

	require.NoError(t, employeeRepo.SetStatus(ctx, created.ID, employee.StatusInactive))

	deactivated, err := employeeRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.StatusInactive, deactivated.Status)

	active, err := employeeRepo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}
