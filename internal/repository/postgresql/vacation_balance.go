package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/talentbase/hr-backend-go/internal/domain/vacation"
	"github.com/talentbase/hr-backend-go/internal/pkg/database"
)

type balanceRepositoryImpl struct {
	db *database.DB
}

func NewBalanceRepository(db *database.DB) vacation.BalanceRepository {
	return &balanceRepositoryImpl{db: db}
}

const balanceColumns = `id, employee_id, year, total_days, used_days, remaining_days, created_at, updated_at`

func scanBalance(row pgx.Row) (vacation.VacationBalance, error) {
	var b vacation.VacationBalance
	err := row.Scan(
		&b.ID, &b.EmployeeID, &b.Year,
		&b.TotalDays, &b.UsedDays, &b.RemainingDays,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *balanceRepositoryImpl) GetOrCreate(ctx context.Context, employeeID string, year int) (vacation.VacationBalance, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := fmt.Sprintf(`
		SELECT %s FROM vacation_balances
		WHERE employee_id = $1 AND year = $2
	`, balanceColumns)

	b, err := scanBalance(q.QueryRow(ctx, selectQuery, employeeID, year))
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return vacation.VacationBalance{}, err
	}

	// First access for this (employee, year): create with the default
	// allotment. The unique constraint absorbs a concurrent insert; DO
	// NOTHING + re-select treats the loser as "already exists".
	insertQuery := fmt.Sprintf(`
		INSERT INTO vacation_balances (id, employee_id, year, total_days, used_days, remaining_days, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, $4, NOW(), NOW())
		ON CONFLICT (employee_id, year) DO NOTHING
		RETURNING %s
	`, balanceColumns)

	b, err = scanBalance(q.QueryRow(ctx, insertQuery, uuid.NewString(), employeeID, year, vacation.DefaultAnnualAllotment))
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return vacation.VacationBalance{}, fmt.Errorf("create vacation balance: %w", err)
	}

	// Lost the race; the conflicting row is the answer.
	return scanBalance(q.QueryRow(ctx, selectQuery, employeeID, year))
}

func (r *balanceRepositoryImpl) SettleApproval(ctx context.Context, employeeID string, year int, days int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE vacation_balances
		SET used_days = used_days + $1,
			remaining_days = remaining_days - $1,
			updated_at = NOW()
		WHERE employee_id = $2 AND year = $3 AND remaining_days >= $1
	`

	tag, err := q.Exec(ctx, query, days, employeeID, year)
	if err != nil {
		return fmt.Errorf("settle approval: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// The guarded update matched nothing: the balance can no longer cover
	// this request. Report the remaining days for the error message.
	var remaining int
	err = q.QueryRow(ctx, `
		SELECT remaining_days FROM vacation_balances
		WHERE employee_id = $1 AND year = $2
	`, employeeID, year).Scan(&remaining)
	if err != nil {
		return fmt.Errorf("settle approval: balance row missing for employee %s year %d: %w", employeeID, year, err)
	}

	return &vacation.InsufficientBalanceError{RemainingDays: remaining}
}
