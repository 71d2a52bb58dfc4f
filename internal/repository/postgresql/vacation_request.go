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

type requestRepositoryImpl struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) vacation.RequestRepository {
	return &requestRepositoryImpl{db: db}
}

func (r *requestRepositoryImpl) Create(ctx context.Context, request vacation.VacationRequest) (vacation.VacationRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacation_requests (
			id, employee_id, start_date, end_date, days_requested,
			type, reason, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(), request.EmployeeID,
		request.StartDate, request.EndDate, request.DaysRequested,
		request.Type, request.Reason, request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return vacation.VacationRequest{}, fmt.Errorf("create vacation request: %w", err)
	}

	return request, nil
}

const requestSelect = `
	SELECT vr.id, vr.employee_id, vr.start_date, vr.end_date, vr.days_requested,
		   vr.type, vr.reason, vr.status,
		   vr.approved_by, vr.approved_at, vr.notes,
		   vr.created_at, vr.updated_at,
		   e.first_name, e.last_name, e.department,
		   a.first_name AS approved_by_first_name,
		   a.last_name AS approved_by_last_name
	FROM vacation_requests vr
	JOIN employees e ON vr.employee_id = e.id
	LEFT JOIN employees a ON vr.approved_by = a.id
`

func scanRequest(row pgx.Row) (vacation.VacationRequest, error) {
	var req vacation.VacationRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.DaysRequested,
		&req.Type, &req.Reason, &req.Status,
		&req.ApprovedBy, &req.ApprovedAt, &req.Notes,
		&req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeFirstName, &req.EmployeeLastName, &req.EmployeeDepartment,
		&req.ApprovedByFirstName, &req.ApprovedByLastName,
	)
	return req, err
}

func (r *requestRepositoryImpl) GetByID(ctx context.Context, id string) (vacation.VacationRequest, error) {
	q := GetQuerier(ctx, r.db)

	req, err := scanRequest(q.QueryRow(ctx, requestSelect+` WHERE vr.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.VacationRequest{}, vacation.ErrRequestNotFound
		}
		return vacation.VacationRequest{}, err
	}

	return req, nil
}

func (r *requestRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]vacation.VacationRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]vacation.VacationRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *requestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]vacation.VacationRequest, error) {
	return r.list(ctx, requestSelect+`
		WHERE vr.employee_id = $1
		ORDER BY vr.created_at DESC
	`, employeeID)
}

func (r *requestRepositoryImpl) ListAll(ctx context.Context) ([]vacation.VacationRequest, error) {
	return r.list(ctx, requestSelect+` ORDER BY vr.created_at DESC`)
}

func (r *requestRepositoryImpl) ApplyDecision(ctx context.Context, id string, status vacation.RequestStatus, approverID string, notes *string) error {
	q := GetQuerier(ctx, r.db)

	// The status = 'pending' predicate makes the transition and its guard one
	// statement: a request decided by a concurrent caller matches nothing.
	query := `
		UPDATE vacation_requests
		SET status = $1, approved_by = $2, approved_at = NOW(), notes = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
	`

	tag, err := q.Exec(ctx, query, status, approverID, notes, id, vacation.RequestStatusPending)
	if err != nil {
		return fmt.Errorf("apply decision: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM vacation_requests WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("apply decision: %w", err)
		}
		if !exists {
			return vacation.ErrRequestNotFound
		}
		return vacation.ErrRequestAlreadyDecided
	}

	return nil
}

func (r *requestRepositoryImpl) Stats(ctx context.Context) (vacation.Stats, error) {
	q := GetQuerier(ctx, r.db)

	var stats vacation.Stats

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'denied'),
			COALESCE(SUM(days_requested) FILTER (WHERE status = 'approved'), 0)
		FROM vacation_requests
	`

	err := q.QueryRow(ctx, query).Scan(&stats.Pending, &stats.Approved, &stats.Denied, &stats.TotalDaysRequested)
	if err != nil {
		return vacation.Stats{}, fmt.Errorf("vacation stats: %w", err)
	}

	return stats, nil
}
