package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/talentbase/hr-backend-go/internal/domain/employee"
	"github.com/talentbase/hr-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const uniqueViolation = "23505"

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, user_id, first_name, last_name, email,
			department, position, hire_date, phone, address,
			salary, manager_id, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12, $13, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(), emp.UserID, emp.FirstName, emp.LastName, emp.Email,
		emp.Department, emp.Position, emp.HireDate, emp.Phone, emp.Address,
		emp.Salary, emp.ManagerID, emp.Status,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("create employee: %w", err)
	}

	return emp, nil
}

const employeeSelect = `
	SELECT e.id, e.user_id, e.first_name, e.last_name, e.email,
		   e.department, e.position, e.hire_date, e.phone, e.address,
		   e.salary, e.manager_id, e.status, e.created_at, e.updated_at,
		   m.first_name AS manager_first_name,
		   m.last_name AS manager_last_name,
		   u.role
	FROM employees e
	LEFT JOIN employees m ON e.manager_id = m.id
	LEFT JOIN users u ON e.user_id = u.id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.FirstName, &e.LastName, &e.Email,
		&e.Department, &e.Position, &e.HireDate, &e.Phone, &e.Address,
		&e.Salary, &e.ManagerID, &e.Status, &e.CreatedAt, &e.UpdatedAt,
		&e.ManagerFirstName, &e.ManagerLastName, &e.Role,
	)
	return e, err
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	emp, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	emp, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, employeeSelect+`
		WHERE e.status = $1
		ORDER BY e.last_name, e.first_name
	`, employee.StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, patch employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	set := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if patch.FirstName != nil {
		set("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		set("last_name", *patch.LastName)
	}
	if patch.Email != nil {
		set("email", *patch.Email)
	}
	if patch.Department != nil {
		set("department", *patch.Department)
	}
	if patch.Position != nil {
		set("position", *patch.Position)
	}
	if patch.HireDate != nil {
		hired, err := time.Parse("2006-01-02", *patch.HireDate)
		if err != nil {
			return fmt.Errorf("update employee: parse hire date: %w", err)
		}
		set("hire_date", hired)
	}
	if patch.Phone != nil {
		set("phone", *patch.Phone)
	}
	if patch.Address != nil {
		set("address", *patch.Address)
	}
	if patch.Salary != nil {
		salary, err := decimal.NewFromString(*patch.Salary)
		if err != nil {
			return fmt.Errorf("update employee: parse salary: %w", err)
		}
		set("salary", salary)
	}
	if patch.ManagerID != nil {
		set("manager_id", *patch.ManagerID)
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for employee update")
	}

	set("updated_at", time.Now())
	args = append(args, id)

	sql := "UPDATE employees SET " + strings.Join(updates, ", ") + fmt.Sprintf(" WHERE id = $%d", argIdx)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("update employee %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepositoryImpl) SetStatus(ctx context.Context, id string, status employee.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("set employee status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
