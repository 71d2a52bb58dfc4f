package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/talentbase/hr-backend-go/internal/domain/auth"
	"github.com/talentbase/hr-backend-go/internal/domain/employee"
	"github.com/talentbase/hr-backend-go/internal/domain/vacation"
)

// Service is the employee directory: read-mostly data the vacation core
// dereferences. Creation seeds the current-year vacation balance so new
// hires start with the default allotment.
type Service struct {
	tx vacation.TxManager
	employee.EmployeeRepository
	vacation.BalanceRepository
}

func NewService(tx vacation.TxManager, employeeRepo employee.EmployeeRepository, balanceRepo vacation.BalanceRepository) *Service {
	return &Service{
		tx:                 tx,
		EmployeeRepository: employeeRepo,
		BalanceRepository:  balanceRepo,
	}
}

func (s *Service) Create(ctx context.Context, actor auth.Identity, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if !actor.IsAdmin() {
		return employee.Employee{}, auth.ErrAdminAccessRequired
	}
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp := employee.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Department: req.Department,
		Position:   req.Position,
		Phone:      req.Phone,
		Address:    req.Address,
		ManagerID:  req.ManagerID,
		Status:     employee.StatusActive,
	}

	if req.HireDate != nil {
		hired, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("parse hire date: %w", err)
		}
		emp.HireDate = &hired
	}
	if req.Salary != nil {
		salary, err := decimal.NewFromString(*req.Salary)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("parse salary: %w", err)
		}
		emp.Salary = &salary
	}

	var created employee.Employee
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.EmployeeRepository.Create(txCtx, emp)
		if err != nil {
			return err
		}
		_, err = s.BalanceRepository.GetOrCreate(txCtx, created.ID, time.Now().Year())
		return err
	})
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

func (s *Service) Get(ctx context.Context, actor auth.Identity, id string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, actor auth.Identity) ([]employee.Employee, error) {
	return s.EmployeeRepository.ListActive(ctx)
}

func (s *Service) Update(ctx context.Context, actor auth.Identity, id string, patch employee.UpdateEmployeeRequest) error {
	if !actor.IsAdmin() {
		return auth.ErrAdminAccessRequired
	}
	if err := patch.Validate(); err != nil {
		return err
	}

	return s.EmployeeRepository.Update(ctx, id, patch)
}

func (s *Service) Deactivate(ctx context.Context, actor auth.Identity, id string) error {
	if !actor.IsAdmin() {
		return auth.ErrAdminAccessRequired
	}

	// Soft status flip: requests and balances keep a valid owner.
	return s.EmployeeRepository.SetStatus(ctx, id, employee.StatusInactive)
}
