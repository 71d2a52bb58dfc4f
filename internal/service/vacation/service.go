package vacation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/talentbase/hr-backend-go/internal/domain/auth"
	"github.com/talentbase/hr-backend-go/internal/domain/employee"
	"github.com/talentbase/hr-backend-go/internal/domain/vacation"
)

// Service runs the request lifecycle: pending --approve--> approved or
// pending --deny--> denied, both terminal. Approval settles the balance in
// the same transaction as the status transition.
type Service struct {
	tx vacation.TxManager
	vacation.BalanceRepository
	vacation.RequestRepository
	employee.EmployeeRepository
}

func NewService(tx vacation.TxManager, balanceRepo vacation.BalanceRepository, requestRepo vacation.RequestRepository, employeeRepo employee.EmployeeRepository) *Service {
	return &Service{
		tx:                 tx,
		BalanceRepository:  balanceRepo,
		RequestRepository:  requestRepo,
		EmployeeRepository: employeeRepo,
	}
}

func (s *Service) Submit(ctx context.Context, actor auth.Identity, req vacation.SubmitVacationRequest) (vacation.VacationRequest, error) {
	if err := req.Validate(); err != nil {
		return vacation.VacationRequest{}, err
	}

	emp, err := s.EmployeeRepository.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return vacation.VacationRequest{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return vacation.VacationRequest{}, fmt.Errorf("parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return vacation.VacationRequest{}, fmt.Errorf("parse end date: %w", err)
	}

	days := vacation.DaysRequested(startDate, endDate)
	if days < 1 {
		return vacation.VacationRequest{}, vacation.ErrInvalidDateRange
	}

	balance, err := s.BalanceRepository.GetOrCreate(ctx, emp.ID, time.Now().Year())
	if err != nil {
		return vacation.VacationRequest{}, fmt.Errorf("resolve vacation balance: %w", err)
	}

	// Advisory check only: the balance can still shrink between here and a
	// later approval. The settlement guard inside Decide is authoritative.
	if days > balance.RemainingDays {
		return vacation.VacationRequest{}, &vacation.InsufficientBalanceError{RemainingDays: balance.RemainingDays}
	}

	requestType := req.Type
	if requestType == "" {
		requestType = vacation.DefaultRequestType
	}

	request := vacation.VacationRequest{
		EmployeeID:    emp.ID,
		StartDate:     startDate,
		EndDate:       endDate,
		DaysRequested: days,
		Type:          requestType,
		Reason:        req.Reason,
		Status:        vacation.RequestStatusPending,
	}

	created, err := s.RequestRepository.Create(ctx, request)
	if err != nil {
		return vacation.VacationRequest{}, fmt.Errorf("create vacation request: %w", err)
	}

	return created, nil
}

func (s *Service) Decide(ctx context.Context, actor auth.Identity, requestID string, req vacation.DecideVacationRequest) error {
	if !actor.IsAdmin() {
		return auth.ErrAdminAccessRequired
	}
	if err := req.Validate(); err != nil {
		return err
	}

	approver, err := s.EmployeeRepository.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return err
	}

	status := vacation.RequestStatus(req.Status)

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		request, err := s.RequestRepository.GetByID(txCtx, requestID)
		if err != nil {
			return err
		}
		if request.Status != vacation.RequestStatusPending {
			return vacation.ErrRequestAlreadyDecided
		}

		if status == vacation.RequestStatusApproved {
			year := time.Now().Year()
			if _, err := s.BalanceRepository.GetOrCreate(txCtx, request.EmployeeID, year); err != nil {
				return fmt.Errorf("resolve vacation balance: %w", err)
			}
			if err := s.BalanceRepository.SettleApproval(txCtx, request.EmployeeID, year, request.DaysRequested); err != nil {
				return err
			}
		}

		// Re-checks pending status in the same statement; a concurrent
		// decision rolls this transaction back, settlement included.
		return s.RequestRepository.ApplyDecision(txCtx, requestID, status, approver.ID, req.Notes)
	})
	if err != nil {
		return err
	}

	slog.Info("vacation request decided",
		"request_id", requestID,
		"status", string(status),
		"approver_id", approver.ID,
	)

	return nil
}

func (s *Service) List(ctx context.Context, actor auth.Identity) ([]vacation.VacationRequest, error) {
	if actor.IsAdmin() {
		return s.RequestRepository.ListAll(ctx)
	}

	emp, err := s.EmployeeRepository.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return []vacation.VacationRequest{}, nil
		}
		return nil, err
	}

	return s.RequestRepository.ListByEmployee(ctx, emp.ID)
}

func (s *Service) Balance(ctx context.Context, actor auth.Identity) (vacation.VacationBalance, error) {
	emp, err := s.EmployeeRepository.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return vacation.VacationBalance{}, err
	}

	return s.BalanceRepository.GetOrCreate(ctx, emp.ID, time.Now().Year())
}

func (s *Service) Stats(ctx context.Context, actor auth.Identity) (vacation.Stats, error) {
	if !actor.IsAdmin() {
		return vacation.Stats{}, auth.ErrAdminAccessRequired
	}

	return s.RequestRepository.Stats(ctx)
}
