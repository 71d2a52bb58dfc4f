package vacation

import "context"

// BalanceRepository - interface for the vacation_balances table
type BalanceRepository interface {
	// GetOrCreate returns the (employeeID, year) row, lazily creating it with
	// the default allotment. The unique constraint on (employee_id, year) is
	// the guard against concurrent first access; a conflicting insert falls
	// back to re-fetching the existing row.
	GetOrCreate(ctx context.Context, employeeID string, year int) (VacationBalance, error)

	// SettleApproval applies used += days, remaining -= days. The update is
	// guarded by remaining_days >= days; over-commitment surfaces as
	// *InsufficientBalanceError and must abort the caller's transaction.
	SettleApproval(ctx context.Context, employeeID string, year int, days int) error
}

// RequestRepository - interface for the vacation_requests table
type RequestRepository interface {
	Create(ctx context.Context, req VacationRequest) (VacationRequest, error)
	GetByID(ctx context.Context, id string) (VacationRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]VacationRequest, error)
	ListAll(ctx context.Context) ([]VacationRequest, error)

	// ApplyDecision transitions a pending request to approved or denied,
	// stamping approver, decision time and notes. It fails with
	// ErrRequestAlreadyDecided when the row is no longer pending, checked in
	// the same statement as the transition.
	ApplyDecision(ctx context.Context, id string, status RequestStatus, approverID string, notes *string) error

	Stats(ctx context.Context) (Stats, error)
}

// TxManager runs fn atomically: every repository call made with the ctx it
// passes joins the same database transaction.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
