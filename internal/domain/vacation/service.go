package vacation

import (
	"context"

	"github.com/talentbase/hr-backend-go/internal/domain/auth"
)

type VacationService interface {
	// Submit validates the window and the caller's current-year balance, then
	// persists a pending request.
	Submit(ctx context.Context, actor auth.Identity, req SubmitVacationRequest) (VacationRequest, error)

	// Decide transitions a pending request to approved or denied. Approval
	// settles the balance in the same transaction as the status change.
	Decide(ctx context.Context, actor auth.Identity, requestID string, req DecideVacationRequest) error

	// List returns all requests for admins, otherwise only the caller's own,
	// newest first.
	List(ctx context.Context, actor auth.Identity) ([]VacationRequest, error)

	// Balance returns the caller's current-year balance, lazily creating it.
	Balance(ctx context.Context, actor auth.Identity) (VacationBalance, error)

	// Stats is admin-only aggregate reporting.
	Stats(ctx context.Context, actor auth.Identity) (Stats, error)
}
