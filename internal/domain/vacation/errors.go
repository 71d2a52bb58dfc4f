package vacation

import (
	"errors"
	"fmt"
)

var (
	ErrRequestNotFound       = errors.New("Vacation request not found")
	ErrInvalidDateRange      = errors.New("Invalid date range")
	ErrRequestAlreadyDecided = errors.New("Vacation request already decided")
	ErrInvalidStatus         = errors.New("Status must be approved or denied")
)

// InsufficientBalanceError carries the remaining allotment so callers see
// exactly how many days they still have.
type InsufficientBalanceError struct {
	RemainingDays int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("Insufficient vacation days. You have %d days remaining.", e.RemainingDays)
}
