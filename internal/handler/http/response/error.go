package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/talentbase/hr-backend-go/internal/domain/auth"
	"github.com/talentbase/hr-backend-go/internal/domain/employee"
	"github.com/talentbase/hr-backend-go/internal/domain/vacation"
	"github.com/talentbase/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var insufficientErr *vacation.InsufficientBalanceError
	if errors.As(err, &insufficientErr) {
		BadRequest(w, insufficientErr.Error(), nil)
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrAuthenticationMissing):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Employee directory
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee record not found")
	case errors.Is(err, employee.ErrEmailExists):
		BadRequest(w, "Email already exists", nil)

	// Vacation lifecycle
	case errors.Is(err, vacation.ErrRequestNotFound):
		NotFound(w, "Vacation request not found")
	case errors.Is(err, vacation.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)
	case errors.Is(err, vacation.ErrInvalidStatus):
		BadRequest(w, "Status must be approved or denied", nil)
	case errors.Is(err, vacation.ErrRequestAlreadyDecided):
		Conflict(w, "Vacation request already decided")

	default:
		// Storage and other unexpected failures: logged, surfaced generically.
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
