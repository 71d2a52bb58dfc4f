package vacation

import (
	"time"

	"github.com/talentbase/hr-backend-go/internal/pkg/validator"
)

type SubmitVacationRequest struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Type      string  `json:"type,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

func (r SubmitVacationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date is required"})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must be YYYY-MM-DD"})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date is required"})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideVacationRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

func (r DecideVacationRequest) Validate() error {
	allowed := []string{string(RequestStatusApproved), string(RequestStatusDenied)}
	if !validator.IsInSlice(r.Status, allowed) {
		return ErrInvalidStatus
	}
	return nil
}

type VacationRequestResponse struct {
	ID             string     `json:"id"`
	EmployeeID     string     `json:"employee_id"`
	EmployeeName   *string    `json:"employee_name,omitempty"`
	Department     *string    `json:"department,omitempty"`
	StartDate      string     `json:"start_date"`
	EndDate        string     `json:"end_date"`
	DaysRequested  int        `json:"days_requested"`
	Type           string     `json:"type"`
	Reason         *string    `json:"reason,omitempty"`
	Status         string     `json:"status"`
	ApprovedBy     *string    `json:"approved_by,omitempty"`
	ApprovedByName *string    `json:"approved_by_name,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func NewVacationRequestResponse(req VacationRequest) VacationRequestResponse {
	resp := VacationRequestResponse{
		ID:            req.ID,
		EmployeeID:    req.EmployeeID,
		Department:    req.EmployeeDepartment,
		StartDate:     req.StartDate.Format("2006-01-02"),
		EndDate:       req.EndDate.Format("2006-01-02"),
		DaysRequested: req.DaysRequested,
		Type:          req.Type,
		Reason:        req.Reason,
		Status:        string(req.Status),
		ApprovedBy:    req.ApprovedBy,
		ApprovedAt:    req.ApprovedAt,
		Notes:         req.Notes,
		CreatedAt:     req.CreatedAt,
	}
	if req.EmployeeFirstName != nil && req.EmployeeLastName != nil {
		name := *req.EmployeeFirstName + " " + *req.EmployeeLastName
		resp.EmployeeName = &name
	}
	if req.ApprovedByFirstName != nil && req.ApprovedByLastName != nil {
		name := *req.ApprovedByFirstName + " " + *req.ApprovedByLastName
		resp.ApprovedByName = &name
	}
	return resp
}

type BalanceResponse struct {
	EmployeeID    string `json:"employee_id"`
	Year          int    `json:"year"`
	TotalDays     int    `json:"total_days"`
	UsedDays      int    `json:"used_days"`
	RemainingDays int    `json:"remaining_days"`
}

func NewBalanceResponse(b VacationBalance) BalanceResponse {
	return BalanceResponse{
		EmployeeID:    b.EmployeeID,
		Year:          b.Year,
		TotalDays:     b.TotalDays,
		UsedDays:      b.UsedDays,
		RemainingDays: b.RemainingDays,
	}
}

// Stats aggregates request counts by status plus the total days consumed by
// approved requests.
type Stats struct {
	Pending            int64 `json:"pending"`
	Approved           int64 `json:"approved"`
	Denied             int64 `json:"denied"`
	TotalDaysRequested int64 `json:"total_days_requested"`
}
