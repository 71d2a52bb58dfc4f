package vacation

import "time"

// DefaultAnnualAllotment is the yearly vacation allotment granted to every
// employee when their balance row is first created.
const DefaultAnnualAllotment = 25

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusDenied   RequestStatus = "denied"
)

// Terminal reports whether a status admits no further transition.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusApproved || s == RequestStatusDenied
}

// DefaultRequestType is used when a request carries no explicit type.
// The type column is an open set (vacation/sick/personal/...), validated
// only for non-emptiness.
const DefaultRequestType = "vacation"

type VacationRequest struct {
	ID            string
	EmployeeID    string
	StartDate     time.Time
	EndDate       time.Time
	DaysRequested int
	Type          string
	Reason        *string
	Status        RequestStatus
	ApprovedBy    *string
	ApprovedAt    *time.Time
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joins (for responses)
	EmployeeFirstName   *string
	EmployeeLastName    *string
	EmployeeDepartment  *string
	ApprovedByFirstName *string
	ApprovedByLastName  *string
}

// VacationBalance tracks the per-(employee, year) allotment. The invariant
// RemainingDays == TotalDays - UsedDays holds after every settlement.
type VacationBalance struct {
	ID            string
	EmployeeID    string
	Year          int
	TotalDays     int
	UsedDays      int
	RemainingDays int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DaysRequested returns the inclusive whole-day span of [start, end]:
// same-day requests count as one day, end before start goes non-positive.
func DaysRequested(start, end time.Time) int {
	start = truncateToDate(start)
	end = truncateToDate(end)
	return int(end.Sub(start).Hours()/24) + 1
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
