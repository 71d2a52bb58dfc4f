package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	UserID     *string
	FirstName  string
	LastName   string
	Email      string
	Department *string
	Position   *string
	HireDate   *time.Time
	Phone      *string
	Address    *string
	Salary     *decimal.Decimal
	ManagerID  *string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joins (for responses)
	ManagerFirstName *string
	ManagerLastName  *string
	Role             *string
}

// FullName returns the display name used in listings.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Status is an explicit flag, never a row deletion: inactive employees stay
// valid owners of historical requests and balances.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
