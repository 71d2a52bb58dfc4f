package auth

type Role string

const (
	RoleAdmin    Role = "admin"    // Can manage employees and decide vacation requests
	RoleEmployee Role = "employee" // Regular employee
)

// Identity is the authenticated caller, resolved from the access token by the
// HTTP layer and passed explicitly into every service operation.
type Identity struct {
	UserID string
	Email  string
	Role   Role
}

// IsAdmin reports whether the caller may act on other employees' requests.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
