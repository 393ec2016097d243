package entity

// Role represents the type of role a signed-in user can have.
type Role string

const (
	// RoleCustomer indicates a regular storefront customer.
	RoleCustomer Role = "customer"
	// RoleAdmin indicates the built-in administrator account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// User is the locally fabricated session record. Its presence is the sole
// definition of "authenticated": there is no credential authority behind it,
// only the single built-in administrator pair is special-cased at login.
type User struct {
	ID    string `json:"id"`    // "admin" for the built-in account, "user<unix-ms>" otherwise.
	Name  string `json:"name"`  // Display name; derived from the email local part on login.
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether this record carries the administrator role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
