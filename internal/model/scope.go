package model

const (
	RoleTenant     = "tenant"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Scope is the authenticated caller of a request.
type Scope struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (s Scope) IsTenant() bool     { return s.Role == RoleTenant }
func (s Scope) IsAdmin() bool      { return s.Role == RoleAdmin }
func (s Scope) IsSuperAdmin() bool { return s.Role == RoleSuperAdmin }

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleTenant, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}
