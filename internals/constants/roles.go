package constants

// Role names as stored in users.role and carried in session claims.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Role error messages used by the route gates.
const (
	ErrOnlyStudentsCanAccess = "Only students can access this resource"
	ErrOnlyAdminsCanAccess   = "Only admins can access this resource"
)

// Grouped role slices for declarative route gating.
var (
	AllRoles = []string{
		RoleStudent,
		RoleAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// ValidRole reports whether s is a role the system knows about.
func ValidRole(s string) bool {
	return s == RoleStudent || s == RoleAdmin
}
