package shared

// Roles known to the back-office. SUPER_ADMIN satisfies every role check.
const (
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// RequireRole checks that the session belongs to an authenticated user whose
// role is among the allowed ones. It returns ErrUnauthorized for anonymous
// sessions and ErrForbidden for authenticated users without the role.
func RequireRole(sess *Session, allowed ...string) error {
	if sess == nil || sess.UserID() == "" {
		return ErrUnauthorized
	}
	role := sess.Role()
	if role == RoleSuperAdmin {
		return nil
	}
	for _, r := range allowed {
		if role == r {
			return nil
		}
	}
	return ErrForbidden
}
