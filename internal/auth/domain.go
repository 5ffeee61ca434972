package auth

import "time"

// User represents a back-office account. Accounts are provisioned by the
// seed script or a SUPER_ADMIN; there is no self-registration.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
