package domain

import "time"

type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleDoctor, RolePatient, RoleAdmin:
		return true
	}
	return false
}

// UserAccount is an identity loaded from the users document at startup.
// The core never mutates accounts; administration happens out of band on
// the data file.
type UserAccount struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Secret   string `json:"password"`
	Role     Role   `json:"role"`
	Name     string `json:"name,omitempty"`
}

// SanitizedUser is the account view safe to return to callers.
type SanitizedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}

func (u *UserAccount) Sanitized() SanitizedUser {
	return SanitizedUser{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Name:     u.Name,
	}
}

// Claims is the session identity recovered from a verified token.
// Sessions are stateless: validity is entirely signature plus expiry.
type Claims struct {
	UserID   string `json:"sub"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// AuditEntry records one login attempt, successful or not. The username is
// stored as submitted, without validating that the account exists.
type AuditEntry struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Success   bool      `json:"success"`
	IPAddress string    `json:"ip_address,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Insurance is the derived coverage view served to patients and doctors.
type Insurance struct {
	Provider     string `json:"provider"`
	PolicyNumber string `json:"policyNumber"`
	ValidTill    string `json:"validTill"`
	Coverage     string `json:"coverage"`
}

// TokenResult is what a successful login returns: the signed session token
// and the sanitized account it was issued for.
type TokenResult struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      SanitizedUser `json:"user"`
}
