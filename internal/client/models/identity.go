package models

// Role is the authorization level resolved by the server.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Identity is the authenticated user as returned by /auth/me.
type Identity struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name,omitempty"`
	Role     Role    `json:"role"`
}

// DisplayName returns the full name when set, otherwise the email.
func (i Identity) DisplayName() string {
	if i.FullName != nil && *i.FullName != "" {
		return *i.FullName
	}
	return i.Email
}

// IsAdmin reports whether the identity carries the elevated role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Token is the /auth/login response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// NewUser is the admin create-user form.
type NewUser struct {
	Email    string `json:"email" validate:"required"`
	FullName string `json:"full_name"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role"`
}

// Credentials is the login form.
type Credentials struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// AdminUserRow is one row of /admin/stats. Count is derived by the server.
type AdminUserRow struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name,omitempty"`
	Count    *int    `json:"count,omitempty"`
}

// AdminStats is the /admin/stats envelope.
type AdminStats struct {
	Users []AdminUserRow `json:"users"`
}
