package domain

import "fmt"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}

// User is the identity returned by the backend's /api/auth/me endpoint and by
// the admin user listing. Mutations (block, unblock, delete) happen on the
// backend only; the frontend re-fetches after every one of them.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	IsBlocked bool      `json:"is_blocked"`
	CreatedAt Timestamp `json:"created_at"`
}

const defaultAvatarURL = "https://api.dicebear.com/7.x/avataaars/svg?seed=default"

func (u *User) AvatarOrDefault() string {
	if u.AvatarURL != "" {
		return u.AvatarURL
	}
	return defaultAvatarURL
}

type UserList struct {
	Users []User `json:"users"`
}

// Session is an active backend session, shown on the admin dashboard.
type Session struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt Timestamp `json:"created_at"`
	ExpiresAt Timestamp `json:"expires_at"`
}

type SessionList struct {
	Sessions []Session `json:"sessions"`
}

// Credentials is the login payload forwarded to the backend.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the account-creation payload. Gender is optional and only
// used by the backend to pick a default avatar.
type Registration struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Gender   *string `json:"gender"`
}

func (u *User) String() string {
	return fmt.Sprintf("%s (#%d, %s)", u.Username, u.ID, u.Role)
}
