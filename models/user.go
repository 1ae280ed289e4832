package models

import "time"

// RoleAdmin marks the account created by the create-admin command.
const RoleAdmin = "admin"

// User represents a registered account.
// PasswordHash is never serialized to JSON; storage backends persist it
// through their own record types.
type User struct {
	// ID is the unique, stable identifier of the account.
	ID int64 `json:"id"`

	// Username is unique across all accounts (case-sensitive).
	Username string `json:"username"`

	// Email is unique across all accounts (case-sensitive) and is the login key.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// Role is empty for regular accounts and RoleAdmin for the admin account.
	Role string `json:"role,omitempty"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether u was created with the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserSummary is a row of the list-users administrative report.
type UserSummary struct {
	User User

	// HasDiary is false when the account never stored a diary document.
	HasDiary bool

	EntriesCount    int
	CategoriesCount int
}
