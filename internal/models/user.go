package models

import (
	"time"
)

// Role values. Guests are implicit: a request without a resolvable user
// identifier carries no role at all.
const (
	RoleUser      = "user"
	RoleEditor    = "editor"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// ValidRoles defines the roles a user row may carry
var ValidRoles = map[string]bool{
	RoleUser:      true,
	RoleEditor:    true,
	RoleModerator: true,
	RoleAdmin:     true,
}

// AssignableRoles defines the roles an admin may assign. Identical to
// ValidRoles today; kept separate so the write boundary stays explicit.
var AssignableRoles = map[string]bool{
	RoleUser:      true,
	RoleEditor:    true,
	RoleModerator: true,
	RoleAdmin:     true,
}

// User represents a user row. The password hash never leaves the server.
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Country      string    `json:"country" db:"country"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Role         string    `json:"role" db:"role"`
	Biography    string    `json:"biography,omitempty" db:"biography"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserProfile is the external projection of a user, credential stripped.
type UserProfile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Country   string `json:"country"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Biography string `json:"biography,omitempty"`
}

// ToProfile maps a user row onto its external shape.
func (u *User) ToProfile() *UserProfile {
	return &UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Country:   u.Country,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Biography: u.Biography,
	}
}

// RegisterRequest is the payload for POST /api/register. Field names are part
// of the API contract.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	Country   string `json:"country" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// LoginRequest is the payload for POST /api/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the payload for PUT /api/user-profile. Only the
// fields present are written; username, email and role are not editable here.
type UpdateProfileRequest struct {
	Country   *string `json:"country"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// UpdateBiographyRequest is the payload for PUT /api/user-profile/biography
type UpdateBiographyRequest struct {
	Biography string `json:"biography" validate:"required"`
}

// AssignRoleRequest is the payload for POST /api/admin/roles
type AssignRoleRequest struct {
	UserID string `json:"userId" validate:"required"`
	Role   string `json:"role" validate:"required"`
}
