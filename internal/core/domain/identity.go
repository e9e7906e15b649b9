package domain

import (
	"strings"
	"time"
)

// Role is the closed set of actor roles. Authorization boundaries switch
// exhaustively over it so an unhandled role is a compile-visible gap, not a
// silent string mismatch.
type Role string

const (
	RolePlatformAdmin Role = "PLATFORM_ADMIN"
	RoleBusinessAdmin Role = "BUSINESS_ADMIN"
	RoleAgent         Role = "AGENT"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePlatformAdmin, RoleBusinessAdmin, RoleAgent:
		return true
	}
	return false
}

// Identity models an authenticated actor: a platform operator, a business
// owner, or one of its agents. BusinessID is empty for platform admins.
type Identity struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	BusinessID   string    `json:"business_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Avatar returns the single-character display avatar derived from the name.
func (u *Identity) Avatar() string {
	name := strings.TrimSpace(u.Name)
	if name == "" {
		return "U"
	}
	return strings.ToUpper(name[:1])
}
