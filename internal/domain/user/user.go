package user

import (
	"strings"
	"time"

	"careerhub/internal/common"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleMember   Role = "member"
	RoleCompany  Role = "company"
	RoleEmployer Role = "employer"
	RoleMentor   Role = "mentor"
	RoleNone     Role = "norole"
)

type User struct {
	ID        common.UUID `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      Role        `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

func ParseRole(value string) Role {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	switch role {
	case RoleAdmin, RoleManager, RoleMember, RoleCompany, RoleEmployer, RoleMentor:
		return role
	default:
		return RoleNone
	}
}

// CanPost reports whether the role may create and manage listings.
func (r Role) CanPost() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCompany, RoleEmployer, RoleMentor:
		return true
	default:
		return false
	}
}
