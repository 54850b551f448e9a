package user

import "time"

type Role string

const (
	RoleCreator    Role = "Creator"
	RoleAdmin      Role = "Admin"
	RoleHR         Role = "HR"
	RoleSupervisor Role = "Supervisor"
	RoleEngineer   Role = "Engineer"
)

// Roles lists roles from most to least privileged.
var Roles = []Role{RoleCreator, RoleAdmin, RoleHR, RoleSupervisor, RoleEngineer}

// Rank orders roles; higher outranks lower. Unknown roles rank 0.
func (r Role) Rank() int {
	for i, role := range Roles {
		if r == role {
			return len(Roles) - i
		}
	}
	return 0
}

func (r Role) Valid() bool {
	return r.Rank() > 0
}

const (
	CreatorUsername = "creator"
	AdminUsername   = "admin"
)

type User struct {
	Username     string       `json:"username"`
	PasswordHash string       `json:"password_hash"`
	DisplayName  string       `json:"display_name"`
	Role         Role         `json:"role"`
	Active       bool         `json:"active"`
	Protected    bool         `json:"protected"`
	Permissions  []Permission `json:"permissions"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Can reports whether the user holds a permission.
func (u *User) Can(p Permission) bool {
	if u.Role == RoleCreator {
		return true
	}
	for _, have := range u.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

// Outranks reports whether u sits strictly above role in the hierarchy.
func (u *User) Outranks(role Role) bool {
	return u.Role.Rank() > role.Rank()
}
