package user

import (
	"strings"
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	Username    string       `json:"username"`
	DisplayName string       `json:"display_name"`
	Role        Role         `json:"role"`
	Active      bool         `json:"active"`
	Protected   bool         `json:"protected"`
	Permissions []Permission `json:"permissions"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		Active:      u.Active,
		Protected:   u.Protected,
		Permissions: u.Permissions,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// CreateUserRequest represents request to create a new user
type CreateUserRequest struct {
	Username    string       `json:"username" validate:"required,min=3,max=50"`
	Password    string       `json:"password" validate:"required,min=8,max=255"`
	DisplayName string       `json:"display_name" validate:"required,max=100"`
	Role        Role         `json:"role" validate:"required"`
	Permissions []Permission `json:"permissions,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	r.Username = strings.ToLower(strings.TrimSpace(r.Username))

	errs := validator.Struct(r)
	if r.Role != "" && !r.Role.Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of Creator, Admin, HR, Supervisor, Engineer"})
	}
	errs = append(errs, validatePermissions(r.Permissions)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	Username    string        `json:"-"`
	Password    *string       `json:"password,omitempty" validate:"omitempty,min=8,max=255"`
	DisplayName *string       `json:"display_name,omitempty" validate:"omitempty,max=100"`
	Role        *Role         `json:"role,omitempty"`
	Active      *bool         `json:"active,omitempty"`
	Permissions *[]Permission `json:"permissions,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	errs := validator.Struct(r)

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username is required"})
	}
	if r.Role != nil && !r.Role.Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of Creator, Admin, HR, Supervisor, Engineer"})
	}
	if r.Permissions != nil {
		errs = append(errs, validatePermissions(*r.Permissions)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePermissions(perms []Permission) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, p := range perms {
		if !IsKnownPermission(p) {
			errs = append(errs, validator.ValidationError{Field: "permissions", Message: "unknown permission " + string(p)})
		}
	}
	return errs
}
