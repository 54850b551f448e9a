package user

import "context"

type UserService interface {
	List(ctx context.Context) ([]UserResponse, error)
	Get(ctx context.Context, username string) (UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	// Delete refuses protected users
	Delete(ctx context.Context, username string) error
	// EnsureSeeded creates the protected Creator and default Admin accounts when absent
	EnsureSeeded(ctx context.Context, creatorPassword, adminPassword string) error
}
