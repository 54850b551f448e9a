package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/user"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	tx       database.Transactor
	userRepo user.UserRepository
	now      func() time.Time
}

func NewUserService(tx database.Transactor, userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{
		tx:       tx,
		userRepo: userRepo,
		now:      time.Now,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	out := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, user.ToResponse(u))
	}
	return out, nil
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, username string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user.ToResponse(u), nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}
	// There is exactly one Creator and it is seeded.
	if req.Role == user.RoleCreator {
		return user.UserResponse{}, user.ErrInsufficientPermissions
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, err
	}

	permissions := req.Permissions
	if permissions == nil {
		permissions = user.DefaultPermissions(req.Role)
	}

	now := s.now()
	created, err := s.userRepo.Create(ctx, user.User{
		Username:     req.Username,
		PasswordHash: hash,
		DisplayName:  strings.TrimSpace(req.DisplayName),
		Role:         req.Role,
		Active:       true,
		Permissions:  permissions,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("User created", "username", created.Username, "role", created.Role)
	return user.ToResponse(created), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	var updated user.User
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.userRepo.GetByUsername(ctx, req.Username)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		if u.Protected && (req.Role != nil || req.Active != nil || req.Permissions != nil) {
			return user.ErrProtectedUser
		}
		if req.Role != nil && *req.Role == user.RoleCreator {
			return user.ErrInsufficientPermissions
		}

		if req.Password != nil {
			hash, err := hashPassword(*req.Password)
			if err != nil {
				return err
			}
			u.PasswordHash = hash
		}
		if req.DisplayName != nil {
			u.DisplayName = strings.TrimSpace(*req.DisplayName)
		}
		if req.Role != nil {
			u.Role = *req.Role
			if req.Permissions == nil {
				u.Permissions = user.DefaultPermissions(u.Role)
			}
		}
		if req.Active != nil {
			u.Active = *req.Active
		}
		if req.Permissions != nil {
			u.Permissions = *req.Permissions
		}
		u.UpdatedAt = s.now()

		if err := s.userRepo.Update(ctx, u); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		updated = u
		return nil
	})
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(updated), nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, username string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.userRepo.GetByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}
		if u.Protected {
			return user.ErrProtectedUser
		}
		if err := s.userRepo.Delete(ctx, u.Username); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}

// EnsureSeeded implements user.UserService.
func (s *UserServiceImpl) EnsureSeeded(ctx context.Context, creatorPassword, adminPassword string) error {
	seeds := []struct {
		username    string
		displayName string
		role        user.Role
		password    string
	}{
		{user.CreatorUsername, "System Creator", user.RoleCreator, creatorPassword},
		{user.AdminUsername, "Administrator", user.RoleAdmin, adminPassword},
	}

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		for _, seed := range seeds {
			_, err := s.userRepo.GetByUsername(ctx, seed.username)
			if err == nil {
				continue
			}
			if !errors.Is(err, user.ErrUserNotFound) {
				return fmt.Errorf("failed to get user %s: %w", seed.username, err)
			}
			if seed.password == "" {
				return fmt.Errorf("no password configured for seed user %s", seed.username)
			}

			hash, err := hashPassword(seed.password)
			if err != nil {
				return err
			}
			now := s.now()
			if _, err := s.userRepo.Create(ctx, user.User{
				Username:     seed.username,
				PasswordHash: hash,
				DisplayName:  seed.displayName,
				Role:         seed.role,
				Active:       true,
				Protected:    true,
				Permissions:  user.DefaultPermissions(seed.role),
				CreatedAt:    now,
				UpdatedAt:    now,
			}); err != nil {
				return fmt.Errorf("failed to seed user %s: %w", seed.username, err)
			}
			slog.Info("Seeded user", "username", seed.username, "role", seed.role)
		}
		return nil
	})
}
