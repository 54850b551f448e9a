package local

import (
	"context"
	"strings"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/user"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/kvstore"
)

type userRepository struct {
	items *kvstore.Collection[user.User]
}

func NewUserRepository(store kvstore.Store) user.UserRepository {
	return &userRepository{items: newCollection[user.User](store, collectionUsers)}
}

func sameUsername(username string) func(user.User) bool {
	return func(u user.User) bool { return strings.EqualFold(u.Username, username) }
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	items, err := r.items.Load(ctx)
	if err != nil {
		return user.User{}, err
	}
	i := indexOf(items, sameUsername(username))
	if i < 0 {
		return user.User{}, user.ErrUserNotFound
	}
	return items[i], nil
}

func (r *userRepository) List(ctx context.Context) ([]user.User, error) {
	return r.items.Load(ctx)
}

func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	err := r.items.Update(ctx, func(items []user.User) ([]user.User, error) {
		if indexOf(items, sameUsername(newUser.Username)) >= 0 {
			return nil, user.ErrUsernameExists
		}
		return append(items, newUser), nil
	})
	if err != nil {
		return user.User{}, err
	}
	return newUser, nil
}

func (r *userRepository) Update(ctx context.Context, u user.User) error {
	return r.items.Update(ctx, func(items []user.User) ([]user.User, error) {
		i := indexOf(items, sameUsername(u.Username))
		if i < 0 {
			return nil, user.ErrUserNotFound
		}
		items[i] = u
		return items, nil
	})
}

func (r *userRepository) Delete(ctx context.Context, username string) error {
	return r.items.Update(ctx, func(items []user.User) ([]user.User, error) {
		i := indexOf(items, sameUsername(username))
		if i < 0 {
			return nil, user.ErrUserNotFound
		}
		return append(items[:i], items[i+1:]...), nil
	})
}
