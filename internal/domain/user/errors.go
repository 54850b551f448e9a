package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUsernameExists          = errors.New("username already exists")
	ErrProtectedUser           = errors.New("user is protected and cannot be deleted")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
