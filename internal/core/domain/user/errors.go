package user

import (
	"errors"
)

var (
	ErrEmailAlreadyExists             = errors.New("email already exists")
	ErrUserDoesNotExist               = errors.New("user does not exist")
	ErrAddressDoesNotExist            = errors.New("address does not exist")
	ErrPasswordResetTokenDoesNotExist = errors.New("password reset token does not exist")
	ErrInvalidPasswordResetToken      = errors.New("invalid password reset token")
)
