package uow

import (
	"context"
	"userhub/internal/core/domain/user"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	Addresses() user.AddressRepository
	PasswordResetTokens() user.PasswordResetTokenRepository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
