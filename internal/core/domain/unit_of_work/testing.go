package uow

import (
	"context"
	"fmt"
	"userhub/internal/core/domain/user"
)

type FakeUnitOfWorkContext struct {
	UserRepository               *user.FakeUserRepository
	AddressRepository            *user.FakeAddressRepository
	PasswordResetTokenRepository *user.FakePasswordResetTokenRepository
	WasRollbackCalled            bool
	WasCommitCalled              bool
}

func NewFakeUnitOfWorkContext(
	userRepository *user.FakeUserRepository,
	addressRepository *user.FakeAddressRepository,
	passwordResetTokenRepository *user.FakePasswordResetTokenRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		UserRepository:               userRepository,
		AddressRepository:            addressRepository,
		PasswordResetTokenRepository: passwordResetTokenRepository,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) Addresses() user.AddressRepository {
	return c.AddressRepository
}

func (c *FakeUnitOfWorkContext) PasswordResetTokens() user.PasswordResetTokenRepository {
	return c.PasswordResetTokenRepository
}

type FakeUnitOfWork struct {
	Context            *FakeUnitOfWorkContext
	ReturnErrorOnBegin bool
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			user.NewFakeUserRepository(),
			user.NewFakeAddressRepository(),
			user.NewFakePasswordResetTokenRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	if u.ReturnErrorOnBegin {
		return nil, fmt.Errorf("could not begin unit of work")
	}
	return u.Context, nil
}
