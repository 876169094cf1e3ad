package user

import (
	"context"
	"time"
	c "userhub/internal/core/domain/common"
)

type CreateUserInput struct {
	PublicID     PublicID
	Email        c.Email
	FirstName    string
	LastName     string
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

type UpdateUserInput struct {
	ID        ID
	FirstName string
	LastName  string
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByPublicID(ctx context.Context, id PublicID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	List(ctx context.Context, pagination c.Pagination) ([]User, error)
	Update(ctx context.Context, input UpdateUserInput) (User, error)
	// SetPassword returns the password hash as persisted.
	SetPassword(ctx context.Context, id ID, password PasswordHash) (PasswordHash, error)
	Delete(ctx context.Context, id ID) error
}

type CreateAddressInput struct {
	PublicID AddressPublicID
	UserID   ID
	Address  NewAddress
}

type AddressRepository interface {
	Create(ctx context.Context, input CreateAddressInput) (Address, error)
	GetByPublicID(ctx context.Context, id AddressPublicID) (Address, error)
	ListByUser(ctx context.Context, userID ID) ([]Address, error)
	DeleteByUser(ctx context.Context, userID ID) error
}

type CreatePasswordResetTokenInput struct {
	Token     PasswordResetToken
	UserID    ID
	CreatedAt time.Time
}

type PasswordResetTokenRepository interface {
	Create(ctx context.Context, input CreatePasswordResetTokenInput) error
	// Consume deletes the token and returns its owner.
	Consume(ctx context.Context, token PasswordResetToken) (ID, error)
	DeleteByUser(ctx context.Context, userID ID) error
	DeleteCreatedBefore(ctx context.Context, before time.Time) (int64, error)
}
