package user

import (
	"fmt"
	"time"
	c "userhub/internal/core/domain/common"
	e "userhub/internal/core/domain/errors"
)

// ID is the storage key of a user. It never leaves the service.
type ID int64

// PublicID identifies a user to external callers.
type PublicID string

const PublicIDLength = 30

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type User struct {
	ID           ID
	PublicID     PublicID
	Email        c.Email
	FirstName    string
	LastName     string
	PasswordHash PasswordHash
	CreatedAt    time.Time
	Addresses    []Address
}

func (u *User) Validate() error {
	if u.PublicID == "" {
		return e.NewInvalidStateError(fmt.Sprintf("public id is not set for user %d", u.ID))
	}
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	return nil
}
