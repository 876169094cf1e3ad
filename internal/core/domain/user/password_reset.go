package user

import (
	"context"
	"time"
)

type PasswordResetToken string

func (t PasswordResetToken) String() string {
	return "***"
}

// TokenCodec mints and checks signed reset tokens carrying a user's public id.
// Any decoding or signature failure must be reported as an expired token.
type TokenCodec interface {
	Issue(subject PublicID, ttl time.Duration) (PasswordResetToken, error)
	VerifyNotExpired(token PasswordResetToken) bool
}

type PasswordResetTokenSender interface {
	SendPasswordResetToken(ctx context.Context, user User, token PasswordResetToken) error
}
