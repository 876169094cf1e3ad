package tokencodec

import (
	"errors"
	"time"
	"userhub/internal/core/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWT encodes password reset tokens as HS512-signed JWTs with the user's
// public id as subject.
type JWT struct {
	secretKey []byte
	now       func() time.Time
}

func NewJWT(secretKey string, now func() time.Time) *JWT {
	if secretKey == "" {
		panic("Argument secretKey must not be empty.")
	}
	return &JWT{secretKey: []byte(secretKey), now: now}
}

func (j *JWT) Issue(subject user.PublicID, ttl time.Duration) (token user.PasswordResetToken, err error) {
	if subject == "" {
		return token, errors.New("token subject must not be empty")
	}
	issuedAt := j.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   string(subject),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(j.secretKey)
	if err != nil {
		return token, err
	}
	return user.PasswordResetToken(signed), nil
}

func (j *JWT) VerifyNotExpired(token user.PasswordResetToken) bool {
	_, ok := j.Subject(token)
	return ok
}

// Subject returns the public user id of a valid, unexpired token.
func (j *JWT) Subject(token user.PasswordResetToken) (subject user.PublicID, ok bool) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(
		string(token),
		claims,
		func(t *jwt.Token) (interface{}, error) { return j.secretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return subject, false
	}
	return user.PublicID(claims.Subject), true
}
