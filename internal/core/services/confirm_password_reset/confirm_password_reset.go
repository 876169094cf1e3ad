package confirmpasswordreset

import (
	"context"
	"errors"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/logging"
	"userhub/internal/core/domain/user"
	"userhub/internal/core/services"
)

type Input struct {
	Token       user.PasswordResetToken
	NewPassword user.RawPassword
}

type Result struct {
	Success bool
}

type service struct {
	log             logging.Logger
	userRepository  user.UserRepository
	tokenRepository user.PasswordResetTokenRepository
	tokenCodec      user.TokenCodec
	passwordHasher  user.PasswordHasher
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	tokenRepository user.PasswordResetTokenRepository,
	tokenCodec user.TokenCodec,
	passwordHasher user.PasswordHasher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if tokenRepository == nil {
		panic(e.NewNilArgumentError("tokenRepository"))
	}
	if tokenCodec == nil {
		panic(e.NewNilArgumentError("tokenCodec"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	return &service{
		log:             log,
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		tokenCodec:      tokenCodec,
		passwordHasher:  passwordHasher,
	}
}

// Run never returns an error. Expired or forged tokens are rejected before
// any storage access. A stored token is consumed as soon as it resolves, so it
// cannot be replayed even if the password update fails afterwards.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if !s.tokenCodec.VerifyNotExpired(input.Token) {
		s.log.Info(ctx, "Password reset token is expired or malformed.")
		return result, nil
	}

	userID, err := s.tokenRepository.Consume(ctx, input.Token)
	if errors.Is(err, user.ErrPasswordResetTokenDoesNotExist) {
		s.log.Info(ctx, "Password reset token not found.")
		return result, nil
	}
	if err != nil {
		s.logFailure(ctx, "Could not consume password reset token.", err)
		return result, nil
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.logFailure(ctx, "Could not hash password.", err, logging.Entry("userID", userID))
		return result, nil
	}

	persistedHash, err := s.userRepository.SetPassword(ctx, userID, newPasswordHash)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "Could not update user password, user does not exist.", logging.Entry("userID", userID))
		return result, nil
	}
	if err != nil {
		s.logFailure(ctx, "Could not update user password.", err, logging.Entry("userID", userID))
		return result, nil
	}

	if persistedHash != newPasswordHash {
		s.log.Error(ctx, "Persisted password does not match the new one.", logging.Entry("userID", userID))
		return result, nil
	}

	s.log.Info(ctx, "New password has been successfully set.", logging.Entry("userID", userID))
	return Result{Success: true}, nil
}

func (s *service) logFailure(ctx context.Context, msg string, err error, entries ...logging.LogEntry) {
	if errors.Is(err, context.Canceled) {
		return
	}
	entries = append(entries, logging.Entry("err", err))
	s.log.Error(ctx, msg, entries...)
}
