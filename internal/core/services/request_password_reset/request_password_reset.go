package requestpasswordreset

import (
	"context"
	"errors"
	"time"
	c "userhub/internal/core/domain/common"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/logging"
	"userhub/internal/core/domain/user"
	"userhub/internal/core/services"
)

type Input struct {
	Email c.Email
}

// Result.Success is false for an unknown email and for any storage failure
// alike. Token and User are set only on success and must not be exposed to
// the requester.
type Result struct {
	Success bool
	Token   user.PasswordResetToken
	User    user.User
}

type service struct {
	log             logging.Logger
	userRepository  user.UserRepository
	tokenRepository user.PasswordResetTokenRepository
	tokenCodec      user.TokenCodec
	validDuration   time.Duration
	now             func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	tokenRepository user.PasswordResetTokenRepository,
	tokenCodec user.TokenCodec,
	validDuration time.Duration,
	now func() time.Time,
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
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		tokenCodec:      tokenCodec,
		validDuration:   validDuration,
		now:             now,
	}
}

// Run never returns an error. Every failure is reported as Result.Success == false.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "Password reset requested for unknown email.", logging.Entry("email", input.Email))
		return result, nil
	}
	if err != nil {
		s.logFailure(ctx, "Could not get user for password reset.", input, err)
		return result, nil
	}

	token, err := s.tokenCodec.Issue(u.PublicID, s.validDuration)
	if err != nil {
		s.logFailure(ctx, "Could not issue password reset token.", input, err)
		return result, nil
	}

	err = s.tokenRepository.Create(ctx, user.CreatePasswordResetTokenInput{
		Token:     token,
		UserID:    u.ID,
		CreatedAt: s.now(),
	})
	if err != nil {
		s.logFailure(ctx, "Could not save password reset token.", input, err)
		return result, nil
	}

	s.log.Info(ctx, "Password reset token has been issued.", logging.Entry("userID", u.ID))
	return Result{Success: true, Token: token, User: u}, nil
}

func (s *service) logFailure(ctx context.Context, msg string, input Input, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	s.log.Error(ctx, msg, logging.Entry("email", input.Email), logging.Entry("err", err))
}
