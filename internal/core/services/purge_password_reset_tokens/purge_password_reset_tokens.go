package purgepasswordresettokens

import (
	"context"
	"errors"
	"time"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/logging"
	"userhub/internal/core/domain/user"
	"userhub/internal/core/services"
)

type Input struct{}

type Result struct {
	DeletedCount int64
}

type service struct {
	log             logging.Logger
	tokenRepository user.PasswordResetTokenRepository
	validDuration   time.Duration
	now             func() time.Time
}

// New removes reset tokens that can no longer pass verification because
// their validity window has elapsed.
func New(
	log logging.Logger,
	tokenRepository user.PasswordResetTokenRepository,
	validDuration time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if tokenRepository == nil {
		panic(e.NewNilArgumentError("tokenRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		tokenRepository: tokenRepository,
		validDuration:   validDuration,
		now:             now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	before := s.now().Add(-s.validDuration)

	count, err := s.tokenRepository.DeleteCreatedBefore(ctx, before)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logging.Error(ctx, s.log, err, logging.Entry("before", before))
		}
		return result, err
	}

	if count > 0 {
		s.log.Info(
			ctx,
			"Expired password reset tokens have been purged.",
			logging.Entry("count", count),
			logging.Entry("before", before),
		)
	}
	return Result{DeletedCount: count}, nil
}
