package requestpasswordreset

import (
	"context"
	"errors"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/logging"
	"userhub/internal/core/domain/user"
	"userhub/internal/core/services"
)

type serviceWithTokenSending struct {
	log    logging.Logger
	sender user.PasswordResetTokenSender
	inner  services.Service[Input, Result]
}

// NewWithTokenSending delivers the issued token to the user. A failed
// delivery is reported as an unsuccessful request.
func NewWithTokenSending(
	log logging.Logger,
	sender user.PasswordResetTokenSender,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithTokenSending{log: log, sender: sender, inner: inner}
}

func (s *serviceWithTokenSending) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if err != nil || !result.Success {
		return result, err
	}

	err = s.sender.SendPasswordResetToken(ctx, result.User, result.Token)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.log.Error(
				ctx,
				"Could not send password reset token.",
				logging.Entry("userID", result.User.ID),
				logging.Entry("err", err),
			)
		}
		return Result{}, nil
	}

	s.log.Info(ctx, "Password reset token has been sent to the user.", logging.Entry("userID", result.User.ID))
	return result, nil
}
