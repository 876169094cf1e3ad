package email

import (
	"context"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/logging"
	"userhub/internal/core/domain/user"
)

// DisabledSender is used when no SES sender is configured. It records the
// delivery attempt without the token.
type DisabledSender struct {
	log logging.Logger
}

func NewDisabledSender(log logging.Logger) *DisabledSender {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &DisabledSender{log: log}
}

func (s *DisabledSender) SendPasswordResetToken(ctx context.Context, u user.User, token user.PasswordResetToken) error {
	s.log.Warning(ctx, "Password reset email delivery is disabled.", logging.Entry("userID", u.ID))
	return nil
}
