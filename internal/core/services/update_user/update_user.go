package updateuser

import (
	"context"
	"errors"
	c "userhub/internal/core/domain/common"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/logging"
	"userhub/internal/core/domain/user"
	"userhub/internal/core/services"
)

// Input changes names only. Absent fields keep their stored values.
type Input struct {
	PublicID  user.PublicID
	FirstName c.Optional[string]
	LastName  c.Optional[string]
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.FirstName.IsPresent && input.FirstName.Value == "" {
		return result, e.NewMissingRequiredFieldError("firstName")
	}
	if input.LastName.IsPresent && input.LastName.Value == "" {
		return result, e.NewMissingRequiredFieldError("lastName")
	}

	u, err := s.userRepository.GetByPublicID(ctx, input.PublicID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User to update not found.", logging.Entry("publicID", input.PublicID))
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("publicID", input.PublicID))
		return result, err
	}

	update := user.UpdateUserInput{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
	if input.FirstName.IsPresent {
		update.FirstName = input.FirstName.Value
	}
	if input.LastName.IsPresent {
		update.LastName = input.LastName.Value
	}

	updatedUser, err := s.userRepository.Update(ctx, update)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}

	s.log.Info(
		ctx,
		"User successfully updated.",
		logging.Entry("userID", updatedUser.ID),
		logging.Entry("firstName", input.FirstName),
		logging.Entry("lastName", input.LastName),
	)
	result.User = updatedUser
	return result, nil
}
