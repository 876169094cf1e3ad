package getuserbypublicid

import (
	"context"
	"errors"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/logging"
	"userhub/internal/core/domain/user"
	"userhub/internal/core/services"
)

type Input struct {
	PublicID user.PublicID
}

type Result struct {
	User user.User
}

type service struct {
	log               logging.Logger
	userRepository    user.UserRepository
	addressRepository user.AddressRepository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	addressRepository user.AddressRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if addressRepository == nil {
		panic(e.NewNilArgumentError("addressRepository"))
	}
	return &service{
		log:               log,
		userRepository:    userRepository,
		addressRepository: addressRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByPublicID(ctx, input.PublicID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User not found.", logging.Entry("publicID", input.PublicID))
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("publicID", input.PublicID))
		return result, err
	}

	u.Addresses, err = s.addressRepository.ListByUser(ctx, u.ID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not read user addresses.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{User: u}, nil
}
