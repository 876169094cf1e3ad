package getuseraddresses

import (
	"context"
	"errors"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/logging"
	"userhub/internal/core/domain/user"
	"userhub/internal/core/services"
)

type Input struct {
	UserPublicID user.PublicID
}

// Result.Addresses is empty when the user does not exist.
type Result struct {
	Addresses []user.Address
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
	result.Addresses = []user.Address{}

	u, err := s.userRepository.GetByPublicID(ctx, input.UserPublicID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Debug(ctx, "No addresses, user not found.", logging.Entry("publicID", input.UserPublicID))
		return result, nil
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("publicID", input.UserPublicID))
		return result, err
	}

	addresses, err := s.addressRepository.ListByUser(ctx, u.ID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}
	result.Addresses = addresses
	return result, nil
}
