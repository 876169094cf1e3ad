package getaddress

import (
	"context"
	"errors"
	c "userhub/internal/core/domain/common"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/logging"
	"userhub/internal/core/domain/user"
	"userhub/internal/core/services"
)

type Input struct {
	UserPublicID    user.PublicID
	AddressPublicID user.AddressPublicID
}

// Result.Address is absent when the address does not exist or belongs to
// another user.
type Result struct {
	Address c.Optional[user.Address]
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
	address, err := s.addressRepository.GetByPublicID(ctx, input.AddressPublicID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrAddressDoesNotExist) {
		return result, nil
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	owner, err := s.userRepository.GetByID(ctx, address.UserID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, nil
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	if owner.PublicID != input.UserPublicID {
		s.log.Info(
			ctx,
			"Address requested under another user.",
			logging.Entry("addressPublicID", input.AddressPublicID),
			logging.Entry("userPublicID", input.UserPublicID),
		)
		return result, nil
	}

	result.Address = c.NewOptional(address, true)
	return result, nil
}
