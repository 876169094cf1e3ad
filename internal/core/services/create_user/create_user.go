package createuser

import (
	"context"
	"errors"
	"time"
	c "userhub/internal/core/domain/common"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/logging"
	uow "userhub/internal/core/domain/unit_of_work"
	"userhub/internal/core/domain/user"
	"userhub/internal/core/services"
)

type Input struct {
	Email     c.Email
	FirstName string
	LastName  string
	Password  user.RawPassword
	Addresses []user.NewAddress
}

func (i Input) Validate() error {
	if i.FirstName == "" {
		return e.NewMissingRequiredFieldError("firstName")
	}
	if i.LastName == "" {
		return e.NewMissingRequiredFieldError("lastName")
	}
	if i.Email == "" {
		return e.NewMissingRequiredFieldError("email")
	}
	if i.Password == "" {
		return e.NewMissingRequiredFieldError("password")
	}
	return nil
}

type Result struct {
	User user.User
}

type service struct {
	log               logging.Logger
	unitOfWork        uow.UnitOfWork
	passwordHasher    user.PasswordHasher
	publicIDGenerator user.PublicIDGenerator
	now               func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	publicIDGenerator user.PublicIDGenerator,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if publicIDGenerator == nil {
		panic(e.NewNilArgumentError("publicIDGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:               log,
		unitOfWork:        unitOfWork,
		passwordHasher:    passwordHasher,
		publicIDGenerator: publicIDGenerator,
		now:               now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := input.Validate(); err != nil {
		s.log.Info(ctx, "Invalid input for user creation.", logging.Entry("err", err))
		return result, err
	}

	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer uow.Rollback(ctx)

	_, err = uow.Users().GetByEmail(ctx, input.Email)
	if err == nil {
		s.log.Info(ctx, "User with the email already exists.", logging.Entry("email", input.Email))
		return result, user.ErrEmailAlreadyExists
	}
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if !errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Error(
			ctx,
			"Could not check whether the email is taken.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	createdUser, err := uow.Users().Create(ctx, user.CreateUserInput{
		PublicID:     s.publicIDGenerator.GeneratePublicID(),
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: passwordHash,
		CreatedAt:    s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		s.log.Info(ctx, "User with the email already exists.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create new user.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	createdUser.Addresses = make([]user.Address, 0, len(input.Addresses))
	for _, newAddress := range input.Addresses {
		address, err := uow.Addresses().Create(ctx, user.CreateAddressInput{
			PublicID: s.publicIDGenerator.GenerateAddressPublicID(),
			UserID:   createdUser.ID,
			Address:  newAddress,
		})
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		if err != nil {
			s.log.Error(
				ctx,
				"Could not create user address.",
				logging.Entry("userID", createdUser.ID),
				logging.Entry("err", err),
			)
			return result, err
		}
		createdUser.Addresses = append(createdUser.Addresses, address)
	}

	err = uow.Commit(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("userID", createdUser.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New user has been created.",
		logging.Entry("userID", createdUser.ID),
		logging.Entry("publicID", createdUser.PublicID),
		logging.Entry("addressCount", len(createdUser.Addresses)),
	)
	return Result{User: createdUser}, nil
}
