package deleteuser

import (
	"context"
	"errors"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/logging"
	uow "userhub/internal/core/domain/unit_of_work"
	"userhub/internal/core/domain/user"
	"userhub/internal/core/services"
)

type Input struct {
	PublicID user.PublicID
}

type Result struct{}

type service struct {
	log        logging.Logger
	unitOfWork uow.UnitOfWork
}

func New(log logging.Logger, unitOfWork uow.UnitOfWork) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	return &service{log: log, unitOfWork: unitOfWork}
}

// Run removes the user together with its addresses and outstanding
// password reset tokens in one transaction.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("publicID", input.PublicID),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer uow.Rollback(ctx)

	u, err := uow.Users().GetByPublicID(ctx, input.PublicID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User to delete not found.", logging.Entry("publicID", input.PublicID))
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("publicID", input.PublicID))
		return result, err
	}

	if err := uow.PasswordResetTokens().DeleteByUser(ctx, u.ID); err != nil {
		if !errors.Is(err, context.Canceled) {
			s.log.Error(
				ctx,
				"Could not delete password reset tokens.",
				logging.Entry("userID", u.ID),
				logging.Entry("err", err),
			)
		}
		return result, err
	}
	if err := uow.Addresses().DeleteByUser(ctx, u.ID); err != nil {
		if !errors.Is(err, context.Canceled) {
			s.log.Error(
				ctx,
				"Could not delete user addresses.",
				logging.Entry("userID", u.ID),
				logging.Entry("err", err),
			)
		}
		return result, err
	}
	if err := uow.Users().Delete(ctx, u.ID); err != nil {
		if !errors.Is(err, context.Canceled) {
			s.log.Error(ctx, "Could not delete user.", logging.Entry("userID", u.ID), logging.Entry("err", err))
		}
		return result, err
	}

	err = uow.Commit(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User has been deleted.", logging.Entry("userID", u.ID))
	return result, nil
}
