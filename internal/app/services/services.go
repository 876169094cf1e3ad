package services

import (
	"userhub/internal/app/deps"
	"userhub/internal/core/services"
	confirmpasswordreset "userhub/internal/core/services/confirm_password_reset"
	createuser "userhub/internal/core/services/create_user"
	deleteuser "userhub/internal/core/services/delete_user"
	getaddress "userhub/internal/core/services/get_address"
	getuseraddresses "userhub/internal/core/services/get_user_addresses"
	getuserbyemail "userhub/internal/core/services/get_user_by_email"
	getuserbypublicid "userhub/internal/core/services/get_user_by_public_id"
	listusers "userhub/internal/core/services/list_users"
	purgepasswordresettokens "userhub/internal/core/services/purge_password_reset_tokens"
	requestpasswordreset "userhub/internal/core/services/request_password_reset"
	updateuser "userhub/internal/core/services/update_user"
)

type Services struct {
	CreateUser        services.Service[createuser.Input, createuser.Result]
	GetUserByEmail    services.Service[getuserbyemail.Input, getuserbyemail.Result]
	GetUserByPublicID services.Service[getuserbypublicid.Input, getuserbypublicid.Result]
	UpdateUser        services.Service[updateuser.Input, updateuser.Result]
	DeleteUser        services.Service[deleteuser.Input, deleteuser.Result]
	ListUsers         services.Service[listusers.Input, listusers.Result]

	GetUserAddresses services.Service[getuseraddresses.Input, getuseraddresses.Result]
	GetAddress       services.Service[getaddress.Input, getaddress.Result]

	RequestPasswordReset services.Service[requestpasswordreset.Input, requestpasswordreset.Result]
	ConfirmPasswordReset services.Service[confirmpasswordreset.Input, confirmpasswordreset.Result]

	PurgePasswordResetTokens services.Service[purgepasswordresettokens.Input, purgepasswordresettokens.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.CreateUser = createuser.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.PublicIDGenerator,
		deps.Now,
	)
	s.GetUserByEmail = getuserbyemail.New(deps.Logger, deps.UserRepository)
	s.GetUserByPublicID = getuserbypublicid.New(deps.Logger, deps.UserRepository, deps.AddressRepository)
	s.UpdateUser = updateuser.New(deps.Logger, deps.UserRepository)
	s.DeleteUser = deleteuser.New(deps.Logger, deps.UnitOfWork)
	s.ListUsers = listusers.New(deps.Logger, deps.UserRepository)

	s.GetUserAddresses = getuseraddresses.New(deps.Logger, deps.UserRepository, deps.AddressRepository)
	s.GetAddress = getaddress.New(deps.Logger, deps.UserRepository, deps.AddressRepository)

	s.RequestPasswordReset = requestpasswordreset.NewWithTokenSending(
		deps.Logger,
		deps.PasswordResetTokenSender,
		requestpasswordreset.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordResetTokenRepository,
			deps.TokenCodec,
			deps.Config.PasswordResetValidDuration,
			deps.Now,
		),
	)
	s.ConfirmPasswordReset = confirmpasswordreset.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordResetTokenRepository,
		deps.TokenCodec,
		deps.PasswordHasher,
	)

	s.PurgePasswordResetTokens = purgepasswordresettokens.New(
		deps.Logger,
		deps.PasswordResetTokenRepository,
		deps.Config.PasswordResetValidDuration,
		deps.Now,
	)

	return s
}
