package services_test

import (
	"context"
	"testing"
	"time"
	c "userhub/internal/core/domain/common"
	"userhub/internal/core/domain/logging"
	uow "userhub/internal/core/domain/unit_of_work"
	"userhub/internal/core/domain/user"
	confirmpasswordreset "userhub/internal/core/services/confirm_password_reset"
	createuser "userhub/internal/core/services/create_user"
	deleteuser "userhub/internal/core/services/delete_user"
	getuseraddresses "userhub/internal/core/services/get_user_addresses"
	getuserbyemail "userhub/internal/core/services/get_user_by_email"
	requestpasswordreset "userhub/internal/core/services/request_password_reset"

	"github.com/stretchr/testify/require"
)

func TestPasswordResetFlow(t *testing.T) {
	assert := require.New(t)
	ctx := context.Background()
	log := logging.NewFakeLogger()
	unitOfWork := uow.NewFakeUnitOfWork()
	users := unitOfWork.Context.UserRepository
	tokens := unitOfWork.Context.PasswordResetTokenRepository
	hasher := user.NewFakePasswordHasher()
	codec := user.NewFakeTokenCodec()
	now := func() time.Time { return time.Now().UTC() }

	create := createuser.New(log, unitOfWork, hasher, user.NewFakePublicIDGenerator(), now)
	getByEmail := getuserbyemail.New(log, users)
	request := requestpasswordreset.New(log, users, tokens, codec, time.Hour, now)
	confirm := confirmpasswordreset.New(log, users, tokens, codec, hasher)

	_, err := create.Run(ctx, createuser.Input{
		Email:     c.NewEmail("a@b.com"),
		FirstName: "A",
		LastName:  "B",
		Password:  "pw1",
	})
	assert.Nil(err)

	found, err := getByEmail.Run(ctx, getuserbyemail.Input{Email: c.NewEmail("a@b.com")})
	assert.Nil(err)
	assert.Equal("A", found.User.FirstName)
	assert.NotEqual(user.PasswordHash("pw1"), found.User.PasswordHash)

	requested, err := request.Run(ctx, requestpasswordreset.Input{Email: c.NewEmail("a@b.com")})
	assert.Nil(err)
	assert.True(requested.Success)

	confirmed, err := confirm.Run(ctx, confirmpasswordreset.Input{Token: requested.Token, NewPassword: "pw2"})
	assert.Nil(err)
	assert.True(confirmed.Success)

	found, err = getByEmail.Run(ctx, getuserbyemail.Input{Email: c.NewEmail("a@b.com")})
	assert.Nil(err)
	assert.True(hasher.ValidatePassword("pw2", found.User.PasswordHash))
	assert.False(hasher.ValidatePassword("pw1", found.User.PasswordHash))

	replayed, err := confirm.Run(ctx, confirmpasswordreset.Input{Token: requested.Token, NewPassword: "pw3"})
	assert.Nil(err)
	assert.False(replayed.Success)
}

func TestDeleteUserRemovesAddresses(t *testing.T) {
	assert := require.New(t)
	ctx := context.Background()
	log := logging.NewFakeLogger()
	unitOfWork := uow.NewFakeUnitOfWork()
	now := func() time.Time { return time.Now().UTC() }

	create := createuser.New(log, unitOfWork, user.NewFakePasswordHasher(), user.NewFakePublicIDGenerator(), now)
	remove := deleteuser.New(log, unitOfWork)
	addresses := getuseraddresses.New(log, unitOfWork.Context.UserRepository, unitOfWork.Context.AddressRepository)

	created, err := create.Run(ctx, createuser.Input{
		Email:     c.NewEmail("a@b.com"),
		FirstName: "A",
		LastName:  "B",
		Password:  "pw1",
		Addresses: []user.NewAddress{{City: "Rome"}, {City: "Milan"}},
	})
	assert.Nil(err)

	before, err := addresses.Run(ctx, getuseraddresses.Input{UserPublicID: created.User.PublicID})
	assert.Nil(err)
	assert.Len(before.Addresses, 2)

	_, err = remove.Run(ctx, deleteuser.Input{PublicID: created.User.PublicID})
	assert.Nil(err)

	after, err := addresses.Run(ctx, getuseraddresses.Input{UserPublicID: created.User.PublicID})
	assert.Nil(err)
	assert.Empty(after.Addresses)
	assert.Empty(unitOfWork.Context.AddressRepository.Addresses)
}
