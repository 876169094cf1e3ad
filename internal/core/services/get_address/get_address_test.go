package getaddress

import (
	"context"
	"testing"
	c "userhub/internal/core/domain/common"
	"userhub/internal/core/domain/logging"
	"userhub/internal/core/domain/user"

	"github.com/stretchr/testify/require"
)

func TestGetAddress(t *testing.T) {
	ctx := context.Background()
	users := user.NewFakeUserRepository()
	addresses := user.NewFakeAddressRepository()
	service := New(logging.NewFakeLogger(), users, addresses)

	owner, err := users.Create(ctx, user.CreateUserInput{PublicID: "owner", Email: c.Email("a@b.com")})
	require.Nil(t, err)
	_, err = users.Create(ctx, user.CreateUserInput{PublicID: "stranger", Email: c.Email("c@d.com")})
	require.Nil(t, err)
	created, err := addresses.Create(ctx, user.CreateAddressInput{
		PublicID: "address-1",
		UserID:   owner.ID,
		Address:  user.NewAddress{Type: user.AddressTypeShipping, City: "Lisbon"},
	})
	require.Nil(t, err)

	cases := []struct {
		id              string
		input           Input
		expectedPresent bool
	}{
		{id: "owner", input: Input{UserPublicID: "owner", AddressPublicID: "address-1"}, expectedPresent: true},
		{id: "unknown address", input: Input{UserPublicID: "owner", AddressPublicID: "address-2"}},
		{id: "other user", input: Input{UserPublicID: "stranger", AddressPublicID: "address-1"}},
		{id: "unknown user", input: Input{UserPublicID: "unknown", AddressPublicID: "address-1"}},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			result, err := service.Run(ctx, testcase.input)
			require.Nil(t, err)
			require.Equal(t, testcase.expectedPresent, result.Address.IsPresent)
			if testcase.expectedPresent {
				require.Equal(t, created, result.Address.Value)
			}
		})
	}
}
