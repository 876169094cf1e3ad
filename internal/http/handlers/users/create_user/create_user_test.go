package createuser

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	c "userhub/internal/core/domain/common"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/user"
	"userhub/internal/core/services"
	service "userhub/internal/core/services/create_user"

	"github.com/stretchr/testify/require"
)

const validBody = `{
	"first_name": "John",
	"last_name": "Doe",
	"email": "John@Doe.com",
	"password": "secret",
	"addresses": [
		{"type": "shipping", "city": "Berlin", "country": "Germany", "postal_code": "10115", "street_name": "Main"}
	]
}`

func serve(svc *services.FakeService[service.Input, service.Result], body string) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	New(svc).ServeHTTP(rw, r)
	return rw
}

func TestCreateUserSuccess(t *testing.T) {
	svc := services.NewFakeService[service.Input, service.Result](
		service.Result{User: user.User{
			ID:        1,
			PublicID:  "public",
			Email:     c.NewEmail("john@doe.com"),
			FirstName: "John",
			LastName:  "Doe",
			Addresses: []user.Address{{PublicID: "addr", Type: user.AddressTypeShipping, City: "Berlin"}},
		}},
		nil,
	)

	rw := serve(svc, validBody)

	assert := require.New(t)
	assert.Equal(http.StatusCreated, rw.Code)
	assert.Contains(rw.Body.String(), `"user_id":"public"`)
	assert.Contains(rw.Body.String(), `"address_id":"addr"`)
	assert.NotContains(rw.Body.String(), "password")

	input := svc.LastInput()
	assert.Equal(c.Email("john@doe.com"), input.Email)
	assert.Equal(user.RawPassword("secret"), input.Password)
	assert.Equal([]user.NewAddress{{
		Type:       user.AddressTypeShipping,
		City:       "Berlin",
		Country:    "Germany",
		PostalCode: "10115",
		StreetName: "Main",
	}}, input.Addresses)
}

func TestCreateUserInvalidInput(t *testing.T) {
	cases := []struct {
		id   string
		body string
	}{
		{id: "not-json", body: `{`},
		{id: "missing-first-name", body: `{"last_name": "Doe", "email": "a@b.com", "password": "x"}`},
		{id: "invalid-email", body: `{"first_name": "A", "last_name": "B", "email": "nope", "password": "x"}`},
		{id: "missing-password", body: `{"first_name": "A", "last_name": "B", "email": "a@b.com"}`},
		{
			id: "invalid-address-type",
			body: `{"first_name": "A", "last_name": "B", "email": "a@b.com", "password": "x",
				"addresses": [{"type": "home", "city": "C", "country": "D", "postal_code": "1", "street_name": "S"}]}`,
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			svc := services.NewFakeService[service.Input, service.Result](service.Result{}, nil)
			rw := serve(svc, testcase.body)

			assert := require.New(t)
			assert.Equal(http.StatusBadRequest, rw.Code)
			assert.False(svc.WasCalled())
		})
	}
}

func TestCreateUserServiceErrors(t *testing.T) {
	cases := []struct {
		id     string
		err    error
		status int
	}{
		{id: "duplicate-email", err: user.ErrEmailAlreadyExists, status: http.StatusConflict},
		{id: "validation", err: e.NewMissingRequiredFieldError("firstName"), status: http.StatusBadRequest},
		{id: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			svc := services.NewFakeService[service.Input, service.Result](service.Result{}, testcase.err)
			rw := serve(svc, validBody)
			require.Equal(t, testcase.status, rw.Code)
		})
	}
}
