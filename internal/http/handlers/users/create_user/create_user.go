package createuser

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "userhub/internal/core/domain/common"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/user"
	"userhub/internal/core/services"
	service "userhub/internal/core/services/create_user"
	"userhub/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Address struct {
	Type       string `json:"type"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	StreetName string `json:"street_name"`
}

func (a Address) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(
			&a.Type,
			validation.Required,
			validation.In(string(user.AddressTypeShipping), string(user.AddressTypeBilling)),
		),
		validation.Field(&a.City, validation.Required, validation.Length(0, 15)),
		validation.Field(&a.Country, validation.Required, validation.Length(0, 15)),
		validation.Field(&a.PostalCode, validation.Required, validation.Length(0, 7)),
		validation.Field(&a.StreetName, validation.Required, validation.Length(0, 100)),
	)
}

type Input struct {
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Addresses []Address `json:"addresses"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.FirstName, validation.Required, validation.Length(0, 50)),
		validation.Field(&i.LastName, validation.Required, validation.Length(0, 50)),
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 120)),
		validation.Field(&i.Password, validation.Required, validation.Length(0, 256)),
		validation.Field(&i.Addresses),
	)
}

type Result struct {
	User response.User `json:"user"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderInvalidRequest(rw)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	addresses := make([]user.NewAddress, len(input.Addresses))
	for idx, a := range input.Addresses {
		addresses[idx] = user.NewAddress{
			Type:       user.AddressType(a.Type),
			City:       a.City,
			Country:    a.Country,
			PostalCode: a.PostalCode,
			StreetName: a.StreetName,
		}
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			Email:     c.NewEmail(input.Email),
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Password:  user.RawPassword(input.Password),
			Addresses: addresses,
		},
	)
	if err != nil {
		var validationErr *e.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.RenderValidationError(rw, err)
		case errors.Is(err, user.ErrEmailAlreadyExists):
			response.RenderError(rw, "email already exists", http.StatusConflict)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, Result{User: u}, http.StatusCreated)
}
