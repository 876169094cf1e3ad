package updateuser

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "userhub/internal/core/domain/common"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/user"
	"userhub/internal/core/services"
	service "userhub/internal/core/services/update_user"
	"userhub/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
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

// Input only carries the names. Any other attribute in the body is ignored.
type Input struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type Result struct {
	User response.User `json:"user"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.FirstName, validation.Length(0, 50)),
		validation.Field(&i.LastName, validation.Length(0, 50)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderInvalidRequest(rw)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			PublicID:  user.PublicID(userID),
			FirstName: optional(input.FirstName),
			LastName:  optional(input.LastName),
		},
	)
	if err != nil {
		var validationErr *e.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.RenderValidationError(rw, err)
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, Result{User: u}, http.StatusOK)
}

func optional(value *string) c.Optional[string] {
	if value == nil {
		return c.Optional[string]{}
	}
	return c.NewOptional(*value, true)
}
