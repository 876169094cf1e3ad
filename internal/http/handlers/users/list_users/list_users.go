package listusers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	c "userhub/internal/core/domain/common"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/user"
	"userhub/internal/core/services"
	getuserbyemail "userhub/internal/core/services/get_user_by_email"
	service "userhub/internal/core/services/list_users"
	"userhub/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Handler serves a page of users. When the email query parameter is given
// the result holds at most the one user with that email.
type Handler struct {
	service      services.Service[service.Input, service.Result]
	byEmail      services.Service[getuserbyemail.Input, getuserbyemail.Result]
	defaultLimit uint
	maxLimit     uint
}

func New(
	service services.Service[service.Input, service.Result],
	byEmail services.Service[getuserbyemail.Input, getuserbyemail.Result],
	defaultLimit uint,
	maxLimit uint,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if byEmail == nil {
		panic(e.NewNilArgumentError("byEmail"))
	}
	if defaultLimit == 0 || defaultLimit > maxLimit {
		panic(fmt.Sprintf("Default limit %d must be in range [1, %d].", defaultLimit, maxLimit))
	}
	return &Handler{service: service, byEmail: byEmail, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

type Result struct {
	Users []response.User `json:"users"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Has("email") {
		h.serveByEmail(rw, r, query.Get("email"))
		return
	}

	page, err := parseUint(query.Get("page"), 0)
	if err != nil {
		response.RenderError(rw, "invalid page", http.StatusBadRequest)
		return
	}
	limit, err := parseUint(query.Get("limit"), h.defaultLimit)
	if err != nil || limit == 0 || limit > h.maxLimit {
		response.RenderError(rw, fmt.Sprintf("limit must be in range [1, %d]", h.maxLimit), http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Page: page, Limit: limit})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	users := make([]response.User, len(result.Users))
	for idx, u := range result.Users {
		users[idx].FromDomainUser(u)
	}
	response.Render(rw, Result{Users: users}, http.StatusOK)
}

func (h *Handler) serveByEmail(rw http.ResponseWriter, r *http.Request, rawEmail string) {
	if err := validation.Validate(rawEmail, validation.Required, is.Email); err != nil {
		response.RenderError(rw, "invalid email", http.StatusBadRequest)
		return
	}

	result, err := h.byEmail.Run(r.Context(), getuserbyemail.Input{Email: c.NewEmail(rawEmail)})
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.Render(rw, Result{Users: []response.User{}}, http.StatusOK)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, Result{Users: []response.User{u}}, http.StatusOK)
}

func parseUint(raw string, fallback uint) (uint, error) {
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
