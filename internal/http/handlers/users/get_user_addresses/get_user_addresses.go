package getuseraddresses

import (
	"net/http"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/user"
	"userhub/internal/core/services"
	service "userhub/internal/core/services/get_user_addresses"
	"userhub/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
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

type Result struct {
	Addresses []response.Address `json:"addresses"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	result, err := h.service.Run(r.Context(), service.Input{UserPublicID: user.PublicID(userID)})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	addresses := make([]response.Address, len(result.Addresses))
	for idx, a := range result.Addresses {
		addresses[idx].FromDomainAddress(a)
	}
	response.Render(rw, Result{Addresses: addresses}, http.StatusOK)
}
