package getaddress

import (
	"net/http"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/user"
	"userhub/internal/core/services"
	service "userhub/internal/core/services/get_address"
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
	Address response.AddressWithLinks `json:"address"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	userID := user.PublicID(chi.URLParam(r, "userID"))
	addressID := user.AddressPublicID(chi.URLParam(r, "addressID"))

	result, err := h.service.Run(r.Context(), service.Input{UserPublicID: userID, AddressPublicID: addressID})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	if !result.Address.IsPresent {
		response.RenderError(rw, user.ErrAddressDoesNotExist.Error(), http.StatusNotFound)
		return
	}

	response.Render(rw, Result{Address: response.NewAddressWithLinks(result.Address.Value, userID)}, http.StatusOK)
}
