package response

import (
	"encoding/json"
	"errors"
	"net/http"
	e "userhub/internal/core/domain/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

type validationErrorResponse struct {
	Error  string `json:"error"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

func RenderInvalidRequest(rw http.ResponseWriter) {
	RenderError(rw, "invalid request data", http.StatusBadRequest)
}

// RenderValidationError renders a domain ValidationError as 400. Any other
// error is treated as internal.
func RenderValidationError(rw http.ResponseWriter, err error) {
	var validationErr *e.ValidationError
	if !errors.As(err, &validationErr) {
		RenderInternalError(rw)
		return
	}
	Render(
		rw,
		validationErrorResponse{Error: "validation error", Field: validationErr.Field, Reason: validationErr.Reason},
		http.StatusBadRequest,
	)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
