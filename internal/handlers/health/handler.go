package health

import (
	"net/http"

	"booking-api/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports service liveness.
// @Summary Health check
// @Description Report whether the service is up. Requires no authentication.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "Service is healthy"
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.WithMessage(w, http.StatusOK, "OK")
}
