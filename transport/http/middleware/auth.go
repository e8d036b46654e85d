package middleware

import (
	"net/http"

	"booking-api/config"
	"booking-api/infras/otel"
	"booking-api/shared/constant"
	"booking-api/shared/failure"
	"booking-api/transport/http/response"
)

// Auth guards endpoints with the static service API key.
type Auth interface {
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// APIKey rejects any request that does not carry the configured key. An
// unconfigured key rejects everything, so a missing env var can never open
// the API up.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if m.cfg.App.APIKey == constant.Empty || apiKey != m.cfg.App.APIKey {
			err := failure.Unauthorized("Unauthorized")

			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		scope.End()
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
