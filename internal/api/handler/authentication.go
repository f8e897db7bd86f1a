package handler

import (
	"net/http"

	"github.com/vfg2006/agency-model-api/internal/usecases/authenticating"
	"github.com/vfg2006/agency-model-api/pkg/apiErrors"
	"github.com/vfg2006/agency-model-api/pkg/log"
	"github.com/vfg2006/agency-model-api/pkg/middleware"
)

type TokenRequest struct {
	APIKey string `json:"api_key"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type MeResponse struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Token troca uma chave de API por um token de acesso
func Token(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req TokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.Login(req.APIKey)
		if err != nil {
			handleError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{Token: token}, logger)
	})
}

// GetMe retorna o cliente associado ao token da requisição
func GetMe() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cliente não autenticado", nil)
			return
		}

		writeJSON(w, http.StatusOK, MeResponse{
			Name: claims.ClientName,
			Role: claims.ClientRole,
		}, log.ForContext(r.Context()))
	})
}
