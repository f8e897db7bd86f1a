package middleware

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/agency-model-api/internal/domain"
	"github.com/vfg2006/agency-model-api/internal/usecases/authenticating"
	"github.com/vfg2006/agency-model-api/pkg/apiErrors"
	"github.com/vfg2006/agency-model-api/pkg/log"
)

type contextKey string

const (
	ContextKeyClient contextKey = "client"
)

// Rotas que não exigem token
var publicPaths = []string{"/healthcheck", "/v1/token"}

// anonymousClaims é usado quando a autenticação está desabilitada
var anonymousClaims = &domain.Claims{
	ClientName: "anonymous",
	ClientRole: domain.RoleAdmin,
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(publicPaths, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			if !authService.Enabled() {
				next.ServeHTTP(w, r.WithContext(contextWithClaims(r.Context(), anonymousClaims)))
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) && authErr.Code != "" {
					code = authErr.Code
				}

				log.ForContext(r.Context()).WithError(err).Warn("auth: token rejected")
				apiErrors.WriteError(w, code, "Invalid token", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithClaims(r.Context(), claims)))
		})
	}
}

func contextWithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, ContextKeyClient, claims)
}

// ClaimsFromContext retorna o cliente autenticado da requisição
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyClient).(*domain.Claims)
	return claims, ok
}

// RoleMiddleware restringe o acesso às roles informadas
func RoleMiddleware(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cliente não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, claims.ClientRole) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"client_name": claims.ClientName,
					"client_role": claims.ClientRole,
				}).Warn("auth: access denied")

				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AnalystOrAdmin permite premissas livres apenas para analistas e administradores
func AnalystOrAdmin() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleAdmin, domain.RoleAnalyst)
}

// AllRoles permite acesso a qualquer cliente autenticado
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleAdmin, domain.RoleAnalyst, domain.RoleViewer)
}
