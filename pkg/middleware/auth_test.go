package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/agency-model-api/internal/domain"
	"github.com/vfg2006/agency-model-api/internal/usecases/authenticating"
	"github.com/vfg2006/agency-model-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/agency-model-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

// claimsEcho responde 200 com o nome do cliente encontrado no contexto
func claimsEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if ok {
			w.Header().Set("X-Client", claims.ClientName)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthenticator(ctrl)

	tests := []struct {
		name       string
		path       string
		header     string
		setup      func()
		wantStatus int
		wantClient string
	}{
		{
			name:       "Rota pública não exige token",
			path:       "/healthcheck",
			setup:      func() {},
			wantStatus: http.StatusOK,
		},
		{
			name: "Autenticação desabilitada usa cliente anônimo",
			path: "/v1/projections",
			setup: func() {
				mockAuth.EXPECT().Enabled().Return(false)
			},
			wantStatus: http.StatusOK,
			wantClient: "anonymous",
		},
		{
			name: "Sem cabeçalho Authorization",
			path: "/v1/projections",
			setup: func() {
				mockAuth.EXPECT().Enabled().Return(true)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "Cabeçalho sem Bearer",
			path:   "/v1/projections",
			header: "Basic abc",
			setup: func() {
				mockAuth.EXPECT().Enabled().Return(true)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token expirado",
			path:   "/v1/projections",
			header: "Bearer expired",
			setup: func() {
				mockAuth.EXPECT().Enabled().Return(true)
				mockAuth.EXPECT().
					ValidateToken("expired").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token válido",
			path:   "/v1/projections",
			header: "Bearer good",
			setup: func() {
				mockAuth.EXPECT().Enabled().Return(true)
				mockAuth.EXPECT().
					ValidateToken("good").
					Return(&domain.Claims{ClientName: "finance", ClientRole: domain.RoleAnalyst}, nil)
			},
			wantStatus: http.StatusOK,
			wantClient: "finance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(mockAuth)(claimsEcho()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantClient, rec.Header().Get("X-Client"))
		})
	}
}

func TestAuthMiddleware_ExpiredTokenCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthenticator(ctrl)
	mockAuth.EXPECT().Enabled().Return(true)
	mockAuth.EXPECT().
		ValidateToken("expired").
		Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))

	req := httptest.NewRequest(http.MethodGet, "/v1/scenarios", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()

	AuthMiddleware(mockAuth)(claimsEcho()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrExpiredToken)
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		middleware func(http.Handler) http.Handler
		wantStatus int
	}{
		{
			name:       "Sem cliente no contexto",
			middleware: AllRoles(),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Viewer acessa rota de leitura",
			claims:     &domain.Claims{ClientName: "dash", ClientRole: domain.RoleViewer},
			middleware: AllRoles(),
			wantStatus: http.StatusOK,
		},
		{
			name:       "Viewer não cria projeções",
			claims:     &domain.Claims{ClientName: "dash", ClientRole: domain.RoleViewer},
			middleware: AnalystOrAdmin(),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Analista cria projeções",
			claims:     &domain.Claims{ClientName: "finance", ClientRole: domain.RoleAnalyst},
			middleware: AnalystOrAdmin(),
			wantStatus: http.StatusOK,
		},
		{
			name:       "Role desconhecida",
			claims:     &domain.Claims{ClientName: "x", ClientRole: "root"},
			middleware: AllRoles(),
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/projections", nil)
			if tt.claims != nil {
				req = req.WithContext(contextWithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(claimsEcho()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
