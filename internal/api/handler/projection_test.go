package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/agency-model-api/internal/domain"
	"github.com/vfg2006/agency-model-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/agency-model-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/agency-model-api/internal/usecases/modeling"
	"github.com/vfg2006/agency-model-api/internal/usecases/modeling/mocks"
	"github.com/vfg2006/agency-model-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestCreateProjection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockModeler := mocks.NewMockModeler(ctrl)

	tests := []struct {
		name       string
		body       string
		setup      func()
		wantStatus int
		validate   func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Corpo parcial mantém os demais valores iniciais",
			body: `{"impressions_per_week": 20000, "ctr_percent": 2.5}`,
			setup: func() {
				expected := domain.DefaultAssumptionsInput()
				expected.ImpressionsPerWeek = 20000
				expected.CTRPercent = 2.5

				mockModeler.EXPECT().Defaults().Return(domain.DefaultAssumptionsInput())
				mockModeler.EXPECT().Project(expected).Return(&domain.ProjectionResponse{ID: "abc", Input: expected}, nil)
			},
			wantStatus: http.StatusCreated,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var response domain.ProjectionResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
				assert.Equal(t, "abc", response.ID)
				assert.Equal(t, 20000.0, response.Input.ImpressionsPerWeek)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			},
		},
		{
			name: "Corpo vazio usa os valores iniciais",
			body: "",
			setup: func() {
				mockModeler.EXPECT().Defaults().Return(domain.DefaultAssumptionsInput())
				mockModeler.EXPECT().Project(domain.DefaultAssumptionsInput()).Return(&domain.ProjectionResponse{ID: "def"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "JSON inválido",
			body: `{"impressions_per_week": "muitas"`,
			setup: func() {
				mockModeler.EXPECT().Defaults().Return(domain.DefaultAssumptionsInput())
			},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
			},
		},
		{
			name: "Premissas inválidas",
			body: `{"project_duration_weeks": 0}`,
			setup: func() {
				mockModeler.EXPECT().Defaults().Return(domain.DefaultAssumptionsInput())
				mockModeler.EXPECT().
					Project(gomock.Any()).
					Return(nil, modeling.NewModelError(domain.ErrInvalidAssumptions, apiErrors.ErrInvalidAssumptions, "premissas inválidas"))
			},
			wantStatus: http.StatusUnprocessableEntity,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				apiErr := decodeError(t, rec)
				assert.Equal(t, apiErrors.ErrInvalidAssumptions, apiErr.Code)
				assert.NotNil(t, apiErr.Details)
			},
		},
		{
			name: "Erro inesperado",
			body: `{}`,
			setup: func() {
				mockModeler.EXPECT().Defaults().Return(domain.DefaultAssumptionsInput())
				mockModeler.EXPECT().Project(gomock.Any()).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := httptest.NewRequest(http.MethodPost, "/v1/projections", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			CreateProjection(mockModeler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

func TestGetProjection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockModeler := mocks.NewMockModeler(ctrl)

	t.Run("Query string sobrescreve valores iniciais", func(t *testing.T) {
		expected := domain.DefaultAssumptionsInput()
		expected.SalesConversionPercent = 30
		expected.ProjectDurationWeeks = 4

		mockModeler.EXPECT().Defaults().Return(domain.DefaultAssumptionsInput())
		mockModeler.EXPECT().Project(expected).Return(&domain.ProjectionResponse{ID: "q1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projections?sales_conversion_percent=30&project_duration_weeks=4", nil)
		rec := httptest.NewRecorder()

		GetProjection(mockModeler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Parâmetro desconhecido", func(t *testing.T) {
		mockModeler.EXPECT().Defaults().Return(domain.DefaultAssumptionsInput())

		req := httptest.NewRequest(http.MethodGet, "/v1/projections?headcount=3", nil)
		rec := httptest.NewRecorder()

		GetProjection(mockModeler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("Valor não numérico", func(t *testing.T) {
		mockModeler.EXPECT().Defaults().Return(domain.DefaultAssumptionsInput())

		req := httptest.NewRequest(http.MethodGet, "/v1/projections?ctr_percent=abc", nil)
		rec := httptest.NewRecorder()

		GetProjection(mockModeler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockModeler := mocks.NewMockModeler(ctrl)
	mockModeler.EXPECT().Defaults().Return(domain.DefaultAssumptionsInput())

	rec := httptest.NewRecorder()
	GetDefaults(mockModeler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/assumptions/defaults", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var input domain.AssumptionsInput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &input))
	assert.Equal(t, domain.DefaultAssumptionsInput(), input)
}

func TestScenarioHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockModeler := mocks.NewMockModeler(ctrl)

	t.Run("Lista vazia vira array", func(t *testing.T) {
		mockModeler.EXPECT().ListScenarios().Return(nil, nil)

		rec := httptest.NewRecorder()
		ListScenarios(mockModeler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/scenarios", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"scenarios": []}`, rec.Body.String())
	})

	t.Run("Cenário inexistente", func(t *testing.T) {
		mockModeler.EXPECT().
			ProjectScenario("moonshot").
			Return(nil, modeling.NewScenarioError(modeling.ErrScenarioNotFound, apiErrors.ErrScenarioNotFound, "moonshot", "moonshot"))

		req := httptest.NewRequest(http.MethodGet, "/v1/scenarios/moonshot/projection", nil)
		ctx := context.WithValue(req.Context(), httprouter.ParamsKey, httprouter.Params{{Key: "name", Value: "moonshot"}})
		rec := httptest.NewRecorder()

		GetScenarioProjection(mockModeler).ServeHTTP(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrScenarioNotFound, apiErr.Code)
		assert.Equal(t, map[string]any{"scenario": "moonshot"}, apiErr.Details)
	})
}

func TestTokenHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := authmocks.NewMockAuthenticator(ctrl)

	t.Run("Chave válida", func(t *testing.T) {
		mockAuth.EXPECT().Login("key").Return("jwt-token", nil)

		rec := httptest.NewRecorder()
		Token(mockAuth).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/token", strings.NewReader(`{"api_key":"key"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"token":"jwt-token"}`, rec.Body.String())
	})

	t.Run("Chave inválida", func(t *testing.T) {
		mockAuth.EXPECT().
			Login("nope").
			Return("", authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))

		rec := httptest.NewRecorder()
		Token(mockAuth).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/token", strings.NewReader(`{"api_key":"nope"}`)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeError(t, rec).Code)
	})

	t.Run("Corpo inválido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Token(mockAuth).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/token", strings.NewReader(`api_key`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
