package handler

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-model-api/pkg/apiErrors"
	"github.com/vfg2006/agency-model-api/pkg/log"
)

func TestWriteJSON(t *testing.T) {
	log.SetupTestLogger()
	logger := log.ForContext(context.Background())

	t.Run("Serializa com o status informado", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writeJSON(rec, http.StatusCreated, map[string]float64{"value": 2.5}, logger)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"value": 2.5}`, rec.Body.String())
	})

	t.Run("Valor não serializável vira erro interno", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writeJSON(rec, http.StatusCreated, map[string]float64{"value": math.Inf(1)}, logger)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
	})
}
