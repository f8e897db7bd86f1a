package handler

import (
	"io"
	"net/http"

	"github.com/vfg2006/agency-model-api/internal/usecases/modeling"
	"github.com/vfg2006/agency-model-api/pkg/apiErrors"
	"github.com/vfg2006/agency-model-api/pkg/log"
	"github.com/vfg2006/agency-model-api/pkg/utils"
)

// maxBodyBytes limita o tamanho do corpo aceito em POST /v1/projections
const maxBodyBytes = 1 << 20

func GetDefaults(service modeling.Modeler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Debug("projections: returning default assumptions")

		writeJSON(w, http.StatusOK, service.Defaults(), logger)
	})
}

// CreateProjection aceita premissas parciais no corpo; campos ausentes usam os valores iniciais
func CreateProjection(service modeling.Modeler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		input := service.Defaults()

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			logger.WithError(err).Warn("projections: failed to read request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler o corpo da requisição", nil)
			return
		}

		if len(body) > 0 {
			if err := json.Unmarshal(body, &input); err != nil {
				logger.WithFields(log.Fields{
					"error": err.Error(),
				}).Warn("projections: invalid request body")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", map[string]any{
					"reason": err.Error(),
				})
				return
			}
		}

		response, err := service.Project(input)
		if err != nil {
			handleError(w, err, logger)
			return
		}

		logger.WithFields(log.Fields{
			"projection_id": response.ID,
		}).Info("projections: projection created")

		writeJSON(w, http.StatusCreated, response, logger)
	})
}

// GetProjection calcula a projeção a partir de premissas na query string
func GetProjection(service modeling.Modeler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		input := service.Defaults()
		if err := utils.DecodeQuery(r.URL.Query(), &input); err != nil {
			logger.WithFields(log.Fields{
				"query": r.URL.RawQuery,
				"error": err.Error(),
			}).Warn("projections: invalid query parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros de consulta inválidos", map[string]any{
				"reason": err.Error(),
			})
			return
		}

		response, err := service.Project(input)
		if err != nil {
			handleError(w, err, logger)
			return
		}

		logger.WithFields(log.Fields{
			"projection_id": response.ID,
		}).Info("projections: projection computed")

		writeJSON(w, http.StatusOK, response, logger)
	})
}
