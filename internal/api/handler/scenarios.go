package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/agency-model-api/internal/domain"
	"github.com/vfg2006/agency-model-api/internal/usecases/modeling"
	"github.com/vfg2006/agency-model-api/pkg/log"
)

type ScenarioListResponse struct {
	Scenarios []*domain.Scenario `json:"scenarios"`
}

func ListScenarios(service modeling.Modeler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		scenarios, err := service.ListScenarios()
		if err != nil {
			handleError(w, err, logger)
			return
		}

		if scenarios == nil {
			scenarios = []*domain.Scenario{}
		}

		logger.Debugf("scenarios: %d scenarios available", len(scenarios))
		writeJSON(w, http.StatusOK, ScenarioListResponse{Scenarios: scenarios}, logger)
	})
}

func GetScenarioProjection(service modeling.Modeler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		logger.WithField("scenario", name).Info("scenarios: computing scenario projection")

		response, err := service.ProjectScenario(name)
		if err != nil {
			handleError(w, err, logger)
			return
		}

		logger.WithFields(log.Fields{
			"scenario":      response.Scenario,
			"projection_id": response.ID,
		}).Info("scenarios: projection computed")

		writeJSON(w, http.StatusOK, response, logger)
	})
}
