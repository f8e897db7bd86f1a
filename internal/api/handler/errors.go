package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/agency-model-api/internal/domain"
	"github.com/vfg2006/agency-model-api/internal/usecases/authenticating"
	"github.com/vfg2006/agency-model-api/internal/usecases/modeling"
	"github.com/vfg2006/agency-model-api/pkg/apiErrors"
	"github.com/vfg2006/agency-model-api/pkg/log"
)

// writeJSON serializa a resposta antes de enviar o status, para que uma falha
// de serialização vire 500 em vez de um sucesso com corpo vazio
func writeJSON(w http.ResponseWriter, status int, body any, logger log.Logger) {
	data, err := json.Marshal(body)
	if err != nil {
		logger.WithError(err).Error("handler: failed to encode response")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logger.WithError(err).Error("handler: failed to write response")
	}
}

// handleError converte erros dos casos de uso no formato padronizado da API
func handleError(w http.ResponseWriter, err error, logger log.Logger) {
	var modelErr *modeling.ModelError
	if errors.As(err, &modelErr) {
		details := map[string]any{}
		if modelErr.Scenario != "" {
			details["scenario"] = modelErr.Scenario
		}
		if modelErr.Code == apiErrors.ErrInvalidAssumptions && modelErr.Err != nil {
			details["reason"] = modelErr.Err.Error()
		}
		if len(details) == 0 {
			details = nil
		}

		logModelError(logger, modelErr)
		apiErrors.WriteError(w, modelErr.Code, modelErr.Error(), details)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		logger.WithFields(log.Fields{
			"client_name": authErr.ClientName,
			"error":       authErr.Error(),
		}).Warn("auth: request rejected")

		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidAssumptions):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAssumptions, err.Error(), nil)
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Chave de API inválida", nil)
	default:
		logger.WithError(err).Error("handler: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

func logModelError(logger log.Logger, modelErr *modeling.ModelError) {
	entry := logger.WithFields(log.Fields{
		"scenario": modelErr.Scenario,
		"error":    modelErr.Error(),
	})

	if apiErrors.StatusFor(modelErr.Code) >= http.StatusInternalServerError {
		entry.Error("modeling: request failed")
		return
	}
	entry.Warn("modeling: request rejected")
}
