package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/agency-model-api/pkg/log"
)

type HealthcheckResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthcheckResponse{
			Status: "ok",
			Time:   time.Now().UTC().Format(time.RFC3339),
		}, log.ForContext(r.Context()))
	})
}
