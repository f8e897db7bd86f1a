package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/agency-model-api/internal/api/handler/router"
	"github.com/vfg2006/agency-model-api/internal/usecases/authenticating"
	"github.com/vfg2006/agency-model-api/internal/usecases/modeling"
	"github.com/vfg2006/agency-model-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/token",
			Method:  http.MethodPost,
			Handler: Token(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []router.Middleware{middleware.AllRoles()},
		},
	}
}

func Projections(service modeling.Modeler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/assumptions/defaults",
			Method:      http.MethodGet,
			Handler:     GetDefaults(service),
			Middlewares: []router.Middleware{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projections",
			Method:      http.MethodPost,
			Handler:     CreateProjection(service),
			Middlewares: []router.Middleware{middleware.AnalystOrAdmin()},
		},
		{
			Path:        "/v1/projections",
			Method:      http.MethodGet,
			Handler:     GetProjection(service),
			Middlewares: []router.Middleware{middleware.AnalystOrAdmin()},
		},
	}
}

func Scenarios(service modeling.Modeler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/scenarios",
			Method:      http.MethodGet,
			Handler:     ListScenarios(service),
			Middlewares: []router.Middleware{middleware.AllRoles()},
		},
		{
			Path:        "/v1/scenarios/:name/projection",
			Method:      http.MethodGet,
			Handler:     GetScenarioProjection(service),
			Middlewares: []router.Middleware{middleware.AllRoles()},
		},
	}
}
