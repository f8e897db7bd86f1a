package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-model-api/infrastructure/repository"
	"github.com/vfg2006/agency-model-api/internal/api"
	"github.com/vfg2006/agency-model-api/internal/config"
	"github.com/vfg2006/agency-model-api/internal/usecases/authenticating"
	"github.com/vfg2006/agency-model-api/internal/usecases/modeling"
	"github.com/vfg2006/agency-model-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scenarioRepo, err := repository.NewScenarioRepository(cfg.Model.PresetsFile)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar cenários")
	}

	var modelOpts []modeling.Option
	if cfg.Model.DefaultScenario != "" {
		modelOpts = append(modelOpts, defaultScenarioOption(scenarioRepo, cfg.Model.DefaultScenario))
	}
	modeler := modeling.NewService(scenarioRepo, modelOpts...)

	authenticator, err := authenticating.NewService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar autenticação")
	}

	server := api.New(cfg, modeler, authenticator)
	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// defaultScenarioOption usa as premissas do cenário configurado como valores iniciais
func defaultScenarioOption(repo repository.ScenarioRepository, name string) modeling.Option {
	scenario, err := repo.GetByName(name)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao buscar cenário padrão")
	}
	if scenario == nil {
		logrus.WithField("scenario", name).Fatal("Cenário padrão não encontrado")
	}

	if _, err := scenario.Assumptions.Normalize(); err != nil {
		logrus.WithError(err).WithField("scenario", name).Fatal("Cenário padrão possui premissas inválidas")
	}

	logrus.WithField("scenario", scenario.Name).Info("Premissas iniciais definidas pelo cenário padrão")
	return modeling.WithDefaults(scenario.Assumptions)
}
