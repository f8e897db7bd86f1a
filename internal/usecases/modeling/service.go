package modeling

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-model-api/infrastructure/repository"
	"github.com/vfg2006/agency-model-api/internal/domain"
	"github.com/vfg2006/agency-model-api/internal/usecases/reporting"
	"github.com/vfg2006/agency-model-api/pkg/apiErrors"
	"github.com/vfg2006/agency-model-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Modeler interface {
	// Defaults retorna as premissas iniciais do modelo
	Defaults() domain.AssumptionsInput

	// Project normaliza as premissas, calcula a projeção e monta relatório e gráficos
	Project(input domain.AssumptionsInput) (*domain.ProjectionResponse, error)

	// ListScenarios retorna os cenários pré-definidos disponíveis
	ListScenarios() ([]*domain.Scenario, error)

	// ProjectScenario calcula a projeção de um cenário pré-definido
	ProjectScenario(name string) (*domain.ProjectionResponse, error)
}

type Service struct {
	scenarioRepository repository.ScenarioRepository
	defaults           domain.AssumptionsInput
	generateID         func() (string, error)
}

// Option ajusta o Service na construção
type Option func(*Service)

// WithDefaults substitui as premissas iniciais (usado quando há um cenário padrão configurado)
func WithDefaults(defaults domain.AssumptionsInput) Option {
	return func(s *Service) {
		s.defaults = defaults
	}
}

func NewService(scenarioRepo repository.ScenarioRepository, opts ...Option) Modeler {
	s := &Service{
		scenarioRepository: scenarioRepo,
		defaults:           domain.DefaultAssumptionsInput(),
		generateID:         utils.GenerateID,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Defaults() domain.AssumptionsInput {
	return s.defaults
}

func (s *Service) Project(input domain.AssumptionsInput) (*domain.ProjectionResponse, error) {
	assumptions, err := input.Normalize()
	if err != nil {
		return nil, NewModelError(err, apiErrors.ErrInvalidAssumptions, "premissas inválidas")
	}

	projection, err := Compute(assumptions)
	if err != nil {
		return nil, NewModelError(err, apiErrors.ErrInvalidAssumptions, "premissas inválidas")
	}

	id, err := s.generateID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar ID da projeção")
		return nil, NewModelError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"projection_id":     id,
		"clients_per_week":  projection.Metrics.ClientsPerWeek,
		"annual_profit":     projection.Metrics.AnnualProfit,
		"developers_needed": projection.Metrics.DevelopersNeeded,
	}).Debug("Projeção calculada")

	return &domain.ProjectionResponse{
		ID:         id,
		Input:      input,
		Projection: projection,
		Report:     reporting.BuildReport(projection),
		Charts:     reporting.BuildCharts(projection),
	}, nil
}

func (s *Service) ListScenarios() ([]*domain.Scenario, error) {
	scenarios, err := s.scenarioRepository.List()
	if err != nil {
		return nil, NewModelError(ErrLoadScenarios, apiErrors.ErrScenarioSource, err.Error())
	}
	return scenarios, nil
}

func (s *Service) ProjectScenario(name string) (*domain.ProjectionResponse, error) {
	if name == "" {
		return nil, NewModelError(ErrScenarioNameRequired, apiErrors.ErrMissingRequiredData, "")
	}

	scenario, err := s.scenarioRepository.GetByName(name)
	if err != nil {
		return nil, NewScenarioError(ErrLoadScenarios, apiErrors.ErrScenarioSource, name, err.Error())
	}

	if scenario == nil {
		return nil, NewScenarioError(ErrScenarioNotFound, apiErrors.ErrScenarioNotFound, name, name)
	}

	response, err := s.Project(scenario.Assumptions)
	if err != nil {
		var modelErr *ModelError
		if errors.As(err, &modelErr) {
			modelErr.Scenario = scenario.Name
		}
		return nil, err
	}

	response.Scenario = scenario.Name
	return response, nil
}
