// Package repository contém as fontes de dados somente leitura usadas pela API
package repository

import (
	_ "embed"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-model-api/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed presets/presets.yaml
var embeddedPresets []byte

//go:generate mockgen -source=scenario.go -destination=mocks/scenario.go -package=mocks

type ScenarioRepository interface {
	List() ([]*domain.Scenario, error)
	GetByName(name string) (*domain.Scenario, error)
}

type scenarioFile struct {
	Scenarios []*domain.Scenario `yaml:"scenarios"`
}

type scenarioRepository struct {
	scenarios map[string]*domain.Scenario
}

// NewScenarioRepository carrega os cenários embutidos e, se informado, os do arquivo
// extra. Cenários do arquivo substituem os embutidos com o mesmo nome.
func NewScenarioRepository(presetsFile string) (ScenarioRepository, error) {
	scenarios, err := ParseScenarios(embeddedPresets)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler cenários embutidos")
	}

	repo := &scenarioRepository{
		scenarios: make(map[string]*domain.Scenario, len(scenarios)),
	}
	repo.merge(scenarios)

	if presetsFile == "" {
		return repo, nil
	}

	data, err := os.ReadFile(presetsFile)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir arquivo de cenários %s", presetsFile)
	}

	extra, err := ParseScenarios(data)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler arquivo de cenários %s", presetsFile)
	}
	repo.merge(extra)

	logrus.WithFields(logrus.Fields{
		"file":      presetsFile,
		"scenarios": len(extra),
	}).Info("Cenários adicionais carregados")

	return repo, nil
}

// ParseScenarios decodifica um documento YAML de cenários
func ParseScenarios(data []byte) ([]*domain.Scenario, error) {
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(file.Scenarios))
	for i, scenario := range file.Scenarios {
		if scenario == nil || strings.TrimSpace(scenario.Name) == "" {
			return nil, errors.Errorf("cenário na posição %d sem nome", i)
		}

		scenario.Name = normalizeName(scenario.Name)
		if seen[scenario.Name] {
			return nil, errors.Errorf("cenário duplicado: %s", scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return file.Scenarios, nil
}

func (r *scenarioRepository) merge(scenarios []*domain.Scenario) {
	for _, scenario := range scenarios {
		r.scenarios[scenario.Name] = scenario
	}
}

func (r *scenarioRepository) List() ([]*domain.Scenario, error) {
	scenarios := make([]*domain.Scenario, 0, len(r.scenarios))
	for _, scenario := range r.scenarios {
		scenarios = append(scenarios, cloneScenario(scenario))
	}

	sort.Slice(scenarios, func(i, j int) bool {
		return scenarios[i].Name < scenarios[j].Name
	})

	return scenarios, nil
}

// GetByName retorna nil, nil quando o cenário não existe
func (r *scenarioRepository) GetByName(name string) (*domain.Scenario, error) {
	scenario, ok := r.scenarios[normalizeName(name)]
	if !ok {
		return nil, nil
	}
	return cloneScenario(scenario), nil
}

// cloneScenario devolve uma cópia para que o catálogo compartilhado não seja alterado
func cloneScenario(scenario *domain.Scenario) *domain.Scenario {
	clone := *scenario
	return &clone
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
