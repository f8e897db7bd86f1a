// Package modeling contém o motor de cálculo do modelo financeiro da agência
// e o serviço que o expõe para a camada de apresentação
package modeling

import (
	"fmt"
	"math"

	"github.com/vfg2006/agency-model-api/internal/domain"
)

const (
	// minSweepDevelopers é o tamanho mínimo da simulação de lucro por desenvolvedores
	minSweepDevelopers = 10

	// MaxSweepDevelopers limita a simulação; equipes maiores ficam fora do gráfico
	MaxSweepDevelopers = 1000
)

// Compute calcula todos os indicadores e séries a partir das premissas.
// É uma função pura: não guarda estado e pode ser chamada de qualquer goroutine.
func Compute(a domain.Assumptions) (*domain.Projection, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	metrics := computeMetrics(a)

	projection := &domain.Projection{
		Assumptions: a,
		Metrics:     metrics,
		Funnel:      funnelSeries(a, metrics),
		ProfitSweep: profitSweep(a, metrics),
		Timeline:    projectTimeline(a, metrics),
	}

	if err := checkFinite(projection); err != nil {
		return nil, err
	}

	return projection, nil
}

func computeMetrics(a domain.Assumptions) domain.DerivedMetrics {
	var m domain.DerivedMetrics

	// Funil: cada etapa multiplica a anterior pela taxa de conversão
	m.ClicksPerWeek = a.ImpressionsPerWeek * a.ClickThroughRate
	m.LeadsPerWeek = a.ImpressionsPerWeek * a.ClickThroughRate * a.LeadConversionRate
	m.WarmLeadsPerWeek = m.LeadsPerWeek * a.WarmLeadConversionRate
	m.ClientsPerWeek = m.WarmLeadsPerWeek * a.SalesConversionRate

	// Financeiro
	m.WeeklyRevenue = m.ClientsPerWeek * a.AverageProjectPrice
	m.AnnualRevenue = m.WeeklyRevenue * domain.WeeksPerYear
	m.AnnualProfit = m.AnnualRevenue * a.ProfitMargin
	m.CostPerProject = a.AverageProjectPrice * (1 - a.ProfitMargin)

	// Capacidade
	duration := float64(a.ProjectDurationWeeks)
	m.TotalProjectsPerYear = m.ClientsPerWeek * domain.WeeksPerYear
	m.HoursNeededPerYear = m.TotalProjectsPerYear * a.HoursPerProject
	m.ConcurrentProjects = m.ClientsPerWeek * duration
	m.TotalDeveloperHoursPerWeek = m.ConcurrentProjects * (a.HoursPerProject / duration)
	m.DevelopersNeeded = m.TotalDeveloperHoursPerWeek / a.DeveloperHoursPerWeek
	m.WeeklyDeveloperCost = m.TotalDeveloperHoursPerWeek * a.DeveloperCostPerHour

	if m.AnnualProfit > 0 {
		years := domain.ProfitTarget / m.AnnualProfit
		m.TimeToMillionProfitYears = &years
	}

	return m
}

func funnelSeries(a domain.Assumptions, m domain.DerivedMetrics) []domain.FunnelStage {
	return []domain.FunnelStage{
		{Stage: domain.StageImpressions, Value: a.ImpressionsPerWeek},
		{Stage: domain.StageClicks, Value: m.ClicksPerWeek},
		{Stage: domain.StageLeads, Value: m.LeadsPerWeek},
		{Stage: domain.StageWarmLeads, Value: m.WarmLeadsPerWeek},
		{Stage: domain.StageClients, Value: m.ClientsPerWeek},
	}
}

// SweepSize retorna até quantos desenvolvedores a simulação de lucro vai,
// entre minSweepDevelopers e MaxSweepDevelopers
func SweepSize(developersNeeded float64) int {
	if math.IsNaN(developersNeeded) || developersNeeded > MaxSweepDevelopers/2 {
		return MaxSweepDevelopers
	}

	size := 2 * int(math.Ceil(developersNeeded))
	if size < minSweepDevelopers {
		return minSweepDevelopers
	}
	return size
}

// profitSweep simula o lucro anual para cada quantidade de desenvolvedores.
// A quantidade de projetos fica limitada pela demanda anual.
func profitSweep(a domain.Assumptions, m domain.DerivedMetrics) []domain.ProfitPoint {
	size := SweepSize(m.DevelopersNeeded)
	points := make([]domain.ProfitPoint, 0, size)

	for devs := 1; devs <= size; devs++ {
		possibleProjects := m.TotalProjectsPerYear
		if a.HoursPerProject > 0 {
			capacity := float64(devs) * a.DeveloperHoursPerWeek
			possibleProjects = math.Min(capacity/a.HoursPerProject, m.TotalProjectsPerYear)
		}

		points = append(points, domain.ProfitPoint{
			Developers:   devs,
			AnnualProfit: possibleProjects * a.AverageProjectPrice * a.ProfitMargin,
		})
	}

	return points
}

// projectTimeline acumula os projetos em andamento ao longo de um ano.
// Entram ClientsPerWeek projetos por semana e, depois da duração do projeto,
// a mesma quantidade passa a terminar a cada semana.
func projectTimeline(a domain.Assumptions, m domain.DerivedMetrics) []domain.TimelinePoint {
	timeline := make([]domain.TimelinePoint, 0, domain.WeeksPerYear)
	ongoing := 0.0

	for week := 1; week <= domain.WeeksPerYear; week++ {
		starting := m.ClientsPerWeek
		ending := 0.0
		if week > a.ProjectDurationWeeks {
			ending = m.ClientsPerWeek
		}

		ongoing += starting - ending
		timeline = append(timeline, domain.TimelinePoint{
			Week:            week,
			OngoingProjects: ongoing,
		})
	}

	return timeline
}

type namedValue struct {
	field string
	value float64
}

// checkFinite rejeita projeções cujos valores derivados estouraram o float64.
// Premissas finitas ainda podem gerar +Inf quando multiplicadas entre si.
func checkFinite(p *domain.Projection) error {
	m := p.Metrics
	values := []namedValue{
		{"clicks_per_week", m.ClicksPerWeek},
		{"leads_per_week", m.LeadsPerWeek},
		{"warm_leads_per_week", m.WarmLeadsPerWeek},
		{"clients_per_week", m.ClientsPerWeek},
		{"weekly_revenue", m.WeeklyRevenue},
		{"annual_revenue", m.AnnualRevenue},
		{"annual_profit", m.AnnualProfit},
		{"cost_per_project", m.CostPerProject},
		{"total_projects_per_year", m.TotalProjectsPerYear},
		{"hours_needed_per_year", m.HoursNeededPerYear},
		{"concurrent_projects", m.ConcurrentProjects},
		{"total_developer_hours_per_week", m.TotalDeveloperHoursPerWeek},
		{"developers_needed", m.DevelopersNeeded},
		{"weekly_developer_cost", m.WeeklyDeveloperCost},
	}
	if m.TimeToMillionProfitYears != nil {
		values = append(values, namedValue{"time_to_million_profit_years", *m.TimeToMillionProfitYears})
	}
	for _, point := range p.ProfitSweep {
		values = append(values, namedValue{"profit_sweep", point.AnnualProfit})
	}
	for _, point := range p.Timeline {
		values = append(values, namedValue{"timeline", point.OngoingProjects})
	}

	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%w: %s overflows for the given values", domain.ErrInvalidAssumptions, v.field)
		}
	}

	return nil
}
