package domain

// Nomes das etapas do funil, na ordem em que são exibidas
const (
	StageImpressions = "Impressions"
	StageClicks      = "Clicks"
	StageLeads       = "Leads"
	StageWarmLeads   = "Warm Leads"
	StageClients     = "Clients"
)

// WeeksPerYear é a quantidade de semanas usada para anualizar os valores
const WeeksPerYear = 52

// ProfitTarget é a meta de lucro acumulado usada no indicador de tempo até o primeiro milhão
const ProfitTarget = 1_000_000.0

// DerivedMetrics são os indicadores calculados a partir das premissas
type DerivedMetrics struct {
	ClicksPerWeek              float64  `json:"clicks_per_week"`
	LeadsPerWeek               float64  `json:"leads_per_week"`
	WarmLeadsPerWeek           float64  `json:"warm_leads_per_week"`
	ClientsPerWeek             float64  `json:"clients_per_week"`
	WeeklyRevenue              float64  `json:"weekly_revenue"`
	AnnualRevenue              float64  `json:"annual_revenue"`
	AnnualProfit               float64  `json:"annual_profit"`
	CostPerProject             float64  `json:"cost_per_project"`
	TotalProjectsPerYear       float64  `json:"total_projects_per_year"`
	HoursNeededPerYear         float64  `json:"hours_needed_per_year"`
	ConcurrentProjects         float64  `json:"concurrent_projects"`
	TotalDeveloperHoursPerWeek float64  `json:"total_developer_hours_per_week"`
	DevelopersNeeded           float64  `json:"developers_needed"`
	WeeklyDeveloperCost        float64  `json:"weekly_developer_cost"`
	TimeToMillionProfitYears   *float64 `json:"time_to_million_profit_years,omitempty"` // Ausente quando o lucro anual é zero ou negativo
}

// HasTimeToMillion indica se o indicador de tempo até o primeiro milhão pode ser exibido
func (m *DerivedMetrics) HasTimeToMillion() bool {
	return m != nil && m.TimeToMillionProfitYears != nil
}

// FunnelStage é uma etapa do funil semanal de vendas
type FunnelStage struct {
	Stage string  `json:"stage"`
	Value float64 `json:"value"`
}

// ProfitPoint é o lucro anual possível com uma quantidade de desenvolvedores
type ProfitPoint struct {
	Developers   int     `json:"developers"`
	AnnualProfit float64 `json:"annual_profit"`
}

// TimelinePoint é a quantidade acumulada de projetos em andamento numa semana
type TimelinePoint struct {
	Week            int     `json:"week"`
	OngoingProjects float64 `json:"ongoing_projects"`
}

// Projection é a saída completa do motor de cálculo
type Projection struct {
	Assumptions Assumptions     `json:"assumptions"`
	Metrics     DerivedMetrics  `json:"metrics"`
	Funnel      []FunnelStage   `json:"funnel"`
	ProfitSweep []ProfitPoint   `json:"profit_sweep"`
	Timeline    []TimelinePoint `json:"timeline"`
}

// ProjectionResponse é a resposta entregue à camada de apresentação
type ProjectionResponse struct {
	ID         string           `json:"id"`
	Scenario   string           `json:"scenario,omitempty"`
	Input      AssumptionsInput `json:"input"`
	Projection *Projection      `json:"projection"`
	Report     []ReportSection  `json:"report"`
	Charts     []ChartConfig    `json:"charts"`
}
