package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/agency-model-api/internal/domain"
)

func sampleProjection() *domain.Projection {
	years := 1_000_000.0 / 780_000.0

	return &domain.Projection{
		Metrics: domain.DerivedMetrics{
			ClicksPerWeek:              500,
			LeadsPerWeek:               50,
			WarmLeadsPerWeek:           10,
			ClientsPerWeek:             2.5,
			WeeklyRevenue:              25000,
			AnnualRevenue:              1_300_000,
			AnnualProfit:               780_000,
			CostPerProject:             4000,
			TotalProjectsPerYear:       130,
			HoursNeededPerYear:         10400,
			ConcurrentProjects:         5,
			TotalDeveloperHoursPerWeek: 200,
			DevelopersNeeded:           5,
			WeeklyDeveloperCost:        10000,
			TimeToMillionProfitYears:   &years,
		},
		Funnel: []domain.FunnelStage{
			{Stage: domain.StageImpressions, Value: 10000},
			{Stage: domain.StageClicks, Value: 500},
			{Stage: domain.StageLeads, Value: 50},
			{Stage: domain.StageWarmLeads, Value: 10},
			{Stage: domain.StageClients, Value: 2.5},
		},
		ProfitSweep: []domain.ProfitPoint{
			{Developers: 1, AnnualProfit: 3000},
			{Developers: 2, AnnualProfit: 6000},
		},
		Timeline: []domain.TimelinePoint{
			{Week: 1, OngoingProjects: 2.5},
			{Week: 2, OngoingProjects: 5},
		},
	}
}

func TestBuildReport(t *testing.T) {
	sections := BuildReport(sampleProjection())
	require.Len(t, sections, 4)

	tests := []struct {
		name    string
		section int
		title   string
		values  map[string]string
	}{
		{
			name:    "Funil de vendas",
			section: 0,
			title:   SectionSalesFunnel,
			values: map[string]string{
				"Leads per Week":      "50.00",
				"Warm Leads per Week": "10.00",
				"Clients per Week":    "2.50",
			},
		},
		{
			name:    "Financeiro",
			section: 1,
			title:   SectionFinancial,
			values: map[string]string{
				"Weekly Revenue": "$25,000.00",
				"Annual Revenue": "$1,300,000.00",
				"Annual Profit":  "$780,000.00",
			},
		},
		{
			name:    "Operacional",
			section: 2,
			title:   SectionOperational,
			values: map[string]string{
				"Total Projects per Year":               "130.00",
				"Concurrent Projects":                   "5.00",
				"Total Developer Hours Needed per Week": "200.00",
				"Developers Needed":                     "5.00",
				"Cost per Project":                      "$4,000.00",
				"Weekly Developer Cost":                 "$10,000.00",
			},
		},
		{
			name:    "Tempo até o primeiro milhão",
			section: 3,
			title:   SectionVisualizations,
			values: map[string]string{
				TimeToMillionLabel: "1.28 years",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section := sections[tt.section]
			assert.Equal(t, tt.title, section.Title)
			require.Len(t, section.Lines, len(tt.values))

			for _, line := range section.Lines {
				expected, ok := tt.values[line.Label]
				require.True(t, ok, "linha inesperada: %s", line.Label)
				assert.Equal(t, expected, line.Value)
				assert.NotNil(t, line.RawValue)
				assert.Empty(t, line.Message)
			}
		})
	}
}

func TestBuildReport_NoProfit(t *testing.T) {
	p := sampleProjection()
	p.Metrics.AnnualProfit = 0
	p.Metrics.TimeToMillionProfitYears = nil

	sections := BuildReport(p)
	require.Len(t, sections, 4)

	line := sections[3].Lines[0]
	assert.Equal(t, TimeToMillionLabel, line.Label)
	assert.Equal(t, NoProfitMessage, line.Message)
	assert.Empty(t, line.Value)
	assert.Nil(t, line.RawValue)
}

func TestBuildReport_Nil(t *testing.T) {
	assert.Nil(t, BuildReport(nil))
	assert.Nil(t, BuildCharts(nil))
}

func TestBuildCharts(t *testing.T) {
	charts := BuildCharts(sampleProjection())
	require.Len(t, charts, 3)

	funnel := charts[0]
	assert.Equal(t, ChartFunnel, funnel.Title)
	assert.Equal(t, "bar", funnel.ChartType)
	assert.Equal(t, "log", funnel.YScale)
	require.Len(t, funnel.Series, 1)
	require.Len(t, funnel.Series[0].Data, 5)
	assert.Equal(t, domain.StageImpressions, funnel.Series[0].Data[0].Label)
	assert.Equal(t, 2.5, funnel.Series[0].Data[4].Value)

	sweep := charts[1]
	assert.Equal(t, ChartProfitSweep, sweep.Title)
	assert.Equal(t, "line", sweep.ChartType)
	assert.True(t, sweep.ShowLegend)
	require.Len(t, sweep.Series[0].Data, 2)
	assert.Equal(t, "2", sweep.Series[0].Data[1].Label)
	assert.Equal(t, 6000.0, sweep.Series[0].Data[1].Value)
	require.Len(t, sweep.References, 2)
	assert.Equal(t, "x", sweep.References[0].Axis)
	assert.Equal(t, 5.0, sweep.References[0].Value)
	assert.Equal(t, "y", sweep.References[1].Axis)
	assert.Equal(t, 780_000.0, sweep.References[1].Value)

	timeline := charts[2]
	assert.Equal(t, ChartTimeline, timeline.Title)
	assert.Equal(t, "Weeks", timeline.XAxis)
	require.Len(t, timeline.Series[0].Data, 2)
	assert.Equal(t, "1", timeline.Series[0].Data[0].Label)
	assert.Equal(t, 5.0, timeline.Series[0].Data[1].Value)
}
