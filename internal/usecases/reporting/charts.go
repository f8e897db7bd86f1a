package reporting

import (
	"strconv"

	"github.com/vfg2006/agency-model-api/internal/domain"
	"github.com/vfg2006/agency-model-api/pkg/utils"
)

// Títulos dos gráficos gerados
const (
	ChartFunnel      = "Weekly Sales Funnel"
	ChartProfitSweep = "Annual Profit vs. Number of Developers"
	ChartTimeline    = "Cumulative Projects Over Time"
)

// BuildCharts monta os três gráficos da projeção, na ordem em que são exibidos
func BuildCharts(p *domain.Projection) []domain.ChartConfig {
	if p == nil {
		return nil
	}

	return []domain.ChartConfig{
		funnelChart(p.Funnel),
		profitSweepChart(p.ProfitSweep, p.Metrics),
		timelineChart(p.Timeline),
	}
}

// funnelChart usa escala logarítmica porque impressões e clientes diferem em ordens de grandeza
func funnelChart(funnel []domain.FunnelStage) domain.ChartConfig {
	points := make([]domain.ChartPoint, 0, len(funnel))
	for _, stage := range funnel {
		points = append(points, domain.ChartPoint{
			Label: stage.Stage,
			Value: utils.RoundWithTwoDecimalPlace(stage.Value),
		})
	}

	return domain.ChartConfig{
		ChartType: "bar",
		Title:     ChartFunnel,
		YAxis:     "Number of People (log scale)",
		YScale:    "log",
		Series:    []domain.ChartSeries{{Name: "Funnel", Data: points}},
	}
}

func profitSweepChart(sweep []domain.ProfitPoint, m domain.DerivedMetrics) domain.ChartConfig {
	points := make([]domain.ChartPoint, 0, len(sweep))
	for _, p := range sweep {
		points = append(points, domain.ChartPoint{
			Label: strconv.Itoa(p.Developers),
			Value: utils.RoundWithTwoDecimalPlace(p.AnnualProfit),
		})
	}

	return domain.ChartConfig{
		ChartType: "line",
		Title:     ChartProfitSweep,
		XAxis:     "Number of Developers",
		YAxis:     "Annual Profit ($)",
		YScale:    "linear",
		Series:    []domain.ChartSeries{{Name: "Annual Profit", Data: points}},
		References: []domain.ReferenceLine{
			{Axis: "x", Value: utils.RoundWithTwoDecimalPlace(m.DevelopersNeeded), Label: "Developers Needed", Color: "r"},
			{Axis: "y", Value: utils.RoundWithTwoDecimalPlace(m.AnnualProfit), Label: "Current Annual Profit", Color: "g"},
		},
		ShowLegend: true,
	}
}

func timelineChart(timeline []domain.TimelinePoint) domain.ChartConfig {
	points := make([]domain.ChartPoint, 0, len(timeline))
	for _, t := range timeline {
		points = append(points, domain.ChartPoint{
			Label: strconv.Itoa(t.Week),
			Value: utils.RoundWithTwoDecimalPlace(t.OngoingProjects),
		})
	}

	return domain.ChartConfig{
		ChartType: "line",
		Title:     ChartTimeline,
		XAxis:     "Weeks",
		YAxis:     "Cumulative Projects",
		YScale:    "linear",
		Series:    []domain.ChartSeries{{Name: "Cumulative Projects", Data: points}},
	}
}
