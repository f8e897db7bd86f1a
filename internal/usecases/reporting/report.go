// Package reporting transforma uma projeção em blocos de texto e gráficos
// prontos para a camada de apresentação
package reporting

import (
	"fmt"

	"github.com/vfg2006/agency-model-api/internal/domain"
	"github.com/vfg2006/agency-model-api/pkg/utils"
)

// Títulos das seções do relatório
const (
	SectionSalesFunnel    = "Sales Funnel Metrics"
	SectionFinancial      = "Financial Metrics"
	SectionOperational    = "Operational Metrics"
	SectionVisualizations = "Visualizations"
)

// TimeToMillionLabel é o rótulo do indicador de tempo até o primeiro milhão de lucro
const TimeToMillionLabel = "Time to Reach $1 Million Profit"

// NoProfitMessage é exibida quando o lucro anual não permite calcular o tempo até o primeiro milhão
const NoProfitMessage = "Annual profit is zero or negative; cannot reach $1 million profit with current inputs."

// BuildReport monta as seções de texto da projeção
func BuildReport(p *domain.Projection) []domain.ReportSection {
	if p == nil {
		return nil
	}

	m := p.Metrics

	return []domain.ReportSection{
		{
			Title: SectionSalesFunnel,
			Lines: []domain.ReportLine{
				numberLine("Leads per Week", m.LeadsPerWeek),
				numberLine("Warm Leads per Week", m.WarmLeadsPerWeek),
				numberLine("Clients per Week", m.ClientsPerWeek),
			},
		},
		{
			Title: SectionFinancial,
			Lines: []domain.ReportLine{
				currencyLine("Weekly Revenue", m.WeeklyRevenue),
				currencyLine("Annual Revenue", m.AnnualRevenue),
				currencyLine("Annual Profit", m.AnnualProfit),
			},
		},
		{
			Title: SectionOperational,
			Lines: []domain.ReportLine{
				numberLine("Total Projects per Year", m.TotalProjectsPerYear),
				numberLine("Concurrent Projects", m.ConcurrentProjects),
				numberLine("Total Developer Hours Needed per Week", m.TotalDeveloperHoursPerWeek),
				numberLine("Developers Needed", m.DevelopersNeeded),
				currencyLine("Cost per Project", m.CostPerProject),
				currencyLine("Weekly Developer Cost", m.WeeklyDeveloperCost),
			},
		},
		{
			Title: SectionVisualizations,
			Lines: []domain.ReportLine{timeToMillionLine(&m)},
		},
	}
}

func numberLine(label string, value float64) domain.ReportLine {
	raw := value
	return domain.ReportLine{
		Label:    label,
		Value:    utils.FormatNumber(value),
		RawValue: &raw,
	}
}

func currencyLine(label string, value float64) domain.ReportLine {
	raw := value
	return domain.ReportLine{
		Label:    label,
		Value:    utils.FormatCurrency(value),
		RawValue: &raw,
	}
}

// timeToMillionLine nunca exibe infinito: sem lucro o indicador vira uma mensagem
func timeToMillionLine(m *domain.DerivedMetrics) domain.ReportLine {
	if !m.HasTimeToMillion() {
		return domain.ReportLine{
			Label:   TimeToMillionLabel,
			Message: NoProfitMessage,
		}
	}

	years := *m.TimeToMillionProfitYears
	return domain.ReportLine{
		Label:    TimeToMillionLabel,
		Value:    fmt.Sprintf("%s years", utils.FormatNumber(years)),
		RawValue: &years,
	}
}
