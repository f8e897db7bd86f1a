package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidAssumptions indica que as premissas informadas não permitem o cálculo
var ErrInvalidAssumptions = errors.New("invalid assumptions")

// Assumptions são as premissas já normalizadas usadas pelo motor de cálculo.
// Todas as taxas estão em frações (0..1), nunca em porcentagem.
type Assumptions struct {
	ImpressionsPerWeek     float64 `json:"impressions_per_week"`
	ClickThroughRate       float64 `json:"click_through_rate"`
	LeadConversionRate     float64 `json:"lead_conversion_rate"`
	WarmLeadConversionRate float64 `json:"warm_lead_conversion_rate"`
	SalesConversionRate    float64 `json:"sales_conversion_rate"`
	AverageProjectPrice    float64 `json:"average_project_price"`
	ProfitMargin           float64 `json:"profit_margin"`
	DeveloperCostPerHour   float64 `json:"developer_cost_per_hour"`
	HoursPerProject        float64 `json:"hours_per_project"`
	ProjectDurationWeeks   int     `json:"project_duration_weeks"`
	DeveloperHoursPerWeek  float64 `json:"developer_hours_per_week"`
}

// AssumptionsInput é o formato recebido da camada de apresentação,
// com as taxas em porcentagem (0..100) como nos sliders da interface
type AssumptionsInput struct {
	ImpressionsPerWeek        float64 `json:"impressions_per_week" yaml:"impressions_per_week" mapstructure:"impressions_per_week"`
	CTRPercent                float64 `json:"ctr_percent" yaml:"ctr_percent" mapstructure:"ctr_percent"`
	LeadConversionPercent     float64 `json:"lead_conversion_percent" yaml:"lead_conversion_percent" mapstructure:"lead_conversion_percent"`
	WarmLeadConversionPercent float64 `json:"warm_lead_conversion_percent" yaml:"warm_lead_conversion_percent" mapstructure:"warm_lead_conversion_percent"`
	SalesConversionPercent    float64 `json:"sales_conversion_percent" yaml:"sales_conversion_percent" mapstructure:"sales_conversion_percent"`
	AverageProjectPrice       float64 `json:"average_project_price" yaml:"average_project_price" mapstructure:"average_project_price"`
	ProfitMarginPercent       float64 `json:"profit_margin_percent" yaml:"profit_margin_percent" mapstructure:"profit_margin_percent"`
	DeveloperCostPerHour      float64 `json:"developer_cost_per_hour" yaml:"developer_cost_per_hour" mapstructure:"developer_cost_per_hour"`
	HoursPerProject           float64 `json:"hours_per_project" yaml:"hours_per_project" mapstructure:"hours_per_project"`
	ProjectDurationWeeks      int     `json:"project_duration_weeks" yaml:"project_duration_weeks" mapstructure:"project_duration_weeks"`
	DeveloperHoursPerWeek     float64 `json:"developer_hours_per_week" yaml:"developer_hours_per_week" mapstructure:"developer_hours_per_week"`
}

// DefaultAssumptionsInput retorna os valores iniciais da planilha do modelo financeiro
func DefaultAssumptionsInput() AssumptionsInput {
	return AssumptionsInput{
		ImpressionsPerWeek:        10000,
		CTRPercent:                5,
		LeadConversionPercent:     10,
		WarmLeadConversionPercent: 20,
		SalesConversionPercent:    25,
		AverageProjectPrice:       10000,
		ProfitMarginPercent:       60,
		DeveloperCostPerHour:      50,
		HoursPerProject:           80,
		ProjectDurationWeeks:      2,
		DeveloperHoursPerWeek:     40,
	}
}

// Normalize converte as porcentagens em frações. É o único ponto de conversão
// entre a camada de apresentação e o motor de cálculo.
func (in AssumptionsInput) Normalize() (Assumptions, error) {
	percents := []struct {
		field string
		value float64
	}{
		{"ctr_percent", in.CTRPercent},
		{"lead_conversion_percent", in.LeadConversionPercent},
		{"warm_lead_conversion_percent", in.WarmLeadConversionPercent},
		{"sales_conversion_percent", in.SalesConversionPercent},
		{"profit_margin_percent", in.ProfitMarginPercent},
	}

	for _, p := range percents {
		if math.IsNaN(p.value) || p.value < 0 || p.value > 100 {
			return Assumptions{}, fmt.Errorf("%w: %s must be between 0 and 100, got %v", ErrInvalidAssumptions, p.field, p.value)
		}
	}

	a := Assumptions{
		ImpressionsPerWeek:     in.ImpressionsPerWeek,
		ClickThroughRate:       in.CTRPercent / 100,
		LeadConversionRate:     in.LeadConversionPercent / 100,
		WarmLeadConversionRate: in.WarmLeadConversionPercent / 100,
		SalesConversionRate:    in.SalesConversionPercent / 100,
		AverageProjectPrice:    in.AverageProjectPrice,
		ProfitMargin:           in.ProfitMarginPercent / 100,
		DeveloperCostPerHour:   in.DeveloperCostPerHour,
		HoursPerProject:        in.HoursPerProject,
		ProjectDurationWeeks:   in.ProjectDurationWeeks,
		DeveloperHoursPerWeek:  in.DeveloperHoursPerWeek,
	}

	if err := a.Validate(); err != nil {
		return Assumptions{}, err
	}

	return a, nil
}

// Validate rejeita premissas que levariam a divisão por zero ou valores sem sentido.
// HoursPerProject igual a zero é aceito: a capacidade passa a ser ilimitada.
func (a Assumptions) Validate() error {
	nonNegative := []struct {
		field string
		value float64
	}{
		{"impressions_per_week", a.ImpressionsPerWeek},
		{"average_project_price", a.AverageProjectPrice},
		{"developer_cost_per_hour", a.DeveloperCostPerHour},
		{"hours_per_project", a.HoursPerProject},
		{"developer_hours_per_week", a.DeveloperHoursPerWeek},
	}

	for _, v := range nonNegative {
		if !isFinite(v.value) || v.value < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidAssumptions, v.field, v.value)
		}
	}

	if a.ImpressionsPerWeek != math.Trunc(a.ImpressionsPerWeek) {
		return fmt.Errorf("%w: impressions_per_week must be a whole number, got %v", ErrInvalidAssumptions, a.ImpressionsPerWeek)
	}

	fractions := []struct {
		field string
		value float64
	}{
		{"click_through_rate", a.ClickThroughRate},
		{"lead_conversion_rate", a.LeadConversionRate},
		{"warm_lead_conversion_rate", a.WarmLeadConversionRate},
		{"sales_conversion_rate", a.SalesConversionRate},
		{"profit_margin", a.ProfitMargin},
	}

	for _, f := range fractions {
		if math.IsNaN(f.value) || f.value < 0 || f.value > 1 {
			return fmt.Errorf("%w: %s must be between 0 and 1, got %v", ErrInvalidAssumptions, f.field, f.value)
		}
	}

	if a.ProjectDurationWeeks < 1 {
		return fmt.Errorf("%w: project_duration_weeks must be at least 1, got %d", ErrInvalidAssumptions, a.ProjectDurationWeeks)
	}

	if a.DeveloperHoursPerWeek == 0 {
		return fmt.Errorf("%w: developer_hours_per_week must be greater than zero", ErrInvalidAssumptions)
	}

	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
