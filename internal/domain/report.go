package domain

// ReportSection agrupa as linhas de texto exibidas num bloco de resultados
type ReportSection struct {
	Title string       `json:"title"`
	Lines []ReportLine `json:"lines"`
}

// ReportLine é um indicador já formatado para exibição
type ReportLine struct {
	Label    string   `json:"label"`
	Value    string   `json:"value,omitempty"`
	RawValue *float64 `json:"raw_value,omitempty"`
	Message  string   `json:"message,omitempty"` // Usado quando o indicador não pode ser calculado
}

// ChartConfig descreve um gráfico pronto para ser renderizado pelo frontend
type ChartConfig struct {
	ChartType  string          `json:"chart_type"` // "bar" ou "line"
	Title      string          `json:"title"`
	XAxis      string          `json:"x_axis,omitempty"`
	YAxis      string          `json:"y_axis,omitempty"`
	YScale     string          `json:"y_scale,omitempty"` // "linear" ou "log"
	Series     []ChartSeries   `json:"series"`
	References []ReferenceLine `json:"references,omitempty"`
	ShowLegend bool            `json:"show_legend"`
}

// ChartSeries é uma série de dados do gráfico
type ChartSeries struct {
	Name string       `json:"name"`
	Data []ChartPoint `json:"data"`
}

// ChartPoint é um ponto da série
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ReferenceLine é uma linha tracejada de referência no gráfico
type ReferenceLine struct {
	Axis  string  `json:"axis"` // "x" ou "y"
	Value float64 `json:"value"`
	Label string  `json:"label"`
	Color string  `json:"color,omitempty"`
}
