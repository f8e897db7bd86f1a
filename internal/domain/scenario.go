package domain

// Scenario é um conjunto nomeado de premissas pré-definidas
type Scenario struct {
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description"`
	Assumptions AssumptionsInput `json:"assumptions" yaml:"assumptions"`
}
