package modeling

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de modelagem
var (
	ErrScenarioNotFound     = errors.New("scenario not found")
	ErrScenarioNameRequired = errors.New("scenario name is required")
	ErrLoadScenarios        = errors.New("error loading scenarios")
	ErrGenerateID           = errors.New("error generating projection ID")
)

// ModelError é um erro com contexto adicional para o cálculo de projeções
type ModelError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	Scenario string // Cenário envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ModelError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError cria um novo ModelError
func NewModelError(err error, code string, details string) *ModelError {
	return &ModelError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewScenarioError cria um novo ModelError com o nome do cenário
func NewScenarioError(err error, code string, scenario string, details string) *ModelError {
	return &ModelError{
		Err:      err,
		Code:     code,
		Scenario: scenario,
		Details:  details,
	}
}
