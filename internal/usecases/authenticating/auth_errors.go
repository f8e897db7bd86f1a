package authenticating

import (
	"errors"
	"fmt"
)

// Tipos de erros de autenticação personalizados
var (
	ErrInvalidCredentials  = errors.New("credenciais inválidas")
	ErrInvalidToken        = errors.New("token inválido")
	ErrExpiredToken        = errors.New("token expirado")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")

	// Erros de configuração das chaves de API
	ErrInvalidAPIKeyEntry = errors.New("entrada de chave de API inválida")
	ErrMissingSecret      = errors.New("segredo de assinatura não configurado")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	ClientName string // Cliente envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError cria um novo AuthError
func NewAuthError(err error, code string, details string) *AuthError {
	return &AuthError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewClientAuthError cria um novo AuthError com o nome do cliente
func NewClientAuthError(err error, code string, clientName string, details string) *AuthError {
	return &AuthError{
		Err:        err,
		Code:       code,
		ClientName: clientName,
		Details:    details,
	}
}
