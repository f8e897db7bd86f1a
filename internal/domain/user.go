package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Roles aceitos nos tokens emitidos pela API
const (
	RoleAdmin   = "admin"
	RoleAnalyst = "analyst"
	RoleViewer  = "viewer"
)

// Client representa quem consome a API (não há cadastro de usuários, apenas chaves)
type Client struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	KeyHash string `json:"-"` // Hash bcrypt da chave de API
}

type Claims struct {
	ClientName string `json:"client_name"`
	ClientRole string `json:"client_role"`
	jwt.RegisteredClaims
}
