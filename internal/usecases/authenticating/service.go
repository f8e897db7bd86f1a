package authenticating

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-model-api/internal/config"
	"github.com/vfg2006/agency-model-api/internal/domain"
	"github.com/vfg2006/agency-model-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Authenticator interface {
	Enabled() bool
	Login(apiKey string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	clients  []domain.Client
	secret   []byte
	tokenTTL time.Duration
	enabled  bool
	now      func() time.Time
}

func NewService(cfg *config.Config) (*Service, error) {
	s := &Service{
		secret:   []byte(cfg.Auth.Secret),
		tokenTTL: cfg.Auth.TokenTTL,
		enabled:  cfg.Auth.Enabled,
		now:      time.Now,
	}

	if !s.enabled {
		logrus.Warn("Autenticação desabilitada por configuração")
		return s, nil
	}

	if cfg.Auth.Secret == "" {
		return nil, ErrMissingSecret
	}

	clients, err := ParseClients(cfg.Auth.APIKeys)
	if err != nil {
		return nil, err
	}
	s.clients = clients

	logrus.WithField("clients", len(clients)).Info("Chaves de API carregadas")

	return s, nil
}

// ParseClients lê entradas no formato nome:role:hashBcrypt
func ParseClients(entries []string) ([]domain.Client, error) {
	clients := make([]domain.Client, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
			return nil, errors.Wrapf(ErrInvalidAPIKeyEntry, "esperado nome:role:hash, recebido %q", maskEntry(entry))
		}

		role := parts[1]
		if role != domain.RoleAdmin && role != domain.RoleAnalyst && role != domain.RoleViewer {
			return nil, errors.Wrapf(ErrInvalidAPIKeyEntry, "role desconhecida %q para o cliente %s", role, parts[0])
		}

		clients = append(clients, domain.Client{
			Name:    parts[0],
			Role:    role,
			KeyHash: parts[2],
		})
	}

	return clients, nil
}

func maskEntry(entry string) string {
	name, _, _ := strings.Cut(entry, ":")
	return name + ":***"
}

func (s *Service) Enabled() bool {
	return s.enabled
}

// Login troca uma chave de API por um token JWT
func (s *Service) Login(apiKey string) (string, error) {
	if apiKey == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "A chave de API é obrigatória")
	}

	for _, client := range s.clients {
		if err := bcrypt.CompareHashAndPassword([]byte(client.KeyHash), []byte(apiKey)); err != nil {
			continue
		}

		token, err := s.generateJWT(client)
		if err != nil {
			return "", NewClientAuthError(err, apiErrors.ErrInternalServer, client.Name, "Erro ao gerar token de autenticação")
		}

		logrus.WithField("client", client.Name).Info("Token emitido")
		return token, nil
	}

	return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Chave de API inválida")
}

func (s *Service) generateJWT(client domain.Client) (string, error) {
	now := s.now()
	claims := &domain.Claims{
		ClientName: client.Name,
		ClientRole: client.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   client.Name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
}
