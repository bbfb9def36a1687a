package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vfg2006/ads-insights-api/infrastructure/repository"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-api/pkg/log"
)

const tokenTTL = 24 * time.Hour

type Authenticator interface {
	Login(ctx context.Context, accessToken string) (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	clientRepo repository.ClientRepository
	cfg        *config.Config
	now        func() time.Time
}

var _ Authenticator = (*Service)(nil)

func NewService(clientRepo repository.ClientRepository, cfg *config.Config) *Service {
	return &Service{
		clientRepo: clientRepo,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Login troca o access token do cliente (tenant) por um JWT de sessão
func (s *Service) Login(ctx context.Context, accessToken string) (*domain.LoginResponse, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Access token é obrigatório")
	}

	client, err := s.clientRepo.GetByAccessToken(ctx, accessToken)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("auth: erro ao consultar cliente")
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar cliente no banco de dados")
	}

	if client == nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Access token não reconhecido")
	}

	if !client.IsActive() {
		return nil, NewClientAuthError(ErrClientDisabled, apiErrors.ErrUserDisabled, client.ID, "Cliente desativado")
	}

	expiresAt := s.now().Add(tokenTTL)

	token, err := generateJWT(client, s.cfg.Auth.Secret, expiresAt)
	if err != nil {
		return nil, NewClientAuthError(err, apiErrors.ErrInternalServer, client.ID, "Erro ao gerar token de autenticação")
	}

	log.ForContext(ctx).WithField("client_id", client.ID).Info("auth: login realizado")

	return &domain.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Client:    client,
	}, nil
}

func generateJWT(client *domain.Client, secretKey string, expiresAt time.Time) (string, error) {
	claims := domain.Claims{
		ClientID:   client.ID,
		ClientName: client.Name,
		ClientSlug: client.Slug,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   client.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.ClientID == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token sem cliente")
	}

	return claims, nil
}
