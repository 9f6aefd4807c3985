package services

import (
	"context"
	"time"

	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	portssvc "github.com/ramidarshan07/wealthtrack/internal/core/ports/services"
	"github.com/ramidarshan07/wealthtrack/internal/platform/config"
	"github.com/ramidarshan07/wealthtrack/internal/utils"
)

// tokenService issues the JWT access tokens the API hands out on login.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.ID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
