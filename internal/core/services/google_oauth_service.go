package services

import (
	"context"
	"errors"
	"fmt"

	portssvc "github.com/ramidarshan07/wealthtrack/internal/core/ports/services"
	"github.com/ramidarshan07/wealthtrack/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// googleOAuthService wraps the Google side of the OAuth login flow: code
// exchange and ID token validation.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (s *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// ValidateIDToken validates a Google ID token and returns the verified user
// identity from its payload.
func (s *googleOAuthService) ValidateIDToken(ctx context.Context, idTokenString string) (name, email, subject string, err error) {
	if s.cfg.GoogleClientID == "" {
		return "", "", "", errors.New("google client ID is not configured in the application")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return "", "", "", fmt.Errorf("google ID token validation failed: %w", err)
	}

	name, _ = payload.Claims["name"].(string)
	email, _ = payload.Claims["email"].(string)
	return name, email, payload.Subject, nil
}
