package dto

import "github.com/ramidarshan07/wealthtrack/internal/core/domain"

// LoginRequest carries email/password credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest creates a new local user.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=80"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// ExchangeCodeRequest carries a Google OAuth authorization code.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// AuthResponse returns the bearer token plus basic profile fields the
// client persists locally.
type AuthResponse struct {
	Token string       `json:"token"`
	User  AuthUserInfo `json:"user"`
}

// AuthUserInfo is the subset of the profile returned on login/register.
type AuthUserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToAuthResponse builds the login/register payload.
func ToAuthResponse(token string, user *domain.User) AuthResponse {
	return AuthResponse{
		Token: token,
		User:  AuthUserInfo{Name: user.Name, Email: user.Email},
	}
}
