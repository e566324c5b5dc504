package usecase

import (
	authdomain "mba-copilot-backend/internal/auth/domain"
	authdto "mba-copilot-backend/internal/auth/dto"
)

// AuthUsecase defines the business logic for accounts and sessions
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error

	// ValidateToken resolves a bearer token to its user
	ValidateToken(tokenString string) (*authdomain.User, error)
}
