package repository

import (
	"time"

	authdomain "mba-copilot-backend/internal/auth/domain"
)

// UserRepository defines the interface for user and session data access
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	Update(user *authdomain.User) error

	SaveRefreshToken(token *authdomain.RefreshToken) error
	FindRefreshToken(token string) (*authdomain.RefreshToken, error)
	DeleteRefreshToken(token string) error

	// DeleteExpiredRefreshTokens removes all refresh tokens that expired
	// before the given time and returns how many were removed
	DeleteExpiredRefreshTokens(before time.Time) (int64, error)
}
