package scheduler

import (
	"log"
	"time"

	"mba-copilot-backend/internal/auth/repository"
)

// SessionJanitor periodically deletes expired refresh tokens so the sessions
// table does not grow without bound.
type SessionJanitor struct {
	userRepo repository.UserRepository
	interval time.Duration
	stopChan chan struct{}
}

// NewSessionJanitor creates a new janitor with an hourly sweep
func NewSessionJanitor(userRepo repository.UserRepository) *SessionJanitor {
	return &SessionJanitor{
		userRepo: userRepo,
		interval: 1 * time.Hour,
		stopChan: make(chan struct{}),
	}
}

// Start begins the sweep loop
func (s *SessionJanitor) Start() {
	log.Printf("[SessionJanitor] Starting expired session sweep (interval: %s)", s.interval)

	go func() {
		// Run immediately on start
		s.sweep()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stopChan:
				log.Println("[SessionJanitor] Stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the janitor
func (s *SessionJanitor) Stop() {
	close(s.stopChan)
}

func (s *SessionJanitor) sweep() {
	removed, err := s.userRepo.DeleteExpiredRefreshTokens(time.Now())
	if err != nil {
		log.Printf("[SessionJanitor] Error deleting expired sessions: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("[SessionJanitor] Removed %d expired sessions", removed)
	}
}
