package models

import (
	"time"

	"nutricare-service/internal/pkg/constvars"
)

type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsAdmin() bool {
	return s.Role == constvars.RoleAdmin
}
