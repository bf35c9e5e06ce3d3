package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is one login, from the login dialog to the role menu closing.
type Session struct {
	ID      string    `json:"id"`
	User    string    `json:"user"`
	Role    Role      `json:"role"`
	Started time.Time `json:"started"`
	Ended   time.Time `json:"ended,omitempty"`
}

func NewSession(user string, role Role) *Session {
	return &Session{
		ID:      uuid.NewString(),
		User:    user,
		Role:    role,
		Started: time.Now().UTC(),
	}
}

// End stamps the session as finished. It is a no-op the second time.
func (s *Session) End() {
	if s.Ended.IsZero() {
		s.Ended = time.Now().UTC()
	}
}

// Episode is one attention of a patient by a doctor.
type Episode struct {
	ID        string    `json:"id"`
	SNSCode   int64     `json:"sns_code"`
	Doctor    string    `json:"doctor"`
	SessionID string    `json:"session_id"`
	Started   time.Time `json:"started"`
	Priority  int       `json:"priority"`
}

func newEpisode(p *Patient, doctor, sessionID string) Episode {
	return Episode{
		ID:        uuid.NewString(),
		SNSCode:   p.General.SNSCode,
		Doctor:    doctor,
		SessionID: sessionID,
		Started:   time.Now().UTC(),
		Priority:  p.Clinical.Priority,
	}
}
