package services

import (
	"sync"

	"hospital-desk/core/models"
)

// StateService tracks who is logged in and which patient is being attended.
type StateService struct {
	mu            sync.RWMutex
	session       *models.Session
	activePatient int64
}

func NewStateService() *StateService {
	return &StateService{}
}

// StartSession opens a session for user, ending any previous one.
func (s *StateService) StartSession(user string, role models.Role) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		s.session.End()
	}
	s.session = models.NewSession(user, role)
	s.activePatient = 0
	return s.session
}

// Session returns the open session, or nil.
func (s *StateService) Session() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Role returns the role of the open session.
func (s *StateService) Role() models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return models.RoleNone
	}
	return s.session.Role
}

// EndSession closes the open session and returns it, or nil if none was open.
func (s *StateService) EndSession() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	ended := s.session
	if ended != nil {
		ended.End()
	}
	s.session = nil
	s.activePatient = 0
	return ended
}

// SetActivePatient records the SNS code of the patient under attention.
// Zero clears it.
func (s *StateService) SetActivePatient(code int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activePatient = code
}

func (s *StateService) ActivePatient() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activePatient, s.activePatient != 0
}
