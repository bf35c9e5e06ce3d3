package services

import (
	"testing"

	"hospital-desk/core/models"
)

func TestStateService_Sessions(t *testing.T) {
	s := NewStateService()
	if s.Role() != models.RoleNone {
		t.Errorf("Expected no role before login, got %q", s.Role())
	}

	first := s.StartSession("Triage", models.RoleTriage)
	if s.Role() != models.RoleTriage {
		t.Errorf("Expected role Triage, got %q", s.Role())
	}
	s.SetActivePatient(900000001)

	second := s.StartSession("Doctor", models.RoleDoctor)
	if first.Ended.IsZero() {
		t.Error("Expected previous session to be ended")
	}
	if second.ID == first.ID {
		t.Error("Expected a new session ID")
	}
	if _, ok := s.ActivePatient(); ok {
		t.Error("Expected active patient to be cleared by a new session")
	}

	ended := s.EndSession()
	if ended != second || ended.Ended.IsZero() {
		t.Error("Expected EndSession to end and return the open session")
	}
	if s.Session() != nil {
		t.Error("Expected no session after EndSession")
	}
	if s.EndSession() != nil {
		t.Error("Expected nil when no session is open")
	}
}

func TestStateService_ActivePatient(t *testing.T) {
	s := NewStateService()
	s.SetActivePatient(900000003)
	if code, ok := s.ActivePatient(); !ok || code != 900000003 {
		t.Errorf("Expected active patient 900000003, got %d (%v)", code, ok)
	}
	s.SetActivePatient(0)
	if _, ok := s.ActivePatient(); ok {
		t.Error("Expected zero to clear the active patient")
	}
}
