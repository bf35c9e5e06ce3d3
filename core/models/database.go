// Package models holds the hospital data: users, patients and the
// attention episodes recorded by doctors.
package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Role is what a logged-in user may do.
type Role string

const (
	RoleNone   Role = ""
	RoleTriage Role = "Triage"
	RoleDoctor Role = "Doctor"
)

var (
	ErrUnknownUser    = errors.New("unknown user")
	ErrWrongPassword  = errors.New("wrong password")
	ErrUnknownPatient = errors.New("unknown patient")
	ErrDuplicateSNS   = errors.New("SNS code already registered")
	ErrPriorityRange  = fmt.Errorf("priority must be between %d and %d", MinPriority, MaxPriority)
)

// Database is the whole persisted state of the application.
type Database struct {
	CurrentRole Role               `json:"current_role"`
	Users       map[string]string  `json:"users"`
	Patients    map[int64]*Patient `json:"patients"`
	Episodes    []Episode          `json:"episodes"`
	LastSession *Session           `json:"last_session,omitempty"`
}

// NewDatabase returns a database seeded with the stock users and patients.
func NewDatabase() *Database {
	db := &Database{}
	db.Normalize()
	seedUsers(db)
	seedPatients(db)
	return db
}

// Normalize allocates the maps a decoded database may lack.
func (db *Database) Normalize() {
	if db.Users == nil {
		db.Users = make(map[string]string)
	}
	if db.Patients == nil {
		db.Patients = make(map[int64]*Patient)
	}
}

// Authenticate checks the credentials and returns the role of the user.
// User names are case-insensitive.
func (db *Database) Authenticate(user, password string) (Role, error) {
	for name, pass := range db.Users {
		if !strings.EqualFold(name, strings.TrimSpace(user)) {
			continue
		}
		if pass != password {
			return RoleNone, fmt.Errorf("Authenticate: %s: %w", name, ErrWrongPassword)
		}
		return Role(name), nil
	}
	return RoleNone, fmt.Errorf("Authenticate: %q: %w", user, ErrUnknownUser)
}

// AddPatient registers p under its SNS code.
func (db *Database) AddPatient(p *Patient) error {
	code := p.General.SNSCode
	if code <= 0 {
		return fmt.Errorf("AddPatient: invalid SNS code %d", code)
	}
	if _, ok := db.Patients[code]; ok {
		return fmt.Errorf("AddPatient: %d: %w", code, ErrDuplicateSNS)
	}
	db.Patients[code] = p
	return nil
}

func (db *Database) Patient(code int64) (*Patient, bool) {
	p, ok := db.Patients[code]
	return p, ok
}

// SortedPatients returns every patient ordered by SNS code.
func (db *Database) SortedPatients() []*Patient {
	out := make([]*Patient, 0, len(db.Patients))
	for _, p := range db.Patients {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].General.SNSCode < out[j].General.SNSCode
	})
	return out
}

// WaitingPatients returns the patients in the waiting room, most urgent
// first.
func (db *Database) WaitingPatients() []*Patient {
	var out []*Patient
	for _, p := range db.SortedPatients() {
		if p.General.State == StateWaiting {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Clinical.Priority > out[j].Clinical.Priority
	})
	return out
}

// SetPriority records the triage priority and sends the patient to the
// waiting room.
func (db *Database) SetPriority(code int64, priority int) error {
	if priority < MinPriority || priority > MaxPriority {
		return fmt.Errorf("SetPriority: %d: %w", priority, ErrPriorityRange)
	}
	p, ok := db.Patients[code]
	if !ok {
		return fmt.Errorf("SetPriority: %d: %w", code, ErrUnknownPatient)
	}
	p.Clinical.Priority = priority
	if p.General.State == StateRegistered || p.General.State == StateDischarged {
		p.General.State = StateWaiting
	}
	return nil
}

// StartAttention admits a patient and records the episode.
func (db *Database) StartAttention(code int64, doctor, sessionID string) (Episode, error) {
	p, ok := db.Patients[code]
	if !ok {
		return Episode{}, fmt.Errorf("StartAttention: %d: %w", code, ErrUnknownPatient)
	}
	p.General.State = StateAdmitted
	if strings.TrimSpace(p.Clinical.AssignedDoctor) == "" {
		p.Clinical.AssignedDoctor = doctor
	}
	ep := newEpisode(p, doctor, sessionID)
	db.Episodes = append(db.Episodes, ep)
	return ep, nil
}

// EpisodesOf returns the episodes of a patient, oldest first.
func (db *Database) EpisodesOf(code int64) []Episode {
	var out []Episode
	for _, ep := range db.Episodes {
		if ep.SNSCode == code {
			out = append(out, ep)
		}
	}
	return out
}
