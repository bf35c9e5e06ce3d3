package models

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Triage priority bounds.
const (
	MinPriority = 0
	MaxPriority = 10
)

// State is where a patient is in the hospital workflow.
type State int

const (
	StateRegistered State = iota
	StateWaiting
	StateAdmitted
	StateDischarged
)

// States lists every state in workflow order.
func States() []State {
	return []State{StateRegistered, StateWaiting, StateAdmitted, StateDischarged}
}

func (s State) String() string {
	switch s {
	case StateRegistered:
		return "Registered"
	case StateWaiting:
		return "Waiting"
	case StateAdmitted:
		return "Admitted"
	case StateDischarged:
		return "Discharged"
	default:
		return "Unknown"
	}
}

// ParseState is the inverse of State.String.
func ParseState(s string) (State, error) {
	for _, st := range States() {
		if strings.EqualFold(st.String(), strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return StateRegistered, fmt.Errorf("ParseState: unknown state %q", s)
}

type Sex int

const (
	SexUnknown Sex = iota
	SexMale
	SexFemale
)

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	default:
		return "Unknown"
	}
}

// Sexes lists every value in display order.
func Sexes() []Sex {
	return []Sex{SexUnknown, SexMale, SexFemale}
}

// ParseSex maps a display string back to a Sex. Unknown strings are SexUnknown.
func ParseSex(s string) Sex {
	for _, v := range Sexes() {
		if strings.EqualFold(v.String(), strings.TrimSpace(s)) {
			return v
		}
	}
	return SexUnknown
}

// DNI is a national identity document: eight digits and a control letter.
type DNI struct {
	Digits int    `json:"digits"`
	Letter string `json:"letter"`
}

func (d DNI) IsZero() bool {
	return d.Digits == 0 && d.Letter == ""
}

func (d DNI) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d-%s", d.Digits, d.Letter)
}

// ParseDNI accepts "10000001-A" or "10000001A".
func ParseDNI(s string) (DNI, error) {
	s = strings.ToUpper(strings.TrimSpace(strings.ReplaceAll(s, "-", "")))
	if len(s) < 2 {
		return DNI{}, fmt.Errorf("ParseDNI: %q is too short", s)
	}
	letter := s[len(s)-1:]
	if !unicode.IsLetter(rune(letter[0])) {
		return DNI{}, fmt.Errorf("ParseDNI: %q has no control letter", s)
	}
	digits, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || digits <= 0 {
		return DNI{}, fmt.Errorf("ParseDNI: %q has invalid digits", s)
	}
	return DNI{Digits: digits, Letter: letter}, nil
}

// Birthdate is a calendar date; the zero value means unknown.
type Birthdate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (b Birthdate) IsZero() bool {
	return b == Birthdate{}
}

func (b Birthdate) String() string {
	if b.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%04d", b.Day, b.Month, b.Year)
}

// ParseBirthdate reads dd/mm/yyyy. An empty string is the zero Birthdate.
func ParseBirthdate(s string) (Birthdate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Birthdate{}, nil
	}
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Birthdate{}, fmt.Errorf("ParseBirthdate: %q is not dd/mm/yyyy", s)
	}
	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Birthdate{}, fmt.Errorf("ParseBirthdate: %q: %w", s, err)
		}
		vals[i] = v
	}
	b := Birthdate{Day: vals[0], Month: vals[1], Year: vals[2]}
	if b.Day < 1 || b.Day > 31 || b.Month < 1 || b.Month > 12 || b.Year < 1900 {
		return Birthdate{}, fmt.Errorf("ParseBirthdate: %q is out of range", s)
	}
	return b, nil
}

// GeneralData identifies a patient.
type GeneralData struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	DNI     DNI    `json:"dni"`
	SNSCode int64  `json:"sns_code"`
	State   State  `json:"state"`
}

type PersonalData struct {
	Birthdate Birthdate `json:"birthdate"`
	Sex       Sex       `json:"sex"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
}

type ClinicalData struct {
	AssignedDoctor string   `json:"assigned_doctor"`
	Medication     string   `json:"medication"`
	CPR            bool     `json:"cpr"`
	Allergies      []string `json:"allergies"`
	Priority       int      `json:"priority"`
}

// AllergiesByLine joins the allergies one per line.
func (c *ClinicalData) AllergiesByLine() string {
	return strings.Join(c.Allergies, "\n")
}

// SetAllergiesByLine splits text into allergies, dropping blank lines.
func (c *ClinicalData) SetAllergiesByLine(text string) {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	c.Allergies = out
}

type BankData struct {
	AccountNumber string `json:"account_number"`
	Insured       bool   `json:"insured"`
	Insurer       string `json:"insurer"`
}

// Patient is the full record shown in the patient record dialog.
type Patient struct {
	General  GeneralData  `json:"general"`
	Personal PersonalData `json:"personal"`
	Clinical ClinicalData `json:"clinical"`
	Bank     BankData     `json:"bank"`
}

func (p *Patient) FullName() string {
	return strings.TrimSpace(p.General.Name + " " + p.General.Surname)
}

// Clone returns a deep copy.
func (p *Patient) Clone() *Patient {
	c := *p
	c.Clinical.Allergies = append([]string(nil), p.Clinical.Allergies...)
	return &c
}

// PriorityLevel is the severity band of a triage priority.
type PriorityLevel string

const (
	LevelNormal   PriorityLevel = "normal"
	LevelMild     PriorityLevel = "mild"
	LevelModerate PriorityLevel = "moderate"
	LevelSevere   PriorityLevel = "severe"
	LevelCritical PriorityLevel = "critical"
	LevelOriginal PriorityLevel = "original"
)

// LevelForPriority maps a priority to its band. Values outside
// MinPriority..MaxPriority are LevelOriginal.
func LevelForPriority(p int) PriorityLevel {
	switch {
	case p < MinPriority || p > MaxPriority:
		return LevelOriginal
	case p <= 3:
		return LevelNormal
	case p <= 5:
		return LevelMild
	case p <= 7:
		return LevelModerate
	case p == 8:
		return LevelSevere
	default:
		return LevelCritical
	}
}
