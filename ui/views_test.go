//go:build cgo

package ui

import (
	"testing"

	"hospital-desk/core/models"
)

func TestLoginView(t *testing.T) {
	ac := newTestController(t)
	v := NewLoginView(ac)
	bind(t, v)

	tests := []struct {
		user, password string
		valid          bool
		problem        string
	}{
		{"nobody", "", false, "Unknown user."},
		{"Triage", "secret", false, "Wrong password."},
		{"triage", "", true, ""},
	}
	for _, tt := range tests {
		v.SetCredentials(tt.user, tt.password)
		if got := v.ValidateThis(); got != tt.valid {
			t.Errorf("ValidateThis(%q, %q): expected %v, got %v", tt.user, tt.password, tt.valid, got)
		}
		if v.Problem() != tt.problem {
			t.Errorf("Expected problem %q, got %q", tt.problem, v.Problem())
		}
	}

	if err := v.SaveThis(); err != nil {
		t.Fatalf("SaveThis failed: %v", err)
	}
	if ac.Role() != models.RoleTriage {
		t.Errorf("Expected role Triage after save, got %q", ac.Role())
	}
	v.CleanThis()
	if v.password.Text != "" {
		t.Error("Expected CleanThis to clear the password")
	}
}

func TestTriageMenuView_SetPriority(t *testing.T) {
	ac := newTestController(t)
	if _, err := ac.Login("Triage", ""); err != nil {
		t.Fatal(err)
	}
	v := NewTriageMenuView(ac)
	bind(t, v)

	if len(v.list.rows) != 7 {
		t.Fatalf("Expected 7 patients listed, got %d", len(v.list.rows))
	}
	if !v.apply.Disabled() {
		t.Error("Expected Set priority to be disabled with no selection")
	}

	p := patient(t, ac, 900000001)
	v.list.choose(p)
	if v.Selected() != p || v.apply.Disabled() {
		t.Fatal("Expected the tapped patient to be selected")
	}
	v.SetPriority(9)
	v.applyPriority()

	if p.Clinical.Priority != 9 || p.General.State != models.StateWaiting {
		t.Errorf("Expected priority 9 and Waiting, got %d and %v", p.Clinical.Priority, p.General.State)
	}
	if v.Selected() != p {
		t.Error("Expected the selection to survive the reload")
	}
}

func TestDoctorMenuView(t *testing.T) {
	ac := newTestController(t)
	if _, err := ac.Login("Doctor", ""); err != nil {
		t.Fatal(err)
	}
	var attended *models.Patient
	v := NewDoctorMenuView(ac, func(p *models.Patient) { attended = p })
	bind(t, v)

	listed := v.Listed()
	if len(listed) != 1 || listed[0].General.SNSCode != 900000002 {
		t.Fatalf("Expected only the waiting patient, got %d patients", len(listed))
	}

	v.Search("feliza")
	listed = v.Listed()
	if len(listed) != 1 || listed[0].General.SNSCode != 900000007 {
		t.Fatalf("Expected the fuzzy search to find Felisa, got %d patients", len(listed))
	}

	v.list.choose(listed[0])
	v.Search("")
	if v.list.selected != nil || !v.start.Disabled() {
		t.Error("Expected the selection to be dropped once the patient is no longer listed")
	}

	maura := patient(t, ac, 900000002)
	v.list.choose(maura)
	if v.start.Disabled() || v.history.Disabled() {
		t.Error("Expected the actions to be enabled after selecting")
	}
	v.confirmAttention()

	if attended != maura {
		t.Fatal("Expected onAttend to receive the admitted patient")
	}
	if maura.General.State != models.StateAdmitted {
		t.Errorf("Expected Admitted, got %v", maura.General.State)
	}
	if len(v.Listed()) != 0 {
		t.Error("Expected the waiting room to be empty after admission")
	}
	if lines := v.historyLines(maura); len(lines) != 1 {
		t.Errorf("Expected one history line, got %v", lines)
	}
}

func TestGeneralDataView_Validation(t *testing.T) {
	p := &models.Patient{General: models.GeneralData{Name: "Ana", Surname: "Ruiz", SNSCode: 1}}
	v := NewGeneralDataView(p)

	tests := []struct {
		name, surname, dni string
		valid              bool
	}{
		{"Ana", "Ruiz", "", true},
		{"Ana", "Ruiz", "12345678-Z", true},
		{" ", "Ruiz", "", false},
		{"Ana", "", "", false},
		{"Ana", "Ruiz", "12345678", false},
	}
	for _, tt := range tests {
		v.Fill(tt.name, tt.surname, tt.dni)
		if got := v.ValidateThis(); got != tt.valid {
			t.Errorf("ValidateThis(%q, %q, %q): expected %v, got %v", tt.name, tt.surname, tt.dni, tt.valid, got)
		}
	}

	v.Fill("Ana", "Ruiz Gil", "12345678-Z")
	v.SetState(models.StateDischarged)
	if err := v.SaveThis(); err != nil {
		t.Fatalf("SaveThis failed: %v", err)
	}
	want := models.GeneralData{Name: "Ana", Surname: "Ruiz Gil", DNI: models.DNI{Digits: 12345678, Letter: "Z"}, SNSCode: 1, State: models.StateDischarged}
	if p.General != want {
		t.Errorf("Expected %+v, got %+v", want, p.General)
	}
}

func TestPersonalDataView_Validation(t *testing.T) {
	p := &models.Patient{}
	v := NewPersonalDataView(p)

	tests := []struct {
		birthdate, email, phone string
		valid                   bool
	}{
		{"", "", "", true},
		{"01/02/1990", "ana@example.org", "600111222", true},
		{"1990-02-01", "", "", false},
		{"", "ana.example.org", "", false},
		{"", "", "600-111", false},
	}
	for _, tt := range tests {
		v.Fill(tt.birthdate, tt.email, "", tt.phone)
		if got := v.ValidateThis(); got != tt.valid {
			t.Errorf("ValidateThis(%q, %q, %q): expected %v, got %v", tt.birthdate, tt.email, tt.phone, tt.valid, got)
		}
	}

	v.Fill("01/02/1990", "ana@example.org", "Calle Mayor 1", "600111222")
	if err := v.SaveThis(); err != nil {
		t.Fatal(err)
	}
	if p.Personal.Birthdate != (models.Birthdate{Day: 1, Month: 2, Year: 1990}) || p.Personal.Address != "Calle Mayor 1" {
		t.Errorf("Expected the personal data to be saved, got %+v", p.Personal)
	}
}

func TestBankDataView(t *testing.T) {
	p := &models.Patient{}
	v := NewBankDataView(p)
	if v.InsurerEnabled() {
		t.Error("Expected the insurer to be disabled for uninsured patients")
	}

	tests := []struct {
		account string
		insured bool
		insurer string
		valid   bool
	}{
		{"", false, "", false},
		{"ES12", false, "", false},
		{"123456", false, "", true},
		{"123456", true, "", false},
		{"123456", true, "MAPFRE", true},
	}
	for _, tt := range tests {
		v.Fill(tt.account, tt.insured, tt.insurer)
		if got := v.ValidateThis(); got != tt.valid {
			t.Errorf("ValidateThis(%q, %v, %q): expected %v, got %v", tt.account, tt.insured, tt.insurer, tt.valid, got)
		}
	}
	if !v.InsurerEnabled() {
		t.Error("Expected the insurer to be enabled once insured")
	}

	if err := v.SaveThis(); err != nil {
		t.Fatal(err)
	}
	if p.Bank != (models.BankData{AccountNumber: "123456", Insured: true, Insurer: "MAPFRE"}) {
		t.Errorf("Unexpected bank data %+v", p.Bank)
	}

	v.CleanThis()
	if v.account.Text != "123456" || v.Problem() != "" {
		t.Error("Expected CleanThis to reload the saved data")
	}
}

func TestClinicalDataView_SavesAllergies(t *testing.T) {
	p := &models.Patient{Clinical: models.ClinicalData{Priority: 4}}
	v := NewClinicalDataView(p)
	v.Fill("Dr. House", "Ibuprofen", "Penicillin\n\n  Pollen ", true)
	if err := v.SaveThis(); err != nil {
		t.Fatal(err)
	}
	c := p.Clinical
	if c.AssignedDoctor != "Dr. House" || !c.CPR || len(c.Allergies) != 2 || c.Allergies[1] != "Pollen" {
		t.Errorf("Unexpected clinical data %+v", c)
	}
	if c.Priority != 4 {
		t.Errorf("Expected the priority to be left to the summary, got %d", c.Priority)
	}
}
