package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"hospital-desk/core/models"
	"hospital-desk/internal/constants"
	"hospital-desk/ui/components"
)

func stateNames() []string {
	states := models.States()
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.String()
	}
	return out
}

func sexNames() []string {
	sexes := models.Sexes()
	out := make([]string, len(sexes))
	for i, s := range sexes {
		out[i] = s.String()
	}
	return out
}

// PatientSummaryView is the first card of a patient record. Moving its
// priority slider is broadcast to the rest of the record.
type PatientSummaryView struct {
	viewBase
	patient *models.Patient

	name    *widget.Label
	ids     *widget.Label
	state   *widget.Label
	banner  *components.PriorityBanner
	slider  *widget.Slider
	content fyne.CanvasObject
}

func NewPatientSummaryView(p *models.Patient) *PatientSummaryView {
	v := &PatientSummaryView{
		viewBase: newViewBase(),
		patient:  p,
		name:     widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ids:      widget.NewLabel(""),
		state:    widget.NewLabel(""),
		banner:   components.NewPriorityBanner(p.Clinical.Priority),
		slider:   widget.NewSlider(models.MinPriority, models.MaxPriority),
	}
	v.slider.Step = 1
	v.load()
	v.slider.OnChanged = v.priorityChanged

	v.content = container.NewVBox(
		v.name,
		v.ids,
		container.NewHBox(widget.NewLabel("State:"), v.state),
		container.NewBorder(nil, nil, widget.NewLabel("Priority"), v.banner.Container(), v.slider),
	)
	return v
}

func (v *PatientSummaryView) CanvasObject() fyne.CanvasObject { return v.content }

// Priority is the value on the slider.
func (v *PatientSummaryView) Priority() int { return int(v.slider.Value) }

// StateText is what the state label reads.
func (v *PatientSummaryView) StateText() string { return v.state.Text }

// SetPriority moves the slider, as dragging it would.
func (v *PatientSummaryView) SetPriority(priority int) {
	v.slider.Value = float64(priority)
	v.slider.Refresh()
	v.priorityChanged(v.slider.Value)
}

func (v *PatientSummaryView) load() {
	g := v.patient.General
	v.name.SetText(v.patient.FullName())
	v.ids.SetText(fmt.Sprintf("DNI %s · SNS %d", g.DNI, g.SNSCode))
	v.state.SetText(g.State.String())
	v.slider.Value = float64(v.patient.Clinical.Priority)
	v.slider.Refresh()
	v.banner.SetPriority(v.patient.Clinical.Priority)
}

func (v *PatientSummaryView) priorityChanged(value float64) {
	priority := int(value)
	v.banner.SetPriority(priority)
	if v.node != nil {
		v.node.Broadcast(constants.MsgSummarySlider, priority)
	}
}

func (v *PatientSummaryView) ExternalValue(id string, value any) {
	if id != constants.MsgSummaryStateImage {
		return
	}
	if s, ok := value.(models.State); ok {
		v.state.SetText(s.String())
	}
}

func (v *PatientSummaryView) ValidateThis() bool { return true }

func (v *PatientSummaryView) SaveThis() error {
	v.patient.Clinical.Priority = v.Priority()
	return nil
}

func (v *PatientSummaryView) CleanThis() { v.load() }

// GeneralDataView edits the identity of the patient. Changing the state is
// broadcast so the summary follows it.
type GeneralDataView struct {
	viewBase
	patient *models.Patient

	name    *widget.Entry
	surname *widget.Entry
	dni     *widget.Entry
	sns     *widget.Label
	state   *widget.Select
	content fyne.CanvasObject
}

func NewGeneralDataView(p *models.Patient) *GeneralDataView {
	v := &GeneralDataView{
		viewBase: newViewBase(),
		patient:  p,
		name:     widget.NewEntry(),
		surname:  widget.NewEntry(),
		dni:      widget.NewEntry(),
		sns:      widget.NewLabel(""),
		state:    widget.NewSelect(stateNames(), nil),
	}
	v.dni.SetPlaceHolder("10000001-A")
	v.load()
	v.state.OnChanged = v.stateChanged

	form := widget.NewForm(
		widget.NewFormItem("Name", v.name),
		widget.NewFormItem("Surname", v.surname),
		widget.NewFormItem("DNI", v.dni),
		widget.NewFormItem("SNS code", v.sns),
		widget.NewFormItem("State", v.state),
	)
	v.content = container.NewVBox(form, v.status)
	return v
}

func (v *GeneralDataView) CanvasObject() fyne.CanvasObject { return v.content }

// Fill sets the editable fields, as typing would.
func (v *GeneralDataView) Fill(name, surname, dni string) {
	v.name.SetText(name)
	v.surname.SetText(surname)
	v.dni.SetText(dni)
}

// SetState picks a state from the list, as the user would.
func (v *GeneralDataView) SetState(s models.State) {
	v.state.Selected = s.String()
	v.state.Refresh()
	v.stateChanged(v.state.Selected)
}

func (v *GeneralDataView) load() {
	g := v.patient.General
	v.name.SetText(g.Name)
	v.surname.SetText(g.Surname)
	v.dni.SetText(g.DNI.String())
	v.sns.SetText(strconv.FormatInt(g.SNSCode, 10))
	v.state.Selected = g.State.String()
	v.state.Refresh()
}

func (v *GeneralDataView) stateChanged(name string) {
	s, err := models.ParseState(name)
	if err != nil || v.node == nil {
		return
	}
	v.node.Broadcast(constants.MsgSummaryStateImage, s)
}

func (v *GeneralDataView) ValidateThis() bool {
	switch {
	case blank(v.name.Text):
		return v.reject("The name is required.")
	case blank(v.surname.Text):
		return v.reject("The surname is required.")
	}
	if !blank(v.dni.Text) {
		if _, err := models.ParseDNI(v.dni.Text); err != nil {
			return v.reject("The DNI must be digits followed by a letter.")
		}
	}
	return v.accept()
}

func (v *GeneralDataView) SaveThis() error {
	g := &v.patient.General
	var dni models.DNI
	if !blank(v.dni.Text) {
		parsed, err := models.ParseDNI(v.dni.Text)
		if err != nil {
			return err
		}
		dni = parsed
	}
	state, err := models.ParseState(v.state.Selected)
	if err != nil {
		return err
	}
	g.Name = v.name.Text
	g.Surname = v.surname.Text
	g.DNI = dni
	g.State = state
	return nil
}

func (v *GeneralDataView) CleanThis() {
	v.load()
	v.accept()
}

// PersonalDataView edits the contact details of the patient.
type PersonalDataView struct {
	viewBase
	patient *models.Patient

	birthdate *widget.Entry
	sex       *widget.Select
	email     *widget.Entry
	address   *widget.Entry
	phone     *widget.Entry
	content   fyne.CanvasObject
}

func NewPersonalDataView(p *models.Patient) *PersonalDataView {
	v := &PersonalDataView{
		viewBase:  newViewBase(),
		patient:   p,
		birthdate: widget.NewEntry(),
		sex:       widget.NewSelect(sexNames(), nil),
		email:     widget.NewEntry(),
		address:   widget.NewEntry(),
		phone:     widget.NewEntry(),
	}
	v.birthdate.SetPlaceHolder("dd/mm/yyyy")
	v.load()

	form := widget.NewForm(
		widget.NewFormItem("Birthdate", v.birthdate),
		widget.NewFormItem("Sex", v.sex),
		widget.NewFormItem("Email", v.email),
		widget.NewFormItem("Address", v.address),
		widget.NewFormItem("Phone", v.phone),
	)
	v.content = container.NewVBox(form, v.status)
	return v
}

func (v *PersonalDataView) CanvasObject() fyne.CanvasObject { return v.content }

// Fill sets the text fields, as typing would.
func (v *PersonalDataView) Fill(birthdate, email, address, phone string) {
	v.birthdate.SetText(birthdate)
	v.email.SetText(email)
	v.address.SetText(address)
	v.phone.SetText(phone)
}

func (v *PersonalDataView) load() {
	d := v.patient.Personal
	v.birthdate.SetText(d.Birthdate.String())
	v.sex.SetSelected(d.Sex.String())
	v.email.SetText(d.Email)
	v.address.SetText(d.Address)
	v.phone.SetText(d.Phone)
}

func (v *PersonalDataView) ValidateThis() bool {
	if _, err := models.ParseBirthdate(v.birthdate.Text); err != nil {
		return v.reject("The birthdate must be dd/mm/yyyy.")
	}
	if email := v.email.Text; !blank(email) && !strings.ContainsRune(email, '@') {
		return v.reject("The email address is not valid.")
	}
	if phone := v.phone.Text; !blank(phone) && !allDigits(phone) {
		return v.reject("The phone may only contain digits.")
	}
	return v.accept()
}

func (v *PersonalDataView) SaveThis() error {
	birthdate, err := models.ParseBirthdate(v.birthdate.Text)
	if err != nil {
		return err
	}
	d := &v.patient.Personal
	d.Birthdate = birthdate
	d.Sex = models.ParseSex(v.sex.Selected)
	d.Email = v.email.Text
	d.Address = v.address.Text
	d.Phone = v.phone.Text
	return nil
}

func (v *PersonalDataView) CleanThis() {
	v.load()
	v.accept()
}

// ClinicalDataView edits the clinical notes. Its priority follows the
// summary slider.
type ClinicalDataView struct {
	viewBase
	patient *models.Patient

	doctor     *widget.Entry
	medication *widget.Entry
	cpr        *widget.Check
	allergies  *widget.Entry
	banner     *components.PriorityBanner
	content    fyne.CanvasObject
}

func NewClinicalDataView(p *models.Patient) *ClinicalDataView {
	v := &ClinicalDataView{
		viewBase:   newViewBase(),
		patient:    p,
		doctor:     widget.NewEntry(),
		medication: widget.NewMultiLineEntry(),
		cpr:        widget.NewCheck("Resuscitate", nil),
		allergies:  widget.NewMultiLineEntry(),
		banner:     components.NewPriorityBanner(p.Clinical.Priority),
	}
	v.medication.SetMinRowsVisible(3)
	v.allergies.SetMinRowsVisible(3)
	v.allergies.SetPlaceHolder("One allergy per line")
	v.load()

	form := widget.NewForm(
		widget.NewFormItem("Assigned doctor", v.doctor),
		widget.NewFormItem("Medication", v.medication),
		widget.NewFormItem("CPR", v.cpr),
		widget.NewFormItem("Allergies", v.allergies),
		widget.NewFormItem("Priority", v.banner.Container()),
	)
	v.content = container.NewVBox(form, v.status)
	return v
}

func (v *ClinicalDataView) CanvasObject() fyne.CanvasObject { return v.content }

// Priority is the priority last received from the summary.
func (v *ClinicalDataView) Priority() int { return v.banner.Priority() }

// Fill sets the text fields, as typing would.
func (v *ClinicalDataView) Fill(doctor, medication, allergies string, cpr bool) {
	v.doctor.SetText(doctor)
	v.medication.SetText(medication)
	v.allergies.SetText(allergies)
	v.cpr.SetChecked(cpr)
}

func (v *ClinicalDataView) load() {
	c := v.patient.Clinical
	v.doctor.SetText(c.AssignedDoctor)
	v.medication.SetText(c.Medication)
	v.cpr.SetChecked(c.CPR)
	v.allergies.SetText(c.AllergiesByLine())
	v.banner.SetPriority(c.Priority)
}

func (v *ClinicalDataView) ExternalValue(id string, value any) {
	if id != constants.MsgSummarySlider {
		return
	}
	if priority, ok := value.(int); ok {
		v.banner.SetPriority(priority)
	}
}

func (v *ClinicalDataView) ValidateThis() bool { return true }

func (v *ClinicalDataView) SaveThis() error {
	c := &v.patient.Clinical
	c.AssignedDoctor = v.doctor.Text
	c.Medication = v.medication.Text
	c.CPR = v.cpr.Checked
	c.SetAllergiesByLine(v.allergies.Text)
	return nil
}

func (v *ClinicalDataView) CleanThis() { v.load() }

// BankDataView edits the billing details of the patient.
type BankDataView struct {
	viewBase
	patient *models.Patient

	account *widget.Entry
	insured *widget.Check
	insurer *widget.Entry
	content fyne.CanvasObject
}

func NewBankDataView(p *models.Patient) *BankDataView {
	v := &BankDataView{
		viewBase: newViewBase(),
		patient:  p,
		account:  widget.NewEntry(),
		insurer:  widget.NewEntry(),
	}
	v.insured = widget.NewCheck("Insured", v.insuredChanged)
	v.load()

	form := widget.NewForm(
		widget.NewFormItem("Account number", v.account),
		widget.NewFormItem("Insurance", v.insured),
		widget.NewFormItem("Insurer", v.insurer),
	)
	v.content = container.NewVBox(form, v.status)
	return v
}

func (v *BankDataView) CanvasObject() fyne.CanvasObject { return v.content }

// Fill sets the fields, as typing would.
func (v *BankDataView) Fill(account string, insured bool, insurer string) {
	v.account.SetText(account)
	v.insured.Checked = insured
	v.insured.Refresh()
	v.insurer.SetText(insurer)
	v.insuredChanged(insured)
}

// InsurerEnabled reports whether the insurer can be edited.
func (v *BankDataView) InsurerEnabled() bool { return !v.insurer.Disabled() }

func (v *BankDataView) load() {
	b := v.patient.Bank
	v.account.SetText(b.AccountNumber)
	v.insured.Checked = b.Insured
	v.insured.Refresh()
	v.insurer.SetText(b.Insurer)
	v.insuredChanged(b.Insured)
}

func (v *BankDataView) insuredChanged(insured bool) {
	if insured {
		v.insurer.Enable()
	} else {
		v.insurer.Disable()
	}
}

func (v *BankDataView) ValidateThis() bool {
	switch {
	case !allDigits(v.account.Text):
		return v.reject("The account number is required and may only contain digits.")
	case v.insured.Checked && blank(v.insurer.Text):
		return v.reject("The insurer is required for insured patients.")
	}
	return v.accept()
}

func (v *BankDataView) SaveThis() error {
	b := &v.patient.Bank
	b.AccountNumber = v.account.Text
	b.Insured = v.insured.Checked
	b.Insurer = ""
	if b.Insured {
		b.Insurer = v.insurer.Text
	}
	return nil
}

func (v *BankDataView) CleanThis() {
	v.load()
	v.accept()
}
