package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"hospital-desk/core"
	"hospital-desk/core/models"
	"hospital-desk/internal/dialogs"
	"hospital-desk/ui/components"
)

// maxSearchDistance is how many edits a search word may be from a field.
const maxSearchDistance = 2

// patientList is a selectable column of PatientRows.
type patientList struct {
	box      *fyne.Container
	scroll   *container.Scroll
	rows     []*components.PatientRow
	selected *models.Patient
	onSelect func(*models.Patient)
}

func newPatientList(onSelect func(*models.Patient)) *patientList {
	l := &patientList{box: container.NewVBox(), onSelect: onSelect}
	l.scroll = container.NewVScroll(l.box)
	l.scroll.SetMinSize(fyne.NewSize(380, 260))
	return l
}

// set replaces the rows. The selection survives if its patient is still listed.
func (l *patientList) set(patients []*models.Patient) {
	l.rows = l.rows[:0]
	l.box.RemoveAll()
	keep := false
	for _, p := range patients {
		row := components.NewPatientRow(p, l.choose)
		if p == l.selected {
			row.SetSelected(true)
			keep = true
		}
		l.rows = append(l.rows, row)
		l.box.Add(row)
	}
	if !keep {
		l.selected = nil
	}
	l.box.Refresh()
}

func (l *patientList) choose(p *models.Patient) {
	l.selected = p
	for _, r := range l.rows {
		r.SetSelected(r.Patient() == p)
	}
	if l.onSelect != nil {
		l.onSelect(p)
	}
}

func (l *patientList) patients() []*models.Patient {
	out := make([]*models.Patient, len(l.rows))
	for i, r := range l.rows {
		out[i] = r.Patient()
	}
	return out
}

// TriageMenuView lists every patient and lets the triage nurse set a
// priority, which sends the patient to the waiting room.
type TriageMenuView struct {
	viewBase
	ac *core.AppController

	list    *patientList
	slider  *widget.Slider
	banner  *components.PriorityBanner
	apply   *widget.Button
	content fyne.CanvasObject
}

func NewTriageMenuView(ac *core.AppController) *TriageMenuView {
	v := &TriageMenuView{viewBase: newViewBase(), ac: ac}
	v.list = newPatientList(v.selectPatient)

	v.banner = components.NewPriorityBanner(models.MinPriority)
	v.slider = widget.NewSlider(models.MinPriority, models.MaxPriority)
	v.slider.Step = 1
	v.slider.OnChanged = func(value float64) { v.banner.SetPriority(int(value)) }
	v.apply = widget.NewButtonWithIcon("Set priority", theme.ConfirmIcon(), v.applyPriority)
	v.apply.Disable()

	folder := widget.NewButtonWithIcon("Data folder", theme.FolderOpenIcon(), func() {
		if err := v.ac.OpenDataFolder(); err != nil {
			v.ac.ShowError(v.window(), "OpenDataFolder", err)
		}
	})

	controls := container.NewBorder(nil, nil, widget.NewLabel("Priority"), container.NewHBox(v.banner.Container(), v.apply), v.slider)
	v.content = container.NewBorder(
		container.NewBorder(nil, nil, widget.NewLabelWithStyle("Patients", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), folder),
		container.NewVBox(controls, v.status),
		nil, nil,
		v.list.scroll,
	)
	v.Reload()
	return v
}

func (v *TriageMenuView) CanvasObject() fyne.CanvasObject { return v.content }

// Reload lists the patients again.
func (v *TriageMenuView) Reload() {
	v.list.set(v.ac.DB.SortedPatients())
	if v.list.selected == nil {
		v.apply.Disable()
	}
}

// Selected returns the highlighted patient, or nil.
func (v *TriageMenuView) Selected() *models.Patient { return v.list.selected }

func (v *TriageMenuView) selectPatient(p *models.Patient) {
	v.SetPriority(p.Clinical.Priority)
	v.apply.Enable()
}

// SetPriority moves the slider, as dragging it would.
func (v *TriageMenuView) SetPriority(priority int) {
	v.slider.Value = float64(priority)
	v.slider.Refresh()
	v.banner.SetPriority(priority)
}

func (v *TriageMenuView) applyPriority() {
	p := v.list.selected
	if p == nil {
		return
	}
	if err := v.ac.SetPriority(p.General.SNSCode, int(v.slider.Value)); err != nil {
		v.ac.ShowError(v.window(), "SetPriority", err)
		return
	}
	v.Reload()
	if win := v.window(); win != nil {
		dialogs.ShowNotice(win, fmt.Sprintf("%s is waiting with priority %d.", p.FullName(), p.Clinical.Priority))
	}
}

func (v *TriageMenuView) ValidateThis() bool { return true }
func (v *TriageMenuView) SaveThis() error    { return nil }
func (v *TriageMenuView) CleanThis()         { v.list.selected = nil }

// DoctorMenuView lists the waiting room, most urgent first, and starts the
// attention of the chosen patient. Typing in the search box looks through
// every patient instead, tolerating small typos.
type DoctorMenuView struct {
	viewBase
	ac       *core.AppController
	onAttend func(*models.Patient)

	search  *widget.Entry
	list    *patientList
	start   *widget.Button
	history *widget.Button
	content fyne.CanvasObject
}

// NewDoctorMenuView builds the menu. onAttend runs once a patient has been
// admitted.
func NewDoctorMenuView(ac *core.AppController, onAttend func(*models.Patient)) *DoctorMenuView {
	v := &DoctorMenuView{viewBase: newViewBase(), ac: ac, onAttend: onAttend}
	v.list = newPatientList(func(*models.Patient) {
		v.start.Enable()
		v.history.Enable()
	})

	v.search = widget.NewEntry()
	v.search.SetPlaceHolder("Search by name, DNI or SNS code")
	v.search.OnChanged = func(string) { v.Reload() }

	v.start = widget.NewButtonWithIcon("Start attention", theme.MediaPlayIcon(), v.confirmAttention)
	v.history = widget.NewButtonWithIcon("History", theme.HistoryIcon(), v.showHistory)

	v.content = container.NewBorder(
		v.search,
		container.NewVBox(container.NewHBox(v.history, v.start), v.status),
		nil, nil,
		v.list.scroll,
	)
	v.Reload()
	return v
}

func (v *DoctorMenuView) CanvasObject() fyne.CanvasObject { return v.content }

// Search sets the query, as typing would.
func (v *DoctorMenuView) Search(query string) {
	v.search.SetText(query)
	v.Reload()
}

// Listed returns the patients currently shown, in order.
func (v *DoctorMenuView) Listed() []*models.Patient { return v.list.patients() }

// Reload lists the waiting room, or the search results when there is a query.
func (v *DoctorMenuView) Reload() {
	if blank(v.search.Text) {
		v.list.set(v.ac.DB.WaitingPatients())
	} else {
		matches := models.SearchPatients(v.ac.DB.SortedPatients(), v.search.Text, maxSearchDistance)
		patients := make([]*models.Patient, len(matches))
		for i, m := range matches {
			patients[i] = m.Patient
		}
		v.list.set(patients)
	}
	if v.list.selected == nil {
		v.start.Disable()
		v.history.Disable()
	}
}

func (v *DoctorMenuView) confirmAttention() {
	p := v.list.selected
	if p == nil {
		return
	}
	win := v.window()
	if win == nil {
		v.attend(p)
		return
	}
	message := fmt.Sprintf("Start attending %s (priority %d)?", p.FullName(), p.Clinical.Priority)
	dialogs.ShowConfirm(win, "Start attention", message, "Start", "Cancel", func(ok bool) {
		if ok {
			v.attend(p)
		}
	})
}

func (v *DoctorMenuView) attend(p *models.Patient) {
	admitted, err := v.ac.StartAttention(p.General.SNSCode)
	if err != nil {
		v.ac.ShowError(v.window(), "StartAttention", err)
		return
	}
	v.Reload()
	if v.onAttend != nil {
		v.onAttend(admitted)
	}
}

// historyLines describes the previous attentions of p, oldest first.
func (v *DoctorMenuView) historyLines(p *models.Patient) []string {
	episodes := v.ac.DB.EpisodesOf(p.General.SNSCode)
	lines := make([]string, len(episodes))
	for i, ep := range episodes {
		lines[i] = fmt.Sprintf("%s · %s · priority %d", ep.Started.Local().Format("02/01/2006 15:04"), ep.Doctor, ep.Priority)
	}
	return lines
}

func (v *DoctorMenuView) showHistory() {
	p := v.list.selected
	win := v.window()
	if p == nil || win == nil {
		return
	}
	body := components.NewTextList(v.historyLines(p), "No previous attentions.")
	components.NewCustom("History of "+p.FullName(), body, nil, "Close", win).Show()
}

func (v *DoctorMenuView) ValidateThis() bool { return true }
func (v *DoctorMenuView) SaveThis() error    { return nil }

func (v *DoctorMenuView) CleanThis() {
	v.search.SetText("")
}
