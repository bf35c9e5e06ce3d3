package components

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"hospital-desk/core/models"
)

// PatientRow is one line of a patient list: name, SNS code, state and a
// priority banner. Tapping it selects the patient.
type PatientRow struct {
	widget.BaseWidget

	patient  *models.Patient
	onTapped func(*models.Patient)
	selected bool

	name   *widget.Label
	detail *widget.Label
	banner *PriorityBanner
	bg     *canvas.Rectangle
}

// NewPatientRow builds a row for p. onTapped may be nil.
func NewPatientRow(p *models.Patient, onTapped func(*models.Patient)) *PatientRow {
	r := &PatientRow{
		patient:  p,
		onTapped: onTapped,
		name:     widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		detail:   widget.NewLabel(""),
		bg:       canvas.NewRectangle(color.Transparent),
	}
	r.banner = NewPriorityBanner(p.Clinical.Priority)
	r.Update()
	r.ExtendBaseWidget(r)
	return r
}

func (r *PatientRow) Patient() *models.Patient { return r.patient }
func (r *PatientRow) Selected() bool           { return r.selected }
func (r *PatientRow) Banner() *PriorityBanner  { return r.banner }

// Update reloads the labels from the patient.
func (r *PatientRow) Update() {
	g := r.patient.General
	r.name.SetText(r.patient.FullName())
	r.detail.SetText(fmt.Sprintf("SNS %d · %s", g.SNSCode, g.State))
	r.banner.SetPriority(r.patient.Clinical.Priority)
}

// SetSelected highlights the row.
func (r *PatientRow) SetSelected(selected bool) {
	r.selected = selected
	if selected {
		r.bg.FillColor = theme.Color(theme.ColorNameSelection)
	} else {
		r.bg.FillColor = color.Transparent
	}
	r.bg.Refresh()
}

func (r *PatientRow) Tapped(_ *fyne.PointEvent) {
	if r.onTapped != nil {
		r.onTapped(r.patient)
	}
}

func (r *PatientRow) TappedSecondary(e *fyne.PointEvent) { r.Tapped(e) }

func (r *PatientRow) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(r.name, r.detail)
	row := container.NewBorder(nil, nil, nil, r.banner.Container(), text)
	return widget.NewSimpleRenderer(container.NewStack(r.bg, container.NewPadded(row)))
}
