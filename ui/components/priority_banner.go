package components

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"hospital-desk/core/models"
)

var levelColors = map[models.PriorityLevel]color.NRGBA{
	models.LevelNormal:   {R: 200, G: 235, B: 200, A: 255},
	models.LevelMild:     {R: 235, G: 240, B: 180, A: 255},
	models.LevelModerate: {R: 255, G: 220, B: 160, A: 255},
	models.LevelSevere:   {R: 255, G: 185, B: 140, A: 255},
	models.LevelCritical: {R: 255, G: 160, B: 160, A: 255},
	models.LevelOriginal: {R: 220, G: 220, B: 220, A: 255},
}

// LevelColor is the background used for a priority band.
func LevelColor(level models.PriorityLevel) color.NRGBA {
	if c, ok := levelColors[level]; ok {
		return c
	}
	return levelColors[models.LevelOriginal]
}

// PriorityBanner shows a triage priority on a background coloured by its band.
type PriorityBanner struct {
	container *fyne.Container
	text      *widget.Label
	rect      *canvas.Rectangle
	priority  int
}

func NewPriorityBanner(priority int) *PriorityBanner {
	text := widget.NewLabel("")
	text.Alignment = fyne.TextAlignCenter
	text.TextStyle = fyne.TextStyle{Bold: true}

	rect := canvas.NewRectangle(color.Transparent)
	rect.SetMinSize(fyne.NewSize(110, 30))

	b := &PriorityBanner{
		container: container.NewStack(rect, text),
		text:      text,
		rect:      rect,
	}
	b.SetPriority(priority)
	return b
}

// Container returns the container for embedding in UI
func (b *PriorityBanner) Container() *fyne.Container {
	return b.container
}

func (b *PriorityBanner) Priority() int { return b.priority }

// Text is what the banner currently reads.
func (b *PriorityBanner) Text() string { return b.text.Text }

// SetPriority updates the text and the colour.
func (b *PriorityBanner) SetPriority(priority int) {
	b.priority = priority
	level := models.LevelForPriority(priority)
	b.rect.FillColor = LevelColor(level)
	b.text.SetText(fmt.Sprintf("%d · %s", priority, level))
	b.container.Refresh()
}
