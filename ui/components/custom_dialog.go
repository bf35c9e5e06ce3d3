// Package components holds the reusable widgets of the desk windows.
package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// NewCustom builds a modal over parent with mainContent in the centre and
// buttons at the bottom. A non-empty dismissText adds a close button on the
// left, and Escape then closes the dialog too.
func NewCustom(title string, mainContent fyne.CanvasObject, buttons fyne.CanvasObject, dismissText string, parent fyne.Window) dialog.Dialog {
	var d dialog.Dialog

	if buttons == nil {
		buttons = container.NewHBox()
	}
	if dismissText != "" {
		closeButton := widget.NewButton(dismissText, func() {
			if d != nil {
				d.Hide()
			}
		})
		buttons = container.NewBorder(nil, nil, closeButton, buttons, nil)
	}

	d = dialog.NewCustomWithoutButtons(title, container.NewBorder(nil, buttons, nil, nil, mainContent), parent)

	if dismissText != "" {
		canvas := parent.Canvas()
		previous := canvas.OnTypedKey()
		restore := func() { canvas.SetOnTypedKey(previous) }
		canvas.SetOnTypedKey(func(key *fyne.KeyEvent) {
			if key.Name == fyne.KeyEscape {
				d.Hide()
				return
			}
			if previous != nil {
				previous(key)
			}
		})
		d.SetOnClosed(restore)
	}
	return d
}

// NewTextList is a read-only, scrollable list of lines with a placeholder
// shown when lines is empty.
func NewTextList(lines []string, empty string) fyne.CanvasObject {
	if len(lines) == 0 {
		return widget.NewLabel(empty)
	}
	list := widget.NewList(
		func() int { return len(lines) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(lines[i])
		},
	)
	scroll := container.NewVScroll(list)
	scroll.SetMinSize(fyne.NewSize(360, 200))
	return scroll
}
