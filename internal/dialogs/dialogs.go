// Package dialogs wraps the fyne dialogs the desk shows over its windows.
// Every helper is safe to call from any goroutine.
package dialogs

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// noticeDelay is how long ShowNotice stays on screen.
const noticeDelay = 2 * time.Second

// ShowError shows an error dialog to the user
func ShowError(window fyne.Window, err error) {
	fyne.Do(func() {
		dialog.ShowError(err, window)
	})
}

// ShowErrorText shows an error dialog with a text message
func ShowErrorText(window fyne.Window, title, message string) {
	ShowError(window, fmt.Errorf("%s: %s", title, message))
}

// ShowInfo shows an information dialog to the user
func ShowInfo(window fyne.Window, title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, window)
	})
}

// ShowConfirm asks a yes/no question. confirm and dismiss label the buttons;
// empty labels keep fyne's defaults.
func ShowConfirm(window fyne.Window, title, message, confirm, dismiss string, onConfirm func(bool)) {
	fyne.Do(func() {
		d := dialog.NewConfirm(title, message, onConfirm, window)
		if confirm != "" {
			d.SetConfirmText(confirm)
		}
		if dismiss != "" {
			d.SetDismissText(dismiss)
		}
		d.Show()
	})
}

// ShowNotice shows message without buttons and hides it after noticeDelay.
func ShowNotice(window fyne.Window, message string) {
	fyne.Do(func() {
		d := dialog.NewCustomWithoutButtons("", widget.NewLabel(message), window)
		d.Show()
		time.AfterFunc(noticeDelay, func() {
			fyne.Do(d.Hide)
		})
	})
}
