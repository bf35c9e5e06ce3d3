package core

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"

	"hospital-desk/internal/dialogs"
)

// ShowError logs err and shows it over win. A nil window only logs.
func (ac *AppController) ShowError(win fyne.Window, op string, err error) {
	log.Printf("%s: %v", op, err)
	if win != nil {
		dialogs.ShowError(win, fmt.Errorf("%s: %w", op, err))
	}
}

// ShowSaveError reports that the database could not be written.
func (ac *AppController) ShowSaveError(win fyne.Window, err error) {
	message := fmt.Sprintf("The hospital data could not be saved:\n\n%s\n\nPlease check:\n1. %s is writable\n2. The disk is not full\n3. Check logs for details", err, ac.StoreService.Path())
	log.Printf("SaveError: %v", err)
	if win != nil {
		dialogs.ShowErrorText(win, "Save failed", message)
	}
}
