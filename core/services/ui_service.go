package services

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"

	"hospital-desk/dialogkit"
	"hospital-desk/internal/constants"
	"hospital-desk/ui/fynekit"
)

// UIService owns the fyne application and the toolkit every dialog
// hierarchy is rendered with.
type UIService struct {
	Application fyne.App
	Toolkit     *fynekit.Toolkit
	Metrics     dialogkit.Metrics
}

// NewUIService starts a fyne application with the configured theme.
func NewUIService(themeName string, metrics dialogkit.Metrics) *UIService {
	log.Println("UIService: Initializing Fyne application...")
	return NewUIServiceWithApp(app.NewWithID(constants.AppID), themeName, metrics)
}

// NewUIServiceWithApp wraps an existing application, such as fyne's test app.
func NewUIServiceWithApp(a fyne.App, themeName string, metrics dialogkit.Metrics) *UIService {
	switch themeName {
	case "dark":
		a.Settings().SetTheme(theme.DarkTheme())
	case "light":
		a.Settings().SetTheme(theme.LightTheme())
	default:
		a.Settings().SetTheme(theme.DefaultTheme())
	}
	return &UIService{
		Application: a,
		Toolkit:     fynekit.New(a),
		Metrics:     metrics,
	}
}

// NewArena returns an arena rendering through the application's toolkit.
func (ui *UIService) NewArena() *dialogkit.Arena {
	return dialogkit.NewArena(dialogkit.Config{Toolkit: ui.Toolkit, Metrics: ui.Metrics})
}

// Release drops the widgets of a closed hierarchy rooted at n.
func (ui *UIService) Release(n *dialogkit.Node) {
	ui.Toolkit.Forget(n)
}

// QuitApplication quits the Fyne application.
func (ui *UIService) QuitApplication() {
	if ui.Application != nil {
		ui.Application.Quit()
	}
}
