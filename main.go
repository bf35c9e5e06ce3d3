package main

import (
	"log"

	"hospital-desk/core"
	"hospital-desk/core/services"
	"hospital-desk/internal/constants"
	"hospital-desk/ui"
)

// main is the application's entry point. It builds the controller, opens
// the login window and runs the fyne event loop.
func main() {
	controller, err := core.Instance()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	if err := controller.FileService.OpenLogFiles(); err != nil {
		log.Printf("main: logging to stderr: %v", err)
	}
	log.Printf("%s %s starting (data: %s)", constants.AppName, constants.AppVersion, controller.Config.DataFile)

	controller.UIService = services.NewUIService(controller.Config.Theme, controller.Config.Layout)
	ui.NewApp(controller).Run()

	// Run returns once the last window is gone.
	log.Println("Application shutting down.")
	controller.GracefulExit()
}
