//go:build cgo

package services

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"hospital-desk/dialogkit"
)

func TestUIService_NewArenaUsesToolkitAndMetrics(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	metrics := dialogkit.DefaultMetrics()
	metrics.TabHeaderHeight = 40
	ui := NewUIServiceWithApp(a, "dark", metrics)

	arena := ui.NewArena()
	if arena.Toolkit() != ui.Toolkit {
		t.Error("Expected arena to render through the service toolkit")
	}
	if arena.Metrics().TabHeaderHeight != 40 {
		t.Errorf("Expected tab header 40, got %d", arena.Metrics().TabHeaderHeight)
	}
}
