//go:build cgo

package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"hospital-desk/core"
	"hospital-desk/core/models"
	"hospital-desk/core/services"
	"hospital-desk/dialogkit"
)

func newTestController(t *testing.T) *core.AppController {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	fs, err := services.NewFileServiceAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileServiceAt failed: %v", err)
	}
	ac, err := core.NewAppController(fs)
	if err != nil {
		t.Fatalf("NewAppController failed: %v", err)
	}
	return ac
}

func patient(t *testing.T, ac *core.AppController, code int64) *models.Patient {
	t.Helper()
	p, ok := ac.DB.Patient(code)
	if !ok {
		t.Fatalf("patient %d not found", code)
	}
	return p
}

// bind puts b in a Simple dialog so that it has a node to broadcast from.
func bind(t *testing.T, b dialogkit.Behavior) *dialogkit.Node {
	t.Helper()
	n, err := newLeaf(dialogkit.NewArena(dialogkit.Config{}), b, "")
	if err != nil {
		t.Fatalf("newLeaf failed: %v", err)
	}
	return n
}
