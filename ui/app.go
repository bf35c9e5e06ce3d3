// Package ui is the hospital desk: a login dialog, a menu per role and the
// patient record, all built as dialogkit hierarchies.
package ui

import (
	"fmt"
	"log"
	"strings"

	"hospital-desk/core"
	"hospital-desk/core/models"
	"hospital-desk/dialogkit"
	"hospital-desk/internal/constants"
	"hospital-desk/internal/dialogs"
	"hospital-desk/ui/fynekit"
)

// App moves the user between the windows of the desk. Each window is a
// factory dialog; closing one decides which opens next.
type App struct {
	core *core.AppController
}

// NewApp creates a new App instance. controller.UIService must be set.
func NewApp(controller *core.AppController) *App {
	return &App{core: controller}
}

// Run shows the login window and blocks until the application quits.
func (a *App) Run() {
	a.ShowLogin()
	a.core.UIService.Application.Run()
}

// hierarchy creates a factory dialog of kind k in a fresh arena, with leaf
// as its only child.
func (a *App) hierarchy(k dialogkit.Kind, name, title string, leaf dialogkit.Behavior) (*dialogkit.Node, error) {
	arena := a.core.UIService.NewArena()
	root, err := dialogkit.Instance().CreateDialog(arena, k, nil, name, title)
	if err != nil {
		return nil, err
	}
	if err := attachLeaf(arena, root, leaf); err != nil {
		root.Shell().Close()
		return nil, err
	}
	root.Shell().AddCloseListener(func() { a.core.UIService.Release(root) })
	return root, nil
}

func attachLeaf(arena *dialogkit.Arena, root *dialogkit.Node, leaf dialogkit.Behavior) error {
	if err := dialogkit.InitializeDialog(root); err != nil {
		return err
	}
	child, err := newLeaf(arena, leaf, "")
	if err != nil {
		return err
	}
	return root.AddChild(child, "")
}

// ShowLogin opens the login window. Closing it without logging in saves
// the database and quits.
func (a *App) ShowLogin() {
	root, err := a.hierarchy(dialogkit.Simple, "login", constants.AppName+" - Login", NewLoginView(a.core))
	if err != nil {
		a.fail("ShowLogin", err)
		return
	}
	root.Shell().AddCloseListener(func() {
		if a.core.Role() == models.RoleNone {
			a.core.GracefulExit()
			return
		}
		a.ShowMenu()
	})
	a.warnIfRunning(root)
}

// ShowMenu opens the menu of the logged-in role. Closing it logs out.
func (a *App) ShowMenu() {
	var (
		root *dialogkit.Node
		err  error
	)
	role := a.core.Role()
	title := fmt.Sprintf("%s - %s", constants.AppName, role)
	switch role {
	case models.RoleTriage:
		root, err = a.hierarchy(dialogkit.Simple, "triageMenu", title, NewTriageMenuView(a.core))
	case models.RoleDoctor:
		var menu *DoctorMenuView
		menu = NewDoctorMenuView(a.core, func(p *models.Patient) {
			a.ShowRecord(menu, p)
		})
		root, err = a.hierarchy(dialogkit.Simple, "doctorMenu", title, menu)
	default:
		err = fmt.Errorf("no menu for role %q", role)
	}
	if err != nil {
		a.fail("ShowMenu", err)
		return
	}
	root.Shell().AddCloseListener(func() {
		a.core.Logout()
		a.ShowLogin()
	})
}

// ShowRecord hides the doctor menu and opens the record of p. The menu
// comes back when the record is closed.
func (a *App) ShowRecord(menu *DoctorMenuView, p *models.Patient) {
	menuShell := menu.Node().Parent().Shell()
	record, err := BuildPatientRecord(a.core.UIService.NewArena(), p)
	if err != nil {
		a.core.ShowError(fynekit.WindowOf(menu.Node()), "ShowRecord", err)
		a.core.FinishAttention()
		return
	}
	menuShell.Hide()
	record.Root.Shell().AddCloseListener(func() {
		a.core.UIService.Release(record.Root)
		a.core.FinishAttention()
		if err := a.core.SaveDatabase(); err != nil {
			a.core.ShowSaveError(fynekit.WindowOf(menu.Node()), err)
		}
		menu.Reload()
		menuShell.Show()
	})
}

// warnIfRunning tells the user about other copies of the application,
// which would overwrite each other's data on exit.
func (a *App) warnIfRunning(root *dialogkit.Node) {
	others := a.core.OthersRunning()
	if len(others) == 0 {
		return
	}
	pids := make([]string, len(others))
	for i, p := range others {
		pids[i] = fmt.Sprint(p.PID)
	}
	log.Printf("warnIfRunning: other instances running: %s", strings.Join(pids, ", "))
	dialogs.ShowInfo(fynekit.WindowOf(root), "Information",
		"The application is already running (PID "+strings.Join(pids, ", ")+"). Changes saved by one copy may be overwritten by the other.")
}

func (a *App) fail(op string, err error) {
	log.Printf("%s: %v", op, err)
	a.core.GracefulExit()
}
