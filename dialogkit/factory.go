package dialogkit

import (
	"errors"
	"sync"

	"hospital-desk/internal/debuglog"
)

const (
	validationWarningTitle   = "Warning"
	validationWarningMessage = "The data entered could not be validated, please try again."
)

var (
	factoryMu sync.Mutex
	instance  *Factory
	created   int // factories built by Instance
)

// Factory builds dialogs with the default structure and hosts them in a
// window. It keeps no dialog state; the arena is passed to every call.
type Factory struct {
	serial int
}

// Instance returns the process-wide factory, creating it on first use.
func Instance() *Factory {
	factoryMu.Lock()
	defer factoryMu.Unlock()
	if instance == nil {
		created++
		instance = &Factory{serial: created}
	}
	return instance
}

// Clone always fails: there is only one factory.
func (f *Factory) Clone() (*Factory, error) {
	return nil, newError("Factory.Clone", KindClone, nil, ErrNotCloneable)
}

// CreateDialog builds a dialog of kind k with stub hooks, OK/Cancel buttons
// and the default size for its kind, and shows it in parent, or in a new
// window when parent is nil. The window title is title, else the window's
// current title, else the kind's type name.
func (f *Factory) CreateDialog(a *Arena, k Kind, parent Shell, name, title string) (*Node, error) {
	const op = "Factory.CreateDialog"
	if a == nil {
		return nil, newError(op, KindConfiguration, nil, errors.New("arena is nil"))
	}
	debuglog.Log(logPrefix, debuglog.LevelInfo, debuglog.UseGlobal, "Creating dialog of type %s...", k)

	n, err := a.newNode(op, k, stubBehavior{kind: k})
	if err != nil {
		return nil, err
	}
	n.containerName = name
	n.factory = true

	tk := a.toolkit
	tk.Decorate(n, Actions{
		OK:     func() { f.accept(n) },
		Cancel: func() { f.cancel(n) },
	})
	n.SetSize(a.metrics.PreferredSize(k))

	shell := parent
	if shell == nil {
		shell = tk.NewShell()
	}
	shell.AddCloseListener(func() {
		debuglog.Log(logPrefix, debuglog.LevelVerbose, debuglog.UseGlobal, "window of %s closed", n)
	})
	shell.SetMinSize(n.size)
	switch {
	case validString(title):
		shell.SetTitle(title)
	case validString(shell.Title()):
	default:
		shell.SetTitle(k.TypeName())
	}
	tk.Mount(shell, n)
	n.shell = shell
	shell.Show()
	return n, nil
}

// accept runs behind the OK button. Invalid input keeps the window open.
func (f *Factory) accept(n *Node) {
	if !n.ValidateAll() {
		debuglog.Log(logPrefix, debuglog.LevelVerbose, debuglog.UseGlobal, "%s: validation failed", n)
		n.shell.Warn(validationWarningTitle, validationWarningMessage)
		return
	}
	if err := n.SaveAll(); err != nil {
		debuglog.ErrorLog("%s: save failed: %v", n, err)
		n.shell.Warn("Error", err.Error())
		return
	}
	n.CleanupAll()
	n.shell.Close()
}

// cancel runs behind the Cancel button.
func (f *Factory) cancel(n *Node) {
	n.CleanupAll()
	n.shell.Close()
}
