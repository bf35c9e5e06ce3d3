package fynekit

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"hospital-desk/dialogkit"
)

// Shell hosts a dialog in a fyne window.
type Shell struct {
	win     fyne.Window
	minSize dialogkit.Size
	onClose []func()
	closed  bool
}

// NewShell wraps win. Closing the window from the title bar runs the close
// listeners as well.
func NewShell(win fyne.Window) *Shell {
	s := &Shell{win: win}
	win.SetOnClosed(s.fireClose)
	return s
}

// Window returns the wrapped fyne window.
func (s *Shell) Window() fyne.Window { return s.win }

func (s *Shell) Title() string         { return s.win.Title() }
func (s *Shell) SetTitle(title string) { s.win.SetTitle(title) }

func (s *Shell) SetMinSize(size dialogkit.Size) {
	s.minSize = size
}

// Pack resizes the window to the larger of its minimum size and what the
// content asks for.
func (s *Shell) Pack() {
	want := toFyne(s.minSize)
	if c := s.win.Content(); c != nil {
		want = want.Max(c.MinSize())
	}
	s.win.Resize(want)
}

func (s *Shell) Show() { s.win.Show() }
func (s *Shell) Hide() { s.win.Hide() }

func (s *Shell) Close() {
	if s.closed {
		return
	}
	s.fireClose()
	s.win.Close()
}

func (s *Shell) Warn(title, message string) {
	dialog.ShowInformation(title, message, s.win)
}

func (s *Shell) AddCloseListener(fn func()) {
	s.onClose = append(s.onClose, fn)
}

func (s *Shell) fireClose() {
	if s.closed {
		return
	}
	s.closed = true
	for _, fn := range s.onClose {
		fn()
	}
}

func toFyne(s dialogkit.Size) fyne.Size {
	return fyne.NewSize(float32(s.Width), float32(s.Height))
}

func fromFyne(s fyne.Size) dialogkit.Size {
	return dialogkit.NewSize(int(s.Width+0.5), int(s.Height+0.5))
}

// WindowOf returns the fyne window hosting n: the window of the closest
// factory dialog at or above it. It is nil for dialogs not yet mounted.
func WindowOf(n *dialogkit.Node) fyne.Window {
	for p := n; p != nil; p = p.Parent() {
		if s, ok := p.Shell().(*Shell); ok {
			return s.win
		}
	}
	return nil
}
