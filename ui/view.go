package ui

import (
	"strings"
	"unicode"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"hospital-desk/dialogkit"
	"hospital-desk/ui/fynekit"
)

// viewBase is embedded by every view: it keeps the node the view drives and
// ignores broadcasts unless the view overrides ExternalValue.
type viewBase struct {
	node   *dialogkit.Node
	status *widget.Label
}

func newViewBase() viewBase {
	status := widget.NewLabel("")
	status.Importance = widget.DangerImportance
	status.Wrapping = fyne.TextWrapWord
	status.Hide()
	return viewBase{status: status}
}

func (v *viewBase) BindNode(n *dialogkit.Node)    { v.node = n }
func (v *viewBase) Node() *dialogkit.Node         { return v.node }
func (v *viewBase) ExternalValue(_ string, _ any) {}

// Problem is the message shown after the last failed validation.
func (v *viewBase) Problem() string {
	if !v.status.Visible() {
		return ""
	}
	return v.status.Text
}

// reject shows message and fails validation.
func (v *viewBase) reject(message string) bool {
	v.status.SetText(message)
	v.status.Show()
	return false
}

// accept clears any previous problem.
func (v *viewBase) accept() bool {
	v.status.SetText("")
	v.status.Hide()
	return true
}

func (v *viewBase) window() fyne.Window {
	return fynekit.WindowOf(v.node)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
