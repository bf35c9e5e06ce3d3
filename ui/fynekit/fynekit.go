// Package fynekit renders dialogkit hierarchies with fyne.
//
// Leaf dialogs provide their widgets by implementing Viewer on their
// behavior. Containers are built from the dialog kind: a VBox for Simple,
// AppTabs for Tab and a split tree/card panel for TreeView. Factory dialogs
// get an OK/Cancel row at the bottom.
package fynekit

import (
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"hospital-desk/dialogkit"
	"hospital-desk/internal/debuglog"
)

const (
	logPrefix   = "fynekit"
	rootUID     = "root"
	okLabel     = "OK"
	cancelLabel = "Cancel"
)

// Viewer is implemented by behaviors that draw their own widgets.
type Viewer interface {
	CanvasObject() fyne.CanvasObject
}

// Toolkit implements dialogkit.Toolkit over a fyne.App.
type Toolkit struct {
	app   fyne.App
	views map[*dialogkit.Node]*view
}

// view holds the fyne objects of one dialog.
type view struct {
	node  *dialogkit.Node
	min   *canvas.Rectangle
	outer *fyne.Container
	body  fyne.CanvasObject

	rows  *fyne.Container
	tabs  *container.AppTabs
	tree  *widget.Tree
	split *container.Split
	cards *fyne.Container
	shown map[string]fyne.CanvasObject

	// detach removes outer from the container currently holding it.
	detach func()
}

func New(app fyne.App) *Toolkit {
	return &Toolkit{app: app, views: make(map[*dialogkit.Node]*view)}
}

// Object returns the canvas object that renders n.
func (tk *Toolkit) Object(n *dialogkit.Node) fyne.CanvasObject {
	return tk.view(n).outer
}

func (tk *Toolkit) NewShell() dialogkit.Shell {
	return NewShell(tk.app.NewWindow(""))
}

func (tk *Toolkit) Decorate(n *dialogkit.Node, actions dialogkit.Actions) {
	v := tk.view(n)
	ok := widget.NewButton(okLabel, actions.OK)
	ok.Importance = widget.HighImportance
	cancel := widget.NewButton(cancelLabel, actions.Cancel)
	buttons := container.NewHBox(layout.NewSpacer(), cancel, ok)
	v.outer.Objects[1] = container.NewBorder(nil, buttons, nil, nil, v.body)
	v.outer.Refresh()
}

func (tk *Toolkit) Mount(shell dialogkit.Shell, n *dialogkit.Node) {
	s, ok := shell.(*Shell)
	if !ok {
		debuglog.WarnLog("%s: cannot mount %s in %T", logPrefix, n, shell)
		return
	}
	s.win.SetContent(tk.view(n).outer)
}

func (tk *Toolkit) Place(parent, child *dialogkit.Node, p dialogkit.Placement) {
	v := tk.view(parent)
	switch p.Kind {
	case dialogkit.PlaceRow:
		if v.rows != nil {
			rows, cv := v.rows, tk.view(child)
			tk.claim(cv, func() { rows.Remove(cv.outer) })
			rows.Add(cv.outer)
		}
	case dialogkit.PlaceTab:
		if v.tabs != nil {
			tk.appendTab(parent.Arena(), v.tabs, p.Page)
		}
	case dialogkit.PlaceTreeItem:
		if v.tree != nil {
			v.tree.Refresh()
			v.tree.OpenBranch(rootUID)
		}
	case dialogkit.PlaceCard:
		if v.cards != nil {
			cards, cv := v.cards, tk.view(child)
			tk.claim(cv, func() { cards.Remove(cv.outer) })
			v.shown[p.Key] = cv.outer
			if len(cards.Objects) > 0 {
				cv.outer.Hide()
			}
			cards.Add(cv.outer)
		}
	}
}

func (tk *Toolkit) SetPreferredSize(n *dialogkit.Node, size dialogkit.Size) {
	v := tk.view(n)
	v.min.SetMinSize(toFyne(size))
	v.min.Refresh()
	if v.split != nil {
		if panel, _ := n.TreeViewState().Split(); size.Width > 0 {
			v.split.SetOffset(float64(panel) / float64(size.Width))
		}
	}
}

// PreferredSize measures the widgets of a leaf dialog.
func (tk *Toolkit) PreferredSize(n *dialogkit.Node) (dialogkit.Size, bool) {
	if _, ok := n.Behavior().(Viewer); !ok {
		return dialogkit.Size{}, false
	}
	return fromFyne(tk.view(n).body.MinSize()), true
}

func (tk *Toolkit) Refresh(n *dialogkit.Node) {
	tk.view(n).outer.Refresh()
}

// Select shows the card stored under key in a TreeView dialog.
func (tk *Toolkit) Select(n *dialogkit.Node, key string) bool {
	v := tk.view(n)
	obj, ok := v.shown[key]
	if !ok {
		return false
	}
	for _, o := range v.cards.Objects {
		if o == obj {
			o.Show()
		} else {
			o.Hide()
		}
	}
	v.cards.Refresh()
	return true
}

// Forget drops the widgets of n and its descendants.
func (tk *Toolkit) Forget(n *dialogkit.Node) {
	if n == nil {
		return
	}
	for _, c := range n.Children() {
		tk.Forget(c)
	}
	delete(tk.views, n)
}

// view returns the objects of n, building them on first use.
func (tk *Toolkit) view(n *dialogkit.Node) *view {
	if v, ok := tk.views[n]; ok {
		return v
	}
	v := &view{node: n, min: canvas.NewRectangle(color.Transparent)}
	var content fyne.CanvasObject
	if viewer, ok := n.Behavior().(Viewer); ok {
		content = viewer.CanvasObject()
	}
	switch n.Kind() {
	case dialogkit.Tab:
		v.tabs = container.NewAppTabs()
		v.body = withContent(content, v.tabs)
	case dialogkit.TreeView:
		v.shown = make(map[string]fyne.CanvasObject)
		v.cards = container.NewStack()
		v.tree = tk.newTree(n)
		v.split = container.NewHSplit(v.tree, v.cards)
		v.body = withContent(content, v.split)
	default:
		v.rows = container.NewVBox()
		if content != nil {
			v.rows.Add(content)
		}
		v.body = v.rows
	}
	v.outer = container.NewStack(v.min, v.body)
	tk.views[n] = v
	return v
}

func withContent(content, body fyne.CanvasObject) fyne.CanvasObject {
	if content == nil {
		return body
	}
	return container.NewBorder(content, nil, nil, nil, body)
}

// claim records how to take v out of its new container, first taking it
// out of the one it is in. A fyne object has at most one parent, so a
// grandchild shown by a tab group or card panel leaves its intermediate
// dialog's container.
func (tk *Toolkit) claim(v *view, detach func()) {
	if v.detach != nil {
		v.detach()
	}
	v.detach = detach
}

// appendTab adds page to tabs, nesting AppTabs for groups.
func (tk *Toolkit) appendTab(a *dialogkit.Arena, tabs *container.AppTabs, page *dialogkit.TabPage) {
	if !page.IsGroup() {
		cv := tk.view(a.Node(page.Dialog))
		item := container.NewTabItem(page.Label, cv.outer)
		tk.claim(cv, func() { tabs.Remove(item) })
		tabs.Append(item)
		return
	}
	nested := container.NewAppTabs()
	for _, p := range page.Pages {
		tk.appendTab(a, nested, p)
	}
	tabs.Append(container.NewTabItem(page.Label, nested))
}

// newTree binds a widget.Tree to the TreeItems of n. UIDs are index paths
// from the root, e.g. "root/1/0".
func (tk *Toolkit) newTree(n *dialogkit.Node) *widget.Tree {
	state := n.TreeViewState()
	tree := widget.NewTree(
		func(uid widget.TreeNodeID) []widget.TreeNodeID {
			if uid == "" {
				return []widget.TreeNodeID{rootUID}
			}
			it := itemAt(state.Root(), uid)
			if it == nil {
				return nil
			}
			ids := make([]widget.TreeNodeID, len(it.Children))
			for i := range it.Children {
				ids[i] = uid + "/" + strconv.Itoa(i)
			}
			return ids
		},
		func(uid widget.TreeNodeID) bool {
			if uid == "" || uid == rootUID {
				return true
			}
			it := itemAt(state.Root(), uid)
			return it != nil && !it.IsLeaf()
		},
		func(bool) fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(uid widget.TreeNodeID, _ bool, obj fyne.CanvasObject) {
			if it := itemAt(state.Root(), uid); it != nil {
				obj.(*widget.Label).SetText(it.Label)
			}
		},
	)
	tree.OnSelected = func(uid widget.TreeNodeID) {
		if it := itemAt(state.Root(), uid); it != nil && it.IsLeaf() {
			tk.Select(n, it.CardKey)
		}
	}
	return tree
}

// itemAt resolves an index-path UID below root.
func itemAt(root *dialogkit.TreeItem, uid string) *dialogkit.TreeItem {
	parts := strings.Split(uid, "/")
	if parts[0] != rootUID {
		return nil
	}
	it := root
	for _, p := range parts[1:] {
		i, err := strconv.Atoi(p)
		if err != nil || i < 0 || i >= len(it.Children) {
			return nil
		}
		it = it.Children[i]
	}
	return it
}
