package dialogkit

// Shell is a top-level window hosting a factory dialog.
type Shell interface {
	Title() string
	SetTitle(title string)
	// SetMinSize sets the smallest size the window may take.
	SetMinSize(size Size)
	// Pack resizes the window to fit its content.
	Pack()
	Show()
	Hide()
	// Close disposes of the window. Close listeners run once.
	Close()
	// Warn shows a modal warning over the window.
	Warn(title, message string)
	// AddCloseListener registers fn to run when the window is closed.
	AddCloseListener(fn func())
}

// PlacementKind says how a child is placed in its parent container.
type PlacementKind int

const (
	// PlaceRow puts the child on row Placement.Row of a vertical stack.
	PlaceRow PlacementKind = iota
	// PlaceTab adds Placement.Page as a new tab.
	PlaceTab
	// PlaceTreeItem attaches Placement.Item under the tree root.
	PlaceTreeItem
	// PlaceCard adds the child to the card panel under Placement.Key.
	PlaceCard
)

// Placement is the layout metadata passed to the toolkit with each child.
type Placement struct {
	Kind PlacementKind
	Row  int
	Key  string
	Page *TabPage
	Item *TreeItem
}

// TabPage is one tab of a Tab dialog. A page shows either a dialog or a
// nested group of pages.
type TabPage struct {
	Label  string
	Dialog NodeID
	Pages  []*TabPage
}

// IsGroup reports whether the page holds nested pages instead of a dialog.
func (p *TabPage) IsGroup() bool {
	return p.Dialog == NoNode
}

// TreeItem is an entry of a TreeView's tree. Leaves carry the key of the
// card they select.
type TreeItem struct {
	Label    string
	CardKey  string
	Children []*TreeItem
}

// IsLeaf reports whether the item selects a card.
func (it *TreeItem) IsLeaf() bool {
	return it.CardKey != ""
}

// Card is an entry of a TreeView's card panel.
type Card struct {
	Key    string
	Dialog NodeID
}

// Actions are the handlers behind the default buttons of a factory dialog.
type Actions struct {
	OK     func()
	Cancel func()
}

// Toolkit is the rendering collaborator. The dialog tree only asks it to
// place children, to track preferred sizes and to host factory dialogs.
type Toolkit interface {
	// NewShell creates an empty, hidden top-level window.
	NewShell() Shell
	// Decorate gives a factory dialog its minimal structure: the body
	// container for its kind and the OK/Cancel buttons.
	Decorate(n *Node, actions Actions)
	// Mount makes n the content of shell.
	Mount(shell Shell, n *Node)
	// Place adds child to parent's container. child is nil for tree items
	// and tab groups, whose dialogs are placed through the pages themselves.
	Place(parent, child *Node, p Placement)
	// SetPreferredSize records the size the dialog's widget should ask for.
	SetPreferredSize(n *Node, size Size)
	// PreferredSize measures the dialog's widget, if the toolkit can.
	PreferredSize(n *Node) (Size, bool)
	// Refresh redraws n after a change to its variant state.
	Refresh(n *Node)
}
