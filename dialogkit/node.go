package dialogkit

import (
	"errors"
	"fmt"

	"hospital-desk/internal/debuglog"
)

const logPrefix = "dialogkit"

// Kind is the variant of a dialog.
type Kind int

const (
	Simple Kind = iota
	Tab
	TreeView
)

func (k Kind) String() string {
	switch k {
	case Simple:
		return "Simple"
	case Tab:
		return "Tab"
	case TreeView:
		return "Tree"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TypeName is the name factory dialogs of kind k fall back to.
func (k Kind) TypeName() string {
	switch k {
	case Simple:
		return "SimpleDialog"
	case Tab:
		return "TabDialog"
	case TreeView:
		return "TreeViewDialog"
	default:
		return "Dialog"
	}
}

// variant is the capability every dialog kind implements.
type variant interface {
	kind() Kind
	initialize(n *Node) bool
	addChild(n, child *Node, caption string) error
	addChildren(n *Node, children []*Node, caption string) error
	resizeThis(n *Node, childSize Size) error
}

// Node is a dialog of the hierarchy.
type Node struct {
	arena *Arena
	id    NodeID

	caption       string
	containerName string
	size          Size
	sizeSet       bool
	factory       bool
	initialized   bool

	parent    NodeID
	children  []NodeID
	listeners *listenerSet

	behavior Behavior
	variant  variant
	shell    Shell
}

func (n *Node) ID() NodeID             { return n.id }
func (n *Node) Arena() *Arena          { return n.arena }
func (n *Node) Kind() Kind             { return n.variant.kind() }
func (n *Node) Behavior() Behavior     { return n.behavior }
func (n *Node) Caption() string        { return n.caption }
func (n *Node) Size() Size             { return n.size }
func (n *Node) IsFactoryCreated() bool { return n.factory }
func (n *Node) IsInitialized() bool    { return n.initialized }

// Shell is the window hosting a factory dialog; nil for other dialogs.
func (n *Node) Shell() Shell { return n.shell }

func (n *Node) SetCaption(caption string) { n.caption = caption }

// ContainerName is the name the dialog was registered under.
func (n *Node) ContainerName() string { return n.containerName }

func (n *Node) SetContainerName(name string) { n.containerName = name }

// SetSize replaces the dialog's current size.
func (n *Node) SetSize(size Size) {
	n.size = size
	n.sizeSet = true
	n.arena.toolkit.SetPreferredSize(n, size)
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node {
	if n.parent == NoNode {
		return nil
	}
	return n.arena.Node(n.parent)
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, id := range n.children {
		out = append(out, n.arena.nodes[id])
	}
	return out
}

// Listeners returns the nodes that receive n's broadcasts.
func (n *Node) Listeners() []*Node {
	if n.listeners == nil {
		return nil
	}
	ids := n.listeners.ids()
	out := make([]*Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, n.arena.nodes[id])
	}
	return out
}

// IsListening reports whether o receives n's broadcasts.
func (n *Node) IsListening(o *Node) bool {
	return n.listeners != nil && o != nil && n.listeners.has(o.id)
}

// TabState returns the Tab variant state, or nil for other kinds.
func (n *Node) TabState() *TabState {
	t, _ := n.variant.(*TabState)
	return t
}

// TreeViewState returns the TreeView variant state, or nil for other kinds.
func (n *Node) TreeViewState() *TreeViewState {
	t, _ := n.variant.(*TreeViewState)
	return t
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return properCaption(n)
}

// Initialize fills the defaults a dialog needs before it can take part in a
// hierarchy and reports whether every required field is set. It must run
// before the node is attached.
func (n *Node) Initialize() bool {
	if n.parent != NoNode {
		return false
	}
	name := typeName(n.behavior)
	if !validString(n.caption) {
		n.caption = name
	}
	if !validString(n.containerName) {
		n.containerName = name
	}
	if !n.sizeSet {
		if s, ok := n.behavior.(Sizer); ok {
			n.size = s.PreferredSize()
		} else if s, ok := n.arena.toolkit.PreferredSize(n); ok {
			n.size = s
		}
		n.sizeSet = true
	}
	if n.children == nil {
		n.children = make([]NodeID, 0)
	}
	if n.listeners == nil {
		n.listeners = newListenerSet()
	}
	n.initialized = validString(n.caption) && validString(n.containerName) && n.variant.initialize(n)
	return n.initialized
}

// InitializeDialog runs Initialize and reports failure as an error.
func InitializeDialog(n *Node) error {
	if n == nil {
		return newError("InitializeDialog", KindConfiguration, nil, ErrNilChild)
	}
	if !n.Initialize() {
		return newError("InitializeDialog", KindConfiguration, n, errors.New("dialog could not be initialized"))
	}
	return nil
}

// AddChild attaches child under n. A blank caption falls back to the
// child's own caption.
func (n *Node) AddChild(child *Node, caption string) error {
	debuglog.Log(logPrefix, debuglog.LevelVerbose, debuglog.UseGlobal, "%s: adding %s to %s", n.Kind(), child, n)
	return n.variant.addChild(n, child, caption)
}

// AddChildren attaches every dialog of children under n.
func (n *Node) AddChildren(children []*Node, caption string) error {
	debuglog.Log(logPrefix, debuglog.LevelVerbose, debuglog.UseGlobal, "%s: adding %d dialogs to %s as %q", n.Kind(), len(children), n, caption)
	return n.variant.addChildren(n, children, caption)
}

// Broadcast hands (id, value) to every listener of n.
func (n *Node) Broadcast(id string, value any) {
	for _, l := range n.Listeners() {
		l.behavior.ExternalValue(id, value)
	}
}

// ValidateAll validates the children depth-first and then n itself. It
// stops at the first dialog that fails.
func (n *Node) ValidateAll() bool {
	for _, c := range n.Children() {
		if !c.ValidateAll() {
			return false
		}
	}
	return n.behavior.ValidateThis()
}

// SaveAll saves the children depth-first and then n itself. Every dialog is
// saved even if an earlier one fails.
func (n *Node) SaveAll() error {
	var errs []error
	for _, c := range n.Children() {
		if err := c.SaveAll(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := n.behavior.SaveThis(); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", n, err))
	}
	return errors.Join(errs...)
}

// CleanupAll cleans the children depth-first and then n itself.
func (n *Node) CleanupAll() {
	for _, c := range n.Children() {
		c.CleanupAll()
	}
	n.behavior.CleanThis()
}

// resize grows n to fit a child of childSize.
func (n *Node) resize(childSize Size) error {
	return n.variant.resizeThis(n, childSize)
}

// topShell is the window of the closest factory dialog at or above n.
func (n *Node) topShell() Shell {
	for p := n; p != nil; p = p.Parent() {
		if p.shell != nil {
			return p.shell
		}
	}
	return nil
}

// fitWindow makes the hosting window at least size and packs it.
func (n *Node) fitWindow(size Size) {
	if sh := n.topShell(); sh != nil {
		sh.SetMinSize(size)
		sh.Pack()
	}
}

// properCaption is n's caption, or its type name when the caption is blank.
func properCaption(n *Node) string {
	if validString(n.caption) {
		return n.caption
	}
	return typeName(n.behavior)
}
