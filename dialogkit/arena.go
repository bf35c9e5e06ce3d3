// Package dialogkit composes dialogs into trees of nested panels.
//
// Every node lives in an Arena and refers to its parent, children and
// listeners by NodeID. A node is one of three variants:
//
//   - Simple stacks at most two children vertically.
//   - Tab shows one child per tab, or a nested tab group per batch.
//   - TreeView shows a tree next to a card panel holding the leaf dialogs.
//
// Adding a child grows the parent (and, for Tab and TreeView, its
// ancestors) to fit, and links the child into the parent's listener mesh so
// that Broadcast reaches every dialog of the hierarchy.
//
// All calls are expected on the UI goroutine; nothing here is locked except
// the Factory singleton.
package dialogkit

import (
	"fmt"
	"reflect"
)

// NodeID addresses a node inside its Arena.
type NodeID int

// NoNode is the parent of an un-parented node.
const NoNode NodeID = -1

// Config configures an Arena.
type Config struct {
	// Toolkit renders the dialogs. Nil means a HeadlessToolkit.
	Toolkit Toolkit
	// Metrics are the layout constants; zero fields take their defaults.
	Metrics Metrics
}

// Arena owns the nodes of one or more dialog hierarchies.
type Arena struct {
	nodes   []*Node
	toolkit Toolkit
	metrics Metrics
}

// NewArena creates an empty arena.
func NewArena(cfg Config) *Arena {
	tk := cfg.Toolkit
	if tk == nil {
		tk = NewHeadlessToolkit()
	}
	return &Arena{
		toolkit: tk,
		metrics: cfg.Metrics.withDefaults(),
	}
}

func (a *Arena) Toolkit() Toolkit { return a.toolkit }
func (a *Arena) Metrics() Metrics { return a.metrics }
func (a *Arena) Len() int         { return len(a.nodes) }

// Node returns the node with the given id, or nil.
func (a *Arena) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(a.nodes) {
		return nil
	}
	return a.nodes[id]
}

// New creates a standalone node of kind k driven by b.
func (a *Arena) New(k Kind, b Behavior) (*Node, error) {
	return a.newNode("Arena.New", k, b)
}

// NewSimple creates a standalone Simple dialog.
func (a *Arena) NewSimple(b Behavior) (*Node, error) {
	return a.newNode("Arena.NewSimple", Simple, b)
}

// NewTab creates a standalone Tab dialog.
func (a *Arena) NewTab(b Behavior) (*Node, error) {
	return a.newNode("Arena.NewTab", Tab, b)
}

// NewTreeView creates a standalone TreeView dialog.
func (a *Arena) NewTreeView(b Behavior) (*Node, error) {
	return a.newNode("Arena.NewTreeView", TreeView, b)
}

func (a *Arena) newNode(op string, k Kind, b Behavior) (*Node, error) {
	if isNil(b) {
		return nil, newError(op, KindNotImplemented, nil, ErrMissingBehavior)
	}
	v, err := a.newVariant(k)
	if err != nil {
		return nil, newError(op, KindConfiguration, nil, err)
	}
	n := &Node{
		arena:    a,
		id:       NodeID(len(a.nodes)),
		parent:   NoNode,
		behavior: b,
		variant:  v,
	}
	a.nodes = append(a.nodes, n)
	if binder, ok := b.(Binder); ok {
		binder.BindNode(n)
	}
	return n, nil
}

func (a *Arena) newVariant(k Kind) (variant, error) {
	switch k {
	case Simple:
		return simpleVariant{}, nil
	case Tab:
		return &TabState{}, nil
	case TreeView:
		return &TreeViewState{
			root:         &TreeItem{},
			panelWidth:   a.metrics.TreePanelWidth,
			dividerWidth: a.metrics.DividerWidth,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}

// checkAttachable reports why child cannot become a child of parent.
func (a *Arena) checkAttachable(op string, parent, child *Node) error {
	if child == nil {
		return newError(op, KindConfiguration, parent, ErrNilChild)
	}
	if child.arena != a {
		return newError(op, KindStructure, parent, ErrForeignNode)
	}
	if !parent.initialized || !child.initialized {
		return newError(op, KindConfiguration, parent, fmt.Errorf("%w: %s", ErrNotInitialized, uninitialized(parent, child)))
	}
	if child.parent != NoNode {
		return newError(op, KindStructure, parent, fmt.Errorf("%w: %s", ErrAlreadyAttached, child))
	}
	for p := parent; p != nil; p = p.Parent() {
		if p == child {
			return newError(op, KindStructure, parent, fmt.Errorf("%w: %s", ErrCycle, child))
		}
	}
	return nil
}

// checkBatch validates a whole batch before any of it is attached.
func (a *Arena) checkBatch(op string, parent *Node, children []*Node) error {
	seen := make(map[*Node]struct{}, len(children))
	for _, c := range children {
		if err := a.checkAttachable(op, parent, c); err != nil {
			return err
		}
		if _, dup := seen[c]; dup {
			return newError(op, KindStructure, parent, fmt.Errorf("%w: %s appears twice", ErrAlreadyAttached, c))
		}
		seen[c] = struct{}{}
	}
	return nil
}

// attach records child under parent and merges their listener meshes.
func (a *Arena) attach(parent, child *Node) {
	parent.children = append(parent.children, child.id)
	a.linkListeners(parent, child)
	child.parent = parent.id
}

func uninitialized(parent, child *Node) string {
	if !parent.initialized {
		return parent.String()
	}
	return child.String()
}

func isNil(b Behavior) bool {
	if b == nil {
		return true
	}
	v := reflect.ValueOf(b)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
