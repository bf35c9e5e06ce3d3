package dialogkit

import (
	"reflect"
	"strings"
)

// Behavior holds the hooks every dialog must provide. There is no default
// implementation: a node cannot be built without one.
type Behavior interface {
	// ValidateThis reports whether the dialog's own input is valid.
	ValidateThis() bool
	// SaveThis writes the dialog's input back to its model.
	SaveThis() error
	// CleanThis releases or resets the dialog's input.
	CleanThis()
	// ExternalValue receives a value broadcast by another dialog of the same hierarchy.
	ExternalValue(id string, value any)
}

// Sizer is implemented by behaviors that know their preferred size.
type Sizer interface {
	PreferredSize() Size
}

// Binder is implemented by behaviors that need their node, usually to
// broadcast. BindNode is called once, when the node is created.
type Binder interface {
	BindNode(n *Node)
}

// typeNamer lets a behavior report the name used as caption fallback.
type typeNamer interface {
	TypeName() string
}

// stubBehavior is the trivial implementation factory dialogs are built with.
type stubBehavior struct {
	kind Kind
}

func (stubBehavior) ValidateThis() bool            { return true }
func (stubBehavior) SaveThis() error               { return nil }
func (stubBehavior) CleanThis()                    {}
func (stubBehavior) ExternalValue(_ string, _ any) {}
func (s stubBehavior) TypeName() string            { return s.kind.TypeName() }

// typeName is the simple type name of b, without package or pointer marks.
func typeName(b Behavior) string {
	if tn, ok := b.(typeNamer); ok {
		return tn.TypeName()
	}
	t := reflect.TypeOf(b)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	name := t.Name()
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func validString(s string) bool {
	return strings.TrimSpace(s) != ""
}
