package dialogkit

import "fmt"

// simpleCapacity is the number of rows a Simple dialog has.
const simpleCapacity = 2

// simpleVariant stacks up to two children vertically. It has no state of
// its own: the rows are the node's children.
type simpleVariant struct{}

func (simpleVariant) kind() Kind { return Simple }

func (simpleVariant) initialize(*Node) bool { return true }

func (v simpleVariant) addChild(n, child *Node, _ string) error {
	const op = "Simple.AddChild"
	if len(n.children) >= simpleCapacity {
		return newError(op, KindCapacity, n, ErrCapacity)
	}
	if err := n.arena.checkAttachable(op, n, child); err != nil {
		return err
	}
	if !n.factory {
		return newError(op, KindUnsupported, n, ErrNotResizable)
	}
	v.place(n, child)
	return n.resize(child.size)
}

func (v simpleVariant) addChildren(n *Node, children []*Node, _ string) error {
	const op = "Simple.AddChildren"
	if len(children) == 0 {
		return nil
	}
	if free := simpleCapacity - len(n.children); len(children) > free {
		return newError(op, KindCapacity, n, fmt.Errorf("%w: missing %d slot(s)", ErrCapacity, len(children)-free))
	}
	if err := n.arena.checkBatch(op, n, children); err != nil {
		return err
	}
	if !n.factory {
		return newError(op, KindUnsupported, n, ErrNotResizable)
	}
	for _, c := range children {
		v.place(n, c)
		if err := n.resize(c.size); err != nil {
			return err
		}
	}
	return nil
}

// place puts child on the next free row.
func (simpleVariant) place(n, child *Node) {
	row := len(n.children)
	n.arena.attach(n, child)
	n.arena.toolkit.Place(n, child, Placement{Kind: PlaceRow, Row: row})
}
