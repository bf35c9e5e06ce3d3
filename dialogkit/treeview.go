package dialogkit

import "strings"

// collisionMark is appended to a leaf name until it is unique.
const collisionMark = "*"

// TreeViewState is the variant state of a TreeView dialog: a tree on the
// left, a card panel on the right showing one leaf dialog at a time.
type TreeViewState struct {
	owner        *Node
	root         *TreeItem
	cards        []Card
	used         map[string]struct{}
	panelWidth   int
	dividerWidth int
}

func (t *TreeViewState) kind() Kind { return TreeView }

func (t *TreeViewState) initialize(n *Node) bool {
	t.owner = n
	if !validString(t.root.Label) {
		t.root.Label = typeName(n.behavior)
	}
	if t.used == nil {
		t.used = make(map[string]struct{})
	}
	return validString(t.root.Label) && t.panelWidth >= 0 && t.dividerWidth >= 0
}

// RootName is the label of the tree root.
func (t *TreeViewState) RootName() string {
	return t.root.Label
}

// SetRootName relabels the tree root.
func (t *TreeViewState) SetRootName(name string) {
	t.root.Label = name
	if t.owner != nil {
		t.owner.arena.toolkit.Refresh(t.owner)
	}
}

// Root returns the tree root. Its children are the top-level entries.
func (t *TreeViewState) Root() *TreeItem {
	return t.root
}

// Cards returns the card panel entries in the order they were added.
func (t *TreeViewState) Cards() []Card {
	out := make([]Card, len(t.cards))
	copy(out, t.cards)
	return out
}

// Card returns the dialog shown for key.
func (t *TreeViewState) Card(key string) (NodeID, bool) {
	for _, c := range t.cards {
		if c.Key == key {
			return c.Dialog, true
		}
	}
	return NoNode, false
}

// Split returns the tree panel width and the divider width.
func (t *TreeViewState) Split() (panel, divider int) {
	return t.panelWidth, t.dividerWidth
}

// SetSplit moves the splitter. Sizes already computed are left alone.
func (t *TreeViewState) SetSplit(panel, divider int) {
	t.panelWidth = max(panel, 0)
	t.dividerWidth = max(divider, 0)
}

// uniqueName returns name, with collisionMark appended as many times as
// needed to make it unused, and records it.
func (t *TreeViewState) uniqueName(name string) string {
	if t.used == nil {
		t.used = make(map[string]struct{})
	}
	var b strings.Builder
	b.WriteString(name)
	for {
		if _, taken := t.used[b.String()]; !taken {
			break
		}
		b.WriteString(collisionMark)
	}
	key := b.String()
	t.used[key] = struct{}{}
	return key
}

// addChild adds a leaf under the root and shows child on the card of the
// same name.
func (t *TreeViewState) addChild(n, child *Node, caption string) error {
	if err := n.arena.checkAttachable("TreeView.AddChild", n, child); err != nil {
		return err
	}
	label := caption
	if !validString(label) {
		label = properCaption(child)
	}
	key := t.uniqueName(label)
	item := &TreeItem{Label: key, CardKey: key}

	n.arena.attach(n, child)
	t.root.Children = append(t.root.Children, item)
	t.cards = append(t.cards, Card{Key: key, Dialog: child.id})

	tk := n.arena.toolkit
	tk.Place(n, nil, Placement{Kind: PlaceTreeItem, Item: item})
	tk.Place(n, child, Placement{Kind: PlaceCard, Key: key})
	return n.resize(child.size)
}

// addChildren adds one branch labeled caption that mirrors the whole batch.
// Only leaf dialogs get a card.
func (t *TreeViewState) addChildren(n *Node, children []*Node, caption string) error {
	if len(children) == 0 {
		return nil
	}
	if err := n.arena.checkBatch("TreeView.AddChildren", n, children); err != nil {
		return err
	}
	label := caption
	if !validString(label) {
		label = properCaption(children[0])
	}
	for _, c := range children {
		n.arena.attach(n, c)
	}
	var cards []Card
	branch := &TreeItem{Label: label, Children: t.mirror(children, &cards)}
	t.root.Children = append(t.root.Children, branch)
	t.cards = append(t.cards, cards...)

	tk := n.arena.toolkit
	tk.Place(n, nil, Placement{Kind: PlaceTreeItem, Item: branch})
	for _, c := range cards {
		tk.Place(n, n.arena.nodes[c.Dialog], Placement{Kind: PlaceCard, Key: c.Key})
	}
	return n.resize(LargestSize(children))
}

// mirror builds the tree items for nodes and collects the cards of their
// leaves.
func (t *TreeViewState) mirror(nodes []*Node, cards *[]Card) []*TreeItem {
	items := make([]*TreeItem, 0, len(nodes))
	for _, c := range nodes {
		if kids := c.Children(); len(kids) > 0 {
			items = append(items, &TreeItem{Label: properCaption(c), Children: t.mirror(kids, cards)})
			continue
		}
		key := t.uniqueName(properCaption(c))
		items = append(items, &TreeItem{Label: key, CardKey: key})
		*cards = append(*cards, Card{Key: key, Dialog: c.id})
	}
	return items
}
