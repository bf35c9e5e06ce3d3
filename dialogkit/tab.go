package dialogkit

// TabState is the variant state of a Tab dialog: its tab pages, in the
// order they were added.
type TabState struct {
	pages []*TabPage
}

func (t *TabState) kind() Kind { return Tab }

func (t *TabState) initialize(*Node) bool {
	if t.pages == nil {
		t.pages = make([]*TabPage, 0)
	}
	return true
}

// Pages returns the top-level tab pages.
func (t *TabState) Pages() []*TabPage {
	out := make([]*TabPage, len(t.pages))
	copy(out, t.pages)
	return out
}

// addChild adds one tab labeled caption, or the child's caption when blank.
func (t *TabState) addChild(n, child *Node, caption string) error {
	if err := n.arena.checkAttachable("Tab.AddChild", n, child); err != nil {
		return err
	}
	label := caption
	if !validString(label) {
		label = properCaption(child)
	}
	page := &TabPage{Label: label, Dialog: child.id}

	n.arena.attach(n, child)
	t.pages = append(t.pages, page)
	n.arena.toolkit.Place(n, child, Placement{Kind: PlaceTab, Page: page})
	return n.resize(child.size)
}

// addChildren adds a single tab holding a nested tab group for the batch.
func (t *TabState) addChildren(n *Node, children []*Node, caption string) error {
	if len(children) == 0 {
		return nil
	}
	if err := n.arena.checkBatch("Tab.AddChildren", n, children); err != nil {
		return err
	}
	label := caption
	if !validString(label) {
		label = properCaption(children[0])
	}
	for _, c := range children {
		n.arena.attach(n, c)
	}
	page := &TabPage{Label: label, Dialog: NoNode, Pages: groupPages(children)}
	t.pages = append(t.pages, page)
	n.arena.toolkit.Place(n, nil, Placement{Kind: PlaceTab, Page: page})
	return n.resize(LargestSize(children))
}

// groupPages mirrors nodes as tab pages. Dialogs with children of their own
// become nested groups.
func groupPages(nodes []*Node) []*TabPage {
	pages := make([]*TabPage, 0, len(nodes))
	for _, c := range nodes {
		if kids := c.Children(); len(kids) > 0 {
			pages = append(pages, &TabPage{Label: properCaption(c), Dialog: NoNode, Pages: groupPages(kids)})
			continue
		}
		pages = append(pages, &TabPage{Label: properCaption(c), Dialog: c.id})
	}
	return pages
}
