package dialogkit

// buttonReserve is the height n keeps for its OK/Cancel row.
func buttonReserve(n *Node) int {
	if n.factory {
		return n.arena.metrics.ButtonRowHeight()
	}
	return 0
}

// resizeThis stacks the child under the current content. Only factory
// dialogs can grow this way.
func (simpleVariant) resizeThis(n *Node, childSize Size) error {
	if !n.factory {
		return newError("Simple.resizeThis", KindUnsupported, n, ErrNotResizable)
	}
	size := Size{
		Width:  max(n.size.Width, childSize.Width),
		Height: n.size.Height + childSize.Height,
	}
	n.SetSize(size)
	n.fitWindow(size)
	return nil
}

// resizeThis grows the tab area to fit childSize and carries the growth up
// to the ancestors.
func (t *TabState) resizeThis(n *Node, childSize Size) error {
	reserve := buttonReserve(n)
	usable := n.size.Add(0, -reserve)
	final := usable.Max(childSize)
	if final == usable {
		return nil
	}
	grown := final.Add(0, n.arena.metrics.TabHeaderHeight)

	if p := n.Parent(); p != nil {
		n.SetSize(grown)
		return p.resize(grown)
	}
	if !n.factory {
		n.SetSize(grown)
		return nil
	}
	grown = grown.Add(0, reserve)
	n.SetSize(grown)
	n.fitWindow(grown)
	return nil
}

// resizeThis grows the card panel to fit childSize. The tree panel and the
// divider keep their width.
func (t *TreeViewState) resizeThis(n *Node, childSize Size) error {
	split := t.panelWidth + t.dividerWidth
	reserve := buttonReserve(n)
	content := n.size.Add(-split, -reserve)
	final := content.Max(childSize)
	if final == content {
		return nil
	}
	grown := final.Add(split, 0)

	if p := n.Parent(); p != nil {
		n.SetSize(grown)
		return p.resize(grown)
	}
	if !n.factory {
		n.SetSize(grown)
		return nil
	}
	grown = grown.Add(0, reserve)
	n.SetSize(grown)
	n.fitWindow(grown)
	return nil
}
