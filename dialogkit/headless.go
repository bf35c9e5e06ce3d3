package dialogkit

// PlacedChild is a Place call recorded by the HeadlessToolkit.
type PlacedChild struct {
	Child     NodeID
	Placement Placement
}

// HeadlessToolkit renders nothing. It records what the dialog tree asks of
// it, which is enough to drive the tree in tests and in tools without a
// display.
type HeadlessToolkit struct {
	shells    []*HeadlessShell
	actions   map[NodeID]Actions
	placed    map[NodeID][]PlacedChild
	preferred map[NodeID]Size
	refreshed map[NodeID]int
}

func NewHeadlessToolkit() *HeadlessToolkit {
	return &HeadlessToolkit{
		actions:   make(map[NodeID]Actions),
		placed:    make(map[NodeID][]PlacedChild),
		preferred: make(map[NodeID]Size),
		refreshed: make(map[NodeID]int),
	}
}

func (tk *HeadlessToolkit) NewShell() Shell {
	sh := &HeadlessShell{content: NoNode}
	tk.shells = append(tk.shells, sh)
	return sh
}

func (tk *HeadlessToolkit) Decorate(n *Node, actions Actions) {
	tk.actions[n.ID()] = actions
}

func (tk *HeadlessToolkit) Mount(shell Shell, n *Node) {
	if sh, ok := shell.(*HeadlessShell); ok {
		sh.content = n.ID()
	}
}

func (tk *HeadlessToolkit) Place(parent, child *Node, p Placement) {
	id := NoNode
	if child != nil {
		id = child.ID()
	}
	tk.placed[parent.ID()] = append(tk.placed[parent.ID()], PlacedChild{Child: id, Placement: p})
}

func (tk *HeadlessToolkit) SetPreferredSize(n *Node, size Size) {
	tk.preferred[n.ID()] = size
}

func (tk *HeadlessToolkit) PreferredSize(n *Node) (Size, bool) {
	s, ok := tk.preferred[n.ID()]
	return s, ok
}

func (tk *HeadlessToolkit) Refresh(n *Node) {
	tk.refreshed[n.ID()]++
}

// Shells returns every shell created so far.
func (tk *HeadlessToolkit) Shells() []*HeadlessShell {
	out := make([]*HeadlessShell, len(tk.shells))
	copy(out, tk.shells)
	return out
}

// Actions returns the button handlers n was decorated with.
func (tk *HeadlessToolkit) Actions(n *Node) (Actions, bool) {
	a, ok := tk.actions[n.ID()]
	return a, ok
}

// Placements returns the Place calls made on parent, oldest first.
func (tk *HeadlessToolkit) Placements(parent *Node) []PlacedChild {
	return append([]PlacedChild(nil), tk.placed[parent.ID()]...)
}

// Refreshes returns how many times n was refreshed.
func (tk *HeadlessToolkit) Refreshes(n *Node) int {
	return tk.refreshed[n.ID()]
}

// HeadlessShell is the window of the HeadlessToolkit.
type HeadlessShell struct {
	title    string
	minSize  Size
	packs    int
	visible  bool
	closed   bool
	content  NodeID
	warnings []string
	onClose  []func()
}

func (s *HeadlessShell) Title() string         { return s.title }
func (s *HeadlessShell) SetTitle(title string) { s.title = title }
func (s *HeadlessShell) SetMinSize(size Size)  { s.minSize = size }
func (s *HeadlessShell) Pack()                 { s.packs++ }
func (s *HeadlessShell) Show()                 { s.visible = true }
func (s *HeadlessShell) Hide()                 { s.visible = false }

func (s *HeadlessShell) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.visible = false
	for _, fn := range s.onClose {
		fn()
	}
}

func (s *HeadlessShell) Warn(title, message string) {
	s.warnings = append(s.warnings, title+": "+message)
}

func (s *HeadlessShell) AddCloseListener(fn func()) {
	s.onClose = append(s.onClose, fn)
}

func (s *HeadlessShell) MinSize() Size      { return s.minSize }
func (s *HeadlessShell) Packs() int         { return s.packs }
func (s *HeadlessShell) Visible() bool      { return s.visible }
func (s *HeadlessShell) Closed() bool       { return s.closed }
func (s *HeadlessShell) Content() NodeID    { return s.content }
func (s *HeadlessShell) Warnings() []string { return append([]string(nil), s.warnings...) }
