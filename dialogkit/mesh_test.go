package dialogkit

import "testing"

func assertCompleteMesh(t *testing.T, nodes []*Node) {
	t.Helper()
	for _, a := range nodes {
		if a.IsListening(a) {
			t.Errorf("Expected %s not to listen to itself", a)
		}
		for _, b := range nodes {
			if a == b {
				continue
			}
			if !a.IsListening(b) {
				t.Errorf("Expected %s to have %s as listener", a, b)
			}
			if a.IsListening(b) != b.IsListening(a) {
				t.Errorf("Expected listener relation between %s and %s to be symmetric", a, b)
			}
		}
		if got := len(a.Listeners()); got != len(nodes)-1 {
			t.Errorf("Expected %s to have %d listeners, got %d", a, len(nodes)-1, got)
		}
	}
}

func TestListenerMesh_CompleteAfterNestedAdds(t *testing.T) {
	a, _ := newTestArena()
	root := factoryDialog(t, a, TreeView)

	inner, err := a.NewTab(&recorder{name: "Inner", valid: true})
	mustInit(t, inner, err)
	l1 := leaf(t, a, "L1", NewSize(10, 10), nil)
	l2 := leaf(t, a, "L2", NewSize(10, 10), nil)
	if err := inner.AddChildren([]*Node{l1, l2}, "Pair"); err != nil {
		t.Fatalf("AddChildren failed: %v", err)
	}
	assertCompleteMesh(t, []*Node{inner, l1, l2})

	x := leaf(t, a, "X", NewSize(10, 10), nil)
	y := leaf(t, a, "Y", NewSize(10, 10), nil)
	for _, c := range []*Node{x, y, inner} {
		if err := root.AddChild(c, ""); err != nil {
			t.Fatalf("AddChild(%s) failed: %v", c, err)
		}
	}
	assertCompleteMesh(t, []*Node{root, x, y, inner, l1, l2})
}

func TestListenerMesh_LinkMergesBothSides(t *testing.T) {
	a, _ := newTestArena()
	p := leaf(t, a, "P", Size{}, nil)
	q := leaf(t, a, "Q", Size{}, nil)
	x := leaf(t, a, "X", Size{}, nil)
	y := leaf(t, a, "Y", Size{}, nil)

	a.linkListeners(p, q)
	a.linkListeners(x, y)
	a.linkListeners(q, x)

	assertCompleteMesh(t, []*Node{p, q, x, y})
}

func TestBroadcast_ReachesEveryListenerButSender(t *testing.T) {
	a, _ := newTestArena()
	root, err := a.NewTab(&recorder{name: "Root", valid: true})
	mustInit(t, root, err)

	var children []*Node
	for _, name := range []string{"A", "B", "C"} {
		c := leaf(t, a, name, NewSize(10, 10), nil)
		if err := root.AddChild(c, ""); err != nil {
			t.Fatalf("AddChild failed: %v", err)
		}
		children = append(children, c)
	}

	children[1].Broadcast("001", 7)

	for _, n := range []*Node{root, children[0], children[2]} {
		got := n.Behavior().(*recorder).got
		if len(got) != 1 || got[0] != "001" {
			t.Errorf("Expected %s to receive [001], got %v", n, got)
		}
	}
	if got := children[1].Behavior().(*recorder).got; len(got) != 0 {
		t.Errorf("Expected sender to receive nothing, got %v", got)
	}
}
