package dialogkit

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestInitialize_Defaults(t *testing.T) {
	a, _ := newTestArena()

	n, err := a.NewSimple(plainBehavior{})
	if err != nil {
		t.Fatalf("NewSimple failed: %v", err)
	}
	if !n.Initialize() {
		t.Fatal("Expected Initialize to succeed")
	}
	if n.Caption() != "plainBehavior" {
		t.Errorf("Expected caption %q, got %q", "plainBehavior", n.Caption())
	}
	if n.ContainerName() != "plainBehavior" {
		t.Errorf("Expected container name %q, got %q", "plainBehavior", n.ContainerName())
	}
	if len(n.Children()) != 0 || len(n.Listeners()) != 0 {
		t.Errorf("Expected empty children and listeners, got %d and %d", len(n.Children()), len(n.Listeners()))
	}

	sized := leaf(t, a, "Sized", NewSize(120, 40), nil)
	if sized.Size() != NewSize(120, 40) {
		t.Errorf("Expected size 120x40, got %s", sized.Size())
	}

	named, err := a.NewSimple(plainBehavior{})
	if err != nil {
		t.Fatalf("NewSimple failed: %v", err)
	}
	named.SetCaption("Custom")
	named.SetContainerName("panel")
	mustInit(t, named, nil)
	if named.Caption() != "Custom" || named.ContainerName() != "panel" {
		t.Errorf("Expected explicit names to survive, got %q/%q", named.Caption(), named.ContainerName())
	}
}

func TestInitialize_FailsOnceAttached(t *testing.T) {
	a, _ := newTestArena()
	root := factoryDialog(t, a, Simple)
	child := leaf(t, a, "Child", NewSize(10, 10), nil)
	if err := root.AddChild(child, ""); err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	if child.Initialize() {
		t.Error("Expected Initialize of an attached dialog to fail")
	}
	err := InitializeDialog(child)
	if KindOf(err) != KindConfiguration {
		t.Errorf("Expected configuration error, got %v", err)
	}
}

func TestNew_RequiresBehavior(t *testing.T) {
	a, _ := newTestArena()
	tests := []struct {
		name string
		b    Behavior
	}{
		{"nil interface", nil},
		{"typed nil pointer", (*recorder)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := a.NewTreeView(tt.b)
			if n != nil {
				t.Errorf("Expected no node, got %s", n)
			}
			if KindOf(err) != KindNotImplemented || !errors.Is(err, ErrMissingBehavior) {
				t.Errorf("Expected missing behavior error, got %v", err)
			}
		})
	}
	if a.Len() != 0 {
		t.Errorf("Expected empty arena, got %d nodes", a.Len())
	}
}

func TestNew_UnknownKind(t *testing.T) {
	a, _ := newTestArena()
	_, err := a.New(Kind(42), plainBehavior{})
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind, got %v", err)
	}
}

func TestAddChild_StructureErrors(t *testing.T) {
	a, _ := newTestArena()
	root, err := a.NewTab(&recorder{name: "Root", valid: true})
	mustInit(t, root, err)
	attached := leaf(t, a, "Attached", NewSize(10, 10), nil)
	if err := root.AddChild(attached, ""); err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	sub, err := a.NewTab(&recorder{name: "Sub", valid: true})
	mustInit(t, sub, err)
	if err := root.AddChild(sub, ""); err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}

	other, _ := newTestArena()
	foreign := leaf(t, other, "Foreign", Size{}, nil)

	raw, err := a.NewSimple(plainBehavior{})
	if err != nil {
		t.Fatalf("NewSimple failed: %v", err)
	}

	tests := []struct {
		name   string
		parent *Node
		child  *Node
		want   error
	}{
		{"nil child", root, nil, ErrNilChild},
		{"already attached", root, attached, ErrAlreadyAttached},
		{"ancestor", sub, root, ErrCycle},
		{"other arena", root, foreign, ErrForeignNode},
		{"not initialized", root, raw, ErrNotInitialized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(tt.parent.Children())
			err := tt.parent.AddChild(tt.child, "")
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if got := len(tt.parent.Children()); got != before {
				t.Errorf("Expected %d children, got %d", before, got)
			}
		})
	}
}

func TestValidateAll_StopsAtFirstFailure(t *testing.T) {
	a, _ := newTestArena()
	var log []string
	root, err := a.NewTab(&recorder{name: "Root", valid: true, log: &log})
	mustInit(t, root, err)

	c1 := leaf(t, a, "C1", NewSize(10, 10), &log)
	c2, err := a.NewSimple(&recorder{name: "C2", valid: false, log: &log})
	mustInit(t, c2, err)
	c3 := leaf(t, a, "C3", NewSize(10, 10), &log)
	for _, c := range []*Node{c1, c2, c3} {
		if err := root.AddChild(c, ""); err != nil {
			t.Fatalf("AddChild failed: %v", err)
		}
	}

	if root.ValidateAll() {
		t.Fatal("Expected ValidateAll to fail")
	}
	want := []string{"validate:C1", "validate:C2"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("Expected %v, got %v", want, log)
	}
}

func TestRecursiveActions_PostOrder(t *testing.T) {
	a, _ := newTestArena()
	var log []string
	root, err := a.NewTab(&recorder{name: "Root", valid: true, log: &log})
	mustInit(t, root, err)
	mid, err := a.NewTab(&recorder{name: "Mid", valid: true, log: &log})
	mustInit(t, mid, err)
	if err := mid.AddChild(leaf(t, a, "Leaf", NewSize(10, 10), &log), ""); err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	if err := root.AddChild(mid, ""); err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	if err := root.AddChild(leaf(t, a, "Last", NewSize(10, 10), &log), ""); err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}

	tests := []struct {
		action string
		run    func()
	}{
		{"validate", func() {
			if !root.ValidateAll() {
				t.Error("Expected ValidateAll to succeed")
			}
		}},
		{"save", func() {
			if err := root.SaveAll(); err != nil {
				t.Errorf("Expected SaveAll to succeed, got %v", err)
			}
		}},
		{"clean", root.CleanupAll},
	}
	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			log = nil
			tt.run()
			var want []string
			for _, name := range []string{"Leaf", "Mid", "Last", "Root"} {
				want = append(want, tt.action+":"+name)
			}
			if !reflect.DeepEqual(log, want) {
				t.Errorf("Expected %v, got %v", want, log)
			}
		})
	}
}

func TestSaveAll_VisitsEveryDialog(t *testing.T) {
	a, _ := newTestArena()
	var log []string
	boom := errors.New("disk full")
	root, err := a.NewTab(&recorder{name: "Root", valid: true, log: &log})
	mustInit(t, root, err)
	bad, err := a.NewSimple(&recorder{name: "Bad", valid: true, saveErr: boom, log: &log})
	mustInit(t, bad, err)
	good := leaf(t, a, "Good", NewSize(10, 10), &log)
	if err := root.AddChildren([]*Node{bad, good}, "All"); err != nil {
		t.Fatalf("AddChildren failed: %v", err)
	}

	err = root.SaveAll()
	if !errors.Is(err, boom) {
		t.Errorf("Expected error wrapping %v, got %v", boom, err)
	}
	if err != nil && !strings.Contains(err.Error(), "Bad") {
		t.Errorf("Expected error to name the dialog, got %q", err.Error())
	}
	want := []string{"save:Bad", "save:Good", "save:Root"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("Expected %v, got %v", want, log)
	}
}
