package dialogkit

import (
	"testing"
)

// recorder is a test behavior that logs every hook call.
type recorder struct {
	name    string
	size    Size
	valid   bool
	saveErr error
	log     *[]string
	got     []string
}

func (r *recorder) TypeName() string    { return r.name }
func (r *recorder) PreferredSize() Size { return r.size }

func (r *recorder) ValidateThis() bool {
	r.record("validate:" + r.name)
	return r.valid
}

func (r *recorder) SaveThis() error {
	r.record("save:" + r.name)
	return r.saveErr
}

func (r *recorder) CleanThis() {
	r.record("clean:" + r.name)
}

func (r *recorder) ExternalValue(id string, value any) {
	r.got = append(r.got, id)
}

func (r *recorder) record(s string) {
	if r.log != nil {
		*r.log = append(*r.log, s)
	}
}

type plainBehavior struct{}

func (plainBehavior) ValidateThis() bool            { return true }
func (plainBehavior) SaveThis() error               { return nil }
func (plainBehavior) CleanThis()                    {}
func (plainBehavior) ExternalValue(_ string, _ any) {}

func newTestArena() (*Arena, *HeadlessToolkit) {
	tk := NewHeadlessToolkit()
	return NewArena(Config{Toolkit: tk}), tk
}

func mustInit(t *testing.T, n *Node, err error) *Node {
	t.Helper()
	if err != nil {
		t.Fatalf("Failed to create dialog: %v", err)
	}
	if err := InitializeDialog(n); err != nil {
		t.Fatalf("Failed to initialize dialog: %v", err)
	}
	return n
}

func leaf(t *testing.T, a *Arena, name string, size Size, log *[]string) *Node {
	t.Helper()
	n, err := a.NewSimple(&recorder{name: name, size: size, valid: true, log: log})
	return mustInit(t, n, err)
}

func factoryDialog(t *testing.T, a *Arena, k Kind) *Node {
	t.Helper()
	n, err := Instance().CreateDialog(a, k, nil, "", "")
	return mustInit(t, n, err)
}
