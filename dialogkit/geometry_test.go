package dialogkit

import "testing"

func TestMetrics_PreferredSize(t *testing.T) {
	m := DefaultMetrics()
	tests := []struct {
		kind Kind
		want Size
	}{
		{Simple, NewSize(300, 106)},
		{Tab, NewSize(350, 256)},
		{TreeView, NewSize(400, 306)},
	}
	for _, tt := range tests {
		if got := m.PreferredSize(tt.kind); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.kind, tt.want, got)
		}
	}
	if m.ButtonRowHeight() != 106 {
		t.Errorf("Expected button row height 106, got %d", m.ButtonRowHeight())
	}
	if m.SplitWidth() != 157 {
		t.Errorf("Expected split width 157, got %d", m.SplitWidth())
	}
}

func TestMetrics_WithDefaults(t *testing.T) {
	m := Metrics{TabHeaderHeight: 30, TreePanelWidth: 200}.withDefaults()
	if m.TabHeaderHeight != 30 || m.TreePanelWidth != 200 {
		t.Errorf("Expected explicit values to be kept, got %+v", m)
	}
	if m.BaseDialogSize != NewSize(300, 106) || m.DividerWidth != 7 {
		t.Errorf("Expected defaults for zero fields, got %+v", m)
	}
}

func TestLargestSize(t *testing.T) {
	a, _ := newTestArena()
	nodes := []*Node{
		leaf(t, a, "A", NewSize(100, 20), nil),
		nil,
		leaf(t, a, "B", NewSize(40, 90), nil),
	}
	if got := LargestSize(nodes); got != NewSize(100, 90) {
		t.Errorf("Expected 100x90, got %s", got)
	}
}
