package dialogkit

import "fmt"

// Size is a width/height pair in device-independent pixels.
type Size struct {
	Width  int `json:"width" mapstructure:"width"`
	Height int `json:"height" mapstructure:"height"`
}

func NewSize(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Max returns the element-wise maximum of s and o.
func (s Size) Max(o Size) Size {
	return Size{Width: max(s.Width, o.Width), Height: max(s.Height, o.Height)}
}

// Add grows s by dw and dh.
func (s Size) Add(dw, dh int) Size {
	return Size{Width: s.Width + dw, Height: s.Height + dh}
}

func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// LargestSize returns the element-wise maximum over the current sizes of nodes.
func LargestSize(nodes []*Node) Size {
	var largest Size
	for _, n := range nodes {
		if n != nil {
			largest = largest.Max(n.Size())
		}
	}
	return largest
}

// Metrics are the layout constants the resize algorithms depend on.
type Metrics struct {
	// ButtonSize is the size of the OK/Cancel buttons of factory dialogs.
	ButtonSize Size `json:"button_size" mapstructure:"button_size"`
	// BaseDialogSize is the preferred size of a factory Simple dialog. Its
	// height is also the height reserved for the button row.
	BaseDialogSize Size `json:"base_dialog_size" mapstructure:"base_dialog_size"`
	// TabExtra and TreeExtra are added to BaseDialogSize for factory Tab and
	// TreeView dialogs.
	TabExtra  Size `json:"tab_extra" mapstructure:"tab_extra"`
	TreeExtra Size `json:"tree_extra" mapstructure:"tree_extra"`
	// TabHeaderHeight is the height of a tab strip.
	TabHeaderHeight int `json:"tab_header_height" mapstructure:"tab_header_height"`
	// TreePanelWidth is where the TreeView splitter sits; DividerWidth is its thickness.
	TreePanelWidth int `json:"tree_panel_width" mapstructure:"tree_panel_width"`
	DividerWidth   int `json:"divider_width" mapstructure:"divider_width"`
}

// DefaultMetrics returns the stock layout constants.
func DefaultMetrics() Metrics {
	buttons := NewSize(80, 26)
	return Metrics{
		ButtonSize:      buttons,
		BaseDialogSize:  NewSize(300, buttons.Height+80),
		TabExtra:        NewSize(50, 150),
		TreeExtra:       NewSize(100, 200),
		TabHeaderHeight: 52,
		TreePanelWidth:  150,
		DividerWidth:    7,
	}
}

// ButtonRowHeight is the height a factory dialog reserves for its buttons.
func (m Metrics) ButtonRowHeight() int {
	return m.BaseDialogSize.Height
}

// SplitWidth is the width taken by the tree panel plus the divider.
func (m Metrics) SplitWidth() int {
	return m.TreePanelWidth + m.DividerWidth
}

// PreferredSize is the default size a factory dialog of kind k starts with.
func (m Metrics) PreferredSize(k Kind) Size {
	switch k {
	case Tab:
		return m.BaseDialogSize.Add(m.TabExtra.Width, m.TabExtra.Height)
	case TreeView:
		return m.BaseDialogSize.Add(m.TreeExtra.Width, m.TreeExtra.Height)
	default:
		return m.BaseDialogSize
	}
}

// withDefaults fills zero fields from DefaultMetrics.
func (m Metrics) withDefaults() Metrics {
	d := DefaultMetrics()
	if m.ButtonSize.IsZero() {
		m.ButtonSize = d.ButtonSize
	}
	if m.BaseDialogSize.IsZero() {
		m.BaseDialogSize = d.BaseDialogSize
	}
	if m.TabExtra.IsZero() {
		m.TabExtra = d.TabExtra
	}
	if m.TreeExtra.IsZero() {
		m.TreeExtra = d.TreeExtra
	}
	if m.TabHeaderHeight == 0 {
		m.TabHeaderHeight = d.TabHeaderHeight
	}
	if m.TreePanelWidth == 0 {
		m.TreePanelWidth = d.TreePanelWidth
	}
	if m.DividerWidth == 0 {
		m.DividerWidth = d.DividerWidth
	}
	return m
}
