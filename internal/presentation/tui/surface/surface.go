// Package surface provides the host tree a status layout attaches its
// views to.
package surface

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/statusview/internal/presentation/tui/element"
)

// Dimension is a layout size request along one axis.
type Dimension int

const (
	// MatchParent fills the parent along the axis.
	MatchParent Dimension = -1
	// WrapContent uses the child's natural size.
	WrapContent Dimension = -2
)

// LayoutSpec are the layout parameters of an attached child.
type LayoutSpec struct {
	Width  Dimension
	Height Dimension
}

// FullBleed fills the parent on both axes.
var FullBleed = LayoutSpec{Width: MatchParent, Height: MatchParent}

// Surface is the host tree contract used by the status layout.
type Surface interface {
	// Children lists the attached children in attach order.
	Children() []element.View
	Attach(v element.View, spec LayoutSpec)
	Detach(v element.View)
	SetVisible(v element.View, visible bool)
	Attached(v element.View) bool
	Visible(v element.View) bool
}

type child struct {
	view    element.View
	spec    LayoutSpec
	visible bool
}

// Frame stacks its children in one box; only visible children render and
// receive messages.
type Frame struct {
	children []*child
	width    int
	height   int
}

// NewFrame returns a frame holding the given pre-existing children, all
// visible and full-bleed.
func NewFrame(children ...element.View) *Frame {
	f := &Frame{}
	for _, v := range children {
		if v != nil {
			f.Attach(v, FullBleed)
		}
	}
	return f
}

func (f *Frame) find(v element.View) (int, *child) {
	for i, c := range f.children {
		if c.view == v {
			return i, c
		}
	}
	return -1, nil
}

// Children implements Surface.
func (f *Frame) Children() []element.View {
	out := make([]element.View, 0, len(f.children))
	for _, c := range f.children {
		out = append(out, c.view)
	}
	return out
}

// Attach implements Surface. Attaching an attached view only updates its
// layout spec.
func (f *Frame) Attach(v element.View, spec LayoutSpec) {
	if v == nil {
		return
	}
	if _, c := f.find(v); c != nil {
		c.spec = spec
		f.layout(c)
		return
	}
	c := &child{view: v, spec: spec, visible: true}
	f.children = append(f.children, c)
	f.layout(c)
}

// Detach implements Surface.
func (f *Frame) Detach(v element.View) {
	i, _ := f.find(v)
	if i < 0 {
		return
	}
	f.children = append(f.children[:i], f.children[i+1:]...)
}

// SetVisible implements Surface.
func (f *Frame) SetVisible(v element.View, visible bool) {
	if _, c := f.find(v); c != nil {
		c.visible = visible
	}
}

// Attached implements Surface.
func (f *Frame) Attached(v element.View) bool {
	_, c := f.find(v)
	return c != nil
}

// Visible implements Surface.
func (f *Frame) Visible(v element.View) bool {
	_, c := f.find(v)
	return c != nil && c.visible
}

// SetSize resizes the frame and its full-bleed children.
func (f *Frame) SetSize(width, height int) {
	f.width = width
	f.height = height
	for _, c := range f.children {
		f.layout(c)
	}
}

// Size returns the frame box.
func (f *Frame) Size() (int, int) {
	return f.width, f.height
}

func (f *Frame) layout(c *child) {
	if f.width <= 0 || f.height <= 0 {
		return
	}
	w, h := f.width, f.height
	if c.spec.Width >= 0 {
		w = int(c.spec.Width)
	}
	if c.spec.Height >= 0 {
		h = int(c.spec.Height)
	}
	if c.spec.Width == WrapContent || c.spec.Height == WrapContent {
		return
	}
	element.Resize(c.view, w, h)
}

// Init starts every visible child.
func (f *Frame) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range f.children {
		if c.visible {
			cmds = append(cmds, c.view.Init())
		}
	}
	return tea.Batch(cmds...)
}

// Update forwards msg to the visible children.
func (f *Frame) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range f.visibleChildren() {
		cmds = append(cmds, c.view.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (f *Frame) visibleChildren() []*child {
	// Handlers may attach or detach children while a message is routed.
	out := make([]*child, 0, len(f.children))
	for _, c := range f.children {
		if c.visible {
			out = append(out, c)
		}
	}
	return out
}

// View renders the visible children stacked in attach order.
func (f *Frame) View() string {
	parts := make([]string, 0, len(f.children))
	for _, c := range f.children {
		if c.visible {
			parts = append(parts, c.view.View())
		}
	}
	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if f.width > 0 && f.height > 0 {
		return lipgloss.NewStyle().
			Width(f.width).
			Height(f.height).
			MaxWidth(f.width).
			MaxHeight(f.height).
			Render(body)
	}
	return body
}
