package element

import tea "github.com/charmbracelet/bubbletea"

// Updater is the value-receiver update shape used by bubbles components.
type Updater[M any] interface {
	Update(msg tea.Msg) (M, tea.Cmd)
	View() string
}

// Wrapped adapts a bubbles-style component into a View.
type Wrapped[M Updater[M]] struct {
	Model  M
	init   tea.Cmd
	resize func(m *M, width, height int)
}

// WrapOption configures a Wrapped view.
type WrapOption[M Updater[M]] func(*Wrapped[M])

// WithInit sets the command returned every time the view is shown.
func WithInit[M Updater[M]](cmd tea.Cmd) WrapOption[M] {
	return func(w *Wrapped[M]) { w.init = cmd }
}

// WithResize sets how the wrapped component receives its box.
func WithResize[M Updater[M]](fn func(m *M, width, height int)) WrapOption[M] {
	return func(w *Wrapped[M]) { w.resize = fn }
}

// Wrap returns m as a View.
func Wrap[M Updater[M]](m M, opts ...WrapOption[M]) *Wrapped[M] {
	w := &Wrapped[M]{Model: m}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Init implements View.
func (w *Wrapped[M]) Init() tea.Cmd { return w.init }

// Update implements View.
func (w *Wrapped[M]) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	w.Model, cmd = w.Model.Update(msg)
	return cmd
}

// View implements View.
func (w *Wrapped[M]) View() string { return w.Model.View() }

// SetSize implements Sizer.
func (w *Wrapped[M]) SetSize(width, height int) {
	if w.resize != nil {
		w.resize(&w.Model, width, height)
	}
}

// Text is a static view, mostly useful as placeholder content.
type Text struct {
	Body string
}

// NewText returns a static view rendering body.
func NewText(body string) *Text { return &Text{Body: body} }

// Init implements View.
func (t *Text) Init() tea.Cmd { return nil }

// Update implements View.
func (t *Text) Update(tea.Msg) tea.Cmd { return nil }

// View implements View.
func (t *Text) View() string { return t.Body }
