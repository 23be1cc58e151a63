package element

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PanelSpec describes the static structure of a Panel.
type PanelSpec struct {
	Title   string
	Message string
	Icon    string
	Color   lipgloss.Color
	Spinner bool
	Buttons []ButtonSpec
}

// ButtonSpec describes one button of a Panel.
type ButtonSpec struct {
	ID    string
	Label string
	Keys  string
}

type panelKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
}

var panelKeys = panelKeyMap{
	Next:     key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next")),
	Prev:     key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev")),
	Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
}

// Panel is a centred status view: icon, title, message, an optional
// spinner and a row of buttons.
type Panel struct {
	title      string
	message    string
	icon       string
	color      lipgloss.Color
	hasSpinner bool
	spinner    spinner.Model
	buttons    []*Button
	focus      int
	width      int
	height     int
}

// NewPanel builds a Panel from spec.
func NewPanel(spec PanelSpec) *Panel {
	p := &Panel{
		title:      spec.Title,
		message:    spec.Message,
		icon:       spec.Icon,
		color:      spec.Color,
		hasSpinner: spec.Spinner,
		focus:      -1,
	}
	if p.color == "" {
		p.color = lipgloss.Color("205")
	}
	if spec.Spinner {
		s := spinner.New()
		s.Spinner = spinner.Dot
		s.Style = lipgloss.NewStyle().Foreground(p.color)
		p.spinner = s
	}
	for _, b := range spec.Buttons {
		p.buttons = append(p.buttons, NewButton(b.ID, b.Label, b.Keys))
	}
	return p
}

// Init starts the spinner, if any.
func (p *Panel) Init() tea.Cmd {
	if !p.hasSpinner {
		return nil
	}
	return p.spinner.Tick
}

// Update advances the spinner and activates buttons.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !p.hasSpinner {
			return nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return nil
}

func (p *Panel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if len(p.buttons) == 0 {
		return nil
	}
	switch {
	case key.Matches(msg, panelKeys.Next):
		p.focus = (p.focus + 1) % len(p.buttons)
		return nil
	case key.Matches(msg, panelKeys.Prev):
		if p.focus <= 0 {
			p.focus = len(p.buttons) - 1
		} else {
			p.focus--
		}
		return nil
	case key.Matches(msg, panelKeys.Activate):
		if p.focus >= 0 {
			return p.buttons[p.focus].Click()
		}
		return nil
	}
	for _, b := range p.buttons {
		if key.Matches(msg, b.Binding) {
			return b.Click()
		}
	}
	return nil
}

// Child implements Finder.
func (p *Panel) Child(id string) (Clickable, bool) {
	for _, b := range p.buttons {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// Buttons returns the panel's buttons in display order.
func (p *Panel) Buttons() []*Button {
	return p.buttons
}

// SetSize implements Sizer.
func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// View renders the panel.
func (p *Panel) View() string {
	var lines []string

	head := strings.TrimSpace(strings.TrimSpace(p.icon) + " " + p.title)
	if head != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(p.color).Render(head))
	}

	message := p.message
	if p.hasSpinner {
		message = strings.TrimSpace(p.spinner.View() + " " + message)
	}
	if message != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Render(message))
	}

	if row := p.renderButtons(); row != "" {
		lines = append(lines, "", row)
	}

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if p.width > 0 && p.height > 0 {
		return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

func (p *Panel) renderButtons() string {
	if len(p.buttons) == 0 {
		return ""
	}
	normal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	focused := normal.BorderForeground(p.color).Foreground(p.color)

	rendered := make([]string, 0, len(p.buttons))
	for i, b := range p.buttons {
		label := b.Label
		if h := b.Binding.Help(); h.Key != "" {
			label += " (" + h.Key + ")"
		}
		style := normal
		if i == p.focus {
			style = focused
		}
		rendered = append(rendered, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
