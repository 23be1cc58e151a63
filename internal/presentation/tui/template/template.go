// Package template declares status view templates and materializes them
// into views.
package template

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/statusview/internal/presentation/tui/element"
	"gopkg.in/yaml.v3"
)

// ID references a template. The empty ID means unset.
type ID string

// Built-in template ids, used when a status has no configured template.
const (
	BuiltinLoading   ID = "msl.loading"
	BuiltinEmpty     ID = "msl.empty"
	BuiltinError     ID = "msl.error"
	BuiltinNoNetwork ID = "msl.no_network"
)

// RetryControl is the id of the conventional retry button found in the
// error and no-network templates.
const RetryControl = "retry"

var (
	// ErrUnknownTemplate is returned when materializing an unregistered id.
	ErrUnknownTemplate = errors.New("unknown template")
	// ErrInvalidTemplate is returned for templates failing validation.
	ErrInvalidTemplate = errors.New("invalid template")
)

// Button declares a clickable child of a template.
type Button struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Key   string `yaml:"key"`
}

// Template is the inert description of a status view.
type Template struct {
	ID      ID       `yaml:"id"`
	Title   string   `yaml:"title"`
	Message string   `yaml:"message"`
	Icon    string   `yaml:"icon,omitempty"`
	Color   string   `yaml:"color,omitempty"`
	Spinner bool     `yaml:"spinner,omitempty"`
	Buttons []Button `yaml:"buttons,omitempty"`
}

// Parse decodes and validates one YAML template document.
func Parse(r io.Reader) (Template, error) {
	var t Template
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return Template{}, fmt.Errorf("%w: empty document", ErrInvalidTemplate)
		}
		return Template{}, fmt.Errorf("decode template: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Template{}, err
	}
	return t, nil
}

// Validate checks the template for structural errors.
func (t Template) Validate() error {
	if strings.TrimSpace(string(t.ID)) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidTemplate)
	}
	seen := make(map[string]struct{}, len(t.Buttons))
	for i, b := range t.Buttons {
		id := strings.TrimSpace(b.ID)
		if id == "" {
			return fmt.Errorf("%w: %s: button %d has no id", ErrInvalidTemplate, t.ID, i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s: duplicate button id %q", ErrInvalidTemplate, t.ID, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Spec converts the template into a panel spec.
func (t Template) Spec() element.PanelSpec {
	spec := element.PanelSpec{
		Title:   t.Title,
		Message: t.Message,
		Icon:    t.Icon,
		Color:   lipgloss.Color(t.Color),
		Spinner: t.Spinner,
		Buttons: make([]element.ButtonSpec, 0, len(t.Buttons)),
	}
	for _, b := range t.Buttons {
		id := strings.TrimSpace(b.ID)
		label := b.Label
		if label == "" {
			label = id
		}
		spec.Buttons = append(spec.Buttons, element.ButtonSpec{
			ID:    id,
			Label: label,
			Keys:  b.Key,
		})
	}
	return spec
}
