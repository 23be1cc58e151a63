package template

import (
	"fmt"

	"github.com/tesso57/statusview/internal/presentation/tui/element"
	"go.uber.org/zap"
)

// Factory materializes templates from a Registry into views.
type Factory struct {
	registry *Registry
	logger   *zap.Logger
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithLogger sets the logger used to report materializations.
func WithLogger(logger *zap.Logger) FactoryOption {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFactory returns a Factory backed by registry.
func NewFactory(registry *Registry, opts ...FactoryOption) *Factory {
	f := &Factory{registry: registry, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Registry returns the registry backing f.
func (f *Factory) Registry() *Registry {
	return f.registry
}

// Materialize builds a fresh view from the template registered under id.
func (f *Factory) Materialize(id ID) (element.View, error) {
	t, ok := f.registry.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	f.logger.Debug("materialize template",
		zap.String("template", string(id)),
		zap.Int("buttons", len(t.Buttons)),
		zap.Bool("spinner", t.Spinner),
	)
	return element.NewPanel(t.Spec()), nil
}
