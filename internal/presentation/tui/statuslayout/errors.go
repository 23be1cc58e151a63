package statuslayout

import (
	"errors"
	"fmt"
)

var (
	// ErrAmbiguousContent means the host supplied several children and no
	// content template, so the content view cannot be identified.
	ErrAmbiguousContent = errors.New("more than one child and no content template")
	// ErrNilView is returned when SetView is given a nil view.
	ErrNilView = errors.New("nil view")
	// ErrNoStatus is returned when SetView targets status.None.
	ErrNoStatus = errors.New("status none cannot hold a view")
)

// ConfigError is a fatal configuration error detected at construction.
type ConfigError struct {
	Children int
	Err      error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("status layout: %v (children=%d)", e.Err, e.Children)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
