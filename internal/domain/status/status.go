// Package status defines the identifiers of the mutually exclusive
// status views a status layout can display.
package status

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidCode is returned for negative status codes.
	ErrInvalidCode = errors.New("invalid status code")
	// ErrUnknownName is returned when a status name cannot be parsed.
	ErrUnknownName = errors.New("unknown status name")
)

// Reserved enumerates the built-in statuses.
type Reserved int

const (
	Content Reserved = iota
	Loading
	Empty
	Error
	NoNetwork
)

// FirstCustomCode is the smallest code FromCode maps to a custom status.
const FirstCustomCode = int(NoNetwork) + 1

func (r Reserved) String() string {
	switch r {
	case Content:
		return "content"
	case Loading:
		return "loading"
	case Empty:
		return "empty"
	case Error:
		return "error"
	case NoNetwork:
		return "no_network"
	default:
		return "reserved(" + strconv.Itoa(int(r)) + ")"
	}
}

type kind uint8

const (
	kindNone kind = iota
	kindReserved
	kindCustom
)

// ID identifies a status. The zero value is None, the status of a layout
// that has not shown anything yet.
type ID struct {
	kind kind
	code uint32
}

// None is the status before the first transition.
var None = ID{}

// Of returns the ID of a reserved status.
func Of(r Reserved) ID {
	return ID{kind: kindReserved, code: uint32(r)}
}

// Custom returns the ID of a caller-defined status. Custom IDs never
// compare equal to reserved ones, whatever their number.
func Custom(n uint32) ID {
	return ID{kind: kindCustom, code: n}
}

// FromCode maps an integer code to an ID: 0-4 are the reserved statuses,
// anything larger is custom.
func FromCode(code int) (ID, error) {
	switch {
	case code < 0:
		return None, fmt.Errorf("%w: %d", ErrInvalidCode, code)
	case code < FirstCustomCode:
		return Of(Reserved(code)), nil
	default:
		return Custom(uint32(code)), nil
	}
}

// Parse accepts a reserved name, a decimal code or "custom:N".
// An empty string yields None.
func Parse(text string) (ID, error) {
	name := strings.ToLower(strings.TrimSpace(text))
	switch name {
	case "", "none":
		return None, nil
	case "content":
		return Of(Content), nil
	case "loading":
		return Of(Loading), nil
	case "empty":
		return Of(Empty), nil
	case "error":
		return Of(Error), nil
	case "no_network", "no-network", "nonetwork":
		return Of(NoNetwork), nil
	}
	if rest, ok := strings.CutPrefix(name, "custom:"); ok {
		n, err := strconv.ParseUint(rest, 10, 32)
		if err != nil {
			return None, fmt.Errorf("%w: %q", ErrUnknownName, text)
		}
		return Custom(uint32(n)), nil
	}
	code, err := strconv.Atoi(name)
	if err != nil {
		return None, fmt.Errorf("%w: %q", ErrUnknownName, text)
	}
	return FromCode(code)
}

// IsNone reports whether id is the uninitialized status.
func (id ID) IsNone() bool { return id.kind == kindNone }

// Reserved returns the reserved status id names, if it is one.
func (id ID) Reserved() (Reserved, bool) {
	if id.kind != kindReserved {
		return 0, false
	}
	return Reserved(id.code), true
}

// Custom returns the caller-defined number, if id is custom.
func (id ID) Custom() (uint32, bool) {
	if id.kind != kindCustom {
		return 0, false
	}
	return id.code, true
}

// Is reports whether id is the given reserved status.
func (id ID) Is(r Reserved) bool {
	return id.kind == kindReserved && Reserved(id.code) == r
}

// Code returns the integer code of id, or -1 for None.
func (id ID) Code() int {
	if id.kind == kindNone {
		return -1
	}
	return int(id.code)
}

func (id ID) String() string {
	switch id.kind {
	case kindReserved:
		return Reserved(id.code).String()
	case kindCustom:
		return "custom:" + strconv.FormatUint(uint64(id.code), 10)
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	if id.IsNone() {
		return []byte{}, nil
	}
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
