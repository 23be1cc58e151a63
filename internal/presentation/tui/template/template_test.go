package template

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tesso57/statusview/internal/presentation/tui/element"
)

func TestNewRegistry_Builtins(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	for _, id := range []ID{BuiltinLoading, BuiltinEmpty, BuiltinError, BuiltinNoNetwork} {
		if _, ok := r.Lookup(id); !ok {
			t.Fatalf("built-in %q missing", id)
		}
	}

	loading, _ := r.Lookup(BuiltinLoading)
	if !loading.Spinner {
		t.Fatal("built-in loading template should spin")
	}
	for _, id := range []ID{BuiltinError, BuiltinNoNetwork} {
		tmpl, _ := r.Lookup(id)
		if len(tmpl.Buttons) != 1 || tmpl.Buttons[0].ID != RetryControl {
			t.Fatalf("%q should carry the retry control, got %#v", id, tmpl.Buttons)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name: "valid",
			doc:  "id: demo.other\ntitle: Other\nbuttons:\n  - id: btn_test\n    label: Test\n    key: t\n",
		},
		{
			name:    "missing id",
			doc:     "title: Nope\n",
			wantErr: ErrInvalidTemplate,
		},
		{
			name:    "duplicate button",
			doc:     "id: x\nbuttons:\n  - id: a\n  - id: a\n",
			wantErr: ErrInvalidTemplate,
		},
		{
			name:    "button without id",
			doc:     "id: x\nbuttons:\n  - label: Go\n",
			wantErr: ErrInvalidTemplate,
		},
		{
			name:    "empty document",
			doc:     "",
			wantErr: ErrInvalidTemplate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := Parse(strings.NewReader("id: x\nunknown_field: 1\n")); err == nil {
		t.Fatal("unknown fields should be rejected")
	}
}

func TestRegistry_LoadDirOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "error.yaml"),
		[]byte("id: msl.error\ntitle: Custom failure\nbuttons:\n  - id: retry\n    label: Again\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yml"),
		[]byte("id: demo.other\ntitle: Other\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0600))

	r, err := NewRegistry()
	require.NoError(t, err)

	n, err := r.LoadDir(dir)
	require.NoError(t, err)
	if n != 2 {
		t.Fatalf("LoadDir loaded %d, want 2", n)
	}
	got, _ := r.Lookup(BuiltinError)
	if got.Title != "Custom failure" {
		t.Fatalf("override not applied: %q", got.Title)
	}
	if _, ok := r.Lookup("demo.other"); !ok {
		t.Fatal("demo.other not registered")
	}
}

func TestRegistry_LoadDirMissingAndInvalid(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	n, err := r.LoadDir(filepath.Join(t.TempDir(), "absent"))
	if err != nil || n != 0 {
		t.Fatalf("missing dir: n=%d err=%v", n, err)
	}
	if n, err := r.LoadDir(""); err != nil || n != 0 {
		t.Fatalf("empty dir: n=%d err=%v", n, err)
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("title: no id\n"), 0600))
	if _, err := r.LoadDir(dir); !errors.Is(err, ErrInvalidTemplate) {
		t.Fatalf("LoadDir error = %v, want ErrInvalidTemplate", err)
	}
}

func TestRegistry_RegisterAndIDs(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	if err := r.Register(Template{}); !errors.Is(err, ErrInvalidTemplate) {
		t.Fatalf("Register(empty) error = %v", err)
	}
	require.NoError(t, r.Register(Template{ID: "a.first", Title: "First"}))

	ids := r.IDs()
	if ids[0] != "a.first" {
		t.Fatalf("IDs() not sorted: %v", ids)
	}
}

func TestFactory_Materialize(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)
	f := NewFactory(r)

	v, err := f.Materialize(BuiltinError)
	require.NoError(t, err)
	if _, ok := element.FindChild(v, RetryControl); !ok {
		t.Fatal("materialized error view has no retry control")
	}
	if !strings.Contains(v.View(), "Something went wrong") {
		t.Fatalf("unexpected render %q", v.View())
	}

	again, err := f.Materialize(BuiltinError)
	require.NoError(t, err)
	if again == v {
		t.Fatal("each materialization should build a new instance")
	}

	if _, err := f.Materialize("nope"); !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("Materialize(unknown) error = %v", err)
	}
	if f.Registry() != r {
		t.Fatal("Registry() mismatch")
	}
}

func TestTemplate_SpecDefaultsLabel(t *testing.T) {
	spec := Template{ID: "x", Buttons: []Button{{ID: " go "}}}.Spec()
	if spec.Buttons[0].ID != "go" || spec.Buttons[0].Label != "go" {
		t.Fatalf("unexpected button spec %#v", spec.Buttons[0])
	}
}
