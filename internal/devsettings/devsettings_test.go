package devsettings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/PiDelport/django-develop/internal/settings"
)

func TestLiteral(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "nil", value: nil, expected: "None"},
		{name: "true", value: true, expected: "True"},
		{name: "false", value: false, expected: "False"},
		{name: "string", value: "it's \"quoted\"\n", expected: `"it's \"quoted\"\n"`},
		{name: "int", value: 25, expected: "25"},
		{name: "int64", value: int64(-3), expected: "-3"},
		{name: "uint8", value: uint8(7), expected: "7"},
		{name: "integral float", value: 25.0, expected: "25.0"},
		{name: "float", value: 0.5, expected: "0.5"},
		{name: "large float", value: 1e21, expected: "1e+21"},
		{name: "nan", value: math.NaN(), expected: `float("nan")`},
		{name: "json number", value: json.Number("587"), expected: "587"},
		{name: "list", value: []any{"a", 1, nil}, expected: `["a", 1, None]`},
		{name: "string list", value: []string{"x"}, expected: `["x"]`},
		{
			name:     "nested map",
			value:    map[string]any{"b": map[string]any{"c": true}, "a": 1},
			expected: `{"a": 1, "b": {"c": True}}`,
		},
		{
			name:     "time",
			value:    time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
			expected: `datetime.datetime.fromisoformat("2024-05-01T12:30:00.000000+00:00")`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := literal(tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("literal() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestLiteral_Unsupported(t *testing.T) {
	if _, err := literal(struct{}{}); err == nil {
		t.Error("expected error for struct value")
	}
	if _, err := literal([]any{make(chan int)}); err == nil {
		t.Error("expected error for nested channel")
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, settings.Map{
		"SECRET_KEY": "development key for /tmp/inst",
		"DEBUG":      true,
		"X-Y":        1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `# Generated by django-develop; changes are overwritten on every run.
import datetime

DEBUG = True
SECRET_KEY = "development key for /tmp/inst"
globals()["X-Y"] = 1
`
	if diff := cmp.Diff(expected, buf.String()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	if err := Write(dir, settings.Map{"DEBUG": true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"__init__.py", "dev_settings.py", "dev_urls.py"} {
		if _, err := os.Stat(filepath.Join(dir, PackageName, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, PackageName, "dev_settings.py"))
	if err != nil {
		t.Fatalf("failed to read settings: %v", err)
	}
	if !strings.Contains(string(data), "DEBUG = True\n") {
		t.Errorf("unexpected settings module:\n%s", data)
	}
}

func TestWrite_Unrenderable(t *testing.T) {
	dir := t.TempDir()
	if err := Write(dir, settings.Map{"BAD": struct{}{}}); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(filepath.Join(dir, PackageName)); !os.IsNotExist(err) {
		t.Errorf("expected no package to be written, got %v", err)
	}
}

func TestPointEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		current *string
		warning string
	}{
		{name: "unset"},
		{name: "same", current: strPtr(SettingsModule)},
		{
			name:    "different",
			current: strPtr("mysite.settings"),
			warning: "django-develop warning: disregarding existing DJANGO_SETTINGS_MODULE (\"mysite.settings\")\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvironmentVariable, "")
			if tt.current == nil {
				os.Unsetenv(EnvironmentVariable)
			} else {
				os.Setenv(EnvironmentVariable, *tt.current)
			}

			var stderr bytes.Buffer
			if err := PointEnvironment(&stderr); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := os.Getenv(EnvironmentVariable); got != SettingsModule {
				t.Errorf("expected %s, got %s", SettingsModule, got)
			}
			if diff := cmp.Diff(tt.warning, stderr.String()); diff != "" {
				t.Errorf("warning mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrependPythonPath(t *testing.T) {
	t.Setenv("PYTHONPATH", "/existing")
	if err := PrependPythonPath("/runtime"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "/runtime" + string(os.PathListSeparator) + "/existing"
	if got := os.Getenv("PYTHONPATH"); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestPythonRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the interpreter")
	}
	python := filepath.Join(t.TempDir(), "python")
	script := "#!/bin/sh\necho \"$@\"\n[ \"$3\" = fail ] && exit 3\nexit 0\n"
	if err := os.WriteFile(python, []byte(script), 0755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	var stdout bytes.Buffer
	r := &PythonRunner{Python: python, Stdout: &stdout, Stderr: &stdout}
	if err := r.Run(context.Background(), []string{"check"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := stdout.String(); got != "-m django check\n" {
		t.Errorf("unexpected arguments: %q", got)
	}

	err := r.Run(context.Background(), []string{"fail"})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 3 {
		t.Errorf("expected exit status 3, got %v", err)
	}
}

func strPtr(s string) *string { return &s }
