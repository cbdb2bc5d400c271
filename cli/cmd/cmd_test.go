package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMakeContext_Bindings(t *testing.T) {
	sctx, err := MakeContext(
		[]string{"robot=tb3", "map=world"},
		[]string{"ROBOT_MODEL=waffle"},
		"",
	)
	if err != nil {
		t.Fatalf("context error: %v", err)
	}

	if value, _ := sctx.Configuration("robot"); value != "tb3" {
		t.Errorf("expected robot='tb3', got %q", value)
	}

	if value, _ := sctx.Configuration("map"); value != "world" {
		t.Errorf("expected map='world', got %q", value)
	}

	if value, _ := sctx.Environ("ROBOT_MODEL"); value != "waffle" {
		t.Errorf("expected ROBOT_MODEL='waffle', got %q", value)
	}
}

func TestMakeContext_MalformedBinding(t *testing.T) {
	if _, err := MakeContext([]string{"novalue"}, nil, ""); !errors.Is(err, ErrBinding) {
		t.Errorf("expected ErrBinding, got %v", err)
	}

	if _, err := MakeContext(nil, []string{"novalue"}, ""); !errors.Is(err, ErrBinding) {
		t.Errorf("expected ErrBinding, got %v", err)
	}
}

func TestMakeContext_ValueWithEquals(t *testing.T) {
	sctx, err := MakeContext([]string{"expr=a=b"}, nil, "")
	if err != nil {
		t.Fatalf("context error: %v", err)
	}

	if value, _ := sctx.Configuration("expr"); value != "a=b" {
		t.Errorf("expected value split on first '=', got %q", value)
	}
}

func TestMakeContext_Description(t *testing.T) {
	path := filepath.Join(t.TempDir(), "description.yaml")

	doc := `
launch:
  - arg:
      name: robot
      default: tb3
  - let:
      name: scale
      value: "$(eval '2 * 3')"
`

	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write description: %v", err)
	}

	sctx, err := MakeContext(nil, nil, path)
	if err != nil {
		t.Fatalf("context error: %v", err)
	}

	if value, _ := sctx.Configuration("robot"); value != "tb3" {
		t.Errorf("expected robot='tb3', got %q", value)
	}

	if value, _ := sctx.Configuration("scale"); value != "6" {
		t.Errorf("expected scale='6', got %q", value)
	}
}

func TestMakeContext_BindingOverridesDeclaration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "description.yaml")

	doc := `
launch:
  - arg:
      name: robot
      default: tb3
`

	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write description: %v", err)
	}

	sctx, err := MakeContext([]string{"robot=tb4"}, nil, path)
	if err != nil {
		t.Fatalf("context error: %v", err)
	}

	if value, _ := sctx.Configuration("robot"); value != "tb4" {
		t.Errorf("expected binding to win over default, got %q", value)
	}
}
