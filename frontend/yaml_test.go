package frontend

import (
	"errors"
	"strings"
	"testing"

	"github.com/zflat/launch/sub"
)

const exampleDescription = `
launch:
  - arg:
      name: robot
      default: tb3
  - let:
      name: diagonal
      value: "$(eval 'sqrt(2)')"
  - let:
      name: map
      value: "$(var robot)_world"
  - set_env:
      name: ROBOT_MODEL
      value: "$(var robot)"
`

func TestLoadDescription_Visit(t *testing.T) {
	desc, err := LoadDescription(strings.NewReader(exampleDescription))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if desc.Len() != 4 {
		t.Fatalf("expected 4 actions, got %d", desc.Len())
	}

	ctx := sub.NewContext(sub.WithoutProcessEnviron())

	if err := desc.Visit(ctx); err != nil {
		t.Fatalf("visit error: %v", err)
	}

	if value, _ := ctx.Configuration("robot"); value != "tb3" {
		t.Errorf("expected robot='tb3', got %q", value)
	}

	if value, _ := ctx.Configuration("diagonal"); value != "1.4142135623730951" {
		t.Errorf("unexpected diagonal %q", value)
	}

	if value, _ := ctx.Configuration("map"); value != "tb3_world" {
		t.Errorf("expected map='tb3_world', got %q", value)
	}

	if value, _ := ctx.Environ("ROBOT_MODEL"); value != "tb3" {
		t.Errorf("expected ROBOT_MODEL='tb3', got %q", value)
	}
}

func TestLoadDescription_ArgRespectsProvidedValue(t *testing.T) {
	desc, err := LoadDescription(strings.NewReader(exampleDescription))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	ctx := sub.NewContext(
		sub.WithoutProcessEnviron(),
		sub.WithConfigurations(map[string]string{"robot": "tb4"}),
	)

	if err := desc.Visit(ctx); err != nil {
		t.Fatalf("visit error: %v", err)
	}

	if value, _ := ctx.Configuration("map"); value != "tb4_world" {
		t.Errorf("expected provided value to win, got map=%q", value)
	}
}

func TestLoadDescription_ArgWithoutDefault(t *testing.T) {
	doc := `
launch:
  - arg:
      name: required
`

	desc, err := LoadDescription(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	err = desc.Visit(sub.NewContext())
	if !errors.Is(err, sub.ErrConfigurationNotFound) {
		t.Errorf("expected ErrConfigurationNotFound, got %v", err)
	}

	ctx := sub.NewContext(
		sub.WithConfigurations(map[string]string{"required": "yes"}),
	)

	if err := desc.Visit(ctx); err != nil {
		t.Errorf("expected provided value to satisfy declaration: %v", err)
	}
}

func TestLoadDescription_MalformedSubstitutionFailsLoad(t *testing.T) {
	doc := `
launch:
  - let:
      name: bad
      value: "$(eval '1"
`

	_, err := LoadDescription(strings.NewReader(doc))
	if !errors.Is(err, ErrUnterminated) {
		t.Errorf("expected ErrUnterminated at load, got %v", err)
	}
}

func TestLoadDescription_MalformedAction(t *testing.T) {
	doc := `
launch:
  - arg:
      name: a
    let:
      name: b
      value: c
`

	_, err := LoadDescription(strings.NewReader(doc))
	if !errors.Is(err, ErrDescriptionFormat) {
		t.Errorf("expected ErrDescriptionFormat, got %v", err)
	}
}

func TestLoadDescription_InvalidYAML(t *testing.T) {
	_, err := LoadDescription(strings.NewReader("launch: ["))
	if !errors.Is(err, ErrDescriptionFormat) {
		t.Errorf("expected ErrDescriptionFormat, got %v", err)
	}
}
