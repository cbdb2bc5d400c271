package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func resolveString(t *testing.T, doc string) kong.Resolver {
	t.Helper()

	r, err := resolve(baseConfig)(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("resolver error: %v", err)
	}

	return r
}

func resolveFlag(t *testing.T, r kong.Resolver, name string) any {
	t.Helper()

	value, err := r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: name}})
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	return value
}

func TestResolve_Flags(t *testing.T) {
	r := resolveString(t, `
config:
  log-level: debug
  log_format: text
  log-pretty: true
`)

	if got := resolveFlag(t, r, "log-level"); got != "debug" {
		t.Errorf("expected 'debug', got %v", got)
	}

	// Underscore keys satisfy hyphenated flag names.
	if got := resolveFlag(t, r, "log-format"); got != "text" {
		t.Errorf("expected 'text', got %v", got)
	}

	if got := resolveFlag(t, r, "log-pretty"); got != true {
		t.Errorf("expected true, got %v", got)
	}

	if got := resolveFlag(t, r, "absent"); got != nil {
		t.Errorf("expected nil for missing key, got %v", got)
	}
}

func TestResolve_NumbersAsStrings(t *testing.T) {
	r := resolveString(t, `
config:
  retries: 3
  timeout: 1.5
`)

	if got := resolveFlag(t, r, "retries"); got != "3" {
		t.Errorf("expected \"3\", got %v (%T)", got, got)
	}

	if got := resolveFlag(t, r, "timeout"); got != "1.5" {
		t.Errorf("expected \"1.5\", got %v (%T)", got, got)
	}
}

func TestResolve_MalformedYAML(t *testing.T) {
	r := resolveString(t, "config: [")

	if got := resolveFlag(t, r, "log-level"); got != nil {
		t.Errorf("malformed config must resolve nothing, got %v", got)
	}
}

func TestResolve_MissingSection(t *testing.T) {
	r := resolveString(t, "other: {}")

	if got := resolveFlag(t, r, "log-level"); got != nil {
		t.Errorf("missing section must resolve nothing, got %v", got)
	}
}
