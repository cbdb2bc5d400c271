package sub

import (
	"errors"
	"strconv"
	"sync"
	"testing"
)

func TestContext_ConfigurationBindings(t *testing.T) {
	ctx := NewContext()

	if _, ok := ctx.Configuration("robot"); ok {
		t.Error("unexpected binding in empty context")
	}

	ctx.SetConfiguration("robot", "tb3")

	value, ok := ctx.Configuration("robot")
	if !ok || value != "tb3" {
		t.Errorf("expected 'tb3', got %q (ok=%v)", value, ok)
	}

	ctx.SetConfiguration("robot", "tb4")

	if value, _ := ctx.Configuration("robot"); value != "tb4" {
		t.Errorf("expected rebind to 'tb4', got %q", value)
	}
}

func TestContext_EnvironOverlay(t *testing.T) {
	t.Setenv("LAUNCH_TEST_VAR", "process")

	ctx := NewContext()

	if value, ok := ctx.Environ("LAUNCH_TEST_VAR"); !ok || value != "process" {
		t.Errorf("expected process value, got %q (ok=%v)", value, ok)
	}

	ctx.SetEnviron("LAUNCH_TEST_VAR", "overlay")

	if value, _ := ctx.Environ("LAUNCH_TEST_VAR"); value != "overlay" {
		t.Errorf("expected overlay to shadow process, got %q", value)
	}
}

func TestContext_Hermetic(t *testing.T) {
	t.Setenv("LAUNCH_TEST_VAR", "process")

	ctx := NewContext(WithoutProcessEnviron())

	if _, ok := ctx.Environ("LAUNCH_TEST_VAR"); ok {
		t.Error("hermetic context must not see the process environment")
	}

	ctx.SetEnviron("LAUNCH_TEST_VAR", "overlay")

	if value, ok := ctx.Environ("LAUNCH_TEST_VAR"); !ok || value != "overlay" {
		t.Errorf("expected overlay value, got %q (ok=%v)", value, ok)
	}
}

func TestContext_ConcurrentPerform(t *testing.T) {
	e, err := NewExpr([]any{"1 + ", Text("1")})
	if err != nil {
		t.Fatalf("construct error: %v", err)
	}

	ctx := NewContext()

	var wg sync.WaitGroup

	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range 50 {
				ctx.SetConfiguration("spin", strconv.Itoa(i))

				result, err := ctx.Perform(e)
				if err != nil {
					t.Errorf("perform error: %v", err)

					return
				}

				if result != "2" {
					t.Errorf("expected '2', got %q", result)

					return
				}
			}
		}()
	}

	wg.Wait()
}

func TestConfiguration_Substitution(t *testing.T) {
	cfg, err := NewConfiguration("robot")
	if err != nil {
		t.Fatalf("construct error: %v", err)
	}

	_, err = cfg.Perform(NewContext())
	if !errors.Is(err, ErrConfigurationNotFound) {
		t.Errorf("expected ErrConfigurationNotFound, got %v", err)
	}

	ctx := NewContext(WithConfigurations(map[string]string{"robot": "tb3"}))

	value, err := cfg.Perform(ctx)
	if err != nil {
		t.Fatalf("perform error: %v", err)
	}

	if value != "tb3" {
		t.Errorf("expected 'tb3', got %q", value)
	}
}

func TestConfiguration_Default(t *testing.T) {
	cfg, err := NewConfigurationDefault("robot", "fallback")
	if err != nil {
		t.Fatalf("construct error: %v", err)
	}

	value, err := cfg.Perform(NewContext())
	if err != nil {
		t.Fatalf("perform error: %v", err)
	}

	if value != "fallback" {
		t.Errorf("expected 'fallback', got %q", value)
	}
}

func TestConfiguration_Describe(t *testing.T) {
	cfg, err := NewConfiguration("robot")
	if err != nil {
		t.Fatalf("construct error: %v", err)
	}

	if got := cfg.Describe(); got != "Config('robot')" {
		t.Errorf("expected Config('robot'), got %q", got)
	}

	cfg, err = NewConfigurationDefault("robot", "tb3")
	if err != nil {
		t.Fatalf("construct error: %v", err)
	}

	if got := cfg.Describe(); got != "Config('robot', 'tb3')" {
		t.Errorf("expected default in description, got %q", got)
	}
}

func TestEnvVar_Substitution(t *testing.T) {
	env, err := NewEnvVar("LAUNCH_TEST_UNSET")
	if err != nil {
		t.Fatalf("construct error: %v", err)
	}

	ctx := NewContext(WithoutProcessEnviron())

	_, err = env.Perform(ctx)
	if !errors.Is(err, ErrEnvironmentNotFound) {
		t.Errorf("expected ErrEnvironmentNotFound, got %v", err)
	}

	ctx.SetEnviron("LAUNCH_TEST_UNSET", "set")

	value, err := env.Perform(ctx)
	if err != nil {
		t.Fatalf("perform error: %v", err)
	}

	if value != "set" {
		t.Errorf("expected 'set', got %q", value)
	}
}

func TestEnvVar_Default(t *testing.T) {
	env, err := NewEnvVarDefault("LAUNCH_TEST_UNSET", "fallback")
	if err != nil {
		t.Fatalf("construct error: %v", err)
	}

	value, err := env.Perform(NewContext(WithoutProcessEnviron()))
	if err != nil {
		t.Fatalf("perform error: %v", err)
	}

	if value != "fallback" {
		t.Errorf("expected 'fallback', got %q", value)
	}
}

func TestEnvVar_Describe(t *testing.T) {
	env, err := NewEnvVar("HOME")
	if err != nil {
		t.Fatalf("construct error: %v", err)
	}

	if got := env.Describe(); got != "EnvVar('HOME')" {
		t.Errorf("expected EnvVar('HOME'), got %q", got)
	}

	env, err = NewEnvVarDefault("HOME", "/root")
	if err != nil {
		t.Fatalf("construct error: %v", err)
	}

	if got := env.Describe(); got != "EnvVar('HOME', '/root')" {
		t.Errorf("expected default in description, got %q", got)
	}
}
