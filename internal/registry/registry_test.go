package registry

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-snake/internal/loop"
)

type stubBackend struct {
	name     string
	terminal bool
}

func (b stubBackend) Name() string        { return b.name }
func (b stubBackend) Description() string { return "stub " + b.name }
func (b stubBackend) Terminal() bool      { return b.terminal }

func (b stubBackend) Run(context.Context, loop.Config, *log.Logger) error {
	return nil
}

func stub(name string, terminal bool) Factory {
	return func() Backend { return stubBackend{name: name, terminal: terminal} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-test-window", stub("zz-test-window", false))
	Register("zz-test-term", stub("zz-test-term", true))

	if !Exists("zz-test-term") {
		t.Error("Exists() = false, expected true after Register")
	}
	if Exists("zz-test-missing") {
		t.Error("Exists() = true for an unregistered name")
	}

	b, err := Create("zz-test-term")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if b.Name() != "zz-test-term" || !b.Terminal() {
		t.Errorf("Create() = %+v, expected the terminal stub", b)
	}

	if _, err := Create("zz-test-missing"); err == nil {
		t.Error("Create() should fail for an unknown backend")
	}

	var names []string
	for _, info := range List() {
		names = append(names, info.Name)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("List() not sorted: %v", names)
			break
		}
	}

	found := false
	for _, info := range List() {
		if info.Name == "zz-test-window" {
			found = true
			if info.Description != "stub zz-test-window" || info.Terminal {
				t.Errorf("List() entry = %+v, unexpected metadata", info)
			}
		}
	}
	if !found {
		t.Error("List() is missing a registered backend")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-test-dup", stub("zz-test-dup", false))

	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on a duplicate name")
		}
	}()
	Register("zz-test-dup", stub("zz-test-dup", false))
}

func TestInitError(t *testing.T) {
	cause := errors.New("no display")
	err := fmt.Errorf("start: %w", NewInitError("window", cause))

	if !IsInitError(err) {
		t.Error("IsInitError() = false, expected true for a wrapped InitError")
	}
	if !errors.Is(err, cause) {
		t.Error("InitError should unwrap to its cause")
	}
	if IsInitError(cause) {
		t.Error("IsInitError() = true for a plain error")
	}

	var ie *InitError
	if errors.As(err, &ie) && ie.Backend != "window" {
		t.Errorf("Backend = %q, expected %q", ie.Backend, "window")
	}
	if got := NewInitError("term", cause).Error(); got != "term: initialization failed: no display" {
		t.Errorf("Error() = %q", got)
	}
}
