package bootstrap

import (
	"errors"
	"testing"

	sandboxerrors "github.com/hoheria/sandboxctl/internal/errors"
)

func TestHostFromLocator(t *testing.T) {
	host, err := HostFromLocator("git@host.example:org/repo.git")
	if err != nil {
		t.Fatalf("HostFromLocator failed: %v", err)
	}
	if host != "host.example" {
		t.Errorf("Expected host %q, got %q", "host.example", host)
	}
}

func TestHostFromLocatorMalformed(t *testing.T) {
	tests := []struct {
		name    string
		locator string
	}{
		{"missing prefix", "https://host.example/org/repo.git"},
		{"missing delimiter", "git@host.example/org/repo.git"},
		{"empty host", "git@:org/repo.git"},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HostFromLocator(tt.locator)
			if !errors.Is(err, sandboxerrors.ErrMalformedLocator) {
				t.Errorf("HostFromLocator(%q) error = %v, want ErrMalformedLocator", tt.locator, err)
			}
		})
	}
}
