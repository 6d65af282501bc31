package utils

import (
	"strings"
	"testing"
)

func TestGetUsername(t *testing.T) {
	username, err := GetUsername()
	if err != nil {
		t.Fatalf("GetUsername failed: %v", err)
	}
	if username == "" {
		t.Error("GetUsername returned empty string")
	}
}

func TestGetHostname(t *testing.T) {
	hostname, err := GetHostname()
	if err != nil {
		t.Fatalf("GetHostname failed: %v", err)
	}
	if hostname == "" {
		t.Error("GetHostname returned empty string")
	}
}

func TestBuilderIdentity(t *testing.T) {
	identity := BuilderIdentity()
	if !strings.Contains(identity, "@") {
		t.Errorf("BuilderIdentity() = %q, want username@hostname form", identity)
	}
	if strings.HasPrefix(identity, "@") || strings.HasSuffix(identity, "@") {
		t.Errorf("BuilderIdentity() = %q has an empty component", identity)
	}
}
