package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	// Ensure NO_COLOR is not set for this test.
	os.Unsetenv("NO_COLOR")
	// Force color output for testing.
	color.NoColor = false

	// Code formatter should not have backticks when color is enabled.
	result := Code.Sprint("sandboxctl sandbox check")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}

	// Verify it contains ANSI escape codes (color output).
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "git --version", "`git --version`"},
		{"Path has no decoration", Path, "conf/secrets.conf", "conf/secrets.conf"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Warning has no decoration", Warning, "⚠", "⚠"},
		{"Info has no decoration", Info, "→", "→"},
		{"Highlight adds quotes", Highlight, "bitbucket.org", "'bitbucket.org'"},
		{"Muted adds parentheses", Muted, "already deployed", "(already deployed)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("%s.Sprint(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	result := Code.Sprintf("ssh -T git@%s", "bitbucket.org")
	want := "`ssh -T git@bitbucket.org`"
	if result != want {
		t.Errorf("Code.Sprintf() = %q, want %q", result, want)
	}
}

func TestEnsureNewline(t *testing.T) {
	if got := EnsureNewline("done."); got != "done.\n" {
		t.Errorf("EnsureNewline(%q) = %q", "done.", got)
	}
	if got := EnsureNewline("done.\n"); got != "done.\n" {
		t.Errorf("EnsureNewline(%q) = %q", "done.\n", got)
	}
	if got := EnsureNewline(""); got != "\n" {
		t.Errorf("EnsureNewline(%q) = %q", "", got)
	}
}
