package buildinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/hoheria/sandboxctl/internal/bootstrap"
	"github.com/hoheria/sandboxctl/internal/utils"
)

// DetailsFileName is the artifact written into each stamped directory.
const DetailsFileName = "build-details.txt"

// Details describes one build for traceability: what was built, when, by
// whom, and on what machine and toolchain.
type Details struct {
	Name          string
	Version       string
	BuiltAt       time.Time
	Builder       string // username@hostname
	OS            string
	OSVersion     string
	Runtime       string
	RuntimeVendor string
	BuildTool     string
}

// Collect gathers build details for the named artifact. Probes that fail
// degrade to "unknown"; stamping must never fail a build over a missing
// uname.
func Collect(runner bootstrap.Runner, name, version string) Details {
	details := Details{
		Name:          name,
		Version:       version,
		BuiltAt:       time.Now().UTC(),
		Builder:       utils.BuilderIdentity(),
		OS:            runtime.GOOS,
		OSVersion:     "unknown",
		Runtime:       runtime.Version(),
		RuntimeVendor: "go",
		BuildTool:     runtime.Version(),
	}

	if output, err := runner.Run("", "uname", "-r"); err == nil {
		if release := strings.TrimSpace(output); release != "" {
			details.OSVersion = release
		}
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.GoVersion != "" {
		details.BuildTool = info.GoVersion
	}

	return details
}

// Render returns the build details as deterministic key: value lines.
func (d Details) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "name: %s\n", d.Name)
	fmt.Fprintf(&b, "version: %s\n", d.Version)
	fmt.Fprintf(&b, "built-at: %s\n", d.BuiltAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "built-by: %s\n", d.Builder)
	fmt.Fprintf(&b, "os: %s %s\n", d.OS, d.OSVersion)
	fmt.Fprintf(&b, "runtime: %s (%s)\n", d.Runtime, d.RuntimeVendor)
	fmt.Fprintf(&b, "build-tool: %s\n", d.BuildTool)
	return b.String()
}

// Write stamps the build-details file into dir, creating it as needed.
func (d Details) Write(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	path := filepath.Join(dir, DetailsFileName)
	if err := os.WriteFile(path, []byte(d.Render()), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}
