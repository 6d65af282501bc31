package workflows

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/hoheria/sandboxctl/internal/audit"
	"github.com/hoheria/sandboxctl/internal/bootstrap"
	"github.com/hoheria/sandboxctl/internal/buildinfo"
)

// StampOptions configures the build-details stamping workflow.
type StampOptions struct {
	// Runner executes external probes. Defaults to bootstrap.ExecRunner.
	Runner bootstrap.Runner

	// Name is the artifact name. Empty derives it from the working
	// directory's basename.
	Name string

	// Version is the artifact version.
	Version string

	// Dirs are the directories receiving build-details.txt, typically the
	// compiled-classes output directory and the resource directory.
	Dirs []string
}

// StampResult holds the details written and where they went.
type StampResult struct {
	Details buildinfo.Details
	Paths   []string
}

// Stamp collects build details and writes them into every target
// directory. It runs before compile in the host project's build, so both
// the packaged classes and the resources carry the same stamp.
func Stamp(ctx context.Context, opts StampOptions) (*StampResult, error) {
	runner := opts.Runner
	if runner == nil {
		runner = bootstrap.ExecRunner{}
	}

	name := opts.Name
	if name == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		name = filepath.Base(wd)
	}

	entry := audit.NewEntry("stamp")
	entry.Target = strings.Join(opts.Dirs, ",")

	details := buildinfo.Collect(runner, name, opts.Version)

	result := &StampResult{Details: details}
	for _, dir := range opts.Dirs {
		path, err := details.Write(dir)
		if err != nil {
			entry.Outcome = "failure"
			audit.Log(entry)
			return result, err
		}
		result.Paths = append(result.Paths, path)
	}

	entry.Outcome = "success"
	audit.Log(entry)
	return result, nil
}
