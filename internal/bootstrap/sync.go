package bootstrap

import (
	"fmt"
	"path/filepath"
	"strings"

	sandboxerrors "github.com/hoheria/sandboxctl/internal/errors"
	"github.com/hoheria/sandboxctl/internal/utils"
)

// SecretRepoBranch is the branch of the secrets repository every
// environment tracks. It is deliberately not configurable.
const SecretRepoBranch = "master"

// repoMarker identifies an initialized working copy.
const repoMarker = ".git"

// SyncAction says how the working copy was brought up to date.
type SyncAction string

const (
	SyncClone SyncAction = "clone"
	SyncPull  SyncAction = "pull"
)

// Syncer clones or updates the secrets repository working copy. It never
// deletes the working copy; an existing one is only ever pulled.
type Syncer struct {
	Runner Runner
}

// Sync brings workingDir up to date with the remote: a fresh clone of
// locator when no working copy exists, otherwise a pull of the fixed
// branch from origin. Returns the action taken and the captured command
// output for diagnostics.
func (s *Syncer) Sync(workingDir, locator string) (SyncAction, string, error) {
	if utils.DirExists(filepath.Join(workingDir, repoMarker)) {
		output, err := s.Runner.Run(workingDir, "git", "pull", "origin", SecretRepoBranch)
		if err != nil {
			return SyncPull, output, fmt.Errorf("%w: %s", sandboxerrors.ErrPullFailed, firstLine(output))
		}
		return SyncPull, output, nil
	}

	output, err := s.Runner.Run("", "git", "clone", "--branch", SecretRepoBranch, locator, workingDir)
	if err != nil {
		return SyncClone, output, fmt.Errorf("%w: %s", sandboxerrors.ErrCloneFailed, firstLine(output))
	}
	return SyncClone, output, nil
}

// firstLine trims command output to something an error message can carry.
func firstLine(output string) string {
	output = strings.TrimSpace(output)
	if i := strings.IndexByte(output, '\n'); i >= 0 {
		output = output[:i]
	}
	if output == "" {
		return "no output"
	}
	return output
}
