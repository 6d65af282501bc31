package bootstrap

import (
	"fmt"
	"path/filepath"
	"strings"

	sandboxerrors "github.com/hoheria/sandboxctl/internal/errors"
	"github.com/hoheria/sandboxctl/internal/utils"
)

// StepResult records the outcome of one sub-check for display. Reporting
// is advisory only; the authoritative outcome is the Checker's return
// values.
type StepResult struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// Checker validates that a run's prerequisites are met and decides the
// bootstrap mode. The first failing sub-check aborts the run; there is no
// partial-success continuation.
type Checker struct {
	Runner Runner

	// AllowedOfflineFolder is the only folder the offline policy accepts.
	AllowedOfflineFolder string

	// Report, when set, receives a StepResult per sub-check.
	Report func(StepResult)
}

// Check resolves the bootstrap mode from the two optional configuration
// values and validates the corresponding prerequisites. Presence of the
// offline folder value alone selects offline mode.
func (c *Checker) Check(offlineFolder, locator string) (Mode, error) {
	if offlineFolder != "" {
		return c.checkOffline(offlineFolder)
	}
	return c.checkOnline(locator)
}

func (c *Checker) checkOffline(folder string) (Mode, error) {
	if !utils.DirExists(folder) {
		c.report("Offline secret folder exists", false, folder)
		return nil, fmt.Errorf("%w: %s does not exist", sandboxerrors.ErrFolderNotFound, folder)
	}
	c.report("Offline secret folder exists", true, folder)

	// Strict equality against the one allowed path. A valid-looking clone
	// anywhere else is still rejected.
	if filepath.Clean(folder) != filepath.Clean(c.AllowedOfflineFolder) {
		c.report("Offline secret folder allowed", false, folder)
		return nil, fmt.Errorf("%w: %s is not %s (move the folder or unset %s)",
			sandboxerrors.ErrPolicyViolation, folder, c.AllowedOfflineFolder, "SANDBOX_OFFLINE_SECRET_REPO_FOLDER")
	}
	c.report("Offline secret folder allowed", true, folder)

	return Offline{Folder: folder}, nil
}

func (c *Checker) checkOnline(locator string) (Mode, error) {
	output, err := c.Runner.Run("", "git", "--version")
	if err != nil {
		c.report("Git installed", false, "")
		return nil, fmt.Errorf("%w: install git and re-run (try 'git --version')", sandboxerrors.ErrToolMissing)
	}
	c.report("Git installed", true, strings.TrimSpace(output))

	if locator == "" {
		c.report("Secret repository configured", false, "")
		return nil, fmt.Errorf("%w: set secret_repo_git_url in config.toml or export %s",
			sandboxerrors.ErrMissingConfig, "SANDBOX_SECRET_REPO_GIT_URL")
	}
	c.report("Secret repository configured", true, locator)

	host, err := HostFromLocator(locator)
	if err != nil {
		c.report("Secret repository URL parsed", false, locator)
		return nil, err
	}
	c.report("Secret repository URL parsed", true, host)

	// BatchMode keeps a missing key from hanging on a password prompt.
	if _, err := c.Runner.Run("", "ssh", "-T", "-o", "BatchMode=yes", locatorPrefix+host); err != nil {
		c.report("Secret repository host reachable", false, host)
		return nil, fmt.Errorf("%w: check your SSH key with 'ssh -T %s%s'",
			sandboxerrors.ErrConnectivityFailure, locatorPrefix, host)
	}
	c.report("Secret repository host reachable", true, host)

	return Online{Locator: locator}, nil
}

func (c *Checker) report(name string, ok bool, detail string) {
	if c.Report == nil {
		return
	}
	c.Report(StepResult{Name: name, OK: ok, Detail: detail})
}
