package bootstrap

import (
	"os"
	"os/exec"
)

// Runner executes an external command and returns its combined output.
// A non-nil error means the command could not start or exited non-zero.
// All subprocess use in the bootstrap flow goes through this interface so
// the validator, synchronizer and deployer can be tested without real
// git, ssh or ansible installs.
type Runner interface {
	Run(dir string, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec. Calls block until the subprocess
// exits; no timeout is applied, so a hanging clone blocks the whole run.
type ExecRunner struct{}

func (ExecRunner) Run(dir string, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	output, err := cmd.CombinedOutput()
	return string(output), err
}
