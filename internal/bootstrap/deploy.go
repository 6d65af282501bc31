package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	sandboxerrors "github.com/hoheria/sandboxctl/internal/errors"
	"github.com/hoheria/sandboxctl/internal/utils"
)

// DefaultSecretsFile is the secrets artifact deployed into the target
// application's conf directory.
const DefaultSecretsFile = "secrets.conf"

// GeneratedSubdir is where the playbook materializes configuration inside
// the working copy.
const GeneratedSubdir = "generated"

// Fixed paths inside the secrets repository consumed by config generation.
const (
	playbookPath  = "playbooks/generate-config.yml"
	inventoryPath = "inventory/local"
)

// Deployer materializes configuration from the synchronized repository and
// places the secrets artifact into the target application.
type Deployer struct {
	Runner Runner
}

// Materialize runs the configuration playbook against the working copy.
// Online mode only; the workflow skips it entirely for offline runs.
func (d *Deployer) Materialize(repoDir string) (string, error) {
	output, err := d.Runner.Run(repoDir, "ansible-playbook", "-i", inventoryPath, playbookPath)
	if err != nil {
		return output, fmt.Errorf("%w: %s", sandboxerrors.ErrConfigGenFailed, firstLine(output))
	}
	return output, nil
}

// SecretSource returns where the secrets artifact lives for the given
// mode: the offline folder itself, or the playbook's output directory in
// the working copy.
func SecretSource(mode Mode, workingDir, filename string) string {
	if offline, ok := mode.(Offline); ok {
		return filepath.Join(offline.Folder, filename)
	}
	return filepath.Join(workingDir, GeneratedSubdir, filename)
}

// DeploySecret copies src into targetBaseDir/conf, keeping the source's
// basename. The copy is one-shot: an existing destination is left
// untouched and reported as skipped, which makes repeated runs idempotent.
func (d *Deployer) DeploySecret(src, targetBaseDir string) (copied bool, dst string, err error) {
	dst = filepath.Join(targetBaseDir, "conf", filepath.Base(src))

	if _, err := os.Stat(dst); err == nil {
		return false, dst, nil
	}

	if !utils.FileExists(src) {
		return false, dst, fmt.Errorf("%w: %s", sandboxerrors.ErrCopySourceMissing, src)
	}

	if err := utils.CopyFile(src, dst); err != nil {
		return false, dst, fmt.Errorf("%w: %v", sandboxerrors.ErrCopyIO, err)
	}

	return true, dst, nil
}
