package bootstrap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	sandboxerrors "github.com/hoheria/sandboxctl/internal/errors"
)

func TestMaterializeRunsPlaybookInRepo(t *testing.T) {
	repoDir := t.TempDir()
	runner := &fakeRunner{}
	deployer := &Deployer{Runner: runner}

	if _, err := deployer.Materialize(repoDir); err != nil {
		t.Fatalf("Materialize failed: %v", err)
	}

	if !runner.ran("ansible-playbook -i inventory/local playbooks/generate-config.yml") {
		t.Errorf("Unexpected playbook invocation: %v", runner.commands())
	}
	if len(runner.calls) != 1 || runner.calls[0].dir != repoDir {
		t.Errorf("Expected playbook to run in %s", repoDir)
	}
}

func TestMaterializeFailure(t *testing.T) {
	runner := &fakeRunner{failOn: map[string]string{"ansible-playbook": "ERROR! the playbook could not be found\n"}}
	deployer := &Deployer{Runner: runner}

	_, err := deployer.Materialize(t.TempDir())
	if !errors.Is(err, sandboxerrors.ErrConfigGenFailed) {
		t.Errorf("Expected ErrConfigGenFailed, got %v", err)
	}
}

func TestSecretSource(t *testing.T) {
	workingDir := "/data/sandboxctl/secret-repo"

	online := SecretSource(Online{Locator: testLocator}, workingDir, "secrets.conf")
	if online != filepath.Join(workingDir, "generated", "secrets.conf") {
		t.Errorf("Unexpected online source: %q", online)
	}

	offline := SecretSource(Offline{Folder: "/data/offline"}, workingDir, "secrets.conf")
	if offline != filepath.Join("/data/offline", "secrets.conf") {
		t.Errorf("Unexpected offline source: %q", offline)
	}
}

func TestDeploySecretCopies(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "secrets.conf")
	targetBase := filepath.Join(tempDir, "app")
	if err := os.WriteFile(src, []byte("api.key=abc\n"), 0600); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}

	deployer := &Deployer{Runner: &fakeRunner{}}
	copied, dst, err := deployer.DeploySecret(src, targetBase)
	if err != nil {
		t.Fatalf("DeploySecret failed: %v", err)
	}
	if !copied {
		t.Error("Expected the secrets file to be copied")
	}
	if dst != filepath.Join(targetBase, "conf", "secrets.conf") {
		t.Errorf("Unexpected destination: %q", dst)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("Failed to read destination: %v", err)
	}
	if string(data) != "api.key=abc\n" {
		t.Errorf("Destination content = %q", string(data))
	}
}

func TestDeploySecretIdempotent(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "secrets.conf")
	targetBase := filepath.Join(tempDir, "app")
	dst := filepath.Join(targetBase, "conf", "secrets.conf")

	if err := os.WriteFile(src, []byte("new\n"), 0600); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		t.Fatalf("Failed to create conf dir: %v", err)
	}
	if err := os.WriteFile(dst, []byte("existing\n"), 0600); err != nil {
		t.Fatalf("Failed to write destination: %v", err)
	}

	deployer := &Deployer{Runner: &fakeRunner{}}

	// Repeated runs never overwrite an existing destination.
	for i := 0; i < 2; i++ {
		copied, _, err := deployer.DeploySecret(src, targetBase)
		if err != nil {
			t.Fatalf("DeploySecret run %d failed: %v", i+1, err)
		}
		if copied {
			t.Errorf("Run %d: expected copy to be skipped", i+1)
		}
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("Failed to read destination: %v", err)
	}
	if string(data) != "existing\n" {
		t.Errorf("Destination was overwritten: %q", string(data))
	}
}

func TestDeploySecretCopyFailure(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "secrets.conf")
	targetBase := filepath.Join(tempDir, "app")
	if err := os.WriteFile(src, []byte("api.key=abc\n"), 0600); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}

	// A file where the conf directory should go makes the copy fail.
	if err := os.MkdirAll(targetBase, 0755); err != nil {
		t.Fatalf("Failed to create target base: %v", err)
	}
	if err := os.WriteFile(filepath.Join(targetBase, "conf"), []byte("not a directory\n"), 0600); err != nil {
		t.Fatalf("Failed to shadow conf dir: %v", err)
	}

	deployer := &Deployer{Runner: &fakeRunner{}}
	copied, _, err := deployer.DeploySecret(src, targetBase)
	if !errors.Is(err, sandboxerrors.ErrCopyIO) {
		t.Errorf("Expected ErrCopyIO, got %v", err)
	}
	if copied {
		t.Error("Expected copy to be reported as not done")
	}
}

func TestDeploySecretSourceMissing(t *testing.T) {
	tempDir := t.TempDir()
	deployer := &Deployer{Runner: &fakeRunner{}}

	_, _, err := deployer.DeploySecret(filepath.Join(tempDir, "missing.conf"), filepath.Join(tempDir, "app"))
	if !errors.Is(err, sandboxerrors.ErrCopySourceMissing) {
		t.Errorf("Expected ErrCopySourceMissing, got %v", err)
	}
}
