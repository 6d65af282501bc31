package configs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/hoheria/sandboxctl/internal/utils"
)

type Settings struct {
	// ConfigPath is the directory holding config.toml.
	ConfigPath string
	// DataPath is the directory holding the secret repo working copy and
	// the run log.
	DataPath string
	// WorkingCopyPath is where the secrets repository is cloned/updated.
	WorkingCopyPath string
	// AllowedOfflineFolder is the only offline folder the policy accepts.
	AllowedOfflineFolder string
	Username             string
}

var SandboxSettings *Settings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")

	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	username, err := utils.GetUsername()
	if err != nil {
		log.Fatalf("error getting username: %s", err)
	}

	// These paths are machine-level, not project-level, so it is ok to
	// resolve them here.
	SandboxSettings = &Settings{
		ConfigPath:           filepath.Join(configDir, "sandboxctl"),
		DataPath:             filepath.Join(dataDir, "sandboxctl"),
		WorkingCopyPath:      filepath.Join(dataDir, "sandboxctl", "secret-repo"),
		AllowedOfflineFolder: filepath.Join(dataDir, "sandboxctl", "offline-secret-repo"),
		Username:             username,
	}
}
