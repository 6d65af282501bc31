package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment variable fallbacks for the bootstrap configuration. Values in
// config.toml take precedence; the environment covers CI runs where no
// config file is provisioned.
const (
	EnvOfflineSecretRepoFolder = "SANDBOX_OFFLINE_SECRET_REPO_FOLDER"
	EnvSecretRepoGitURL        = "SANDBOX_SECRET_REPO_GIT_URL"
)

type Config struct {
	Sandbox SandboxConfig `toml:"sandbox"`
}

type SandboxConfig struct {
	OfflineSecretRepoFolder string `toml:"offline_secret_repo_folder"`
	SecretRepoGitURL        string `toml:"secret_repo_git_url"`
	TargetAppDir            string `toml:"target_app_dir"`
}

// LoadConfig loads the sandboxctl configuration from the config store.
// A missing config file is not an error; it yields an empty config and
// resolution falls through to the environment.
func LoadConfig() (*Config, error) {
	configPath := filepath.Join(SandboxSettings.ConfigPath, "config.toml")

	config := &Config{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load sandbox config: %w", err)
	}

	return config, nil
}

// SaveConfig saves the sandboxctl configuration to the config store.
func SaveConfig(config *Config) error {
	configPath := filepath.Join(SandboxSettings.ConfigPath, "config.toml")

	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save sandbox config: %w", err)
	}

	return nil
}

// ResolveBootstrap resolves the two optional bootstrap values, preferring
// the config store and falling back to the environment. Missing values are
// returned as empty strings; absence is legitimate and selects the
// bootstrap mode downstream, so there is no error path here.
func ResolveBootstrap(config *Config) (offlineFolder, repoURL string) {
	if config == nil {
		config = &Config{}
	}
	offlineFolder = fallbackToEnv(config.Sandbox.OfflineSecretRepoFolder, EnvOfflineSecretRepoFolder)
	repoURL = fallbackToEnv(config.Sandbox.SecretRepoGitURL, EnvSecretRepoGitURL)
	return offlineFolder, repoURL
}

func fallbackToEnv(configured, envKey string) string {
	if configured != "" {
		return configured
	}
	return os.Getenv(envKey)
}
