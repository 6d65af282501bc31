// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up test environments
// and capturing output.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/hoheria/sandboxctl/internal/configs"
)

// setupTestEnvironment points the package settings at temporary
// directories and registers cleanup to restore them.
func setupTestEnvironment(t *testing.T) *configs.Settings {
	t.Helper()

	tempDir := t.TempDir()
	originalSettings := configs.SandboxSettings
	configs.SandboxSettings = &configs.Settings{
		ConfigPath:           filepath.Join(tempDir, "config"),
		DataPath:             filepath.Join(tempDir, "data"),
		WorkingCopyPath:      filepath.Join(tempDir, "data", "secret-repo"),
		AllowedOfflineFolder: filepath.Join(tempDir, "data", "offline-secret-repo"),
		Username:             "testuser",
	}

	t.Cleanup(func() {
		configs.SandboxSettings = originalSettings
		ResetGlobalState()
	})

	// Neutralize ambient configuration.
	t.Setenv(configs.EnvOfflineSecretRepoFolder, "")
	t.Setenv(configs.EnvSecretRepoGitURL, "")
	os.Unsetenv(configs.EnvOfflineSecretRepoFolder)
	os.Unsetenv(configs.EnvSecretRepoGitURL)

	return configs.SandboxSettings
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	// Save original stdout and stderr.
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output.
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	// Replace stdout and stderr.
	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	// Channel to collect output.
	outputChan := make(chan string, 2)

	// Start goroutines to read from pipes.
	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Printf("Failed to copy stdout: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Printf("Failed to copy stderr: %s", err)
		}
		outputChan <- buf.String()
	}()

	// Run the function.
	err := fn()

	// Close writers and restore.
	stdoutWriter.Close()
	stderrWriter.Close()
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	// Collect output from both pipes.
	output := <-outputChan
	output += <-outputChan

	return output, err
}
