package cmd

import (
	logger "github.com/hoheria/sandboxctl/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	SandboxCmd = &cobra.Command{
		Use:   "sandbox",
		Short: "Validate sandbox prerequisites and bootstrap the secrets repository",
		Long: `Validates that the local machine can bootstrap the sandbox: tooling,
configuration, and connectivity to the secret repository host. On success the
secrets repository is cloned or updated, configuration is generated from it,
and the secrets file is deployed into the target application.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing sandbox command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	SandboxCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	SandboxCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	SandboxCmd.AddCommand(checkCmd)
}

// Helper functions for testing

// GetSandboxCmd returns the SandboxCmd for testing.
func GetSandboxCmd() *cobra.Command {
	return SandboxCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetCheckCommandState()
	resetStampCommandState()
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
