package main

import (
	"fmt"
	"os"

	"github.com/hoheria/sandboxctl/cmd"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sandboxctl",
	Short: "Sandboxctl - build tooling for sandbox environments.",
	Long: `Sandboxctl wires two pre-compile steps into a project's build:

  - Checking sandbox prerequisites and bootstrapping the secrets repository,
    either by cloning/updating it from a remote host or by consuming a
    pre-provisioned offline folder.
  - Stamping a build-details file (version, builder, OS, runtime) into the
    compiled output and resource directories.

Usage:
  sandboxctl <command> [flags]

Available Commands:
  sandbox    Validate prerequisites and bootstrap the secrets repository
  stamp      Write a build-details file into the build output

Run 'sandboxctl help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Run 'sandboxctl --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.SandboxCmd)
	rootCmd.AddCommand(cmd.StampCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
