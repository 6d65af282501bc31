package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hoheria/sandboxctl/internal/bootstrap"
	"github.com/hoheria/sandboxctl/internal/ui"
	"github.com/hoheria/sandboxctl/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	checkTargetDir   string
	checkSecretsFile string
	checkJSONOutput  bool
	// checkExitFunc is the function called to exit with a specific code.
	// Can be overridden for testing.
	checkExitFunc = os.Exit
	// checkRunner overrides the workflow's command runner for testing.
	checkRunner bootstrap.Runner
)

func init() {
	checkCmd.Flags().StringVar(&checkTargetDir, "target", "", "target application base directory (defaults to target_app_dir from config, then the working directory)")
	checkCmd.Flags().StringVar(&checkSecretsFile, "secrets-file", "", "secrets artifact filename (defaults to secrets.conf)")
	checkCmd.Flags().BoolVar(&checkJSONOutput, "json", false, "output in JSON format")
}

func resetCheckCommandState() {
	checkTargetDir = ""
	checkSecretsFile = ""
	checkJSONOutput = false
	checkExitFunc = os.Exit
	checkRunner = nil
}

// SetCheckExitFunc sets the exit function for testing purposes.
func SetCheckExitFunc(f func(int)) {
	checkExitFunc = f
}

// SetCheckRunner sets the command runner for testing purposes.
func SetCheckRunner(r bootstrap.Runner) {
	checkRunner = r
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check sandbox prerequisites and bootstrap the secrets repository",
	Long: `Runs the sandbox prerequisite check and bootstrap, intended as a
pre-compile step in the host project's build.

Online mode (secret repo URL configured):
  - git is installed
  - the secret repository host is reachable over SSH
  - the secrets repository is cloned, or updated if already present
  - configuration is generated from the repository
  - the secrets file is copied into <target>/conf unless already there

Offline mode (offline folder configured):
  - the folder exists and is the allowed offline path
  - the secrets file is copied from it into <target>/conf unless already there

Configuration is read from config.toml in the config store, falling back to
SANDBOX_OFFLINE_SECRET_REPO_FOLDER and SANDBOX_SECRET_REPO_GIT_URL.

Every failure is fatal; fix the reported condition and re-run.

Exit codes:
  0 - Bootstrap completed
  1 - A prerequisite or bootstrap step failed

Use --json for machine-readable output.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting sandbox check")

	spinner, cleanup := startSpinner("Checking sandbox prerequisites...", verbose)
	defer cleanup()

	result, err := workflows.Check(context.Background(), workflows.CheckOptions{
		Runner:        checkRunner,
		TargetBaseDir: checkTargetDir,
		SecretsFile:   checkSecretsFile,
	})

	for _, step := range result.Steps {
		Logger.Debugf("Step %s: status=%s, message=%s", step.Name, step.Status.String(), step.Message)
		if step.Output != "" {
			Logger.Infof("%s output:\n%s", step.Name, step.Output)
		}
	}

	if checkJSONOutput {
		spinner.FinalMSG = ""
		if jsonErr := outputCheckJSON(result); jsonErr != nil {
			return jsonErr
		}
	} else {
		spinner.FinalMSG = ""
		printCheckResult(result)
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Sandbox bootstrap failed: " + err.Error()
		} else {
			spinner.FinalMSG = ui.Success.Sprint("✓") + " Sandbox bootstrap completed"
		}
	}

	if err != nil {
		checkExitFunc(1)
	}
	return nil
}

// outputCheckJSON outputs the result as JSON.
func outputCheckJSON(result *workflows.CheckResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// printCheckResult prints the check result in a human-readable format.
func printCheckResult(result *workflows.CheckResult) {
	fmt.Println("Checking sandbox prerequisites...")
	fmt.Println()

	for _, step := range result.Steps {
		var statusIcon string
		switch step.Status {
		case workflows.StepPass:
			statusIcon = ui.Success.Sprint("✓")
		case workflows.StepFail:
			statusIcon = ui.Error.Sprint("✗")
		case workflows.StepSkip:
			statusIcon = ui.Info.Sprint("→")
		}
		line := statusIcon + " " + step.Name
		if step.Message != "" {
			line += " " + ui.Muted.Sprint(step.Message)
		}
		fmt.Println(line)
	}

	if result.Mode != "" {
		fmt.Println()
		fmt.Printf("Mode: %s\n", ui.Highlight.Sprint(result.Mode))
	}
}
