package workflows

import (
	"context"
	"encoding/json"
	"os"

	"github.com/hoheria/sandboxctl/internal/audit"
	"github.com/hoheria/sandboxctl/internal/bootstrap"
	"github.com/hoheria/sandboxctl/internal/configs"
)

// StepStatus represents the result status of a bootstrap step.
type StepStatus int

const (
	// StepPass means the step succeeded.
	StepPass StepStatus = iota
	// StepFail means the step failed and aborted the run.
	StepFail
	// StepSkip means the step does not apply in the selected mode.
	StepSkip
)

// String returns a string representation of StepStatus.
func (s StepStatus) String() string {
	switch s {
	case StepPass:
		return "pass"
	case StepFail:
		return "fail"
	case StepSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for StepStatus.
func (s StepStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Step holds the result of a single bootstrap step.
type Step struct {
	Name    string     `json:"name"`
	Status  StepStatus `json:"status"`
	Message string     `json:"message,omitempty"`
	// Output carries captured subprocess output for diagnostics.
	Output string `json:"output,omitempty"`
}

// CheckResult holds the complete result of the bootstrap check workflow.
type CheckResult struct {
	RunID       string `json:"run_id"`
	Mode        string `json:"mode,omitempty"`
	Steps       []Step `json:"steps"`
	DeployedTo  string `json:"deployed_to,omitempty"`
	CopySkipped bool   `json:"copy_skipped,omitempty"`
}

// CheckOptions configures the bootstrap check workflow.
type CheckOptions struct {
	// Runner executes external commands. Defaults to bootstrap.ExecRunner.
	Runner bootstrap.Runner

	// TargetBaseDir is the target application's base directory. Empty
	// falls back to target_app_dir from the config store, then to the
	// working directory.
	TargetBaseDir string

	// SecretsFile is the secrets artifact filename. Empty falls back to
	// bootstrap.DefaultSecretsFile.
	SecretsFile string
}

// Check runs the sandbox prerequisite and bootstrap flow:
//
//  1. Resolve the two optional configuration values (config store, then
//     environment) and decide online vs offline mode.
//  2. Validate prerequisites for that mode.
//  3. Online only: clone or update the secrets repository.
//  4. Online only: materialize configuration from it.
//  5. Both modes: deploy the secrets file into the target's conf
//     directory, unless it is already there.
//
// The flow aborts on the first failure; the partial result is returned
// alongside the error so callers can display what was checked. Every run,
// failed or not, lands in the run log.
func Check(ctx context.Context, opts CheckOptions) (*CheckResult, error) {
	runner := opts.Runner
	if runner == nil {
		runner = bootstrap.ExecRunner{}
	}
	secretsFile := opts.SecretsFile
	if secretsFile == "" {
		secretsFile = bootstrap.DefaultSecretsFile
	}
	settings := configs.SandboxSettings

	entry := audit.NewEntry("check")
	result := &CheckResult{RunID: entry.RunID}
	var failedStep string
	fail := func(name, message string) {
		result.Steps = append(result.Steps, Step{Name: name, Status: StepFail, Message: message})
		failedStep = name
	}
	finish := func(err error) error {
		entry.Mode = result.Mode
		if err != nil {
			entry.Outcome = "failure"
			entry.FailedStep = failedStep
		} else {
			entry.Outcome = "success"
		}
		entry.Target = result.DeployedTo
		audit.Log(entry)
		return err
	}

	config, err := configs.LoadConfig()
	if err != nil {
		fail("Configuration store", err.Error())
		return result, finish(err)
	}
	offlineFolder, locator := configs.ResolveBootstrap(config)

	checker := &bootstrap.Checker{
		Runner:               runner,
		AllowedOfflineFolder: settings.AllowedOfflineFolder,
		Report: func(s bootstrap.StepResult) {
			status := StepPass
			if !s.OK {
				status = StepFail
				failedStep = s.Name
			}
			result.Steps = append(result.Steps, Step{Name: s.Name, Status: status, Message: s.Detail})
		},
	}

	mode, err := checker.Check(offlineFolder, locator)
	if err != nil {
		return result, finish(err)
	}
	result.Mode = mode.Name()

	switch mode.(type) {
	case bootstrap.Online:
		syncer := &bootstrap.Syncer{Runner: runner}
		action, output, err := syncer.Sync(settings.WorkingCopyPath, locator)
		if err != nil {
			fail("Secret repository synchronized", err.Error())
			return result, finish(err)
		}
		result.Steps = append(result.Steps, Step{
			Name:    "Secret repository synchronized",
			Status:  StepPass,
			Message: string(action) + " of " + bootstrap.SecretRepoBranch,
			Output:  output,
		})

		deployer := &bootstrap.Deployer{Runner: runner}
		output, err = deployer.Materialize(settings.WorkingCopyPath)
		if err != nil {
			fail("Configuration generated", err.Error())
			return result, finish(err)
		}
		result.Steps = append(result.Steps, Step{Name: "Configuration generated", Status: StepPass, Output: output})

	case bootstrap.Offline:
		result.Steps = append(result.Steps,
			Step{Name: "Secret repository synchronized", Status: StepSkip, Message: "offline mode"},
			Step{Name: "Configuration generated", Status: StepSkip, Message: "offline mode"},
		)
	}

	targetBaseDir := opts.TargetBaseDir
	if targetBaseDir == "" {
		targetBaseDir = config.Sandbox.TargetAppDir
	}
	if targetBaseDir == "" {
		if targetBaseDir, err = os.Getwd(); err != nil {
			fail("Secrets file deployed", err.Error())
			return result, finish(err)
		}
	}

	deployer := &bootstrap.Deployer{Runner: runner}
	src := bootstrap.SecretSource(mode, settings.WorkingCopyPath, secretsFile)
	copied, dst, err := deployer.DeploySecret(src, targetBaseDir)
	if err != nil {
		fail("Secrets file deployed", err.Error())
		return result, finish(err)
	}

	result.DeployedTo = dst
	result.CopySkipped = !copied
	message := dst
	if !copied {
		message = dst + " already present, copy skipped"
	}
	result.Steps = append(result.Steps, Step{Name: "Secrets file deployed", Status: StepPass, Message: message})

	return result, finish(nil)
}
