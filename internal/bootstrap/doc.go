// Package bootstrap implements the sandbox prerequisite check and secrets
// bootstrap: validating local tooling and connectivity, cloning or
// updating the secrets repository, materializing configuration from it,
// and deploying the secrets artifact into the target application.
//
// The flow is strictly sequential and fail-fast. Each stage assumes the
// previous one succeeded, every failure is fatal to the run, and nothing
// is retried; the operator fixes the reported condition and re-runs.
//
// External commands (git, ssh, ansible-playbook) are reached through the
// Runner interface so all decision logic is testable without subprocesses
// or network access. Calls block without timeout and there is no locking:
// one run per working/target directory at a time is assumed.
package bootstrap
