// Package workflows implements the business logic for sandboxctl
// commands, keeping cobra command files thin.
//
// Each workflow returns a result struct describing what happened, so
// commands can render human-readable or JSON output from the same data.
// Workflows fail fast: the first failing step aborts the run and the
// partial result is returned with the error.
package workflows
