// Package audit records sandboxctl runs in a machine-local run log.
//
// Every check and stamp run is appended to a JSON Lines file under the
// user data dir:
//
//	<data dir>/sandboxctl/runs.jsonl
//
// Each entry carries a run UUID, timestamp, user, operation, and for
// bootstrap checks the selected mode, outcome, and first failed stage.
// The log answers "when did this machine last sync secrets, and did it
// work" without re-running anything.
//
// # Failure Handling
//
// Logging is best-effort. A run never fails because its entry could not
// be written, and malformed lines are skipped on read to tolerate
// partial writes.
package audit
