// Package errors defines sentinel errors for sandboxctl operations.
//
// Every failure mode of the bootstrap check maps to exactly one sentinel
// value here. Call sites wrap these with fmt.Errorf and %w, adding the
// corrective command an operator should run, so callers can both match
// with errors.Is and print an actionable message.
//
// All of these are fatal: the bootstrap check never retries and never
// continues past the first failure.
package errors
