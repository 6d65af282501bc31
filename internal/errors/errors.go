package errors

import "errors"

// Prerequisite errors indicate the local machine or configuration is not
// ready for a bootstrap run.
var (
	// ErrToolMissing indicates the required source-control tool is not installed.
	ErrToolMissing = errors.New("git is not installed")

	// ErrMissingConfig indicates neither the secret repo URL nor an offline
	// folder was configured.
	ErrMissingConfig = errors.New("secret repository is not configured")

	// ErrMalformedLocator indicates the secret repo URL could not be parsed.
	ErrMalformedLocator = errors.New("secret repository URL is malformed")

	// ErrConnectivityFailure indicates the secret repository host could not be
	// reached over SSH.
	ErrConnectivityFailure = errors.New("cannot reach secret repository host")
)

// Offline folder errors indicate issues with a pre-provisioned secrets folder.
var (
	// ErrFolderNotFound indicates the configured offline folder does not exist.
	ErrFolderNotFound = errors.New("offline secret folder not found")

	// ErrPolicyViolation indicates the offline folder is not the allowed path.
	ErrPolicyViolation = errors.New("offline secret folder is not the allowed path")
)

// Synchronization errors indicate the secrets repository could not be
// cloned or updated.
var (
	// ErrCloneFailed indicates the fresh clone of the secrets repository failed.
	ErrCloneFailed = errors.New("failed to clone secret repository")

	// ErrPullFailed indicates the update of an existing working copy failed.
	ErrPullFailed = errors.New("failed to pull secret repository")
)

// Deployment errors indicate config generation or the secrets copy failed.
var (
	// ErrConfigGenFailed indicates the configuration playbook exited non-zero.
	ErrConfigGenFailed = errors.New("configuration generation failed")

	// ErrCopySourceMissing indicates the secrets file to deploy does not exist.
	ErrCopySourceMissing = errors.New("secrets file not found")

	// ErrCopyIO indicates the secrets file could not be copied to the target.
	ErrCopyIO = errors.New("failed to copy secrets file")
)
