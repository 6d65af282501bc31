package bootstrap

// Mode selects the bootstrap path for a run. It is a closed set: Online
// fetches the secrets repository from a remote host, Offline consumes a
// pre-provisioned local folder. Only the Checker constructs a Mode, so an
// online run without a locator cannot exist past validation.
type Mode interface {
	// Name returns the mode name for display and the run log.
	Name() string

	sealed()
}

// Online bootstraps by cloning or updating the secrets repository.
type Online struct {
	// Locator is the scp-style remote URL, e.g. git@host.example:org/repo.git.
	Locator string
}

func (Online) Name() string { return "online" }
func (Online) sealed()      {}

// Offline bootstraps from an already-provisioned secrets folder.
type Offline struct {
	// Folder is the validated offline secrets folder.
	Folder string
}

func (Offline) Name() string { return "offline" }
func (Offline) sealed()      {}
