package bootstrap

import (
	"fmt"
	"strings"

	sandboxerrors "github.com/hoheria/sandboxctl/internal/errors"
)

// locatorPrefix is the user prefix of an scp-style git URL.
const locatorPrefix = "git@"

// HostFromLocator extracts the host component of an scp-style locator:
// git@host.example:org/repo.git yields host.example. The upstream flow
// assumed well-formed URLs; here a missing prefix or path delimiter is
// rejected before any network probe runs.
func HostFromLocator(locator string) (string, error) {
	rest, ok := strings.CutPrefix(locator, locatorPrefix)
	if !ok {
		return "", fmt.Errorf("%w: %q does not start with %q", sandboxerrors.ErrMalformedLocator, locator, locatorPrefix)
	}

	host, _, ok := strings.Cut(rest, ":")
	if !ok || host == "" {
		return "", fmt.Errorf("%w: %q has no host:path delimiter", sandboxerrors.ErrMalformedLocator, locator)
	}

	return host, nil
}
