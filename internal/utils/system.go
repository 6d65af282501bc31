package utils

import (
	"os"
	"os/user"
)

// GetUsername returns the current username.
func GetUsername() (string, error) {
	user, err := user.Current()
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

// GetHostname returns the system hostname.
func GetHostname() (string, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return "", err
	}
	return hostname, nil
}

// BuilderIdentity returns the "username@hostname" string stamped into
// build details. Unresolvable parts degrade to "unknown" rather than
// failing the build.
func BuilderIdentity() string {
	username, err := GetUsername()
	if err != nil {
		username = "unknown"
	}
	hostname, err := GetHostname()
	if err != nil {
		hostname = "unknown"
	}
	return username + "@" + hostname
}
