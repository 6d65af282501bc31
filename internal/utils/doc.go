// Package utils provides small system and filesystem helpers shared by
// the bootstrap and stamping workflows.
package utils
