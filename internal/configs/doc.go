// Package configs manages sandboxctl settings and configuration.
//
// Two layers exist:
//
//   - Settings: machine-level paths (config store, data dir, secret repo
//     working copy, allowed offline folder) derived from XDG conventions
//     at startup.
//   - Config: the operator-provided config.toml in the config store, with
//     per-key fallback to SANDBOX_* environment variables.
//
// Resolution of the bootstrap values never fails: a missing file or unset
// key is data (it selects offline vs online mode), not an error.
package configs
