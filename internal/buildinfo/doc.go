// Package buildinfo collects and stamps build-details files into build
// output directories: artifact name and version, build timestamp, builder
// identity, and the OS/runtime/toolchain the build ran on.
package buildinfo
