// Package constants centralizes configuration defaults shared across the CLI.
//
// Storing file permissions, the browser User-Agent, and timeout defaults in
// one place prevents magic numbers from scattering across cmd/ and internal/.
// The values here can be referenced from multiple packages without
// introducing import cycles.
package constants
