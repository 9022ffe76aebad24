// Package cli holds the shortpath command tree. It turns flags into a
// validated Config, runs the engine over the loaded graph and maps failures
// to process exit codes.
package cli
