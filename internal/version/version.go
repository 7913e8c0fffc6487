// internal/version/version.go
package version

// Version is the tool version reported by --version and usage output.
// Overridable at build time: -ldflags "-X refasta/internal/version.Version=...".
var Version = "0.3.0"
