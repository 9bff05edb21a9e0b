// internal/version/version.go
package version

// Version is overridden at build time with -ldflags "-X codonscan/internal/version.Version=...".
var Version = "0.4.0"
