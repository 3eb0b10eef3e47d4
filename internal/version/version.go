// Package version carries the release string, overridden at link time with
// -ldflags "-X enasubmit/internal/version.Version=...".
package version

var Version = "0.3.0-dev"
