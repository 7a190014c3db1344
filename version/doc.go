// Package version provides build version information for optkit.
//
// Version is set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/optkit/optkit/version.Version=1.0.0"
//
// When unset, VCS metadata from the Go build info is used instead.
package version
