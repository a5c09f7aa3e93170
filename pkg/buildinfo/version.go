// Package buildinfo holds version data injected at link time:
//
//	go build -ldflags "-X github.com/matzehuels/svgbuild/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/svgbuild/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/svgbuild/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/svgbuild
package buildinfo

import "fmt"

var (
	Version = "dev"     // semantic version, e.g. "v1.2.3"
	Commit  = "none"    // git commit SHA
	Date    = "unknown" // build timestamp (RFC 3339)
)

// String returns the build information, one field per line.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}

// UserAgent identifies the server in response headers, e.g. "svgbuild/v1.2.3".
func UserAgent() string {
	return "svgbuild/" + Version
}
