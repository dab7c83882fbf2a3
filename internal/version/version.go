package version

// Build information set by ldflags. Commit and Date stay empty in
// plain `go build` binaries and are only printed when set.
var (
	Version = "dev" // Set by goreleaser: -X github.com/arthur-debert/dirkeep/internal/version.Version={{.Version}}
	Commit  = ""    // Set by goreleaser: -X github.com/arthur-debert/dirkeep/internal/version.Commit={{.Commit}}
	Date    = ""    // Set by goreleaser: -X github.com/arthur-debert/dirkeep/internal/version.Date={{.Date}}
)
