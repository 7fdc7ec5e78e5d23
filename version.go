package barter

// release is bumped by hand when a version is tagged.
const release = "v0.1.0-dev"

// GitCommit is injected at build time with
// -ldflags "-X github.com/iov-one/barter.GitCommit=<sha>".
var GitCommit = ""

// Version reports the release, followed by the commit when known.
func Version() string {
	if GitCommit == "" {
		return release
	}
	return release + " " + GitCommit
}
