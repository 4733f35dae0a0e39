package models

// BuildInformation is set at build time with ldflags.
type BuildInformation struct {
	Version string
	Commit  string
	Date    string
}

// VersionString returns the version, suffixed with the short
// commit hash for builds of the latest development version.
func (b BuildInformation) VersionString() string {
	const shortHashLength = 7
	if b.Version != "latest" || len(b.Commit) < shortHashLength {
		return b.Version
	}
	return b.Version + "-" + b.Commit[:shortHashLength]
}
