package buildinfo

// Name, Author, and License feed the startup banner.
const (
	Name    = "Daily Report Processor"
	Author  = "Jamil Mendez"
	License = "MIT"
)

var (
	// Version will be set via ldflags during build.
	Version = "dev"
	// Commit will be set via ldflags during build.
	Commit = "none"
	// Date will be set via ldflags during build.
	Date = "unknown"
)
