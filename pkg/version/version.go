package version

// Set via -ldflags "-X github.com/jeanpaul/contacts/pkg/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
)
