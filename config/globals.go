package config

// GlobalFlags contains common flags used across commands
type GlobalFlags struct {
	// Connection and authentication flags
	BaseURL    string
	StorageURL string
	Login      string
	Token      string

	ConfigPath string
	Format     string
	Offline    bool
	Verbose    bool
	NoColor    bool

	// Command-specific configurations
	Deploy DeployConfig
}

// DeployConfig holds flags of the deploy command that override the project file.
type DeployConfig struct {
	ReplaceExisting bool
	Skip            bool
	Parser          string
}

// Global is the shared instance of GlobalFlags
var Global = GlobalFlags{}
