package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/harness/github-deploy/module/deploy"
	"github.com/harness/github-deploy/module/deploy/credentials"
	"github.com/harness/github-deploy/module/deploy/listing"
	"github.com/harness/github-deploy/util/common/fileutil"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the project file looked up in the working directory.
const DefaultPath = ".github-deploy.yaml"

// DefaultCredentialsFile is the credential store consulted when login or
// token are not configured.
const DefaultCredentialsFile = "~/.github-deploy/credentials"

// Config represents the top-level configuration structure
type Config struct {
	Version string       `yaml:"version"`
	Deploy  DeployConfig `yaml:"deploy"`
}

// DeployConfig describes what to deploy and where.
type DeployConfig struct {
	Repository        RepositoryConfig  `yaml:"repository"`
	Credentials       CredentialsConfig `yaml:"credentials"`
	ReplaceExisting   bool              `yaml:"replaceExisting"`
	Skip              bool              `yaml:"skip"`
	IgnoreTypes       []string          `yaml:"ignoreTypes"`
	Parser            string            `yaml:"parser"`
	Artifact          deploy.Artifact   `yaml:"artifact"`
	AttachedArtifacts []deploy.Artifact `yaml:"attachedArtifacts"`
}

// RepositoryConfig names the target repository explicitly or through an SCM
// connection string.
type RepositoryConfig struct {
	Owner string `yaml:"owner"`
	Name  string `yaml:"name"`
	SCM   string `yaml:"scm"`
}

// CredentialsConfig defines the credentials configuration
type CredentialsConfig struct {
	Login    string `yaml:"login"`
	Token    string `yaml:"token,omitempty"`
	ServerID string `yaml:"serverId"`
	File     string `yaml:"file"`
}

// Default returns the configuration used when no project file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// LoadConfig loads the configuration from a file
func LoadConfig(path string) (*Config, error) {
	data, err := fileutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	expandedData := expandEnvInYaml(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	applyDefaults(&config)
	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadOrDefault loads path, falling back to Default when the file does not
// exist. Any other error is returned.
func LoadOrDefault(path string) (*Config, error) {
	if !fileutil.Exists(path) {
		return Default(), nil
	}
	return LoadConfig(path)
}

// Options converts the project configuration into pipeline options.
func (c *Config) Options() deploy.Options {
	d := c.Deploy
	return deploy.Options{
		Skip:            d.Skip,
		Owner:           d.Repository.Owner,
		Name:            d.Repository.Name,
		SCM:             d.Repository.SCM,
		Login:           d.Credentials.Login,
		Token:           d.Credentials.Token,
		ReplaceExisting: d.ReplaceExisting,
		IgnoreTypes:     d.IgnoreTypes,
		Artifact:        d.Artifact,
		Attached:        d.AttachedArtifacts,
	}
}

// expandEnvInYaml expands environment variables in YAML content
func expandEnvInYaml(content string) string {
	return os.Expand(content, func(key string) string {
		return os.Getenv(key)
	})
}

func applyDefaults(config *Config) {
	if config.Deploy.Credentials.ServerID == "" {
		config.Deploy.Credentials.ServerID = credentials.DefaultServerID
	}
	if config.Deploy.Credentials.File == "" {
		config.Deploy.Credentials.File = DefaultCredentialsFile
	}
	if config.Deploy.Parser == "" {
		config.Deploy.Parser = listing.ParserRegex
	}
}

// validateConfig performs basic validation on the configuration
func validateConfig(config *Config) error {
	config.Deploy.Parser = strings.ToLower(config.Deploy.Parser)
	switch config.Deploy.Parser {
	case listing.ParserRegex, listing.ParserHTML:
	default:
		return fmt.Errorf("invalid parser: %s, must be '%s' or '%s'",
			config.Deploy.Parser, listing.ParserRegex, listing.ParserHTML)
	}

	r := config.Deploy.Repository
	if (r.Owner == "") != (r.Name == "") {
		return fmt.Errorf("repository owner and name must be set together")
	}

	for i, a := range config.Deploy.AttachedArtifacts {
		if a.Path == "" {
			return fmt.Errorf("attached artifact %d has no path", i)
		}
	}

	return nil
}
