package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultProvider is the only hosting provider registered today.
	DefaultProvider = "github"
	// DefaultAPIURL is the public GitHub REST endpoint.
	DefaultAPIURL = "https://api.github.com/"
	// DefaultHTTPTimeout bounds a single API call or download.
	DefaultHTTPTimeout = 5 * time.Minute
	// UserAgent is the client marker sent with every request.
	UserAgent = "dep-checker"
)

// Settings is the top-level configuration for dep-checker.
type Settings struct {
	Provider    string          `yaml:"provider"`
	GitHub      GitHubSettings  `yaml:"github"`
	Workspace   WorkspaceConfig `yaml:"workspace"`
	HTTPTimeout time.Duration   `yaml:"http_timeout"`
}

// GitHubSettings configures the GitHub gateway.
type GitHubSettings struct {
	Token  string `yaml:"token"`   // Inline, ${ENV_VAR}, or file path
	APIURL string `yaml:"api_url"` // Trailing slash is added when missing
}

// WorkspaceConfig configures where scratch directories are allocated.
type WorkspaceConfig struct {
	Root string `yaml:"root"`
}

// SourceOptions is what a release source factory needs to build a gateway.
type SourceOptions struct {
	Token       string
	APIURL      string
	HTTPTimeout time.Duration
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no config file is found.
func DefaultSettings() *Settings {
	settings := &Settings{}
	settings.applyDefaults()
	return settings
}

// NewSettings reads and parses a configuration file, expanding environment
// variables and resolving token file paths.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.GitHub.Token = resolveToken(settings.GitHub.Token)
	settings.applyDefaults()

	if validateErr := validateSettings(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// LoadSettings loads the given file, or the first file FindConfigFile locates,
// falling back to defaults when neither exists.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return DefaultSettings(), nil
		}
		path = found
	}
	logger.Debugf("Using config file: %s", path)
	return NewSettings(path)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".dep-checker.yaml",
		".dep-checker.yml",
		"dep-checker.yaml",
		"dep-checker.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ResolveGitHubToken picks the token from the flag, then the settings, then
// GITHUB_TOKEN and GH_TOKEN. An empty result is legal.
func (s *Settings) ResolveGitHubToken(flagToken string) string {
	if flagToken != "" {
		return flagToken
	}
	if s.GitHub.Token != "" {
		return s.GitHub.Token
	}
	return resolveTokenFromEnv()
}

// SourceOptions derives gateway options, resolving the token as ResolveGitHubToken does.
func (s *Settings) SourceOptions(flagToken string) SourceOptions {
	return SourceOptions{
		Token:       s.ResolveGitHubToken(flagToken),
		APIURL:      s.GitHub.APIURL,
		HTTPTimeout: s.HTTPTimeout,
	}
}

func (s *Settings) applyDefaults() {
	if s.Provider == "" {
		s.Provider = DefaultProvider
	}
	if s.GitHub.APIURL == "" {
		s.GitHub.APIURL = DefaultAPIURL
	}
	if !strings.HasSuffix(s.GitHub.APIURL, "/") {
		s.GitHub.APIURL += "/"
	}
	if s.Workspace.Root == "" {
		s.Workspace.Root = filepath.Join(os.TempDir(), "dep-checker")
	}
	if s.HTTPTimeout <= 0 {
		s.HTTPTimeout = DefaultHTTPTimeout
	}
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if resolved == "" {
		return resolved
	}
	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

func resolveTokenFromEnv() string {
	if t := os.Getenv("GITHUB_TOKEN"); t != "" {
		return t
	}
	return os.Getenv("GH_TOKEN")
}

// validateSettings checks values that defaults cannot repair.
func validateSettings(settings *Settings) error {
	if settings.Provider != DefaultProvider {
		return fmt.Errorf("provider %q is not supported (only %q)", settings.Provider, DefaultProvider)
	}
	if !filepath.IsAbs(settings.Workspace.Root) {
		return fmt.Errorf("workspace.root must be an absolute path, got %q", settings.Workspace.Root)
	}
	return nil
}
