// Package config loads and validates the flow configuration from
// ~/.config/flow/config.toml, environment variables (FLOW_ prefix), and
// defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Code      SearchRootConfig `mapstructure:"code"`
	Repos     SearchRootConfig `mapstructure:"repos"`
	Discovery DiscoveryConfig  `mapstructure:"discovery"`
	Workflow  WorkflowConfig   `mapstructure:"workflow"`
}

// SearchRootConfig holds the scan root for one search command
type SearchRootConfig struct {
	Root string `mapstructure:"root"` // Directory to scan for repositories
}

// DiscoveryConfig holds repository discovery configuration
type DiscoveryConfig struct {
	CacheDir      string `mapstructure:"cache_dir"`       // Directory for scan result caches
	CacheTTLHours int    `mapstructure:"cache_ttl_hours"` // Cache freshness window (default: 24)
}

// WorkflowConfig holds Alfred workflow packaging configuration
type WorkflowConfig struct {
	BundleID string `mapstructure:"bundle_id"` // Workflow bundle identifier
	Dir      string `mapstructure:"dir"`       // Workflow directory for link/pack
}

// Init points viper at the config file and environment. An empty cfgFile
// means the default search path under ~/.config/flow. A missing config
// file is fine; defaults and environment still apply.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get home directory")
		}
		viper.AddConfigPath(filepath.Join(home, ".config", "flow"))
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("FLOW")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "failed to read config file")
	}
	return nil
}

// Load loads the configuration from file and environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Set defaults
	setDefaults()

	// Unmarshal the config
	if err := viper.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	// Expand paths
	expandPaths(config)

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("code.root", "~/code")
	viper.SetDefault("repos.root", "~/repos")
	viper.SetDefault("discovery.cache_dir", "~/.cache/flow")
	viper.SetDefault("discovery.cache_ttl_hours", 24)
	viper.SetDefault("workflow.bundle_id", "nikiv.dev.flow")
	viper.SetDefault("workflow.dir", "Flow.alfredworkflow")
}

// expandPaths expands the cache directory only. The search roots stay
// as written so that commands can show them back to the user verbatim;
// they are expanded at the point of use.
func expandPaths(config *Config) {
	config.Discovery.CacheDir = ExpandPath(config.Discovery.CacheDir)
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Code.Root == "" {
		return errors.New("code.root must not be empty")
	}
	if c.Repos.Root == "" {
		return errors.New("repos.root must not be empty")
	}
	if c.Discovery.CacheTTLHours < 0 {
		return errors.Newf("discovery.cache_ttl_hours must not be negative, got %d", c.Discovery.CacheTTLHours)
	}
	if c.Workflow.BundleID == "" {
		return errors.New("workflow.bundle_id must not be empty")
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory. Paths
// without a ~ prefix pass through unchanged, as does everything when the
// home directory cannot be determined.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
