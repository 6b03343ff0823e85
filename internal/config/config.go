// Package config loads the bot configuration from a YAML file next to the
// executable, with environment fallbacks for credentials.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var exeDirCache string

// getExecutableDir returns the directory where the executable is located.
func getExecutableDir() string {
	if exeDirCache != "" {
		return exeDirCache
	}
	execPath, err := os.Executable()
	if err != nil {
		exeDirCache = "."
		return exeDirCache
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		exeDirCache = "."
		return exeDirCache
	}
	exeDirCache = filepath.Dir(execPath)
	return exeDirCache
}

// Config is the full bot configuration.
type Config struct {
	Discord  DiscordConfig  `yaml:"discord,omitempty"`
	Search   SearchConfig   `yaml:"search,omitempty"`
	Reformat ReformatConfig `yaml:"reformat,omitempty"`
}

type DiscordConfig struct {
	Token string `yaml:"token,omitempty"`
}

// SearchConfig tunes the Archives of Nethys client.
type SearchConfig struct {
	APIBase         string `yaml:"api_base,omitempty"`
	WebBase         string `yaml:"web_base,omitempty"`
	ResultLimit     int    `yaml:"result_limit,omitempty"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds,omitempty"`
	TimeoutSeconds  int    `yaml:"timeout_seconds,omitempty"`
}

// ReformatConfig enables the optional LLM description rewriting.
type ReformatConfig struct {
	Provider string `yaml:"provider,omitempty"` // "openai" or "anthropic"; empty disables
	APIKey   string `yaml:"api_key,omitempty"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			ResultLimit:     5,
			CacheTTLSeconds: 300,
			TimeoutSeconds:  10,
		},
	}
}

// ConfigPath is the default config file location.
func ConfigPath() string {
	return filepath.Join(getExecutableDir(), ".nethys.yaml")
}

// Load reads the config from the default path; a missing file yields the
// defaults.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath reads the config from an explicit path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DiscordToken resolves the bot token: config first, then the DISCORD_TOKEN
// and NETHYS_TOKEN environment variables. Empty means misconfigured; looking
// it up again at runtime is never done.
func (c *Config) DiscordToken() string {
	if c.Discord.Token != "" {
		return c.Discord.Token
	}
	if token := os.Getenv("DISCORD_TOKEN"); token != "" {
		return token
	}
	return os.Getenv("NETHYS_TOKEN")
}
