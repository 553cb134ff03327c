// Package config owns the flat JSON settings file:
// {default_provider, providers: {name: {api_key, model}}}.
// A missing, unreadable, or malformed file silently falls back to defaults;
// providers absent from the loaded file are back-filled without touching the
// others.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultModel is the placeholder model name a fresh provider entry gets.
const DefaultModel = "default-model"

const defaultMaxIterations = 25

type ProviderConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type AgentConfig struct {
	MaxIterations int    `mapstructure:"max_iterations"`
	ProfilesDir   string `mapstructure:"profiles_dir"`
}

type Config struct {
	DefaultProvider string                    `mapstructure:"default_provider"`
	Providers       map[string]ProviderConfig `mapstructure:"providers"`
	Agent           AgentConfig               `mapstructure:"agent"`
}

// Path resolves the settings file location under the platform config
// directory. It is called once at startup and threaded through explicitly so
// tests can point Load/Save elsewhere.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "meowcli", "config.json"), nil
}

func defaultProviders() map[string]ProviderConfig {
	return map[string]ProviderConfig{
		"base":       {Model: DefaultModel},
		"openrouter": {Model: DefaultModel},
		"gemini":     {Model: DefaultModel},
	}
}

// Load reads the settings file at path. It never fails: any read or parse
// problem yields the in-memory defaults.
func Load(path string) *Config {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetDefault("default_provider", "base")
	v.SetDefault("agent.max_iterations", defaultMaxIterations)
	v.SetDefault("agent.profiles_dir", filepath.Join(filepath.Dir(path), "profiles"))
	for name, pc := range defaultProviders() {
		v.SetDefault("providers."+name+".api_key", pc.APIKey)
		v.SetDefault("providers."+name+".model", pc.Model)
	}

	// Errors here leave only the defaults set, which is the fallback we want.
	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		cfg = Config{}
	}

	if cfg.DefaultProvider == "" {
		cfg.DefaultProvider = "base"
	}
	if cfg.Agent.MaxIterations <= 0 {
		cfg.Agent.MaxIterations = defaultMaxIterations
	}
	if cfg.Agent.ProfilesDir == "" {
		cfg.Agent.ProfilesDir = filepath.Join(filepath.Dir(path), "profiles")
	}
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]ProviderConfig)
	}
	for name, pc := range defaultProviders() {
		if _, ok := cfg.Providers[name]; !ok {
			cfg.Providers[name] = pc
		}
	}

	return &cfg
}

// Save writes the settings back as indented JSON, creating the config
// directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set("default_provider", cfg.DefaultProvider)
	for name, pc := range cfg.Providers {
		v.Set("providers."+name+".api_key", pc.APIKey)
		v.Set("providers."+name+".model", pc.Model)
	}
	v.Set("agent.max_iterations", cfg.Agent.MaxIterations)
	v.Set("agent.profiles_dir", cfg.Agent.ProfilesDir)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Provider returns the config for a named provider, falling back to the
// default provider when name is empty.
func (c *Config) Provider(name string) (string, ProviderConfig, error) {
	if name == "" {
		name = c.DefaultProvider
	}
	p, ok := c.Providers[name]
	if !ok {
		return "", ProviderConfig{}, fmt.Errorf("unknown provider: %s", name)
	}
	return name, p, nil
}
