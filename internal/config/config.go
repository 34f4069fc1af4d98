// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format           string `yaml:"format"`
		ConfidenceLevels string `yaml:"confidence_levels"`
		Verbose          bool   `yaml:"verbose"`
		Debug            bool   `yaml:"debug"`
		NoColor          bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Screening settings
	Screening struct {
		Model                 string `yaml:"model"`
		APIKeyEnv             string `yaml:"api_key_env"`
		RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
		MaxArticleChars       int    `yaml:"max_article_chars"`
		DisableLLM            bool   `yaml:"disable_llm"`
		Translate             bool   `yaml:"translate"`
	} `yaml:"screening"`

	// Profiles for different screening scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a screening profile with specific settings
type Profile struct {
	Format           string `yaml:"format"`
	ConfidenceLevels string `yaml:"confidence_levels"`
	Verbose          bool   `yaml:"verbose"`
	Debug            bool   `yaml:"debug"`
	NoColor          bool   `yaml:"no_color"`
	DisableLLM       bool   `yaml:"disable_llm"`
	Model            string `yaml:"model"`
	Description      string `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	// Default configuration
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.ConfidenceLevels = "all"
	config.Defaults.Verbose = false
	config.Defaults.Debug = false
	config.Defaults.NoColor = false

	config.Screening.Model = "gpt-4o-mini"
	config.Screening.APIKeyEnv = "OPENAI_API_KEY"
	config.Screening.RequestTimeoutSeconds = 30
	config.Screening.MaxArticleChars = 6000
	config.Screening.DisableLLM = false
	config.Screening.Translate = true

	// Add default batch profile for unattended runs
	config.Profiles["batch"] = Profile{
		Format:           "json",
		ConfidenceLevels: "all",
		Verbose:          false,
		Debug:            false,
		NoColor:          true,
		Description:      "Machine-readable output for batch screening pipelines",
	}

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	// Read config file
	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Restore defaults if not explicitly set in config file
	// This handles the case where YAML unmarshaling sets bool fields to false
	// when they're not present in the config file
	if !containsField(data, "screening", "translate") {
		config.Screening.Translate = true
	}
	if config.Screening.Model == "" {
		config.Screening.Model = "gpt-4o-mini"
	}
	if config.Screening.APIKeyEnv == "" {
		config.Screening.APIKeyEnv = "OPENAI_API_KEY"
	}
	if config.Screening.RequestTimeoutSeconds <= 0 {
		config.Screening.RequestTimeoutSeconds = 30
	}
	if config.Screening.MaxArticleChars <= 0 {
		config.Screening.MaxArticleChars = 6000
	}

	// Validate the configuration
	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfig checks the configuration for values the pipeline cannot run with
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	switch config.Defaults.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown output format: %s", config.Defaults.Format)
	}

	if config.Screening.RequestTimeoutSeconds > 300 {
		return fmt.Errorf("request timeout too large: %d seconds", config.Screening.RequestTimeoutSeconds)
	}

	return nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first - prioritize config.yaml
	if fileExists("config.yaml") {
		return "config.yaml"
	}
	if fileExists("adverse-screen.yaml") {
		return "adverse-screen.yaml"
	}
	if fileExists("adverse-screen.yml") {
		return "adverse-screen.yml"
	}

	// Check for .adverse-screen.yaml in current directory (project-specific config)
	if fileExists(".adverse-screen.yaml") {
		return ".adverse-screen.yaml"
	}
	if fileExists(".adverse-screen.yml") {
		return ".adverse-screen.yml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	// Check legacy locations in home directory
	homeConfig := filepath.Join(home, ".adverse-screen.yaml")
	if fileExists(homeConfig) {
		return homeConfig
	}
	homeConfig = filepath.Join(home, ".adverse-screen.yml")
	if fileExists(homeConfig) {
		return homeConfig
	}

	// Check XDG config directory
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	xdgConfigFile := filepath.Join(xdgConfig, "adverse-screen", "config.yaml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}
	xdgConfigFile = filepath.Join(xdgConfig, "adverse-screen", "config.yml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ListProfiles returns a list of available profile names
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// containsField checks if a nested field exists in the YAML data
func containsField(data []byte, path ...string) bool {
	var yamlData map[string]interface{}
	err := yaml.Unmarshal(data, &yamlData)
	if err != nil {
		return false
	}

	current := yamlData
	for i, key := range path {
		if i == len(path)-1 {
			// Last key - check if it exists
			_, exists := current[key]
			return exists
		}
		// Intermediate key - navigate deeper
		if next, ok := current[key].(map[string]interface{}); ok {
			current = next
		} else {
			return false
		}
	}
	return false
}

// LoadConfigOrDefault loads configuration from configFile (or searches standard locations
// when configFile is empty). If loading fails, it returns a default configuration.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Fall back to defaults — callers should not crash on a missing/bad config file.
		cfg, _ = LoadConfig("")
	}
	return cfg
}
