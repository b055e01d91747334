/*
Package config manages TOML config for Hiztegia.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bastiangx/hiztegia/internal/utils"
	"github.com/charmbracelet/log"
)

// FileName is the config file name inside the config dir.
const FileName = "hiztegia.toml"

// ErrInvalidValue is returned by Update for out of range search values.
var ErrInvalidValue = errors.New("invalid config value")

// Config holds the entire config structure
type Config struct {
	Search SearchConfig `toml:"search"`
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
}

// SearchConfig has search related options.
type SearchConfig struct {
	MaxResults int  `toml:"max_results"`
	MinTerm    int  `toml:"min_term"`
	MaxTerm    int  `toml:"max_term"`
	UseIndex   bool `toml:"use_index"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Locale         string   `toml:"locale"`
	IncludeBuiltin bool     `toml:"include_builtin"`
	Sources        []string `toml:"sources"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int    `toml:"default_limit"`
	DefaultMode  string `toml:"default_mode"`
	ShowSynonyms bool   `toml:"show_synonyms"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "hiztegia")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "hiztegia")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for hiztegia.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, FileName), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/hiztegia/hiztegia.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MaxResults: 0,
			MinTerm:    1,
			MaxTerm:    60,
			UseIndex:   true,
		},
		Dict: DictConfig{
			Locale:         "eu",
			IncludeBuiltin: true,
			Sources:        []string{},
		},
		CLI: CliConfig{
			DefaultLimit: 25,
			DefaultMode:  "general",
			ShowSynonyms: true,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps whatever sections and keys still have the right type
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if searchSection, ok := utils.ExtractSection(tempConfig, "search"); ok {
		extractSearchConfig(searchSection, &config.Search)
	}
	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(dictSection, &config.Dict)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

func extractSearchConfig(data map[string]any, search *SearchConfig) {
	if val, ok := utils.ExtractInt64(data, "max_results"); ok {
		search.MaxResults = val
	}
	if val, ok := utils.ExtractInt64(data, "min_term"); ok {
		search.MinTerm = val
	}
	if val, ok := utils.ExtractInt64(data, "max_term"); ok {
		search.MaxTerm = val
	}
	if val, ok := utils.ExtractBool(data, "use_index"); ok {
		search.UseIndex = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "locale"); ok {
		dict.Locale = val
	}
	if val, ok := utils.ExtractBool(data, "include_builtin"); ok {
		dict.IncludeBuiltin = val
	}
	if val, ok := utils.ExtractStringSlice(data, "sources"); ok {
		dict.Sources = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractString(data, "default_mode"); ok {
		cli.DefaultMode = val
	}
	if val, ok := utils.ExtractBool(data, "show_synonyms"); ok {
		cli.ShowSynonyms = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the search values and saves to file. Nil values are left
// as they are. Nothing changes when the result would be invalid, and an
// empty configPath keeps the change in memory only.
func (c *Config) Update(configPath string, maxResults, minTerm, maxTerm *int, useIndex *bool) error {
	search := c.Search
	if maxResults != nil {
		search.MaxResults = *maxResults
	}
	if minTerm != nil {
		search.MinTerm = *minTerm
	}
	if maxTerm != nil {
		search.MaxTerm = *maxTerm
	}
	if useIndex != nil {
		search.UseIndex = *useIndex
	}

	switch {
	case search.MaxResults < 0:
		return fmt.Errorf("%w: max_results must not be negative, got %d", ErrInvalidValue, search.MaxResults)
	case search.MinTerm < 0:
		return fmt.Errorf("%w: min_term must not be negative, got %d", ErrInvalidValue, search.MinTerm)
	case search.MaxTerm < 0:
		return fmt.Errorf("%w: max_term must not be negative, got %d", ErrInvalidValue, search.MaxTerm)
	case search.MaxTerm > 0 && search.MinTerm > search.MaxTerm:
		return fmt.Errorf("%w: min_term %d exceeds max_term %d", ErrInvalidValue, search.MinTerm, search.MaxTerm)
	}

	c.Search = search
	if configPath == "" {
		return nil
	}
	return SaveConfig(c, configPath)
}
