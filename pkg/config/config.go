/*
Package config manages TOML config for the JsonPlayground engines.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/codefrydev/JsonPlayground/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// EngineConfig tunes the suggestion engine.
type EngineConfig struct {
	RootName         string `toml:"root_name"`
	ArraySampleLimit int    `toml:"array_sample_limit"`
	IndexSampleLimit int    `toml:"index_sample_limit"`
	CaseSensitive    bool   `toml:"case_sensitive"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxBufferLen     int `toml:"max_buffer_len"`
	MaxDocumentBytes int `toml:"max_document_bytes"`
	DefaultLimit     int `toml:"default_limit"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	Pretty       bool `toml:"pretty"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			RootName:         "data",
			ArraySampleLimit: 10,
			IndexSampleLimit: 3,
		},
		Server: ServerConfig{
			MaxBufferLen:     4096,
			MaxDocumentBytes: 4 << 20,
			DefaultLimit:     24,
		},
		CLI: CliConfig{
			DefaultLimit: 24,
			Pretty:       true,
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/jsonplayground
// 2. Current executable dir
// 3. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "jsonplayground")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/jsonplayground/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
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

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
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

// tryPartialParse salvages whatever sections still parse from a damaged
// config file, keeping defaults for the rest.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if engineSection, ok := utils.ExtractSection(tempConfig, "engine"); ok {
		extractEngineConfig(engineSection, &config.Engine)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

func extractEngineConfig(data map[string]any, engine *EngineConfig) {
	if val, ok := utils.ExtractString(data, "root_name"); ok {
		engine.RootName = val
	}
	if val, ok := utils.ExtractInt64(data, "array_sample_limit"); ok {
		engine.ArraySampleLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "index_sample_limit"); ok {
		engine.IndexSampleLimit = val
	}
	if val, ok := utils.ExtractBool(data, "case_sensitive"); ok {
		engine.CaseSensitive = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_buffer_len"); ok {
		server.MaxBufferLen = val
	}
	if val, ok := utils.ExtractInt64(data, "max_document_bytes"); ok {
		server.MaxDocumentBytes = val
	}
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		server.DefaultLimit = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractBool(data, "pretty"); ok {
		cli.Pretty = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// EngineOptions converts the engine section into suggest.Options-shaped
// primitives without importing the suggest package here.
func (c *Config) EngineOptions() (rootName string, arraySample, indexSample int, caseSensitive bool) {
	return c.Engine.RootName, c.Engine.ArraySampleLimit, c.Engine.IndexSampleLimit, c.Engine.CaseSensitive
}

// Update changes the engine config values and saves to file
func (c *Config) Update(configPath string, rootName *string, arraySample, indexSample *int, caseSensitive *bool) error {
	engine := &c.Engine
	if rootName != nil && *rootName != "" {
		engine.RootName = *rootName
	}
	if arraySample != nil {
		engine.ArraySampleLimit = *arraySample
	}
	if indexSample != nil {
		engine.IndexSampleLimit = *indexSample
	}
	if caseSensitive != nil {
		engine.CaseSensitive = *caseSensitive
	}
	return SaveConfig(c, configPath)
}
