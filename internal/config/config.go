package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied for any missing settings field.
const (
	DefaultIndicatorColor = "#e06c75"
	DefaultModifiedField  = "modified"
	DefaultFormattedField = "formatted"
)

// Config holds the unified application configuration
type Config struct {
	Vault           string   `json:"vault" yaml:"vault"`
	IndicatorColor  string   `json:"indicator_color" yaml:"indicator_color"`
	IncludedFolders []string `json:"included_folders" yaml:"included_folders"`
	ModifiedField   string   `json:"modified_field" yaml:"modified_field"`
	FormattedField  string   `json:"formatted_field" yaml:"formatted_field"`
}

// Settings represents the config file structure
type Settings struct {
	Vault           string   `json:"vault,omitempty" yaml:"vault,omitempty"`
	IndicatorColor  string   `json:"indicator_color,omitempty" yaml:"indicator_color,omitempty"`
	IncludedFolders []string `json:"included_folders" yaml:"included_folders"`
	ModifiedField   string   `json:"modified_field,omitempty" yaml:"modified_field,omitempty"`
	FormattedField  string   `json:"formatted_field,omitempty" yaml:"formatted_field,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	Vault   string
	Folders []string
	Color   string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		IndicatorColor: DefaultIndicatorColor,
		ModifiedField:  DefaultModifiedField,
		FormattedField: DefaultFormattedField,
	}

	// Config file first for base values
	if path, err := findConfigFile(); err == nil && path != "" {
		if settings, err := loadConfigFile(path); err == nil {
			applySettings(cfg, settings)
		}
	}

	// Priority 2: environment variables override the config file
	if envVault := os.Getenv("FMTCHECK_VAULT"); envVault != "" {
		cfg.Vault = expandPath(envVault)
	}
	if envFolders := os.Getenv("FMTCHECK_FOLDERS"); envFolders != "" {
		cfg.IncludedFolders = ParseFolderList(envFolders)
	}
	if envColor := os.Getenv("FMTCHECK_COLOR"); envColor != "" {
		cfg.IndicatorColor = envColor
	}

	// Priority 1: CLI flags override everything
	if flags.Vault != "" {
		cfg.Vault = expandPath(flags.Vault)
	}
	if len(flags.Folders) > 0 {
		cfg.IncludedFolders = flags.Folders
	}
	if flags.Color != "" {
		cfg.IndicatorColor = flags.Color
	}

	// Fall back to the current directory as the vault
	if cfg.Vault == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		cfg.Vault = wd
	}

	return cfg, nil
}

func applySettings(cfg *Config, settings *Settings) {
	if settings.Vault != "" {
		cfg.Vault = expandPath(settings.Vault)
	}
	if settings.IndicatorColor != "" {
		cfg.IndicatorColor = settings.IndicatorColor
	}
	if len(settings.IncludedFolders) > 0 {
		cfg.IncludedFolders = normalizeFolders(settings.IncludedFolders)
	}
	if settings.ModifiedField != "" {
		cfg.ModifiedField = settings.ModifiedField
	}
	if settings.FormattedField != "" {
		cfg.FormattedField = settings.FormattedField
	}
}

// Dir returns the configuration directory (~/.config/fmtcheck)
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "fmtcheck"), nil
}

func jsonConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func yamlConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// findConfigFile returns the first existing config file, preferring JSON.
func findConfigFile() (string, error) {
	jsonPath, err := jsonConfigPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath, nil
	}
	yamlPath, err := yamlConfigPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath, nil
	}
	return "", nil
}

// loadConfigFile loads configuration from the settings file (JSON or YAML)
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return nil, err
		}
	} else {
		if err := json.Unmarshal(data, &settings); err != nil {
			return nil, err
		}
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	path, err := findConfigFile()
	if err != nil {
		return err
	}
	if path != "" {
		return nil
	}

	jsonPath, err := jsonConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(jsonPath), 0755); err != nil {
		return err
	}

	settings := Settings{
		IndicatorColor:  DefaultIndicatorColor,
		IncludedFolders: []string{},
		ModifiedField:   DefaultModifiedField,
		FormattedField:  DefaultFormattedField,
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(jsonPath, data, 0644)
}

// Save persists the current settings to the config file. A YAML config is
// written back as YAML, everything else as JSON.
func Save(cfg *Config) error {
	path, err := findConfigFile()
	if err != nil {
		return err
	}
	if path == "" {
		if path, err = jsonConfigPath(); err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
	}

	settings := Settings{
		Vault:           cfg.Vault,
		IndicatorColor:  cfg.IndicatorColor,
		IncludedFolders: cfg.IncludedFolders,
		ModifiedField:   cfg.ModifiedField,
		FormattedField:  cfg.FormattedField,
	}
	if settings.IncludedFolders == nil {
		settings.IncludedFolders = []string{}
	}

	var data []byte
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(settings)
	} else {
		data, err = json.MarshalIndent(settings, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ParseFolderList splits a newline- or comma-separated list of folder
// prefixes, dropping blanks.
func ParseFolderList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == ','
	})
	var result []string
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			result = append(result, f)
		}
	}
	return result
}

func normalizeFolders(folders []string) []string {
	var result []string
	for _, f := range folders {
		f = strings.TrimSpace(f)
		if f != "" {
			result = append(result, f)
		}
	}
	return result
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
