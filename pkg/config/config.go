package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pmcconville-hub/seofactory-sub014/pkg/eav"
)

type ProviderConfig struct {
	APIKey string `yaml:"api_key"`
}

type Config struct {
	SelectedProvider string                    `yaml:"selected_provider"`
	SelectedModel    string                    `yaml:"selected_model"`
	Providers        map[string]ProviderConfig `yaml:"providers"`

	// AuditScoring and GradeThresholds are the externally configurable
	// constants consumed by the EAV auditor.
	AuditScoring    eav.ScoringConfig    `yaml:"audit_scoring"`
	GradeThresholds []eav.GradeThreshold `yaml:"grade_thresholds"`
}

func defaults() *Config {
	return &Config{
		SelectedProvider: "gemini",
		SelectedModel:    "gemini-pro",
		Providers:        make(map[string]ProviderConfig),
		AuditScoring:     eav.DefaultScoring(),
		GradeThresholds:  eav.DefaultGradeThresholds(),
	}
}

func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(home, ".seofactory")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaults(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]ProviderConfig)
	}
	if len(cfg.GradeThresholds) == 0 {
		cfg.GradeThresholds = eav.DefaultGradeThresholds()
	}
	if cfg.AuditScoring.BaseScore == 0 {
		cfg.AuditScoring = eav.DefaultScoring()
	}
	return cfg, nil
}

func SaveConfig(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	// 0600 permissions: the file holds API keys.
	return os.WriteFile(path, data, 0600)
}

func (c *Config) SetAPIKey(provider, key string) {
	p := c.Providers[provider]
	p.APIKey = key
	c.Providers[provider] = p
}

func (c *Config) GetAPIKey(provider string) string {
	return c.Providers[provider].APIKey
}
