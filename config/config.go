package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

var (
	configDir  = filepath.Join(os.Getenv("HOME"), ".procdebug")
	configPath = filepath.Join(configDir, "config.json")
)

func LoadConfig() (*Config, error) {
	os.MkdirAll(configDir, 0755)

	data, err := os.ReadFile(configPath)
	if err != nil {
		cfg := defaultConfig()
		_ = SaveConfig(cfg)
		return cfg, nil
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg := defaultConfig()
		_ = SaveConfig(cfg)
		return cfg, nil
	}

	return &cfg, nil
}

func SaveConfig(cfg *Config) error {
	data, _ := json.MarshalIndent(cfg, "", "  ")
	return os.WriteFile(configPath, data, 0644)
}

func defaultConfig() *Config {
	return &Config{
		UpdateInterval:    2.0,
		CPUThreshold:      90,
		MemThreshold:      80,
		HistoryTTLMinutes: 10,
		ActiveWebhook:     "",
		Webhooks:          map[string]string{},
	}
}

func ConfigPath() string {
	return configPath
}
