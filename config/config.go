// Package config manages the per-user configuration directory: model
// settings, the system prompt template, and the script store location.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configFile = "config.yaml"
	promptFile = "system_prompt.md"
	scriptsDir = "scripts"
)

// Config holds the model and sampler settings read from config.yaml
type Config struct {
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`

	dir string
}

// DefaultDir returns the per-user configuration directory
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pike"
	}
	return filepath.Join(home, ".pike")
}

// Path returns the config file path under dir
func Path(dir string) string {
	return filepath.Join(dir, configFile)
}

// PromptPath returns the system prompt path under dir
func PromptPath(dir string) string {
	return filepath.Join(dir, promptFile)
}

// ScriptsPath returns the script store directory under dir
func ScriptsPath(dir string) string {
	return filepath.Join(dir, scriptsDir)
}

// Load reads the config from dir, materializing the default config and
// system prompt on first use
func Load(dir string) (*Config, error) {
	if err := ensureDefaults(dir); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("config missing required field: model")
	}

	cfg.dir = dir
	return cfg, nil
}

// Reset rewrites the config and system prompt from the defaults, preserving
// a configured API key
func Reset(dir string) error {
	apiKey := ""
	if cfg, err := Load(dir); err == nil {
		apiKey = cfg.APIKey
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	content := defaultConfigYAML
	if apiKey != "" {
		var cfg Config
		if err := yaml.Unmarshal([]byte(defaultConfigYAML), &cfg); err != nil {
			return err
		}
		cfg.APIKey = apiKey
		out, err := yaml.Marshal(&cfg)
		if err != nil {
			return err
		}
		content = string(out)
	}

	if err := os.WriteFile(Path(dir), []byte(content), 0o600); err != nil {
		return err
	}
	return os.WriteFile(PromptPath(dir), []byte(defaultSystemPrompt), 0o644)
}

// ScriptsDir returns the script store directory for this config
func (c *Config) ScriptsDir() string {
	return ScriptsPath(c.dir)
}

// SystemPrompt returns the prompt template with the context variables
// hydrated
func (c *Config) SystemPrompt() (string, error) {
	data, err := os.ReadFile(PromptPath(c.dir))
	if err != nil {
		return "", fmt.Errorf("failed to read system prompt: %w", err)
	}
	return hydrate(string(data), time.Now()), nil
}

// ModelParams returns the request parameters for the completions call
func (c *Config) ModelParams() map[string]any {
	params := map[string]any{"model": c.Model}
	if c.Temperature != 0 {
		params["temperature"] = c.Temperature
	}
	if c.MaxTokens != 0 {
		params["max_tokens"] = c.MaxTokens
	}
	return params
}

// ensureDefaults creates the config directory and default files if missing
func ensureDefaults(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if _, err := os.Stat(Path(dir)); os.IsNotExist(err) {
		if err := os.WriteFile(Path(dir), []byte(defaultConfigYAML), 0o600); err != nil {
			return err
		}
	}
	if _, err := os.Stat(PromptPath(dir)); os.IsNotExist(err) {
		if err := os.WriteFile(PromptPath(dir), []byte(defaultSystemPrompt), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// hydrate substitutes the ${{...}} context variables into the prompt
func hydrate(template string, now time.Time) string {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "unknown"
	}
	cwd, _ := os.Getwd()

	r := strings.NewReplacer(
		"${{OS}}", runtime.GOOS,
		"${{CWD}}", cwd,
		"${{DATE}}", now.Format("2006-01-02 15:04:05"),
		"${{SHELL}}", shell,
	)
	return r.Replace(template)
}
