package config

import (
	"os"
	"runtime"
	"strings"
	"testing"
	"time"
)

// TestLoad_Defaults tests first-use materialization
func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty default", cfg.APIKey)
	}
	if cfg.Model == "" {
		t.Error("default config has no model")
	}

	for _, path := range []string{Path(dir), PromptPath(dir)} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("default file %s not created: %v", path, err)
		}
	}
}

// TestLoad_Existing tests that an edited config is honored
func TestLoad_Existing(t *testing.T) {
	dir := t.TempDir()

	content := "api_key: \"sk-abc\"\nmodel: \"my/model\"\ntemperature: 0.7\nmax_tokens: 512\n"
	if err := os.WriteFile(Path(dir), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIKey != "sk-abc" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.Model != "my/model" {
		t.Errorf("Model = %q", cfg.Model)
	}

	params := cfg.ModelParams()
	if params["model"] != "my/model" {
		t.Errorf("params model = %v", params["model"])
	}
	if params["temperature"] != 0.7 {
		t.Errorf("params temperature = %v", params["temperature"])
	}
	if params["max_tokens"] != 512 {
		t.Errorf("params max_tokens = %v", params["max_tokens"])
	}
}

// TestLoad_Invalid tests rejection of broken config files
func TestLoad_Invalid(t *testing.T) {
	t.Run("bad yaml", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(Path(dir), []byte("model: [unclosed"), 0o600)
		if _, err := Load(dir); err == nil {
			t.Fatal("expected error for malformed yaml")
		}
	})

	t.Run("missing model", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(Path(dir), []byte("api_key: \"x\"\n"), 0o600)
		if _, err := Load(dir); err == nil {
			t.Fatal("expected error for config without model")
		}
	})
}

// TestReset tests defaults restoration with API key preservation
func TestReset(t *testing.T) {
	dir := t.TempDir()

	content := "api_key: \"sk-keepme\"\nmodel: \"custom/model\"\ntemperature: 0.9\n"
	if err := os.WriteFile(Path(dir), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := os.WriteFile(PromptPath(dir), []byte("edited prompt"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := Reset(dir); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIKey != "sk-keepme" {
		t.Errorf("APIKey = %q, want preserved key", cfg.APIKey)
	}
	if cfg.Model == "custom/model" {
		t.Error("Model not reset to default")
	}

	prompt, err := os.ReadFile(PromptPath(dir))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(prompt) == "edited prompt" {
		t.Error("system prompt not reset")
	}
}

// TestSystemPrompt_Hydration tests context variable substitution
func TestSystemPrompt_Hydration(t *testing.T) {
	dir := t.TempDir()

	template := "os=${{OS}} cwd=${{CWD}} date=${{DATE}} shell=${{SHELL}}"
	if err := os.WriteFile(PromptPath(dir), []byte(template), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	prompt, err := cfg.SystemPrompt()
	if err != nil {
		t.Fatalf("SystemPrompt failed: %v", err)
	}

	if strings.Contains(prompt, "${{") {
		t.Errorf("unhydrated variables remain: %q", prompt)
	}
	if !strings.Contains(prompt, "os="+runtime.GOOS) {
		t.Errorf("OS not hydrated: %q", prompt)
	}

	cwd, _ := os.Getwd()
	if !strings.Contains(prompt, "cwd="+cwd) {
		t.Errorf("CWD not hydrated: %q", prompt)
	}
}

// TestHydrate_DateFormat pins the DATE layout
func TestHydrate_DateFormat(t *testing.T) {
	now := time.Date(2026, 8, 28, 13, 5, 7, 0, time.UTC)
	got := hydrate("${{DATE}}", now)
	if got != "2026-08-28 13:05:07" {
		t.Errorf("hydrated date = %q", got)
	}
}
