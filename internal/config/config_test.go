package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPathReadsAllSections(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, ".nethys.yaml")
	content := `discord:
  token: "abc123"
search:
  result_limit: 3
  cache_ttl_seconds: 60
  timeout_seconds: 5
reformat:
  provider: anthropic
  api_key: "sk-test"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Discord.Token != "abc123" {
		t.Fatalf("token = %q", cfg.Discord.Token)
	}
	if cfg.Search.ResultLimit != 3 || cfg.Search.CacheTTLSeconds != 60 || cfg.Search.TimeoutSeconds != 5 {
		t.Fatalf("search config wrong: %#v", cfg.Search)
	}
	if cfg.Reformat.Provider != "anthropic" || cfg.Reformat.APIKey != "sk-test" {
		t.Fatalf("reformat config wrong: %#v", cfg.Reformat)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Search.ResultLimit != 5 || cfg.Search.CacheTTLSeconds != 300 || cfg.Search.TimeoutSeconds != 10 {
		t.Fatalf("defaults wrong: %#v", cfg.Search)
	}
}

func TestDiscordTokenFallsBackToEnv(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "env-token")

	cfg := DefaultConfig()
	if got := cfg.DiscordToken(); got != "env-token" {
		t.Fatalf("token = %q, want env fallback", got)
	}

	cfg.Discord.Token = "file-token"
	if got := cfg.DiscordToken(); got != "file-token" {
		t.Fatalf("token = %q, config must win over env", got)
	}
}

func TestDiscordTokenSecondaryEnvFallback(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("NETHYS_TOKEN", "alt-token")

	cfg := DefaultConfig()
	if got := cfg.DiscordToken(); got != "alt-token" {
		t.Fatalf("token = %q, want NETHYS_TOKEN fallback", got)
	}
}
