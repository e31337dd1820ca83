package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "5000" {
		t.Fatalf("expected default port 5000, got %s", cfg.Server.Port)
	}
	if cfg.OpenAI.Model != "gpt-3.5-turbo" {
		t.Fatalf("unexpected model %s", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.Temperature != 0.3 {
		t.Fatalf("unexpected temperature %v", cfg.OpenAI.Temperature)
	}
	if cfg.Jira.Timeout != 30*time.Second {
		t.Fatalf("unexpected jira timeout %v", cfg.Jira.Timeout)
	}
	if cfg.Storage.Type != StorageTypeLocal || cfg.Storage.UploadDir != "uploads" {
		t.Fatalf("unexpected storage defaults %+v", cfg.Storage)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("JIRA_TIMEOUT", "5s")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:9090" {
		t.Fatalf("unexpected addr %s", cfg.Addr())
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected openai config %+v", cfg.OpenAI)
	}
	if cfg.Jira.Timeout != 5*time.Second {
		t.Fatalf("unexpected jira timeout %v", cfg.Jira.Timeout)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.Server.AllowedOrigins)
	}
}

func TestValidate_Storage(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "s3")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected unsupported storage type to fail")
	}

	t.Setenv("STORAGE_TYPE", "minio")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected minio without endpoint to fail")
	}

	t.Setenv("STORAGE_ENDPOINT", "localhost:9000")
	if _, err := FromEnv(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
