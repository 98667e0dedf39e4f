package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
	t.Setenv("HOME", dir)
	t.Setenv(EnvAPIKey, "")
	return dir
}

func TestLoadAppConfigFromFile(t *testing.T) {
	dir := isolate(t)
	yml := `api:
  key: file-key
  timeoutSeconds: 10
log:
  level: debug
`
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadAppConfig(); err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if Config.API.Key != "file-key" {
		t.Errorf("Key = %q, want file-key", Config.API.Key)
	}
	if Config.API.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d, want 10", Config.API.TimeoutSeconds)
	}
	if Config.Log.Level != "debug" {
		t.Errorf("Level = %q, want debug", Config.Log.Level)
	}
}

func TestLoadAppConfigDefaults(t *testing.T) {
	isolate(t)
	t.Setenv(EnvAPIKey, "env-key")

	if err := LoadAppConfig(); err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if Config.API.Key != "env-key" {
		t.Errorf("Key = %q, want env-key", Config.API.Key)
	}
	if Config.API.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want default 30", Config.API.TimeoutSeconds)
	}
	if Config.Log.Level != "info" {
		t.Errorf("Level = %q, want default info", Config.Log.Level)
	}
}

func TestLoadAppConfigEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	yml := "api:\n  key: file-key\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvAPIKey, "env-key")

	if err := LoadAppConfig(); err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if Config.API.Key != "env-key" {
		t.Errorf("Key = %q, the environment must win", Config.API.Key)
	}
}

func TestLoadAppConfigMissingKey(t *testing.T) {
	isolate(t)
	if err := LoadAppConfig(); err == nil {
		t.Fatal("expected an error without any API key")
	}
}

func TestLoadAppConfigInvalidLevel(t *testing.T) {
	dir := isolate(t)
	yml := "api:\n  key: k\nlog:\n  level: loud\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadAppConfig(); err == nil {
		t.Fatal("expected a validation error for an unknown log level")
	}
}
