package config

import (
	"strings"
	"testing"

	"github.com/dataTrevor/automatic-create-dashboard/internal/config"
)

func TestGet_DefaultRegion_NotSet(t *testing.T) {
	setupTestConfig(t)

	stdout, err := execConfig(t, "get", "default-region")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "not set") {
		t.Errorf("expected 'not set', got: %s", stdout)
	}
}

func TestGet_DefaultRegion_Set(t *testing.T) {
	path := setupTestConfig(t)

	cfg := &config.Config{DefaultRegion: "ap-northeast-1"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, err := execConfig(t, "get", "DEFAULT-REGION")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(stdout) != "ap-northeast-1" {
		t.Errorf("expected 'ap-northeast-1', got: %s", stdout)
	}
}

func TestGet_All(t *testing.T) {
	path := setupTestConfig(t)

	cfg := &config.Config{DefaultRegion: "us-east-1", Namespace: "AWS/RDS"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, err := execConfig(t, "get")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"default-region: us-east-1", "namespace: AWS/RDS", "template: (not set)", "profile: (not set)"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestGet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, err := execConfig(t, "get", "bogus-key")
	if err == nil || !strings.Contains(err.Error(), "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %v", err)
	}
}
