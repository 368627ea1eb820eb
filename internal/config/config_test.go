package config

import "testing"

func TestTokenRotationCyclesBackToStart(t *testing.T) {
	cfg := &Config{GroqAPITokens: []string{"t1", "t2", "t3"}}

	if got := cfg.CurrentToken(); got != "t1" {
		t.Fatalf("CurrentToken = %q, want t1", got)
	}
	for _, want := range []string{"t2", "t3", "t1"} {
		if got := cfg.RotateToken(); got != want {
			t.Fatalf("RotateToken = %q, want %q", got, want)
		}
	}
	if got := cfg.CurrentToken(); got != "t1" {
		t.Fatalf("after full rotation CurrentToken = %q, want t1", got)
	}
}

func TestTokenRotationNoopForSingleToken(t *testing.T) {
	cfg := &Config{GroqAPITokens: []string{"only"}}
	for i := 0; i < 3; i++ {
		if got := cfg.RotateToken(); got != "only" {
			t.Fatalf("RotateToken = %q, want only", got)
		}
	}
}

func TestCurrentTokenEmptyList(t *testing.T) {
	cfg := &Config{}
	if got := cfg.CurrentToken(); got != "" {
		t.Fatalf("CurrentToken on empty list = %q, want empty", got)
	}
	if got := cfg.RotateToken(); got != "" {
		t.Fatalf("RotateToken on empty list = %q, want empty", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PrimaryModel != "llama-3.3-70b-versatile" {
		t.Fatalf("PrimaryModel = %q", cfg.PrimaryModel)
	}
	if cfg.OutputFormat != "markdown" {
		t.Fatalf("OutputFormat = %q", cfg.OutputFormat)
	}
	if cfg.RequestTimeout.Seconds() != 30 {
		t.Fatalf("RequestTimeout = %s", cfg.RequestTimeout)
	}
	if len(cfg.TopicsOfInterest) != 4 {
		t.Fatalf("TopicsOfInterest = %v", cfg.TopicsOfInterest)
	}
}

func TestLoadAssemblesTokensFromEnv(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "primary")
	t.Setenv("GROQ_API_TOKENS", "backup1, backup2,")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"primary", "backup1", "backup2"}
	if len(cfg.GroqAPITokens) != len(want) {
		t.Fatalf("GroqAPITokens = %v, want %v", cfg.GroqAPITokens, want)
	}
	for i := range want {
		if cfg.GroqAPITokens[i] != want[i] {
			t.Fatalf("GroqAPITokens[%d] = %q, want %q", i, cfg.GroqAPITokens[i], want[i])
		}
	}
}

func TestLoadRejectsMissingConfigFile(t *testing.T) {
	if _, err := Load("does/not/exist.yaml"); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
