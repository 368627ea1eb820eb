package sinks

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadRegistryYAML(t *testing.T) {
	path := writeTempFile(t, "sinks.yaml", `
sinks:
  - id: local
    type: file
    file:
      directory: ./out
      format: HTML
  - id: hook
    type: http
    enabled: false
    http:
      url: https://example.com/hook
`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}

	all := reg.All()
	if len(all) != 2 {
		t.Fatalf("All = %d entries", len(all))
	}

	local, ok := reg.ByID("local")
	if !ok {
		t.Fatalf("local sink missing")
	}
	if local.File == nil || local.File.Format != "html" {
		t.Fatalf("file format not normalized: %#v", local.File)
	}

	enabled := reg.Enabled()
	if len(enabled) != 1 || enabled[0].ID != "local" {
		t.Fatalf("Enabled = %#v", enabled)
	}

	hook, _ := reg.ByID("hook")
	if hook.HTTP.Method != "POST" || hook.HTTP.TimeoutSeconds != httpDefaultTimeoutSeconds {
		t.Fatalf("http defaults not applied: %#v", hook.HTTP)
	}
}

func TestLoadRegistryJSON(t *testing.T) {
	path := writeTempFile(t, "sinks.json", `{"sinks":[{"id":"q","type":"sqs","sqs":{"uri":"https://sqs.example/q","region":"us-east-1"}}]}`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if _, ok := reg.ByID("q"); !ok {
		t.Fatalf("sqs sink missing")
	}
}

func TestLoadRegistryRejectsDuplicateIDs(t *testing.T) {
	path := writeTempFile(t, "sinks.yaml", `
sinks:
  - id: dup
    type: file
    file:
      directory: ./a
  - id: dup
    type: file
    file:
      directory: ./b
`)

	if _, err := LoadRegistry(path); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestLoadRegistryValidation(t *testing.T) {
	cases := map[string]string{
		"missing id":          "sinks:\n  - type: file\n    file:\n      directory: ./a\n",
		"missing type":        "sinks:\n  - id: x\n",
		"file dir required":   "sinks:\n  - id: x\n    type: file\n",
		"sqs region required": "sinks:\n  - id: x\n    type: sqs\n    sqs:\n      uri: https://sqs.example/q\n",
		"sns arn required":    "sinks:\n  - id: x\n    type: sns\n    sns:\n      region: us-east-1\n",
		"bolt path required":  "sinks:\n  - id: x\n    type: bolt\n",
	}

	for name, content := range cases {
		path := writeTempFile(t, "sinks.yaml", content)
		if _, err := LoadRegistry(path); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestRegistryRejectsUnknownType(t *testing.T) {
	reg := DefaultRegistry()
	_, err := reg.SinkFor(context.Background(), SinkConfig{ID: "x", Type: "carrier-pigeon"}, nil)
	if err == nil {
		t.Fatalf("expected error for unknown sink type")
	}
}

func TestBuildAllStopsOnFirstError(t *testing.T) {
	reg := DefaultRegistry()
	cfgs := []SinkConfig{
		{ID: "ok", Type: TypeFile, File: &FileSinkConfig{Directory: t.TempDir(), Format: "markdown"}},
		{ID: "broken", Type: "carrier-pigeon"},
	}

	if _, err := BuildAll(context.Background(), reg, cfgs, nil); err == nil {
		t.Fatalf("expected build error")
	}
}
