package config

import (
	"strings"
	"testing"
)

func TestValidateYAMLContent_AcceptsExampleTemplate(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(ExampleYAML()))
	if err != nil {
		t.Fatalf("expected example config to validate: %v", err)
	}
	if cfg.Serve.Port != 8080 || cfg.Serve.MaxUploadMB != 32 || !cfg.Serve.OpenBrowser {
		t.Fatalf("unexpected serve values: %+v", cfg.Serve)
	}
	if cfg.Report.OutputFormat != "csv" || cfg.Report.FileName != "timecard_report" {
		t.Fatalf("unexpected report values: %+v", cfg.Report)
	}
}

func TestValidateYAMLContent_AppliesDefaultsForMissingKeys(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte("serve:\n  port: 9090\n"))
	if err != nil {
		t.Fatalf("expected partial config to validate: %v", err)
	}
	if cfg.Serve.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Serve.Port)
	}
	if cfg.Serve.MaxUploadMB != 32 {
		t.Fatalf("expected default upload limit, got %d", cfg.Serve.MaxUploadMB)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("expected default log level, got %q", cfg.Log.Level)
	}
}

func TestValidateYAMLContent_NormalizesCase(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte("report:\n  output_format: \"Excel\"\nlog:\n  level: \"DEBUG\"\n"))
	if err != nil {
		t.Fatalf("expected config to validate: %v", err)
	}
	if cfg.Report.OutputFormat != "excel" || cfg.Log.Level != "debug" {
		t.Fatalf("expected lowercased values, got format=%q level=%q", cfg.Report.OutputFormat, cfg.Log.Level)
	}
}

func TestValidateYAMLContent_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{name: "unsupported output format", content: "report:\n  output_format: \"pdf\"\n", field: "OutputFormat"},
		{name: "port out of range", content: "serve:\n  port: 70000\n", field: "Port"},
		{name: "zero upload limit", content: "serve:\n  max_upload_mb: 0\n", field: "MaxUploadMB"},
		{name: "unknown log level", content: "log:\n  level: \"loud\"\n", field: "Level"},
		{name: "file name with path", content: "report:\n  file_name: \"../report\"\n", field: "FileName"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ValidateYAMLContent([]byte(tc.content))
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Fatalf("expected error to mention %s, got: %v", tc.field, err)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Serve.MaxUploadBytes() != 32<<20 {
		t.Fatalf("unexpected default upload limit: %d", cfg.Serve.MaxUploadBytes())
	}
}
