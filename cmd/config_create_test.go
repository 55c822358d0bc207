package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func useConfigFile(t *testing.T, path string) {
	t.Helper()
	t.Cleanup(func() {
		cfgFile = ""
		viper.Reset()
	})
	cfgFile = path
	viper.Reset()
}

func TestSaveDefaultConfigCreatesExampleTemplate(t *testing.T) {
	tmpConfig := filepath.Join(t.TempDir(), "create-template.yaml")
	useConfigFile(t, tmpConfig)

	var out bytes.Buffer
	if err := saveDefaultConfig(&out, false); err != nil {
		t.Fatalf("unexpected error creating config: %v", err)
	}
	if !strings.Contains(out.String(), "New config file created at: "+tmpConfig) {
		t.Fatalf("unexpected output: %q", out.String())
	}

	content, err := os.ReadFile(tmpConfig)
	if err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}

	text := string(content)
	if !strings.Contains(text, "# timecard configuration") {
		t.Fatalf("expected example header in config file, got:\n%s", text)
	}
	if !strings.Contains(text, "output_format: \"csv\"") || !strings.Contains(text, "port: 8080") {
		t.Fatalf("expected report and serve defaults in config file, got:\n%s", text)
	}
}

func TestSaveDefaultConfigDoesNotOverwriteExistingFile(t *testing.T) {
	tmpConfig := filepath.Join(t.TempDir(), "existing.yaml")
	original := "serve:\n  port: 9090\n"
	if err := os.WriteFile(tmpConfig, []byte(original), 0o644); err != nil {
		t.Fatalf("failed writing initial config: %v", err)
	}
	useConfigFile(t, tmpConfig)

	var out bytes.Buffer
	if err := saveDefaultConfig(&out, false); err != nil {
		t.Fatalf("unexpected error creating config: %v", err)
	}

	content, err := os.ReadFile(tmpConfig)
	if err != nil {
		t.Fatalf("failed reading existing config after create: %v", err)
	}
	if string(content) != original {
		t.Fatalf("expected existing config to remain unchanged")
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestSaveDefaultConfigForceResetsFile(t *testing.T) {
	tmpConfig := filepath.Join(t.TempDir(), "existing.yaml")
	if err := os.WriteFile(tmpConfig, []byte("serve:\n  port: 9090\n"), 0o644); err != nil {
		t.Fatalf("failed writing initial config: %v", err)
	}
	useConfigFile(t, tmpConfig)

	var out bytes.Buffer
	if err := saveDefaultConfig(&out, true); err != nil {
		t.Fatalf("unexpected error resetting config: %v", err)
	}

	content, err := os.ReadFile(tmpConfig)
	if err != nil {
		t.Fatalf("failed reading config: %v", err)
	}
	if !strings.HasPrefix(string(content), "# timecard configuration") {
		t.Fatalf("expected template content after force, got:\n%s", content)
	}
}
