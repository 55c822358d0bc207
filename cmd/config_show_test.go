package cmd

import (
	"bytes"
	"strings"
	"testing"

	"timecard/config"
)

func TestWriteConfigValues(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Serve.Port = 9191

	var out bytes.Buffer
	writeConfigValues(&out, "", cfg)

	text := out.String()
	for _, want := range []string{"(none, defaults)", "serve.port", "9191", "report.file_name", "timecard_report", "log.level", "info"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
}
