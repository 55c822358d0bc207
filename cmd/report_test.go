package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"timecard/config"
	"timecard/report"
	"timecard/timecard"
)

func TestResolveReportFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		flagFormat   string
		outputPath   string
		configFormat string
		want         string
	}{
		{name: "flag wins", flagFormat: "excel", outputPath: "out.csv", configFormat: "csv", want: "excel"},
		{name: "xlsx extension", outputPath: "out.xlsx", configFormat: "csv", want: "excel"},
		{name: "csv extension beats config", outputPath: "out.csv", configFormat: "excel", want: "csv"},
		{name: "unknown extension uses config", outputPath: "out.dat", configFormat: "excel", want: "excel"},
		{name: "nothing set", outputPath: "out", want: "csv"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := resolveReportFormat(tt.flagFormat, tt.outputPath, tt.configFormat); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPrintReportSummary(t *testing.T) {
	t.Parallel()

	result := &report.Result{
		RowsSkipped: 2,
		Table: timecard.Table{
			Rows:  make([]timecard.Row, 4),
			Stats: timecard.Stats{Worked: 3, Late: 1},
		},
	}

	var out bytes.Buffer
	printReportSummary(&out, result)
	if got := out.String(); got != "Report completed. Rows: 4, Worked: 3, Late: 1, Skipped: 2\n" {
		t.Fatalf("unexpected summary line: %q", got)
	}
}

func TestReportCommandWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	input := filepath.Join(dir, "week.csv")
	if err := os.WriteFile(input, []byte("Mon 1/15,Tue 1/16,Wed 1/17\n,715a-330p,830a-5p\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	outputPath := filepath.Join(dir, "report.csv")

	viper.Reset()
	config.SetDefaults()
	t.Cleanup(func() {
		reportInput, reportInputFormat, reportOutput, reportFormat = "", "", "", ""
		reportQuiet = false
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		viper.Reset()
		config.SetDefaults()
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"report", "-i", input, "-o", outputPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("report command failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{"01/16/2024", "On Time", "Report completed. Rows: 3, Worked: 2, Late: 0, Skipped: 0"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read report file: %v", err)
	}
	want := "Date,Clock In Time,Minutes Late,Status\n" +
		"01/15/2024,,,Missing\n" +
		"01/16/2024,07:15,0,On Time\n" +
		"01/17/2024,08:30,0,On Time\n" +
		",,,Shifts Worked: 2\n" +
		",,,% Late: 0.0%\n"
	if string(content) != want {
		t.Fatalf("unexpected report file:\n%s", content)
	}
}
