package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"timecard/timecard"
)

// DefaultFileName is the base name offered for downloads.
const DefaultFileName = "timecard_report"

type Writer interface {
	Write(w io.Writer, table timecard.Table) error
	Extension() string
	ContentType() string
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "", "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// DetectFormat infers the output format from a file extension, falling back
// to csv.
func DetectFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "xlsx", "xlsm":
		return "excel"
	default:
		return "csv"
	}
}

// WriteFile writes table to path in format, or in the format implied by the
// extension when format is empty.
func WriteFile(path, format string, table timecard.Table) error {
	if strings.TrimSpace(format) == "" {
		format = DetectFormat(path)
	}
	writer, err := WriterForFormat(format)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output %s: %w", path, err)
	}
	if err := writer.Write(file, table); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close output %s: %w", path, err)
	}
	return nil
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
