package importer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrNoSheets          = errors.New("workbook has no sheets")
)

// Reader loads the first sheet of a file as a grid.
type Reader interface {
	Read(path string) (Grid, error)
}

func SupportedFormats() []string {
	return []string{"excel", "xls", "csv"}
}

func ReaderForFormat(format string) (Reader, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVReader{}, nil
	case "excel", "xlsx", "xlsm":
		return &ExcelReader{}, nil
	case "xls":
		return &XLSReader{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// InferFormat returns format when set, otherwise derives it from the file
// extension.
func InferFormat(path string, format string) (string, error) {
	if strings.TrimSpace(format) != "" {
		return normalizeFormat(format), nil
	}

	extension := normalizeFormat(filepath.Ext(path))
	switch extension {
	case "csv":
		return "csv", nil
	case "xlsx", "xlsm":
		return "excel", nil
	case "xls":
		return "xls", nil
	default:
		return "", fmt.Errorf("%w: cannot infer format from extension of %s", ErrUnsupportedFormat, path)
	}
}

// ReadFile picks a reader for path and loads its first sheet.
func ReadFile(path string, format string) (Grid, error) {
	sourceFormat, err := InferFormat(path, format)
	if err != nil {
		return nil, err
	}
	reader, err := ReaderForFormat(sourceFormat)
	if err != nil {
		return nil, err
	}
	return reader.Read(path)
}
