package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVReader reads a delimited export as a raw grid. There is no header row;
// every physical line keeps its row position, blank lines become empty rows.
// UTF-16 input is accepted when it carries a BOM.
type CSVReader struct{}

func (r *CSVReader) Read(path string) (Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	return readCSV(file)
}

func readCSV(input io.Reader) (Grid, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(input, decoder))
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	// encoding/csv skips blank lines, so gaps are refilled from the line
	// numbers of each record.
	rows := make([][]string, 0, 64)
	nextLine := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		line, _ := reader.FieldPos(0)
		for ; nextLine < line; nextLine++ {
			rows = append(rows, nil)
		}
		rows = append(rows, row)

		last := len(row) - 1
		lastLine, _ := reader.FieldPos(last)
		nextLine = lastLine + strings.Count(row[last], "\n") + 1
	}

	for total := physicalLines(data); nextLine <= total; nextLine++ {
		rows = append(rows, nil)
	}

	return NewGrid(rows), nil
}

// physicalLines counts lines the way encoding/csv numbers them; a final
// newline does not open another line.
func physicalLines(data []byte) int {
	lines := bytes.Count(data, []byte("\n"))
	if len(data) > 0 && data[len(data)-1] != '\n' {
		lines++
	}
	return lines
}
