package importer

import (
	"math"
	"strconv"
	"strings"
)

type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is one spreadsheet value. Readers decide the kind at the grid
// boundary; everything downstream works on String().
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

func EmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

func TextCell(value string) Cell {
	return Cell{Kind: CellText, Text: value}
}

func NumberCell(value float64) Cell {
	return Cell{Kind: CellNumber, Number: value}
}

// ParseCell classifies a raw cell string as read from a sheet: "" is empty,
// a plain finite number is numeric, anything else is text.
func ParseCell(raw string) Cell {
	if raw == "" {
		return EmptyCell()
	}
	if number, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(number) && !math.IsInf(number, 0) {
		return NumberCell(number)
	}
	return TextCell(raw)
}

func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

func (c Cell) IsText() bool {
	return c.Kind == CellText
}

func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// Grid is a sheet as rows of cells. Rows may have different lengths.
type Grid [][]Cell

// NewGrid converts raw string rows, keeping row positions intact so that a
// blank row still separates the rows around it.
func NewGrid(rows [][]string) Grid {
	grid := make(Grid, len(rows))
	for i, row := range rows {
		cells := make([]Cell, len(row))
		for j, value := range row {
			cells[j] = ParseCell(value)
		}
		grid[i] = cells
	}
	return grid
}

// At returns the cell at row, col or an empty cell when out of range.
func (g Grid) At(row, col int) Cell {
	if row < 0 || row >= len(g) {
		return EmptyCell()
	}
	if col < 0 || col >= len(g[row]) {
		return EmptyCell()
	}
	return g[row][col]
}

func (g Grid) CellCount() int {
	count := 0
	for _, row := range g {
		for _, cell := range row {
			if !cell.IsEmpty() {
				count++
			}
		}
	}
	return count
}

func normalizeFormat(input string) string {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	return strings.TrimPrefix(trimmed, ".")
}
