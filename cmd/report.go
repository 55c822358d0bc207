package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"timecard/config"
	"timecard/importer"
	"timecard/output"
	"timecard/report"
)

var (
	reportInput       string
	reportInputFormat string
	reportOutput      string
	reportFormat      string
	reportQuiet       bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the missing/late report for one timecard spreadsheet",
	Long: `Read the first sheet of a timecard spreadsheet, find every day header
("Mon 1/15", "Tuesday 01/16", ...) and classify the entry in the cell below it.

The report is printed as a table. With --output it is also written to a file;
the format is taken from --format, then from the output extension, then from
report.output_format in the config.

Cells that cannot be parsed are skipped and logged as warnings.`,
	Example: `
  # Print the report
  timecard report -i ./january.xlsx

  # Write CSV next to the input
  timecard report -i ./january.xlsx -o ./timecard_report.csv

  # Force Excel output independent of extension
  timecard report -i ./january.csv -o ./report.out --format excel

  # Legacy workbook with an unusual extension
  timecard report -i ./export.dat --input-format xls
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		id := uuid.NewString()
		log := logger.With(zap.String("report_id", id), zap.String("file", reportInput))

		grid, err := importer.ReadFile(reportInput, reportInputFormat)
		if err != nil {
			return fmt.Errorf("read %s: %w", reportInput, err)
		}
		log.Debug("sheet loaded", zap.Int("rows", len(grid)), zap.Int("cells", grid.CellCount()))

		result := report.Build(grid)
		result.LogDiagnostics(log)

		out := cmd.OutOrStdout()
		if !reportQuiet {
			if result.Table.Empty() {
				fmt.Fprintln(out, "No day headers found.")
			} else {
				fmt.Fprintln(out, output.RenderTable(result.Table))
			}
		}

		if strings.TrimSpace(reportOutput) != "" {
			format := resolveReportFormat(reportFormat, reportOutput, cfg.Report.OutputFormat)
			if err := output.WriteFile(reportOutput, format, result.Table); err != nil {
				return err
			}
			log.Info("report written", zap.String("output", reportOutput), zap.String("format", format))
		}

		printReportSummary(out, result)
		return nil
	},
}

// resolveReportFormat prefers the explicit flag, then a recognised output
// extension, then the configured default.
func resolveReportFormat(flagFormat, outputPath, configFormat string) string {
	if strings.TrimSpace(flagFormat) != "" {
		return flagFormat
	}
	if output.DetectFormat(outputPath) == "excel" {
		return "excel"
	}
	if strings.HasSuffix(strings.ToLower(outputPath), ".csv") {
		return "csv"
	}
	if strings.TrimSpace(configFormat) != "" {
		return configFormat
	}
	return "csv"
}

func printReportSummary(out io.Writer, result *report.Result) {
	fmt.Fprintf(out, "Report completed. Rows: %d, Worked: %d, Late: %d, Skipped: %d\n",
		len(result.Table.Rows),
		result.Table.Stats.Worked,
		result.Table.Stats.Late,
		result.RowsSkipped,
	)
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportInput, "input", "i", "", "Input spreadsheet path")
	reportCmd.Flags().StringVar(&reportInputFormat, "input-format", "", "Input format: csv|excel|xls (optional, inferred from extension when omitted)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Optional report file path")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	reportCmd.Flags().BoolVarP(&reportQuiet, "quiet", "q", false, "Do not print the report table")

	_ = reportCmd.MarkFlagRequired("input")
}
