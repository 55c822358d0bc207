package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"timecard/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the effective configuration (file, environment and defaults merged)
and the config file it was loaded from.

The configuration is validated before values are printed.`,
	Example: `
  # Show active configuration
  timecard config show
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		writeConfigValues(cmd.OutOrStdout(), viper.ConfigFileUsed(), *cfg)
		return nil
	},
}

func writeConfigValues(out io.Writer, source string, cfg config.Config) {
	if source == "" {
		source = "(none, defaults)"
	}
	fmt.Fprintln(out, "Config file:", source)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Key", "Value").
		Row(config.KeyReportOutputFormat, cfg.Report.OutputFormat).
		Row(config.KeyReportFileName, cfg.Report.FileName).
		Row(config.KeyServePort, strconv.Itoa(cfg.Serve.Port)).
		Row(config.KeyServeMaxUploadMB, strconv.Itoa(cfg.Serve.MaxUploadMB)).
		Row(config.KeyServeOpenBrowser, strconv.FormatBool(cfg.Serve.OpenBrowser)).
		Row(config.KeyLogLevel, cfg.Log.Level)
	fmt.Fprintln(out, t.String())
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
