package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage timecard configuration file values.",
	Long: `Create, edit, display, and delete the timecard configuration file.

The configuration stores application-wide defaults:
- report.output_format / report.file_name
- serve.port / serve.max_upload_mb / serve.open_browser
- log.level

Every key can also be set through the environment, e.g. TIMECARD_SERVE_PORT.`,
	Example: `
  # Create default config in $HOME/.timecard.yaml
  timecard config create

  # Show active config and source file
  timecard config show

  # Open active config in editor (creates example if missing)
  timecard config edit

  # Delete active config file
  timecard config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
