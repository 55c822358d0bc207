package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCreateForce bool

var configCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a configuration file from the example template.",
	Long: `Write the example template used by "config edit" to the active config path.

An existing file is left untouched unless --force is given.`,
	Example: `
  # Create default config at $HOME/.timecard.yaml
  timecard config create

  # Reset a custom config file to the template
  timecard --configFile ./timecard.yaml config create --force
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return saveDefaultConfig(cmd.OutOrStdout(), configCreateForce)
	},
}

func saveDefaultConfig(out io.Writer, force bool) error {
	configPath, err := resolveConfigEditPath(cfgFile, viper.ConfigFileUsed())
	if err != nil {
		return err
	}

	if force {
		if err := writeConfigTemplate(configPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "Config file reset to template at: %s\n", configPath)
		return nil
	}

	created, err := ensureConfigFileWithTemplate(configPath)
	if err != nil {
		return err
	}
	if !created {
		fmt.Fprintf(out, "Config file already exists at: %s\n", configPath)
		return nil
	}

	fmt.Fprintf(out, "New config file created at: %s\n", configPath)
	return nil
}

func init() {
	configCmd.AddCommand(configCreateCmd)
	configCreateCmd.Flags().BoolVar(&configCreateForce, "force", false, "Overwrite an existing config file")
}
