package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/codexcards/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the codexcards configuration",
	Long:  `Commands for creating and showing the configuration file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the configuration file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		configPath := config.GetConfigFilePath()

		// The root command already created the file if it was missing
		if force {
			if err := config.SaveConfig(config.Default()); err != nil {
				return err
			}
			fmt.Println("Config file reset at:", configPath)
			return nil
		}

		fmt.Println("Config file initialized at:", configPath)
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration in effect",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("# %s\n", config.GetConfigFilePath())

		encoder := toml.NewEncoder(os.Stdout)
		if err := encoder.Encode(cfg); err != nil {
			return fmt.Errorf("error encoding config: %v", err)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file with defaults")
}
