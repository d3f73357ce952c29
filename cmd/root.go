package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arcanaland/codexcards/internal/config"
	"github.com/arcanaland/codexcards/internal/logging"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "codexcards",
	Short: "Tool for turning card sheets into a card database",
	Long: `Codexcards reads the rendered faces of the 80 playable cards, recovers their
corners, colors, scores and crafting requirements from pixel colors, and writes
a validated JSON card database for the game client.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}

		// Flags override the config file
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat, _ = cmd.Flags().GetString("log-format")
		}

		logger, err = logging.Setup(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return fmt.Errorf("error configuring logging: %v", err)
		}
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().String("log-format", "text", "Log format (text or json)")

	RootCmd.AddCommand(convertCmd)
	RootCmd.AddCommand(extractCmd)
	RootCmd.AddCommand(inspectCmd)
	RootCmd.AddCommand(validateCmd)
	RootCmd.AddCommand(configCmd)
}

// stringFlag returns the flag value when set on the command line, fallback otherwise
func stringFlag(cmd *cobra.Command, name, fallback string) string {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}
