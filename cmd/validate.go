package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/codexcards/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a card database",
	Long: `Validate re-reads a card database written by convert, parses every face
record back into a card and re-checks the card roles. Unusual color
distributions are reported as warnings.

When no path is given the configured output file is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := cfg.OutputFile
		if len(args) == 1 {
			dbPath = args[0]
		}

		// Check if path exists
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return fmt.Errorf("card database not found: %s", dbPath)
		}

		// Create validator and run validation
		v := validator.NewValidator(dbPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("%s Card database '%s' is valid.\n", colorize.GreenString("✅"), dbPath)
		} else {
			fmt.Printf("%s Card database '%s' has %d validation errors:\n", colorize.RedString("❌"), dbPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println(colorize.YellowString("\nWarnings:"))
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
