package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/codexcards/internal/assemble"
	"github.com/arcanaland/codexcards/internal/card"
	"github.com/arcanaland/codexcards/internal/classify"
	"github.com/arcanaland/codexcards/internal/deck"
	"github.com/arcanaland/codexcards/internal/schema"
	"github.com/arcanaland/codexcards/internal/symbol"
)

// convertCmd builds the card database from the rendered faces
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Build the card database from rendered card faces",
	Long: `Convert reads front_<i>.png and back_<i>.png for every card, classifies
each face and writes the card database. Nothing is written unless every card
passes validation.

Examples:
  codexcards convert
  codexcards convert --input output --output cards.json
  codexcards convert --debug-dir debug`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := stringFlag(cmd, "input", cfg.InputDir)
		output := stringFlag(cmd, "output", cfg.OutputFile)
		debugDir := stringFlag(cmd, "debug-dir", cfg.DebugDir)

		// Check if input exists
		if _, err := os.Stat(input); os.IsNotExist(err) {
			return fmt.Errorf("input directory not found: %s", input)
		}

		src := deck.DirSource{Dir: input}
		if err := src.Check(); err != nil {
			return err
		}

		if debugDir != "" {
			if err := os.MkdirAll(debugDir, 0755); err != nil {
				return fmt.Errorf("error creating debug directory: %v", err)
			}
		}

		classifier := classify.NewClassifier(debugDir, logger)
		builder := deck.NewBuilder(assemble.New(classifier, logger), logger)

		cards, err := builder.Build(src)
		if err != nil {
			return err
		}

		if err := schema.WriteFile(output, cards); err != nil {
			return fmt.Errorf("error writing card database: %v", err)
		}

		printSummary(cards, output)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringP("input", "i", "", "Directory holding the rendered faces")
	convertCmd.Flags().StringP("output", "o", "", "Card database to write")
	convertCmd.Flags().String("debug-dir", "", "Directory for crops of unclassifiable regions")
}

// printSummary shows what was written
func printSummary(cards []card.Card, output string) {
	s := deck.Summarize(cards)

	fmt.Println()
	fmt.Printf("%s %s\n", colorize.GreenString("✓"), colorize.HiWhiteString("Wrote %d cards to %s", len(cards), output))
	fmt.Println()

	for _, c := range symbol.All() {
		if !c.IsColor() {
			continue
		}
		fmt.Printf("  %s %s %s\n",
			colorize.CyanString("%-7s", c),
			colorize.HiWhiteString("%2d resource", s.Resource[c]),
			colorize.HiWhiteString("%2d gold", s.Gold[c]))
	}

	fmt.Println()
	fmt.Print(colorize.CyanString("  Multipliers: "))
	for _, m := range symbol.All() {
		if n := s.Multipliers[m]; n > 0 {
			fmt.Printf("%s ", colorize.HiWhiteString("%s×%d", m, n))
		}
	}
	fmt.Println()
}
