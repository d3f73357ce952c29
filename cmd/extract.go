package cmd

import (
	"fmt"
	"os"
	"sort"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/codexcards/internal/extract"
)

// extractCmd renders the print sheets into card faces
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Render the print sheets into one PNG per card face",
	Long: `Extract runs pdftocairo on the front and back card sheets, crops every page
to the card outline and writes front_<i>.png and back_<i>.png. The score board
sheet is rendered too when present.

Examples:
  codexcards extract
  codexcards extract --assets assets --output output`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		assets := stringFlag(cmd, "assets", cfg.AssetsDir)
		output := stringFlag(cmd, "output", cfg.ExtractDir)

		// Check if path exists
		if _, err := os.Stat(assets); os.IsNotExist(err) {
			return fmt.Errorf("assets directory not found: %s", assets)
		}

		rasterizer := extract.PDFToCairo{Binary: cfg.Rasterizer, DPI: cfg.DPI}
		res, err := extract.New(rasterizer, cfg.Workers, logger).Run(cmd.Context(), assets, output)
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}

		faces := make([]string, 0, len(res.Faces))
		for face := range res.Faces {
			faces = append(faces, face)
		}
		sort.Strings(faces)

		fmt.Println()
		for _, face := range faces {
			fmt.Printf("%s %s\n", colorize.GreenString("✓"),
				colorize.HiWhiteString("%d %s faces written to %s", res.Faces[face], face, output))
		}
		if res.Board != "" {
			fmt.Printf("%s %s\n", colorize.GreenString("✓"), colorize.HiWhiteString("Score board written to %s", res.Board))
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringP("assets", "a", "", "Directory holding the PDF sheets")
	extractCmd.Flags().StringP("output", "o", "", "Directory to write the faces to")
}
