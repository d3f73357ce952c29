package cmd

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/codexcards/internal/assemble"
	"github.com/arcanaland/codexcards/internal/card"
	"github.com/arcanaland/codexcards/internal/classify"
	"github.com/arcanaland/codexcards/internal/decode"
	"github.com/arcanaland/codexcards/internal/layout"
	"github.com/arcanaland/codexcards/internal/preview"
	"github.com/arcanaland/codexcards/internal/symbol"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [image]",
	Short: "Classify a single card face and preview it",
	Long: `Inspect samples the five regions of one rendered face, shows the mean color
of each and the reference it matched, then assembles the face the way convert
does. The face is previewed as ANSI art next to the results.

The face kind and card id are taken from names like front_12.png; use --face
and --id for other file names.

Examples:
  codexcards inspect output/front_12.png
  codexcards inspect --face back --id 3 scan.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		face, id := faceFromName(path)
		if cmd.Flags().Changed("face") {
			face, _ = cmd.Flags().GetString("face")
		}
		if cmd.Flags().Changed("id") {
			id, _ = cmd.Flags().GetInt("id")
		}
		if face != "front" && face != "back" {
			return fmt.Errorf("face must be front or back, got %q", face)
		}

		img, err := imaging.Open(path)
		if err != nil {
			return fmt.Errorf("error loading face: %v", err)
		}

		info := regionLines(img, face)
		info = append(info, "")

		a := assemble.New(classify.NewClassifier("", logger), logger)
		var side card.Side
		if face == "front" {
			side, err = a.Front(id, img)
		} else {
			side, err = a.Back(id, img)
		}
		if err == nil {
			info = append(info, sideLines(side)...)
		} else {
			info = append(info, errorLines(err)...)
		}

		noPreview, _ := cmd.Flags().GetBool("no-preview")
		art := ""
		if !noPreview {
			width, _ := cmd.Flags().GetInt("width")
			if width <= 0 {
				width = min(preview.TerminalWidth()/2, 60)
			}
			art = preview.ImageToAnsi(img, width, preview.Rows(img, width), true)
		}

		fmt.Println()
		fmt.Print(preview.SideBySide(art, info))
		fmt.Println()

		return err
	},
}

func init() {
	inspectCmd.Flags().StringP("face", "f", "", "Face kind: front or back")
	inspectCmd.Flags().Int("id", 0, "Card id used for messages")
	inspectCmd.Flags().IntP("width", "w", 0, "Preview width in columns (0 fits the terminal)")
	inspectCmd.Flags().Bool("no-preview", false, "Do not render the ANSI preview")
}

// faceFromName reads the face kind and id from names like back_7.png
func faceFromName(path string) (string, int) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	face, num, ok := strings.Cut(base, "_")
	if !ok {
		return "front", 0
	}
	var id int
	if _, err := fmt.Sscanf(num, "%d", &id); err != nil {
		return face, 0
	}
	return face, id
}

// regionLines reports the mean color of every sampled region and its best reference
func regionLines(img image.Image, face string) []string {
	img = imaging.Clone(img)
	centerTable := classify.FrontCenterTable()
	if face == "back" {
		centerTable = classify.BackCenterTable()
	}

	names := []string{"Top-left", "Top-right", "Bottom-left", "Bottom-right", "Center"}
	corners := layout.Corners()
	regions := append(corners[:], layout.Center())

	lines := []string{colorize.CyanString("Regions:")}
	for i, r := range regions {
		table := classify.CornerTable()
		if i == 4 {
			table = centerTable
		}

		mean, err := classify.MeanColor(img, r)
		if err != nil {
			lines = append(lines, fmt.Sprintf("  %-13s %s", names[i], colorize.RedString(err.Error())))
			continue
		}

		swatch := preview.Swatch(color.NRGBA{R: uint8(mean.R), G: uint8(mean.G), B: uint8(mean.B), A: 255})
		match := colorize.RedString("no match")
		if s, ok := table.Match(mean); ok {
			match = colorize.HiWhiteString("%s", s)
		}
		ref, dist, _ := table.Nearest(mean)

		lines = append(lines, fmt.Sprintf("  %-13s %s %s %s %s",
			names[i], swatch, mean.Hex(), match,
			colorize.HiBlackString("(nearest %s, d²=%d)", ref.Name, dist)))
	}
	return lines
}

// sideLines describes an assembled side
func sideLines(s card.Side) []string {
	corners := s.Corners()
	lines := []string{
		colorize.CyanString("Card:   ") + colorize.HiWhiteString("%d %s", s.ID, s.Face()),
		colorize.CyanString("Role:   ") + colorize.HiWhiteString("%s", s.Role()),
		colorize.CyanString("Color:  ") + colorize.HiWhiteString("%s", s.Color()),
		colorize.CyanString("Corners:") + colorize.HiWhiteString(" %s", symbol.Join(corners[:])),
	}
	if s.Front && s.Score > 0 {
		score := fmt.Sprintf("%d", s.Score)
		if s.Multiplier != symbol.None {
			score += fmt.Sprintf(" per %s", s.Multiplier)
		}
		lines = append(lines, colorize.CyanString("Score:  ")+colorize.HiWhiteString("%s", score))
	}
	if len(s.Requirements) > 0 {
		lines = append(lines, colorize.CyanString("Needs:  ")+colorize.HiWhiteString("%s", symbol.Join(s.Requirements)))
	}
	return lines
}

// errorLines explains why a face could not be assembled
func errorLines(err error) []string {
	lines := []string{colorize.RedString("Assembly failed:"), "  " + err.Error()}

	var perr *decode.PatternError
	if errors.As(err, &perr) {
		lines = append(lines, colorize.CyanString("Probes:"))
		for _, p := range perr.Probes {
			lines = append(lines, "  "+p.String())
		}
	}
	return lines
}
