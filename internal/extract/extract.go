// Package extract renders the print sheets into one PNG per card face.
package extract

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/arcanaland/codexcards/internal/card"
	"github.com/arcanaland/codexcards/internal/layout"
)

// Sheet is one print-ready PDF holding a face of every card, one per page
type Sheet struct {
	Face string // "front" or "back"
	File string
}

var sheets = [...]Sheet{
	{Face: "back", File: "CODEX_cards_gold_back.pdf"},
	{Face: "front", File: "CODEX_cards_gold_front.pdf"},
}

// Sheets lists the card sheets expected in the assets directory
func Sheets() []Sheet {
	return append([]Sheet(nil), sheets[:]...)
}

// Score board sheet, rendered when present
const (
	BoardFile   = "PLATEAU-SCORE-IMP.pdf"
	BoardOutput = "plateau_score_imp.png"
)

// Pixel geometry of a 300 dpi page render
var (
	// The card artwork plus its bleed around the rounded corners
	faceCrop = image.Rect(87-CornerRadius, 87-CornerRadius, 831+CornerRadius, 583+CornerRadius)
	// The score track without the page margin
	boardCrop = image.Rect(118, 118, 1299, 2480)
)

// FaceCrop is the page rectangle cut out as a card face
func FaceCrop() image.Rectangle { return faceCrop }

// BoardCrop is the page rectangle cut out as the score board
func BoardCrop() image.Rectangle { return boardCrop }

// CornerRadius of the printed card outline
const CornerRadius = 24

// Extractor renders sheets and crops their pages to card faces
type Extractor struct {
	Rasterizer Rasterizer
	Workers    int
	Logger     *slog.Logger
}

// New creates an extractor running at most workers rasterizations at once
func New(r Rasterizer, workers int, logger *slog.Logger) *Extractor {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{Rasterizer: r, Workers: workers, Logger: logger}
}

// Result lists the files written by Run
type Result struct {
	Faces map[string]int // Face name to page count
	Board string         // Empty when no board sheet was found
}

// Run renders every sheet found in assetsDir and writes <face>_<i>.png to outDir
func (e *Extractor) Run(ctx context.Context, assetsDir, outDir string) (*Result, error) {
	sheets := Sheets()
	for _, s := range sheets {
		path := filepath.Join(assetsDir, s.File)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("sheet not found: %s", path)
		}
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating output directory: %v", err)
	}

	workDir, err := os.MkdirTemp("", "codexcards-render-")
	if err != nil {
		return nil, fmt.Errorf("error creating render directory: %v", err)
	}
	defer os.RemoveAll(workDir)

	counts := make([]int, len(sheets))
	boardPath := filepath.Join(assetsDir, BoardFile)
	_, statErr := os.Stat(boardPath)
	withBoard := statErr == nil

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.Workers)

	for i, s := range sheets {
		i, s := i, s
		g.Go(func() error {
			n, err := e.extractSheet(gctx, filepath.Join(assetsDir, s.File), s.Face, workDir, outDir)
			if err != nil {
				return fmt.Errorf("%s: %w", s.File, err)
			}
			counts[i] = n
			return nil
		})
	}

	if withBoard {
		g.Go(func() error {
			if err := e.extractBoard(gctx, boardPath, workDir, outDir); err != nil {
				return fmt.Errorf("%s: %w", BoardFile, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Faces: make(map[string]int)}
	for i, s := range sheets {
		res.Faces[s.Face] = counts[i]
		if counts[i] != card.DeckSize {
			e.Logger.Warn("unexpected page count",
				slog.String("sheet", s.File),
				slog.Int("pages", counts[i]),
				slog.Int("want", card.DeckSize))
		}
	}
	if withBoard {
		res.Board = filepath.Join(outDir, BoardOutput)
	}

	return res, nil
}

// extractSheet renders one sheet and writes a face per page
func (e *Extractor) extractSheet(ctx context.Context, pdf, face, workDir, outDir string) (int, error) {
	pages, err := e.Rasterizer.Rasterize(ctx, Request{
		PDF:     pdf,
		Prefix:  filepath.Join(workDir, face),
		CropBox: true,
	})
	if err != nil {
		return 0, err
	}

	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		img, err := imaging.Open(page)
		if err != nil {
			return 0, fmt.Errorf("error decoding page %d: %v", i+1, err)
		}

		faceImg, err := CropFace(img)
		if err != nil {
			return 0, fmt.Errorf("page %d: %w", i+1, err)
		}

		out := filepath.Join(outDir, fmt.Sprintf("%s_%d.png", face, i))
		if err := imaging.Save(faceImg, out); err != nil {
			return 0, fmt.Errorf("error saving %s: %v", out, err)
		}
	}

	e.Logger.Info("sheet extracted", slog.String("face", face), slog.Int("pages", len(pages)))
	return len(pages), nil
}

// extractBoard renders the first page of the board sheet
func (e *Extractor) extractBoard(ctx context.Context, pdf, workDir, outDir string) error {
	pages, err := e.Rasterizer.Rasterize(ctx, Request{
		PDF:       pdf,
		Prefix:    filepath.Join(workDir, "board"),
		FirstPage: true,
	})
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return fmt.Errorf("no page rendered")
	}

	img, err := imaging.Open(pages[0])
	if err != nil {
		return fmt.Errorf("error decoding board: %v", err)
	}
	if err := checkCovers(img, boardCrop); err != nil {
		return err
	}

	board := imaging.Crop(img, boardCrop.Add(img.Bounds().Min))
	return imaging.Save(board, filepath.Join(outDir, BoardOutput))
}

func checkCovers(img image.Image, r image.Rectangle) error {
	size := img.Bounds().Size()
	if size.X < r.Max.X || size.Y < r.Max.Y {
		return fmt.Errorf("page is %dx%d, too small for crop %v", size.X, size.Y, r)
	}
	return nil
}

// CropFace cuts a card face out of a rendered page and rounds its corners
func CropFace(page image.Image) (*image.NRGBA, error) {
	if err := checkCovers(page, faceCrop); err != nil {
		return nil, err
	}

	face := imaging.Crop(page, faceCrop.Add(page.Bounds().Min))
	if face.Bounds().Size() != layout.FaceBounds().Size() {
		return nil, fmt.Errorf("cropped face is %v, want %dx%d", face.Bounds().Size(), layout.FaceWidth, layout.FaceHeight)
	}

	RoundCorners(face, CornerRadius)
	return face, nil
}

// RoundCorners clears the pixels of img outside a rounded rectangle of the given radius
func RoundCorners(img *image.NRGBA, radius int) {
	b := img.Bounds()
	r := float64(radius)
	transparent := color.NRGBA{}

	for y := b.Min.Y; y < b.Min.Y+radius && y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Min.X+radius && x < b.Max.X; x++ {
			// Distance from the pixel center to the arc center of its corner
			dx := r - (float64(x-b.Min.X) + 0.5)
			dy := r - (float64(y-b.Min.Y) + 0.5)
			if dx*dx+dy*dy <= r*r {
				continue
			}

			// Mirror into the other three corners
			mx := b.Max.X - 1 - (x - b.Min.X)
			my := b.Max.Y - 1 - (y - b.Min.Y)
			img.SetNRGBA(x, y, transparent)
			img.SetNRGBA(mx, y, transparent)
			img.SetNRGBA(x, my, transparent)
			img.SetNRGBA(mx, my, transparent)
		}
	}
}
