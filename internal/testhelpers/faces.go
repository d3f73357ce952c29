// Package testhelpers paints synthetic card faces for tests.
package testhelpers

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/arcanaland/codexcards/internal/layout"
	"github.com/arcanaland/codexcards/internal/symbol"
)

// Paper is the filler color of synthetic faces; it matches no probe ink
var Paper = color.NRGBA{R: 250, G: 248, B: 240, A: 255}

// Calibrated region colors, copied from the reference tables
var (
	CornerBlank   = color.NRGBA{R: 221, G: 215, B: 160, A: 255}
	CornerRed     = color.NRGBA{R: 192, G: 141, B: 111, A: 255}
	CornerGreen   = color.NRGBA{R: 133, G: 162, B: 107, A: 255}
	CornerBlue    = color.NRGBA{R: 153, G: 167, B: 158, A: 255}
	CornerPurple  = color.NRGBA{R: 144, G: 110, B: 130, A: 255}
	CornerFlask   = color.NRGBA{R: 173, G: 160, B: 109, A: 255}
	CornerScroll  = color.NRGBA{R: 182, G: 169, B: 113, A: 255}
	CornerFeather = color.NRGBA{R: 198, G: 189, B: 136, A: 255}
	CornerMissing = color.NRGBA{R: 137, G: 25, B: 33, A: 255}

	FrontRed    = color.NRGBA{R: 176, G: 34, B: 39, A: 255}
	FrontGreen  = color.NRGBA{R: 59, G: 142, B: 74, A: 255}
	FrontBlue   = color.NRGBA{R: 58, G: 129, B: 156, A: 255}
	FrontPurple = color.NRGBA{R: 96, G: 34, B: 111, A: 255}

	BackRed    = color.NRGBA{R: 181, G: 102, B: 86, A: 255}
	BackGreen  = color.NRGBA{R: 83, G: 133, B: 77, A: 255}
	BackBlue   = color.NRGBA{R: 110, G: 139, B: 157, A: 255}
	BackPurple = color.NRGBA{R: 119, G: 73, B: 123, A: 255}
)

// CornerColor returns the calibrated corner color for s
func CornerColor(s symbol.Symbol) color.NRGBA {
	switch s {
	case symbol.Blank:
		return CornerBlank
	case symbol.Red:
		return CornerRed
	case symbol.Green:
		return CornerGreen
	case symbol.Blue:
		return CornerBlue
	case symbol.Purple:
		return CornerPurple
	case symbol.Flask:
		return CornerFlask
	case symbol.Scroll:
		return CornerScroll
	case symbol.Feather:
		return CornerFeather
	default:
		return CornerMissing
	}
}

// Face describes a synthetic face to paint
type Face struct {
	Corners      [4]color.NRGBA // TL, TR, BL, BR
	Center       color.NRGBA
	Score        int // 0 paints no banner
	Multiplier   symbol.Symbol
	Requirements []symbol.Symbol
}

// FrontFace builds a front with the given corner symbols and center color
func FrontFace(center color.NRGBA, corners ...symbol.Symbol) Face {
	f := Face{Center: center, Multiplier: symbol.None}
	for i := range f.Corners {
		s := symbol.Blank
		if i < len(corners) {
			s = corners[i]
		}
		f.Corners[i] = CornerColor(s)
	}
	return f
}

// BackFace builds a back with four blank corners
func BackFace(center color.NRGBA) Face {
	return Face{
		Corners:    [4]color.NRGBA{CornerBlank, CornerBlank, CornerBlank, CornerBlank},
		Center:     center,
		Multiplier: symbol.None,
	}
}

// Image paints the face on a FaceWidth x FaceHeight canvas
func (f Face) Image() *image.NRGBA {
	img := image.NewNRGBA(layout.FaceBounds())
	fill(img, img.Bounds(), Paper)

	for i, r := range layout.Corners() {
		fill(img, r, f.Corners[i])
	}
	fill(img, layout.Center(), f.Center)

	f.paintScore(img)
	f.paintRequirements(img)

	return img
}

func (f Face) paintScore(img *image.NRGBA) {
	if f.Score == 0 {
		return
	}
	img.SetNRGBA(layout.ScorePoint().X, layout.ScorePoint().Y, layout.Ink())

	if f.Multiplier == symbol.None {
		switch f.Score {
		case 1:
			set(img, layout.PlainOnePoint(), layout.Ink())
		case 3:
			set(img, layout.PlainThreePoint(), layout.Ink())
		case 5:
			set(img, layout.PlainFivePoint(), layout.Ink())
		}
		return
	}

	set(img, layout.MultiplierPoint(), layout.Ink())
	switch f.Score {
	case 1:
		set(img, layout.MultipliedOnePoint(), layout.Ink())
	case 2:
		set(img, layout.MultipliedTwoPoint(), layout.Ink())
	}

	switch f.Multiplier {
	case symbol.Feather:
		set(img, layout.FeatherPoint(), layout.Ink())
	case symbol.Flask:
		set(img, layout.FlaskPoint(), layout.FlaskGold())
	case symbol.Scroll:
		set(img, layout.ScrollPoint(), layout.Ink())
	case symbol.Corner:
		set(img, layout.CornerPoint(), layout.CornerGold())
	}
}

func (f Face) paintRequirements(img *image.NRGBA) {
	l, ok := layout.RequirementLayoutFor(len(f.Requirements))
	if !ok {
		return
	}
	set(img, l.Marker, layout.Ink())
	for i, p := range l.Samples() {
		c, ok := layout.RequirementColor(f.Requirements[i])
		if !ok {
			c = Paper
		}
		set(img, p, c)
	}
}

func set(img *image.NRGBA, p image.Point, c color.NRGBA) {
	img.SetNRGBA(p.X, p.Y, c)
}

func fill(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// WritePNG saves img as dir/name
func WritePNG(dir, name string, img image.Image) (string, error) {
	path := filepath.Join(dir, name)
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("error saving %s: %v", name, err)
	}
	return path, nil
}

// ResourceCard returns a valid front/back pair for a card index below 40
func ResourceCard() (front, back Face) {
	front = FrontFace(FrontRed, symbol.Red, symbol.None, symbol.Blank, symbol.Red)
	front.Score = 1
	return front, BackFace(BackRed)
}

// GoldCard returns a valid front/back pair for a card index of 40 or more
func GoldCard() (front, back Face) {
	front = FrontFace(FrontBlue, symbol.Blank, symbol.None, symbol.Blank, symbol.Flask)
	front.Score = 2
	front.Multiplier = symbol.Flask
	front.Requirements = []symbol.Symbol{symbol.Blue, symbol.Blue, symbol.Red}
	return front, BackFace(BackBlue)
}
