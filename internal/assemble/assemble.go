// Package assemble turns a rendered card face into a card.Side by sampling
// its corner and center regions and decoding its score banner.
package assemble

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/arcanaland/codexcards/internal/card"
	"github.com/arcanaland/codexcards/internal/classify"
	"github.com/arcanaland/codexcards/internal/decode"
	"github.com/arcanaland/codexcards/internal/layout"
	"github.com/arcanaland/codexcards/internal/symbol"
)

// ErrInvariant is returned when an assembled face breaks the card schema
var ErrInvariant = errors.New("schema invariant violated")

// InvariantError describes which field of which face broke the schema
type InvariantError struct {
	ID    int
	Face  string
	Field string
	Got   string
	Want  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: card %d %s %s is %s, want %s", ErrInvariant, e.ID, e.Face, e.Field, e.Got, e.Want)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

// Assembler builds sides from face images
type Assembler struct {
	classifier *classify.Classifier
	corners    classify.Table
	front      classify.Table
	back       classify.Table
	logger     *slog.Logger
}

// New creates an assembler using the calibrated reference tables
func New(classifier *classify.Classifier, logger *slog.Logger) *Assembler {
	if classifier == nil {
		classifier = classify.NewClassifier("", logger)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{
		classifier: classifier,
		corners:    classify.CornerTable(),
		front:      classify.FrontCenterTable(),
		back:       classify.BackCenterTable(),
		logger:     logger,
	}
}

// regionNames follows the order of layout.Corners
var regionNames = [4]string{"top-left", "top-right", "bottom-left", "bottom-right"}

func checkBounds(img image.Image) error {
	if img.Bounds().Size() != layout.FaceBounds().Size() {
		return fmt.Errorf("face is %v, want %dx%d", img.Bounds().Size(), layout.FaceWidth, layout.FaceHeight)
	}
	return nil
}

// normalize moves img's origin to (0, 0) so calibrated coordinates apply
func normalize(img image.Image) image.Image {
	if img.Bounds().Min == (image.Point{}) {
		return img
	}
	return translated{img}
}

type translated struct {
	image.Image
}

func (t translated) Bounds() image.Rectangle {
	return t.Image.Bounds().Sub(t.Image.Bounds().Min)
}

func (t translated) At(x, y int) color.Color {
	origin := t.Image.Bounds().Min
	return t.Image.At(x+origin.X, y+origin.Y)
}

// sample classifies the four corners and the center of a face
func (a *Assembler) sample(img image.Image, center classify.Table) ([4]symbol.Symbol, symbol.Symbol, error) {
	var corners [4]symbol.Symbol
	for i, r := range layout.Corners() {
		s, err := a.classifier.Classify(img, r, a.corners)
		if err != nil {
			return corners, symbol.None, fmt.Errorf("%s corner: %w", regionNames[i], err)
		}
		corners[i] = s
	}

	c, err := a.classifier.Classify(img, layout.Center(), center)
	if err != nil {
		return corners, symbol.None, fmt.Errorf("center: %w", err)
	}
	return corners, c, nil
}

// Front assembles the front face of card id
func (a *Assembler) Front(id int, img image.Image) (card.Side, error) {
	if err := checkBounds(img); err != nil {
		return card.Side{}, err
	}
	img = normalize(img)

	corners, center, err := a.sample(img, a.front)
	if err != nil {
		return card.Side{}, err
	}

	if !center.IsColor() {
		return card.Side{}, &InvariantError{ID: id, Face: "front", Field: "center", Got: center.String(), Want: "a resource color"}
	}

	scoring, err := decode.Decode(img)
	if err != nil {
		return card.Side{}, err
	}

	side := card.Side{
		ID:           id,
		Front:        true,
		TopLeft:      corners[0],
		TopRight:     corners[1],
		BottomLeft:   corners[2],
		BottomRight:  corners[3],
		Center:       []symbol.Symbol{center},
		Requirements: scoring.Requirements,
		Score:        scoring.Score,
		Multiplier:   scoring.Multiplier,
	}

	a.logger.Debug("assembled front",
		slog.Int("id", id),
		slog.String("color", center.String()),
		slog.Int("score", side.Score),
		slog.String("multiplier", side.Multiplier.String()),
		slog.String("requirements", symbol.Join(side.Requirements)))

	return side, nil
}

// Back assembles the back face of card id
func (a *Assembler) Back(id int, img image.Image) (card.Side, error) {
	if err := checkBounds(img); err != nil {
		return card.Side{}, err
	}
	img = normalize(img)

	corners, center, err := a.sample(img, a.back)
	if err != nil {
		return card.Side{}, err
	}

	for i, c := range corners {
		if c != symbol.Blank {
			return card.Side{}, &InvariantError{ID: id, Face: "back", Field: regionNames[i] + " corner", Got: c.String(), Want: symbol.Blank.String()}
		}
	}

	if !center.IsColor() {
		return card.Side{}, &InvariantError{ID: id, Face: "back", Field: "center", Got: center.String(), Want: "a resource color"}
	}

	a.logger.Debug("assembled back", slog.Int("id", id), slog.String("color", center.String()))

	return card.Side{
		ID:          id,
		Front:       false,
		TopLeft:     corners[0],
		TopRight:    corners[1],
		BottomLeft:  corners[2],
		BottomRight: corners[3],
		Center:      []symbol.Symbol{center},
		Multiplier:  symbol.None,
	}, nil
}
