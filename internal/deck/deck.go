package deck

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/arcanaland/codexcards/internal/assemble"
	"github.com/arcanaland/codexcards/internal/card"
	"github.com/arcanaland/codexcards/internal/symbol"
	"github.com/arcanaland/codexcards/internal/validator"
)

// FaceSource provides the rendered faces of the deck
type FaceSource interface {
	Face(id int, front bool) (image.Image, error)
}

// FaceFileName returns the file name of a rendered face, e.g. front_12.png
func FaceFileName(id int, front bool) string {
	if front {
		return fmt.Sprintf("front_%d.png", id)
	}
	return fmt.Sprintf("back_%d.png", id)
}

// DirSource reads faces written by the extract step from a directory
type DirSource struct {
	Dir string
}

// Face loads one face image from the directory
func (s DirSource) Face(id int, front bool) (image.Image, error) {
	path := filepath.Join(s.Dir, FaceFileName(id, front))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("face image not found: %s", path)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %v", path, err)
	}
	return img, nil
}

// Check verifies that every face file of the deck is present
func (s DirSource) Check() error {
	var missing []string
	for id := 0; id < card.DeckSize; id++ {
		for _, front := range []bool{true, false} {
			name := FaceFileName(id, front)
			if _, err := os.Stat(filepath.Join(s.Dir, name)); os.IsNotExist(err) {
				missing = append(missing, name)
			}
		}
	}

	if len(missing) > 0 {
		if len(missing) > 5 {
			return fmt.Errorf("missing %d face images in %s, starting with %v", len(missing), s.Dir, missing[:5])
		}
		return fmt.Errorf("missing face images in %s: %v", s.Dir, missing)
	}
	return nil
}

// Builder assembles and validates the whole deck
type Builder struct {
	assembler *assemble.Assembler
	logger    *slog.Logger
}

// NewBuilder creates a deck builder
func NewBuilder(assembler *assemble.Assembler, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	if assembler == nil {
		assembler = assemble.New(nil, logger)
	}
	return &Builder{assembler: assembler, logger: logger}
}

// Build assembles every card in index order.
// The first classification, decoding or validation failure aborts the build.
func (b *Builder) Build(src FaceSource) ([]card.Card, error) {
	cards := make([]card.Card, 0, card.DeckSize)

	for id := 0; id < card.DeckSize; id++ {
		c, err := b.buildCard(src, id)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}

	if err := validator.CheckDeck(cards); err != nil {
		return nil, err
	}

	b.logger.Info("deck assembled", slog.Int("cards", len(cards)))
	return cards, nil
}

func (b *Builder) buildCard(src FaceSource, id int) (card.Card, error) {
	frontImg, err := src.Face(id, true)
	if err != nil {
		return card.Card{}, fmt.Errorf("card %d front: %w", id, err)
	}
	front, err := b.assembler.Front(id, frontImg)
	if err != nil {
		return card.Card{}, fmt.Errorf("card %d front: %w", id, err)
	}

	backImg, err := src.Face(id, false)
	if err != nil {
		return card.Card{}, fmt.Errorf("card %d back: %w", id, err)
	}
	back, err := b.assembler.Back(id, backImg)
	if err != nil {
		return card.Card{}, fmt.Errorf("card %d back: %w", id, err)
	}

	c := card.New(id, front, back)
	if err := validator.CheckCard(c); err != nil {
		return card.Card{}, err
	}

	b.logger.Debug("card built", slog.Int("id", id), slog.String("role", front.Role().String()))
	return c, nil
}

// Summary counts cards per front role and color
type Summary struct {
	Resource    map[symbol.Symbol]int
	Gold        map[symbol.Symbol]int
	Multipliers map[symbol.Symbol]int
}

// Summarize tallies a built deck for display
func Summarize(cards []card.Card) Summary {
	s := Summary{
		Resource:    make(map[symbol.Symbol]int),
		Gold:        make(map[symbol.Symbol]int),
		Multipliers: make(map[symbol.Symbol]int),
	}
	for _, c := range cards {
		switch c.Front.Role() {
		case card.RoleGold:
			s.Gold[c.Front.Color()]++
			s.Multipliers[c.Front.Multiplier]++
		default:
			s.Resource[c.Front.Color()]++
		}
	}
	return s
}
