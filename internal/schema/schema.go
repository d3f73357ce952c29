// Package schema converts assembled cards to and from the JSON card database
// consumed by the game client.
//
// Every face is a SideRecord tagged by its "class" field:
//
//	SideBack      {id, color, fieldRepresentation, resources}
//	SideFrontRes  {id, color, fieldRepresentation, resources}
//	SideFrontGold {id, color, fieldRepresentation, resources,
//	               associatedScore, multiplier, requirements}
package schema

import (
	"fmt"
	"maps"
	"slices"

	"github.com/arcanaland/codexcards/internal/card"
	"github.com/arcanaland/codexcards/internal/symbol"
)

// Record classes
const (
	ClassBack      = "SideBack"
	ClassFrontRes  = "SideFrontRes"
	ClassFrontGold = "SideFrontGold"
)

// Bounds of the 2x2 corner grid
const (
	gridMin  = 0
	gridMax  = 1
	gridSize = 2
)

// CornerGrid is the board-placement encoding of a face's four corners
type CornerGrid struct {
	CenterX    int              `json:"centerX"`
	CenterY    int              `json:"centerY"`
	Data       [4]symbol.Symbol `json:"data"` // TL, TR, BL, BR
	EmptyValue symbol.Symbol    `json:"emptyValue"`
	MaxX       int              `json:"maxX"`
	MaxY       int              `json:"maxY"`
	MinX       int              `json:"minX"`
	MinY       int              `json:"minY"`
	SizeX      int              `json:"sizeX"`
	SizeY      int              `json:"sizeY"`
}

// NewCornerGrid wraps four corners in the fixed 2x2 grid
func NewCornerGrid(corners [4]symbol.Symbol) CornerGrid {
	return CornerGrid{
		Data:       corners,
		EmptyValue: symbol.Empty,
		MaxX:       gridMax,
		MaxY:       gridMax,
		MinX:       gridMin,
		MinY:       gridMin,
		SizeX:      gridSize,
		SizeY:      gridSize,
	}
}

func (g CornerGrid) validate() error {
	want := NewCornerGrid(g.Data)
	if g != want {
		return fmt.Errorf("corner grid bounds %+v do not describe the fixed 2x2 grid", g)
	}
	return nil
}

// FieldRepresentation wraps the corner grid
type FieldRepresentation struct {
	Corners CornerGrid `json:"corners"`
}

// ResourceHolder counts resource symbols; absent keys mean zero
type ResourceHolder struct {
	Resources map[symbol.Symbol]int `json:"resources"`
}

// Count builds a holder from a list of symbols, skipping structural markers
func Count(symbols ...symbol.Symbol) ResourceHolder {
	h := ResourceHolder{Resources: make(map[symbol.Symbol]int)}
	for _, s := range symbols {
		if s.IsCountable() {
			h.Resources[s]++
		}
	}
	return h
}

// Expand lists the held symbols in declaration order, each repeated by its count
func (h ResourceHolder) Expand() []symbol.Symbol {
	var out []symbol.Symbol
	for _, s := range symbol.All() {
		for i := 0; i < h.Resources[s]; i++ {
			out = append(out, s)
		}
	}
	return out
}

// Total is the number of held symbols
func (h ResourceHolder) Total() int {
	n := 0
	for _, c := range h.Resources {
		n += c
	}
	return n
}

func (h ResourceHolder) validate() error {
	for s, n := range h.Resources {
		if !s.IsCountable() {
			return fmt.Errorf("%s is not a resource", s)
		}
		if n <= 0 {
			return fmt.Errorf("%s has non-positive count %d", s, n)
		}
	}
	return nil
}

// SideRecord is the serialized form of one face
type SideRecord struct {
	Class               string              `json:"class"`
	ID                  int                 `json:"id"`
	Color               symbol.Symbol       `json:"color"`
	FieldRepresentation FieldRepresentation `json:"fieldRepresentation"`
	Resources           ResourceHolder      `json:"resources"`

	// SideFrontGold only
	AssociatedScore *int            `json:"associatedScore,omitempty"`
	Multiplier      *symbol.Symbol  `json:"multiplier,omitempty"`
	Requirements    *ResourceHolder `json:"requirements,omitempty"`
}

// CardRecord is the serialized form of one card
type CardRecord struct {
	Back  SideRecord `json:"back"`
	Front SideRecord `json:"front"`
}

// FromSide converts an assembled side to its record.
// The center color counts as a resource only on back faces.
func FromSide(s card.Side) SideRecord {
	corners := s.Corners()
	counted := corners[:]
	if !s.Front {
		counted = append(slices.Clone(counted), s.Center...)
	}

	rec := SideRecord{
		ID:                  s.ID,
		Color:               s.Color(),
		FieldRepresentation: FieldRepresentation{Corners: NewCornerGrid(corners)},
		Resources:           Count(counted...),
	}

	switch s.Role() {
	case card.RoleBack:
		rec.Class = ClassBack
	case card.RoleGold:
		rec.Class = ClassFrontGold
		score := s.Score
		multiplier := s.Multiplier
		reqs := Count(s.Requirements...)
		rec.AssociatedScore = &score
		rec.Multiplier = &multiplier
		rec.Requirements = &reqs
	default:
		rec.Class = ClassFrontRes
	}

	return rec
}

// FromCard converts both faces of a card
func FromCard(c card.Card) CardRecord {
	return CardRecord{Back: FromSide(c.Back), Front: FromSide(c.Front)}
}

// Validate checks that the record is a well-formed member of its class
func (r SideRecord) Validate() error {
	gold := r.AssociatedScore != nil || r.Multiplier != nil || r.Requirements != nil

	switch r.Class {
	case ClassBack, ClassFrontRes:
		if gold {
			return fmt.Errorf("%s record %d carries gold fields", r.Class, r.ID)
		}
	case ClassFrontGold:
		if r.AssociatedScore == nil || r.Multiplier == nil || r.Requirements == nil {
			return fmt.Errorf("%s record %d is missing associatedScore, multiplier or requirements", r.Class, r.ID)
		}
		if *r.AssociatedScore < 0 {
			return fmt.Errorf("%s record %d has negative score %d", r.Class, r.ID, *r.AssociatedScore)
		}
		if err := r.Requirements.validate(); err != nil {
			return fmt.Errorf("%s record %d requirements: %v", r.Class, r.ID, err)
		}
		if err := validateRequirements(*r.Requirements); err != nil {
			return fmt.Errorf("%s record %d requirements: %v", r.Class, r.ID, err)
		}
		if !slices.Contains(multipliers, *r.Multiplier) {
			return fmt.Errorf("%s record %d has multiplier %s, want one of %s", r.Class, r.ID, *r.Multiplier, symbol.Join(multipliers))
		}
	default:
		return fmt.Errorf("record %d has unknown class %q", r.ID, r.Class)
	}

	if !r.Color.IsColor() {
		return fmt.Errorf("%s record %d has color %s", r.Class, r.ID, r.Color)
	}
	if err := r.FieldRepresentation.Corners.validate(); err != nil {
		return fmt.Errorf("%s record %d: %v", r.Class, r.ID, err)
	}
	if err := r.Resources.validate(); err != nil {
		return fmt.Errorf("%s record %d resources: %v", r.Class, r.ID, err)
	}

	corners := r.FieldRepresentation.Corners.Data
	counted := corners[:]
	if r.Class == ClassBack {
		for i, c := range corners {
			if c != symbol.Blank {
				return fmt.Errorf("%s record %d corner %d is %s, want %s", r.Class, r.ID, i, c, symbol.Blank)
			}
		}
		counted = append(slices.Clone(counted), r.Color)
	}
	if want := Count(counted...); !maps.Equal(r.Resources.Resources, want.Resources) {
		return fmt.Errorf("%s record %d resources %v do not match its symbols %v",
			r.Class, r.ID, symbol.Join(r.Resources.Expand()), symbol.Join(want.Expand()))
	}
	return nil
}

// multipliers are the glyphs a gold score can be multiplied by
var multipliers = []symbol.Symbol{symbol.None, symbol.Feather, symbol.Flask, symbol.Scroll, symbol.Corner}

// validateRequirements checks that a gold face asks for 3 to 5 resource colors
func validateRequirements(h ResourceHolder) error {
	for s := range h.Resources {
		if !s.IsColor() {
			return fmt.Errorf("%s is not a resource color", s)
		}
	}
	if n := h.Total(); n < 3 || n > 5 {
		return fmt.Errorf("%d requirements, want 3 to 5", n)
	}
	return nil
}

// Side rebuilds the side a record was made from.
// Requirements come back in symbol declaration order, since the record only keeps counts.
func (r SideRecord) Side() (card.Side, error) {
	if err := r.Validate(); err != nil {
		return card.Side{}, err
	}

	corners := r.FieldRepresentation.Corners.Data
	s := card.Side{
		ID:          r.ID,
		Front:       r.Class != ClassBack,
		TopLeft:     corners[0],
		TopRight:    corners[1],
		BottomLeft:  corners[2],
		BottomRight: corners[3],
		Center:      []symbol.Symbol{r.Color},
		Multiplier:  symbol.None,
	}

	if r.Class == ClassFrontGold {
		s.Score = *r.AssociatedScore
		s.Multiplier = *r.Multiplier
		s.Requirements = r.Requirements.Expand()
	}

	return s, nil
}

// Card rebuilds the card a record was made from
func (r CardRecord) Card() (card.Card, error) {
	back, err := r.Back.Side()
	if err != nil {
		return card.Card{}, fmt.Errorf("back: %w", err)
	}
	if back.Front {
		return card.Card{}, fmt.Errorf("back: record %d has front class %s", r.Back.ID, r.Back.Class)
	}

	front, err := r.Front.Side()
	if err != nil {
		return card.Card{}, fmt.Errorf("front: %w", err)
	}
	if !front.Front {
		return card.Card{}, fmt.Errorf("front: record %d has class %s", r.Front.ID, r.Front.Class)
	}

	if front.ID != back.ID {
		return card.Card{}, fmt.Errorf("front id %d does not match back id %d", front.ID, back.ID)
	}

	return card.New(front.ID, front, back), nil
}
