package card

import (
	"fmt"

	"github.com/arcanaland/codexcards/internal/symbol"
)

// DeckSize is the number of playable cards in the printed set
const DeckSize = 80

// FirstGoldID is the first card index whose front is a gold face
const FirstGoldID = 40

// Role is the semantic role of a card face
type Role int

const (
	RoleResource Role = iota
	RoleGold
	RoleBack
)

func (r Role) String() string {
	switch r {
	case RoleResource:
		return "resource"
	case RoleGold:
		return "gold"
	case RoleBack:
		return "back"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Side represents one printed face of a card
type Side struct {
	ID    int  // Card index (0-79)
	Front bool // False for the back face

	TopLeft     symbol.Symbol
	TopRight    symbol.Symbol
	BottomLeft  symbol.Symbol
	BottomRight symbol.Symbol
	Center      []symbol.Symbol // Always one element once assembled

	Requirements []symbol.Symbol // 0, 3, 4 or 5 resource colors
	Score        int
	Multiplier   symbol.Symbol // symbol.None when the score is not multiplied
}

// Corners returns the corner symbols in TL, TR, BL, BR order
func (s Side) Corners() [4]symbol.Symbol {
	return [4]symbol.Symbol{s.TopLeft, s.TopRight, s.BottomLeft, s.BottomRight}
}

// Color returns the center symbol, or symbol.None if the center is not a single symbol
func (s Side) Color() symbol.Symbol {
	if len(s.Center) != 1 {
		return symbol.None
	}
	return s.Center[0]
}

func (s Side) hasColor() bool {
	return len(s.Center) == 1 && s.Center[0] != symbol.None
}

// IsResource reports whether the side is a plain resource face
func (s Side) IsResource() bool {
	return len(s.Requirements) == 0 && s.Multiplier == symbol.None && s.hasColor()
}

// IsGold reports whether the side is a gold face with crafting requirements
func (s Side) IsGold() bool {
	return len(s.Requirements) > 0 && s.hasColor()
}

// IsBack reports whether the side has the shape of a card back
func (s Side) IsBack() bool {
	if len(s.Requirements) != 0 || s.Score != 0 || !s.hasColor() {
		return false
	}
	for _, c := range s.Corners() {
		if c == symbol.None {
			return false
		}
	}
	return true
}

// Role derives the role used when serializing the side
func (s Side) Role() Role {
	switch {
	case !s.Front:
		return RoleBack
	case s.IsGold():
		return RoleGold
	default:
		return RoleResource
	}
}

// Face names the side for messages
func (s Side) Face() string {
	if s.Front {
		return "front"
	}
	return "back"
}

// Card represents one playable card with both of its faces
type Card struct {
	ID    int
	Front Side
	Back  Side
}

// New pairs a front and a back side into a card
func New(id int, front, back Side) Card {
	return Card{ID: id, Front: front, Back: back}
}

// ExpectedFrontRole returns the role the front of card id must have
func ExpectedFrontRole(id int) Role {
	if id < FirstGoldID {
		return RoleResource
	}
	return RoleGold
}
