package card

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcanaland/codexcards/internal/symbol"
)

func resourceFront() Side {
	return Side{
		ID:          3,
		Front:       true,
		TopLeft:     symbol.Red,
		TopRight:    symbol.None,
		BottomLeft:  symbol.Blank,
		BottomRight: symbol.Red,
		Center:      []symbol.Symbol{symbol.Red},
		Score:       1,
		Multiplier:  symbol.None,
	}
}

func goldFront() Side {
	return Side{
		ID:           52,
		Front:        true,
		TopLeft:      symbol.Blank,
		TopRight:     symbol.None,
		BottomLeft:   symbol.Blank,
		BottomRight:  symbol.Flask,
		Center:       []symbol.Symbol{symbol.Blue},
		Requirements: []symbol.Symbol{symbol.Red, symbol.Red, symbol.Blue},
		Score:        2,
		Multiplier:   symbol.Flask,
	}
}

func back() Side {
	return Side{
		ID:          7,
		TopLeft:     symbol.Blank,
		TopRight:    symbol.Blank,
		BottomLeft:  symbol.Blank,
		BottomRight: symbol.Blank,
		Center:      []symbol.Symbol{symbol.Green},
		Multiplier:  symbol.None,
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name     string
		side     Side
		resource bool
		gold     bool
		back     bool
	}{
		{"resource front", resourceFront(), true, false, false},
		{"gold front", goldFront(), false, true, false},
		// A back is also a resource-shaped face; the role comes from Front
		{"back", back(), true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.resource, tt.side.IsResource(), "IsResource")
			assert.Equal(t, tt.gold, tt.side.IsGold(), "IsGold")
			assert.Equal(t, tt.back, tt.side.IsBack(), "IsBack")
		})
	}
}

func TestPredicatesRejectMissingCenter(t *testing.T) {
	for _, center := range [][]symbol.Symbol{nil, {symbol.None}, {symbol.Red, symbol.Blue}} {
		s := goldFront()
		s.Center = center
		assert.False(t, s.IsGold())

		r := resourceFront()
		r.Center = center
		assert.False(t, r.IsResource())

		b := back()
		b.Center = center
		assert.False(t, b.IsBack())
	}
}

func TestResourceWithMultiplierIsNotResource(t *testing.T) {
	s := resourceFront()
	s.Multiplier = symbol.Scroll
	assert.False(t, s.IsResource())
}

func TestBackRejectsNoneCornerAndScore(t *testing.T) {
	b := back()
	b.BottomLeft = symbol.None
	assert.False(t, b.IsBack())

	b = back()
	b.Score = 1
	assert.False(t, b.IsBack())
}

func TestRole(t *testing.T) {
	assert.Equal(t, RoleResource, resourceFront().Role())
	assert.Equal(t, RoleGold, goldFront().Role())
	assert.Equal(t, RoleBack, back().Role())
	assert.Equal(t, "gold", RoleGold.String())
}

func TestExpectedFrontRole(t *testing.T) {
	assert.Equal(t, RoleResource, ExpectedFrontRole(0))
	assert.Equal(t, RoleResource, ExpectedFrontRole(39))
	assert.Equal(t, RoleGold, ExpectedFrontRole(40))
	assert.Equal(t, RoleGold, ExpectedFrontRole(79))
}

func TestCornersAndColor(t *testing.T) {
	s := goldFront()
	assert.Equal(t, [4]symbol.Symbol{symbol.Blank, symbol.None, symbol.Blank, symbol.Flask}, s.Corners())
	assert.Equal(t, symbol.Blue, s.Color())
	assert.Equal(t, "front", s.Face())
	assert.Equal(t, "back", back().Face())
}
