package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/codexcards/internal/symbol"
)

func TestRegionsLieInsideFace(t *testing.T) {
	for _, r := range Corners() {
		assert.True(t, r.In(FaceBounds()), "region %v", r)
		assert.Equal(t, image.Pt(120, 150), r.Size(), "region %v", r)
	}
	assert.True(t, Center().In(FaceBounds()))
	assert.Equal(t, image.Pt(100, 100), Center().Size())
}

func TestRequirementLayouts(t *testing.T) {
	for _, n := range []int{3, 4, 5} {
		l, ok := RequirementLayoutFor(n)
		require.True(t, ok)
		assert.Len(t, l.Samples(), n)
		for _, p := range l.Samples() {
			assert.Equal(t, 479, p.Y)
		}
	}

	_, ok := RequirementLayoutFor(2)
	assert.False(t, ok)
}

func TestRequirementLayoutsAreCopies(t *testing.T) {
	layouts := RequirementLayouts()
	layouts[0].Columns[0] = 0
	assert.Equal(t, 347, RequirementLayouts()[0].Columns[0])
}

func TestRequirementColorsRoundTrip(t *testing.T) {
	for _, s := range []symbol.Symbol{symbol.Red, symbol.Green, symbol.Blue, symbol.Purple} {
		c, ok := RequirementColor(s)
		require.True(t, ok)
		got, ok := RequirementSymbol(c)
		require.True(t, ok)
		assert.Equal(t, s, got)
	}

	_, ok := RequirementSymbol(Ink())
	assert.False(t, ok)
	_, ok = RequirementColor(symbol.Flask)
	assert.False(t, ok)
}

func TestCalibrationValuesAreCopies(t *testing.T) {
	corners := Corners()
	corners[0] = image.Rectangle{}
	assert.Equal(t, image.Rect(50, 50, 170, 200), Corners()[0])

	ink := Ink()
	ink.R = 0
	assert.Equal(t, uint8(53), Ink().R)
}
