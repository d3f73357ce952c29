package schema

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/codexcards/internal/card"
	"github.com/arcanaland/codexcards/internal/symbol"
)

func goldSide() card.Side {
	return card.Side{
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

func backSide(id int) card.Side {
	return card.Side{
		ID:          id,
		TopLeft:     symbol.Blank,
		TopRight:    symbol.Blank,
		BottomLeft:  symbol.Blank,
		BottomRight: symbol.Blank,
		Center:      []symbol.Symbol{symbol.Blue},
		Multiplier:  symbol.None,
	}
}

func resourceSide(id int) card.Side {
	return card.Side{
		ID:          id,
		Front:       true,
		TopLeft:     symbol.Red,
		TopRight:    symbol.None,
		BottomLeft:  symbol.Blank,
		BottomRight: symbol.Green,
		Center:      []symbol.Symbol{symbol.Blue},
		Multiplier:  symbol.None,
	}
}

func resources(t *testing.T, h ResourceHolder) string {
	t.Helper()
	data, err := json.Marshal(h)
	require.NoError(t, err)
	return string(data)
}

func TestResourceCountingExcludesMarkers(t *testing.T) {
	// Same corners and center on both faces: only the back counts its center
	back := resourceSide(3)
	back.Front = false

	assert.JSONEq(t, `{"resources":{"RED":1,"GREEN":1,"BLUE":1}}`, resources(t, FromSide(back).Resources))
	assert.JSONEq(t, `{"resources":{"RED":1,"GREEN":1}}`, resources(t, FromSide(resourceSide(3)).Resources))
}

func TestBlankBackCountsOnlyCenter(t *testing.T) {
	rec := FromSide(backSide(0))
	assert.Equal(t, map[symbol.Symbol]int{symbol.Blue: 1}, rec.Resources.Resources)
}

func TestEmptyResourcesEncodeAsObject(t *testing.T) {
	s := resourceSide(1)
	s.TopLeft, s.BottomRight = symbol.None, symbol.Blank

	assert.JSONEq(t, `{"resources":{}}`, resources(t, FromSide(s).Resources))
}

func TestGoldRecordWireShape(t *testing.T) {
	data, err := json.Marshal(FromSide(goldSide()))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"class": "SideFrontGold",
		"id": 52,
		"color": "BLUE",
		"fieldRepresentation": {
			"corners": {
				"centerX": 0,
				"centerY": 0,
				"data": ["BLANK", "NONE", "BLANK", "FLASK"],
				"emptyValue": "EMPTY",
				"maxX": 1,
				"maxY": 1,
				"minX": 0,
				"minY": 0,
				"sizeX": 2,
				"sizeY": 2
			}
		},
		"resources": {"resources": {"FLASK": 1}},
		"associatedScore": 2,
		"multiplier": "FLASK",
		"requirements": {"resources": {"RED": 2, "BLUE": 1}}
	}`, string(data))
}

func TestResourceAndBackRecordsOmitGoldFields(t *testing.T) {
	for _, s := range []card.Side{resourceSide(4), backSide(4)} {
		data, err := json.Marshal(FromSide(s))
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.NotContains(t, raw, "associatedScore")
		assert.NotContains(t, raw, "multiplier")
		assert.NotContains(t, raw, "requirements")
		assert.Len(t, raw, 5)
	}

	assert.Equal(t, ClassFrontRes, FromSide(resourceSide(4)).Class)
	assert.Equal(t, ClassBack, FromSide(backSide(4)).Class)
}

func TestGoldWithoutMultiplier(t *testing.T) {
	s := goldSide()
	s.Multiplier = symbol.None
	s.Score = 3

	data, err := json.Marshal(FromSide(s))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "NONE", raw["multiplier"])
	assert.Equal(t, float64(3), raw["associatedScore"])
}

func TestRecordRoundTrip(t *testing.T) {
	cards := []card.Card{
		card.New(0, resourceSide(0), backSide(0)),
		card.New(1, goldSide(), backSide(1)),
	}
	cards[1].Front.ID = 1

	data, err := Marshal(cards)
	require.NoError(t, err)

	records, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, Records(cards), records)
}

func TestSideRoundTrip(t *testing.T) {
	for _, s := range []card.Side{goldSide(), backSide(9)} {
		got, err := FromSide(s).Side()
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	// Resource records carry no score
	res := resourceSide(2)
	got, err := FromSide(res).Side()
	require.NoError(t, err)
	assert.Equal(t, res.Corners(), got.Corners())
	assert.Equal(t, res.Color(), got.Color())
	assert.True(t, got.Front)
	assert.True(t, got.IsResource())
}

func TestCardRecordRebuildsCard(t *testing.T) {
	front := goldSide()
	front.ID = 41
	c := card.New(41, front, backSide(41))

	got, err := FromCard(c).Card()
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestCardRecordRejectsSwappedFaces(t *testing.T) {
	rec := FromCard(card.New(5, resourceSide(5), backSide(5)))
	rec.Front, rec.Back = rec.Back, rec.Front

	_, err := rec.Card()
	assert.Error(t, err)
}

func TestCardRecordRejectsMismatchedIDs(t *testing.T) {
	rec := FromCard(card.New(5, resourceSide(5), backSide(6)))

	_, err := rec.Card()
	assert.Error(t, err)
}

func TestUnmarshalRejectsMalformedRecords(t *testing.T) {
	valid := func() map[string]any {
		data, err := json.Marshal(FromCard(card.New(1, goldSide(), backSide(1))))
		require.NoError(t, err)
		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		return raw
	}

	tests := []struct {
		name   string
		mutate func(raw map[string]any)
	}{
		{"unknown class", func(raw map[string]any) {
			raw["back"].(map[string]any)["class"] = "SideFrontStarter"
		}},
		{"gold without requirements", func(raw map[string]any) {
			delete(raw["front"].(map[string]any), "requirements")
		}},
		{"back with score", func(raw map[string]any) {
			raw["back"].(map[string]any)["associatedScore"] = 1
		}},
		{"unknown symbol", func(raw map[string]any) {
			raw["front"].(map[string]any)["color"] = "GOLD"
		}},
		{"structural key in resources", func(raw map[string]any) {
			raw["back"].(map[string]any)["resources"] = map[string]any{"resources": map[string]any{"BLANK": 4}}
		}},
		{"zero count", func(raw map[string]any) {
			raw["back"].(map[string]any)["resources"] = map[string]any{"resources": map[string]any{"RED": 0}}
		}},
		{"wrong grid bounds", func(raw map[string]any) {
			fr := raw["front"].(map[string]any)["fieldRepresentation"].(map[string]any)
			fr["corners"].(map[string]any)["sizeX"] = 3
		}},
		{"unknown field", func(raw map[string]any) {
			raw["front"].(map[string]any)["starter"] = true
		}},
		{"gold with one requirement", func(raw map[string]any) {
			raw["front"].(map[string]any)["requirements"] = map[string]any{"resources": map[string]any{"RED": 1}}
		}},
		{"gold with six requirements", func(raw map[string]any) {
			raw["front"].(map[string]any)["requirements"] = map[string]any{"resources": map[string]any{"RED": 3, "BLUE": 3}}
		}},
		{"gold requiring an item", func(raw map[string]any) {
			raw["front"].(map[string]any)["requirements"] = map[string]any{"resources": map[string]any{"RED": 2, "FLASK": 1}}
		}},
		{"gold multiplied by a color", func(raw map[string]any) {
			raw["front"].(map[string]any)["multiplier"] = "RED"
		}},
		{"front resources ignoring a corner", func(raw map[string]any) {
			raw["front"].(map[string]any)["resources"] = map[string]any{"resources": map[string]any{}}
		}},
		{"back resources ignoring the center", func(raw map[string]any) {
			raw["back"].(map[string]any)["resources"] = map[string]any{"resources": map[string]any{"RED": 1}}
		}},
		{"back with an item corner", func(raw map[string]any) {
			back := raw["back"].(map[string]any)
			fr := back["fieldRepresentation"].(map[string]any)
			fr["corners"].(map[string]any)["data"] = []any{"FLASK", "BLANK", "BLANK", "BLANK"}
			back["resources"] = map[string]any{"resources": map[string]any{"BLUE": 1, "FLASK": 1}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := valid()
			tt.mutate(raw)
			data, err := json.Marshal([]any{raw})
			require.NoError(t, err)

			_, err = Unmarshal(data)
			assert.Error(t, err)
		})
	}
}

func TestMalformedFixtureStartsValid(t *testing.T) {
	data, err := json.Marshal([]CardRecord{FromCard(card.New(1, goldSide(), backSide(1)))})
	require.NoError(t, err)

	_, err = Unmarshal(data)
	assert.NoError(t, err)
}

func TestMarshalRefusesInconsistentGold(t *testing.T) {
	s := goldSide()
	s.Requirements = []symbol.Symbol{symbol.Red}

	_, err := Marshal([]card.Card{card.New(52, s, backSide(52))})
	assert.ErrorContains(t, err, "1 requirements, want 3 to 5")
}

func TestMarshalIsIndentedArray(t *testing.T) {
	data, err := Marshal([]card.Card{card.New(0, resourceSide(0), backSide(0))})
	require.NoError(t, err)

	assert.Equal(t, byte('['), data[0])
	assert.Contains(t, string(data), "\n    {\n        \"back\": {")
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestWriteFileReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "cards.json")
	cards := []card.Card{card.New(0, resourceSide(0), backSide(0))}

	require.NoError(t, WriteFile(path, cards))

	records, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteFileLeavesNothingOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.json")
	bad := card.New(0, resourceSide(0), backSide(0))
	bad.Back.Center = []symbol.Symbol{symbol.Symbol(99)}

	require.Error(t, WriteFile(path, []card.Card{bad}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCountAndExpand(t *testing.T) {
	h := Count(symbol.Blue, symbol.Red, symbol.None, symbol.Blue, symbol.Corner)
	assert.Equal(t, map[symbol.Symbol]int{symbol.Red: 1, symbol.Blue: 2}, h.Resources)
	assert.Equal(t, []symbol.Symbol{symbol.Red, symbol.Blue, symbol.Blue}, h.Expand())
}
