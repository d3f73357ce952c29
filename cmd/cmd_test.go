package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/codexcards/internal/card"
	"github.com/arcanaland/codexcards/internal/deck"
	"github.com/arcanaland/codexcards/internal/schema"
	"github.com/arcanaland/codexcards/internal/testhelpers"
	"github.com/arcanaland/codexcards/internal/validator"
)

func TestFaceFromName(t *testing.T) {
	tests := []struct {
		path string
		face string
		id   int
	}{
		{"output/front_12.png", "front", 12},
		{"back_0.png", "back", 0},
		{"scan.png", "front", 0},
		{"back_x.png", "back", 0},
	}
	for _, tt := range tests {
		face, id := faceFromName(tt.path)
		assert.Equal(t, tt.face, face, tt.path)
		assert.Equal(t, tt.id, id, tt.path)
	}
}

func writeFaces(t *testing.T, dir string) {
	t.Helper()
	rf, rb := testhelpers.ResourceCard()
	gf, gb := testhelpers.GoldCard()
	resFront, resBack := rf.Image(), rb.Image()
	goldFront, goldBack := gf.Image(), gb.Image()
	for id := 0; id < card.DeckSize; id++ {
		front, back := resFront, resBack
		if id >= card.FirstGoldID {
			front, back = goldFront, goldBack
		}
		_, err := testhelpers.WritePNG(dir, deck.FaceFileName(id, true), front)
		require.NoError(t, err)
		_, err = testhelpers.WritePNG(dir, deck.FaceFileName(id, false), back)
		require.NoError(t, err)
	}
}

func TestConvertThenValidate(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	input := t.TempDir()
	output := filepath.Join(t.TempDir(), "cards.json")
	writeFaces(t, input)

	RootCmd.SetArgs([]string{"convert", "--input", input, "--output", output, "--log-level", "warn"})
	require.NoError(t, RootCmd.Execute())

	records, err := schema.ReadFile(output)
	require.NoError(t, err)
	require.Len(t, records, card.DeckSize)
	assert.Equal(t, schema.ClassFrontRes, records[0].Front.Class)
	assert.Equal(t, schema.ClassFrontGold, records[40].Front.Class)
	assert.Equal(t, schema.ClassBack, records[79].Back.Class)

	results, err := validator.NewValidator(output).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)

	RootCmd.SetArgs([]string{"validate", output})
	assert.NoError(t, RootCmd.Execute())
}

func TestConvertMissingInput(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	RootCmd.SetArgs([]string{"convert", "--input", filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, RootCmd.Execute())
}
