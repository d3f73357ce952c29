package deck

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/codexcards/internal/card"
	"github.com/arcanaland/codexcards/internal/classify"
	"github.com/arcanaland/codexcards/internal/symbol"
	"github.com/arcanaland/codexcards/internal/testhelpers"
	"github.com/arcanaland/codexcards/internal/validator"
)

// memSource serves the same resource and gold pair for every card index
type memSource struct {
	resourceFront, resourceBack image.Image
	goldFront, goldBack         image.Image
	override                    map[int]image.Image // front overrides
	calls                       int
}

func newMemSource() *memSource {
	rf, rb := testhelpers.ResourceCard()
	gf, gb := testhelpers.GoldCard()
	return &memSource{
		resourceFront: rf.Image(),
		resourceBack:  rb.Image(),
		goldFront:     gf.Image(),
		goldBack:      gb.Image(),
		override:      make(map[int]image.Image),
	}
}

func (m *memSource) Face(id int, front bool) (image.Image, error) {
	m.calls++
	if img, ok := m.override[id]; ok && front {
		return img, nil
	}
	switch {
	case id < card.FirstGoldID && front:
		return m.resourceFront, nil
	case id < card.FirstGoldID:
		return m.resourceBack, nil
	case front:
		return m.goldFront, nil
	default:
		return m.goldBack, nil
	}
}

func TestBuildAssemblesWholeDeck(t *testing.T) {
	cards, err := NewBuilder(nil, nil).Build(newMemSource())
	require.NoError(t, err)
	require.Len(t, cards, card.DeckSize)

	assert.NoError(t, validator.CheckDeck(cards))
	assert.True(t, cards[0].Front.IsResource())
	assert.True(t, cards[40].Front.IsGold())
	assert.Equal(t, symbol.Blue, cards[79].Back.Color())
}

func TestBuildStopsAtFirstFailure(t *testing.T) {
	src := newMemSource()
	// A gold face where a resource face belongs
	src.override[12] = src.goldFront

	_, err := NewBuilder(nil, nil).Build(src)
	require.Error(t, err)
	assert.True(t, errors.Is(err, validator.ErrRole))
	assert.Contains(t, err.Error(), "card 12")
	assert.Equal(t, 2*13, src.calls)
}

func TestBuildReportsUnclassifiableRegion(t *testing.T) {
	src := newMemSource()
	face := testhelpers.FrontFace(testhelpers.CornerMissing)
	src.override[3] = face.Image()

	_, err := NewBuilder(nil, nil).Build(src)
	require.Error(t, err)
	assert.True(t, errors.Is(err, classify.ErrUnclassifiable))
	assert.Contains(t, err.Error(), "card 3 front")
}

func TestDirSourceLoadsFaces(t *testing.T) {
	dir := t.TempDir()
	front, back := testhelpers.ResourceCard()
	_, err := testhelpers.WritePNG(dir, FaceFileName(0, true), front.Image())
	require.NoError(t, err)
	_, err = testhelpers.WritePNG(dir, FaceFileName(0, false), back.Image())
	require.NoError(t, err)

	src := DirSource{Dir: dir}
	img, err := src.Face(0, true)
	require.NoError(t, err)
	assert.Equal(t, 792, img.Bounds().Dx())

	_, err = src.Face(1, true)
	assert.Error(t, err)

	err = src.Check()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing 158 face images")
}

func TestFaceFileName(t *testing.T) {
	assert.Equal(t, "front_12.png", FaceFileName(12, true))
	assert.Equal(t, "back_0.png", FaceFileName(0, false))
}

func TestSummarize(t *testing.T) {
	cards, err := NewBuilder(nil, nil).Build(newMemSource())
	require.NoError(t, err)

	s := Summarize(cards)
	assert.Equal(t, map[symbol.Symbol]int{symbol.Red: 40}, s.Resource)
	assert.Equal(t, map[symbol.Symbol]int{symbol.Blue: 40}, s.Gold)
	assert.Equal(t, map[symbol.Symbol]int{symbol.Flask: 40}, s.Multipliers)
}
